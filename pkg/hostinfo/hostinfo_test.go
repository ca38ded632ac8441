package hostinfo

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollect(t *testing.T) {
	info := Collect()

	assert.NotNil(t, info)
	assert.Equal(t, runtime.GOARCH, info.Arch)
}
