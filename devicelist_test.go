package devicelist

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cloudradar-monitoring/devicelist/pkg/pnp"
)

func TestNewWithGHWBackend(t *testing.T) {
	cfg := NewConfig()
	cfg.Backend = pnp.BackendGHW

	dl, err := New(cfg, "")
	assert.NoError(t, err)
	assert.NotNil(t, dl)
}

func TestNewReportsMissingBackend(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("the wmi backend is implemented on Windows")
	}

	cfg := NewConfig()
	cfg.Backend = pnp.BackendWMI

	dl, err := New(cfg, "")
	assert.Error(t, err)
	assert.Nil(t, dl)
	assert.Contains(t, err.Error(), "failed to init the \"wmi\" enumeration backend")
}
