// +build windows

package pnp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetupAPIListDevicesCanceledContext(t *testing.T) {
	enumerator, err := newSetupAPIEnumerator(time.Second * 10)
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	devices, err := enumerator.ListDevices(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "interrupted")
	assert.Nil(t, devices)
}
