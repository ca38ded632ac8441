package pnp

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewEnumeratorUnknownBackend(t *testing.T) {
	enumerator, err := NewEnumerator("registry", time.Second)
	assert.Error(t, err)
	assert.Nil(t, enumerator)
}

func TestNewEnumeratorGHW(t *testing.T) {
	enumerator, err := NewEnumerator(BackendGHW, time.Second)
	assert.NoError(t, err)
	assert.NotNil(t, enumerator)
}

func TestWindowsBackendsNotImplementedElsewhere(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("backends are implemented on Windows")
	}

	_, err := NewEnumerator(BackendWMI, time.Second)
	assert.Equal(t, ErrNotImplementedForOS, err)

	_, err = NewEnumerator(BackendSetupAPI, time.Second)
	assert.Equal(t, ErrNotImplementedForOS, err)
}
