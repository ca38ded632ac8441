package pnp

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"
)

// Supported enumeration backends.
const (
	BackendWMI      = "wmi"
	BackendSetupAPI = "setupapi"
	BackendGHW      = "ghw"
)

// ErrNotImplementedForOS returned when the requested backend does not exist on this OS. Should be checked and reported to the user
var ErrNotImplementedForOS = errors.New("device enumeration backend not implemented for " + runtime.GOOS)

// DeviceRecord is one Plug-and-Play device instance known to the OS device
// manager. DeviceID is an opaque, platform-assigned identifier shared with
// the driver records and used as the join key.
type DeviceRecord struct {
	DeviceID string
	Name     string
}

// DriverRecord is one installed signed-driver entry.
type DriverRecord struct {
	DeviceID string
	Version  string
}

// Enumerator is a read-only view of the OS device registry. Implementations
// query the OS from scratch on every call and hold no state between calls.
type Enumerator interface {
	ListDevices(ctx context.Context) ([]DeviceRecord, error)
	ListSignedDrivers(ctx context.Context) ([]DriverRecord, error)
}

// NewEnumerator returns the enumerator for the given backend name.
// queryTimeout bounds every underlying registry query.
func NewEnumerator(backend string, queryTimeout time.Duration) (Enumerator, error) {
	switch backend {
	case BackendWMI:
		return newWMIEnumerator(queryTimeout)
	case BackendSetupAPI:
		return newSetupAPIEnumerator(queryTimeout)
	case BackendGHW:
		return NewGHWEnumerator(), nil
	default:
		return nil, fmt.Errorf("pnp: unknown enumeration backend %q", backend)
	}
}
