// +build windows

package pnp

import (
	"context"
	"time"

	"github.com/gentlemanautomaton/windevice"
	"github.com/gentlemanautomaton/windevice/deviceclass"
	"github.com/pkg/errors"
)

// setupAPIEnumerator lists present devices through the Windows SetupAPI.
// Signed-driver versions are not exposed there, so driver enumeration is
// delegated to the WMI path.
type setupAPIEnumerator struct {
	timeout time.Duration
	wmi     *wmiEnumerator
}

func newSetupAPIEnumerator(timeout time.Duration) (Enumerator, error) {
	return &setupAPIEnumerator{
		timeout: timeout,
		wmi:     &wmiEnumerator{timeout: timeout},
	}, nil
}

// ListDevices walks the SetupAPI device set. SetupAPI has no native
// cancellation, so ctx is checked between device callbacks: expiry skips the
// remaining devices and fails the listing.
func (e *setupAPIEnumerator) ListDevices(ctx context.Context) ([]DeviceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	query := windevice.DeviceQuery{
		Flags: deviceclass.Present | deviceclass.AllClasses,
	}

	result := make([]DeviceRecord, 0)
	err := query.Each(func(device windevice.Device) {
		if ctx.Err() != nil {
			return
		}

		deviceInstanceID, err := device.DeviceInstanceID()
		if err != nil {
			return
		}

		name, _ := device.FriendlyName()
		if name == "" {
			name, _ = device.Description()
		}

		result = append(result, DeviceRecord{
			DeviceID: string(deviceInstanceID),
			Name:     name,
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "pnp: SetupAPI device enumeration failed")
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "pnp: SetupAPI device enumeration interrupted")
	}

	return result, nil
}

func (e *setupAPIEnumerator) ListSignedDrivers(ctx context.Context) ([]DriverRecord, error) {
	return e.wmi.ListSignedDrivers(ctx)
}
