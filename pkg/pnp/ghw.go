package pnp

import (
	"context"

	"github.com/jaypipes/ghw"
	"github.com/pkg/errors"
)

// ghwEnumerator is a best-effort fallback for hosts without a Windows device
// registry. It lists PCI devices and reports the bound kernel driver name in
// place of a signed-driver version, the closest analog available outside of
// Windows.
type ghwEnumerator struct{}

// NewGHWEnumerator returns the cross-platform PCI enumerator.
func NewGHWEnumerator() Enumerator {
	return &ghwEnumerator{}
}

func (e *ghwEnumerator) ListDevices(ctx context.Context) ([]DeviceRecord, error) {
	info, err := ghw.PCI()
	if err != nil {
		return nil, errors.Wrap(err, "pnp: PCI enumeration failed")
	}

	devices := info.ListDevices()
	result := make([]DeviceRecord, 0, len(devices))
	for _, device := range devices {
		var name string
		if device.Product != nil {
			name = device.Product.Name
		}

		result = append(result, DeviceRecord{
			DeviceID: device.Address,
			Name:     name,
		})
	}

	return result, nil
}

func (e *ghwEnumerator) ListSignedDrivers(ctx context.Context) ([]DriverRecord, error) {
	info, err := ghw.PCI()
	if err != nil {
		return nil, errors.Wrap(err, "pnp: PCI enumeration failed")
	}

	result := make([]DriverRecord, 0)
	for _, device := range info.ListDevices() {
		if device.Driver == "" {
			continue
		}

		result = append(result, DriverRecord{
			DeviceID: device.Address,
			Version:  device.Driver,
		})
	}

	return result, nil
}
