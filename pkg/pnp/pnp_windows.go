// +build windows

package pnp

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/cloudradar-monitoring/devicelist/pkg/wmiutil"
)

// wmiEnumerator reads the device registry through WMI. It is the default
// backend on Windows: Win32_PnPSignedDriver is the only place signed-driver
// versions are surfaced.
type wmiEnumerator struct {
	timeout time.Duration
}

func newWMIEnumerator(timeout time.Duration) (Enumerator, error) {
	return &wmiEnumerator{timeout: timeout}, nil
}

func (e *wmiEnumerator) ListDevices(ctx context.Context) ([]DeviceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	var entities []win32_PnPEntity
	err := wmiutil.QueryWithContext(ctx, "SELECT DeviceID, Name FROM Win32_PnPEntity", &entities)
	if err != nil {
		return nil, errors.Wrap(err, "pnp: Win32_PnPEntity query failed")
	}

	result := make([]DeviceRecord, 0, len(entities))
	for _, entity := range entities {
		if entity.DeviceID == nil {
			continue
		}

		var name string
		if entity.Name != nil {
			name = *entity.Name
		}

		result = append(result, DeviceRecord{
			DeviceID: *entity.DeviceID,
			Name:     name,
		})
	}

	return result, nil
}

func (e *wmiEnumerator) ListSignedDrivers(ctx context.Context) ([]DriverRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	var drivers []win32_PnPSignedDriver
	err := wmiutil.QueryWithContext(ctx, "SELECT DeviceID, DriverVersion FROM Win32_PnPSignedDriver", &drivers)
	if err != nil {
		return nil, errors.Wrap(err, "pnp: Win32_PnPSignedDriver query failed")
	}

	result := make([]DriverRecord, 0, len(drivers))
	for _, driver := range drivers {
		if driver.DeviceID == nil {
			continue
		}

		var version string
		if driver.DriverVersion != nil {
			version = *driver.DriverVersion
		}

		result = append(result, DriverRecord{
			DeviceID: *driver.DeviceID,
			Version:  version,
		})
	}

	return result, nil
}
