// +build windows

package pnp

// https://docs.microsoft.com/en-us/windows/win32/cimwin32prov/win32-pnpentity
type win32_PnPEntity struct {
	DeviceID *string
	Name     *string
}

// https://docs.microsoft.com/en-us/previous-versions/windows/desktop/legacy/aa394354(v=vs.85)
type win32_PnPSignedDriver struct {
	DeviceID      *string
	DriverVersion *string
}
