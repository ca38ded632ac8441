package devicelist

import (
	"context"

	"github.com/pkg/errors"

	"github.com/cloudradar-monitoring/devicelist/pkg/pnp"
	"github.com/cloudradar-monitoring/devicelist/pkg/wmiutil"
)

// DeviceLister enumerates the Plug-and-Play devices known to the host OS,
// joins them with the installed signed-driver records by device identifier
// and reports one line per device.
type DeviceLister struct {
	Config         *Config
	ConfigLocation string

	enumerator pnp.Enumerator

	version string
}

func New(cfg *Config, cfgPath string) (*DeviceLister, error) {
	enumerator, err := pnp.NewEnumerator(cfg.Backend, secToDuration(cfg.QueryTimeout))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to init the \"%s\" enumeration backend", cfg.Backend)
	}

	return NewWithEnumerator(cfg, cfgPath, enumerator), nil
}

// NewWithEnumerator wires an explicit device registry implementation.
// Tests use it to run against a fake registry instead of a live host.
func NewWithEnumerator(cfg *Config, cfgPath string, enumerator pnp.Enumerator) *DeviceLister {
	dl := &DeviceLister{
		Config:         cfg,
		ConfigLocation: cfgPath,
		enumerator:     enumerator,
	}

	dl.configureLogger()

	return dl
}

func (dl *DeviceLister) SetVersion(version string) {
	dl.version = version
}

// TestConnection verifies the configured backend can reach the OS device
// registry without producing a full listing.
func (dl *DeviceLister) TestConnection() error {
	switch dl.Config.Backend {
	case pnp.BackendWMI, pnp.BackendSetupAPI:
		return wmiutil.CheckConnection()
	default:
		ctx, cancel := context.WithTimeout(context.Background(), secToDuration(dl.Config.QueryTimeout))
		defer cancel()

		_, err := dl.enumerator.ListDevices(ctx)
		return err
	}
}
