package devicelist

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/cloudradar-monitoring/devicelist/pkg/hostinfo"
	"github.com/cloudradar-monitoring/devicelist/pkg/pnp"
)

// DeviceReport is one device joined with its signed-driver version. The text
// output labels the version "Group" because downstream consumers parse that
// historical wording; the JSON field names the value for what it actually is.
type DeviceReport struct {
	DeviceID      string `json:"device_id"`
	Name          string `json:"name"`
	DriverVersion string `json:"driver_version"`
}

// Result is the json output envelope.
type Result struct {
	Timestamp int64          `json:"timestamp"`
	Version   string         `json:"devicelist_version,omitempty"`
	Host      *hostinfo.Info `json:"host,omitempty"`
	Devices   []DeviceReport `json:"devices"`
}

// joinDriverVersions matches every device with the first driver record
// carrying the same identifier. A device without a match keeps an empty
// version; that is a regular outcome, not an error.
func joinDriverVersions(devices []pnp.DeviceRecord, drivers []pnp.DriverRecord) []DeviceReport {
	versions := make(map[string]string, len(drivers))
	for _, driver := range drivers {
		if _, found := versions[driver.DeviceID]; found {
			log.Debugf("Multiple driver records for device %s, keeping the first one", driver.DeviceID)
			continue
		}
		versions[driver.DeviceID] = driver.Version
	}

	reports := make([]DeviceReport, 0, len(devices))
	for _, device := range devices {
		reports = append(reports, DeviceReport{
			DeviceID:      device.DeviceID,
			Name:          device.Name,
			DriverVersion: versions[device.DeviceID],
		})
	}

	return reports
}

// FormatTextLine renders the historical one-line-per-device format.
func FormatTextLine(r DeviceReport) string {
	return fmt.Sprintf("Group: %s - Device: %s (Device ID: %s)", r.DriverVersion, r.Name, r.DeviceID)
}

func (dl *DeviceLister) collectReports() ([]DeviceReport, error) {
	ctx := context.Background()

	devices, err := dl.enumerator.ListDevices(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to enumerate devices")
	}

	drivers, err := dl.enumerator.ListSignedDrivers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to enumerate signed drivers")
	}

	return joinDriverVersions(devices, drivers), nil
}

// RunOnce performs a single enumeration pass and writes the listing to
// outputFile, or to stdout when outputFile is nil. Devices are emitted in
// the order the OS reported them.
func (dl *DeviceLister) RunOnce(outputFile *os.File) error {
	reports, err := dl.collectReports()
	if err != nil {
		return err
	}

	var output io.Writer = os.Stdout
	if outputFile != nil {
		output = outputFile
	}

	return dl.writeReports(output, reports)
}

func (dl *DeviceLister) writeReports(output io.Writer, reports []DeviceReport) error {
	if dl.Config.Format == FormatJSON {
		result := &Result{
			Timestamp: time.Now().Unix(),
			Version:   dl.version,
			Devices:   reports,
		}
		if dl.Config.HostInfo {
			result.Host = hostinfo.Collect()
		}

		enc := json.NewEncoder(output)
		enc.SetIndent("", "    ")
		if err := enc.Encode(result); err != nil {
			return errors.Wrap(err, "failed to JSON encode the device report")
		}

		return nil
	}

	for _, report := range reports {
		if _, err := fmt.Fprintln(output, FormatTextLine(report)); err != nil {
			return errors.Wrap(err, "failed to write the device report")
		}
	}

	return nil
}

// Run re-lists the devices every Config.Interval seconds until interrupted.
func (dl *DeviceLister) Run(outputFile *os.File, interrupt chan struct{}) {
	defer func() {
		if err := recover(); err != nil {
			log.Errorf("Unexpected error occurred (main routine): %s", err)
			panic(err)
		}
	}()

	for {
		err := dl.RunOnce(outputFile)
		if err != nil {
			log.Error(err)
		}

		select {
		case <-interrupt:
			return
		case <-time.After(secToDuration(dl.Config.Interval)):
			continue
		}
	}
}
