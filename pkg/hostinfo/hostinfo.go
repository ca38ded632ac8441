package hostinfo

import (
	"context"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/host"
	log "github.com/sirupsen/logrus"
)

const hostInfoTimeout = 10 * time.Second

// Info is the host block attached to JSON reports.
type Info struct {
	Hostname        string `json:"hostname"`
	OS              string `json:"os"`
	Platform        string `json:"platform"`
	PlatformFamily  string `json:"platform_family"`
	PlatformVersion string `json:"platform_version"`
	Arch            string `json:"arch"`
}

// Collect gathers host metadata. The block is informational only, so failures
// degrade to a partial result with a logged warning instead of propagating.
func Collect() *Info {
	res := &Info{Arch: runtime.GOARCH}

	ctx, cancel := context.WithTimeout(context.Background(), hostInfoTimeout)
	defer cancel()

	info, err := host.InfoWithContext(ctx)
	if err != nil {
		log.Warnf("[SYSTEM] Failed to read host info: %s", err.Error())
		return res
	}

	res.Hostname = info.Hostname
	res.OS = info.OS
	res.Platform = info.Platform
	res.PlatformFamily = info.PlatformFamily
	res.PlatformVersion = info.PlatformVersion

	return res
}
