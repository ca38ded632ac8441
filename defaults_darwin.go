// +build darwin

package devicelist

import (
	"os"
)

func init() {
	DefaultCfgPath = os.Getenv("HOME") + "/.devicelist/devicelist.conf"
}
