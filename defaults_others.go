// +build !windows,!darwin

package devicelist

func init() {
	DefaultCfgPath = "/etc/devicelist/devicelist.conf"
}
