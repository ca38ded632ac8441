package devicelist

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/troian/toml"

	"github.com/cloudradar-monitoring/devicelist/pkg/pnp"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultCfgPath is set by the per-OS init in defaults_*.go
var DefaultCfgPath string

type Config struct {
	Interval float64 `toml:"interval" comment:"Re-list interval in seconds, used by the watch mode (-w)"`

	LogFile  string   `toml:"log" comment:"Log file path. Logs go to stderr when empty"`
	LogLevel LogLevel `toml:"log_level" comment:"\"debug\", \"info\" or \"error\""`

	Backend string `toml:"backend" comment:"Device enumeration backend: \"wmi\" or \"setupapi\" on Windows, \"ghw\" elsewhere"`
	Format  string `toml:"format" comment:"Output format: \"text\" or \"json\""`

	QueryTimeout float64 `toml:"query_timeout" comment:"Per-enumeration query timeout in seconds"`

	HostInfo bool `toml:"host_info" comment:"Include a host information block in json output"`
}

// NewConfig returns the defaults for this OS, with DEVICELIST_BACKEND and
// DEVICELIST_FORMAT environment overrides applied.
func NewConfig() *Config {
	cfg := &Config{
		Interval:     60,
		LogLevel:     LogLevelInfo,
		Backend:      defaultBackend(),
		Format:       FormatText,
		QueryTimeout: 10,
		HostInfo:     true,
	}

	if envBackend := os.Getenv("DEVICELIST_BACKEND"); envBackend != "" {
		cfg.Backend = envBackend
	}

	if envFormat := os.Getenv("DEVICELIST_FORMAT"); envFormat != "" {
		cfg.Format = envFormat
	}

	return cfg
}

func defaultBackend() string {
	if runtime.GOOS == "windows" {
		return pnp.BackendWMI
	}
	return pnp.BackendGHW
}

func TryUpdateConfigFromFile(cfg *Config, configFilePath string) error {
	_, err := os.Stat(configFilePath)
	if err != nil {
		return err
	}

	_, err = toml.DecodeFile(configFilePath, cfg)
	return err
}

func GenerateDefaultConfigFile(cfg *Config, configFilePath string) error {
	if _, err := os.Stat(configFilePath); err == nil {
		return fmt.Errorf("config already exists at path: %s", configFilePath)
	}

	dir := filepath.Dir(configFilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "failed to create the config dir: '%s'", dir)
	}

	f, err := os.OpenFile(configFilePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrapf(err, "failed to create the default config file: '%s'", configFilePath)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// HandleAllConfigSetup prepares the config for the run: reads the file when
// present, writes the defaults when not, then validates the result.
func HandleAllConfigSetup(configFilePath string) (*Config, error) {
	cfg := NewConfig()

	err := TryUpdateConfigFromFile(cfg, configFilePath)
	if os.IsNotExist(err) {
		if err = GenerateDefaultConfigFile(cfg, configFilePath); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) Validate() error {
	switch cfg.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid format: \"%s\". Must be \"%s\" or \"%s\"", cfg.Format, FormatText, FormatJSON)
	}

	switch cfg.Backend {
	case pnp.BackendWMI, pnp.BackendSetupAPI, pnp.BackendGHW:
	default:
		return fmt.Errorf("invalid backend: \"%s\"", cfg.Backend)
	}

	if cfg.Interval <= 0 {
		return fmt.Errorf("interval must be positive. Got: %.1f", cfg.Interval)
	}

	if cfg.QueryTimeout <= 0 {
		return fmt.Errorf("query_timeout must be positive. Got: %.1f", cfg.QueryTimeout)
	}

	if cfg.LogLevel != "" && !cfg.LogLevel.IsValid() {
		return fmt.Errorf("invalid log_level: \"%s\"", cfg.LogLevel)
	}

	return nil
}

func (cfg *Config) DumpToml() string {
	buf := new(bytes.Buffer)

	err := toml.NewEncoder(buf).Encode(cfg)
	if err != nil {
		log.Errorf("Failed to encode config to TOML: %s", err.Error())
		return ""
	}

	return buf.String()
}

func secToDuration(secs float64) time.Duration {
	return time.Duration(int64(float64(time.Second) * secs))
}
