package devicelist

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/troian/toml"

	"github.com/cloudradar-monitoring/devicelist/pkg/pnp"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, 60.0, cfg.Interval)
	assert.Equal(t, 10.0, cfg.QueryTimeout)
}

func TestNewConfigEnvOverrides(t *testing.T) {
	envBackend := pnp.BackendGHW
	envFormat := FormatJSON

	os.Setenv("DEVICELIST_BACKEND", envBackend)
	os.Setenv("DEVICELIST_FORMAT", envFormat)
	defer os.Unsetenv("DEVICELIST_BACKEND")
	defer os.Unsetenv("DEVICELIST_FORMAT")

	cfg := NewConfig()

	assert.Equal(t, envBackend, cfg.Backend, "Backend should be set from env")
	assert.Equal(t, envFormat, cfg.Format, "Format should be set from env")
}

func TestTryUpdateConfigFromFile(t *testing.T) {
	config := Config{
		Interval:     1.5,
		Backend:      pnp.BackendWMI,
		Format:       FormatText,
		QueryTimeout: 5,
	}

	const sampleConfig = `
interval = 30.0
backend = "ghw"
format = "json"
query_timeout = 2.5
`

	tmpFile, err := ioutil.TempFile("", "")
	assert.Nil(t, err)
	defer os.Remove(tmpFile.Name())

	err = ioutil.WriteFile(tmpFile.Name(), []byte(sampleConfig), 0755)
	assert.Nil(t, err)

	err = TryUpdateConfigFromFile(&config, tmpFile.Name())
	assert.Nil(t, err)

	assert.Equal(t, 30.0, config.Interval)
	assert.Equal(t, pnp.BackendGHW, config.Backend)
	assert.Equal(t, FormatJSON, config.Format)
	assert.Equal(t, 2.5, config.QueryTimeout)
}

func TestGenerateDefaultConfigFile(t *testing.T) {
	cfg := NewConfig()
	cfg.LogLevel = LogLevelDebug

	// Create a temp file to get a file path we can use for config
	// generation. But delete it so we can actually write our config file
	// under the path.
	tmpFile, err := ioutil.TempFile("", "")
	assert.Nil(t, err)
	configFilePath := tmpFile.Name()
	err = os.Remove(tmpFile.Name())
	assert.Nil(t, err)

	err = GenerateDefaultConfigFile(cfg, configFilePath)
	assert.Nil(t, err)
	defer os.Remove(configFilePath)

	loadedCfg := &Config{}
	_, err = toml.DecodeFile(configFilePath, loadedCfg)
	assert.Nil(t, err)

	if !assert.ObjectsAreEqual(*cfg, *loadedCfg) {
		t.Errorf("expected %+v, got %+v", *cfg, *loadedCfg)
	}
}

func TestHandleAllConfigSetup(t *testing.T) {
	t.Run("config-file-does-exist", func(t *testing.T) {
		const sampleConfig = `
interval = 120.0
backend = "ghw"
format = "text"
query_timeout = 15.0
`

		tmpFile, err := ioutil.TempFile("", "")
		assert.Nil(t, err)
		defer os.Remove(tmpFile.Name())

		err = ioutil.WriteFile(tmpFile.Name(), []byte(sampleConfig), 0755)
		assert.Nil(t, err)

		config, err := HandleAllConfigSetup(tmpFile.Name())
		assert.Nil(t, err)

		assert.Equal(t, 120.0, config.Interval)
		assert.Equal(t, pnp.BackendGHW, config.Backend)
		assert.Equal(t, FormatText, config.Format)
		assert.Equal(t, 15.0, config.QueryTimeout)
	})

	t.Run("config-file-does-not-exist", func(t *testing.T) {
		tmpFile, err := ioutil.TempFile("", "")
		assert.Nil(t, err)
		configFilePath := tmpFile.Name()
		err = os.Remove(tmpFile.Name())
		assert.Nil(t, err)

		_, err = HandleAllConfigSetup(configFilePath)
		assert.Nil(t, err)
		defer os.Remove(configFilePath)

		_, err = os.Stat(configFilePath)
		assert.Nil(t, err)

		cfg := NewConfig()
		loadedCfg := &Config{}
		_, err = toml.DecodeFile(configFilePath, loadedCfg)
		assert.Nil(t, err)

		if !assert.ObjectsAreEqual(*cfg, *loadedCfg) {
			t.Errorf("expected %+v, got %+v", *cfg, *loadedCfg)
		}
	})

	t.Run("invalid-format-specified", func(t *testing.T) {
		const sampleConfig = `
format = "xml"
`

		tmpFile, err := ioutil.TempFile("", "")
		assert.Nil(t, err)
		defer os.Remove(tmpFile.Name())

		err = ioutil.WriteFile(tmpFile.Name(), []byte(sampleConfig), 0755)
		assert.Nil(t, err)

		_, err = HandleAllConfigSetup(tmpFile.Name())
		assert.Error(t, err)
	})

	t.Run("invalid-backend-specified", func(t *testing.T) {
		const sampleConfig = `
backend = "registry"
`

		tmpFile, err := ioutil.TempFile("", "")
		assert.Nil(t, err)
		defer os.Remove(tmpFile.Name())

		err = ioutil.WriteFile(tmpFile.Name(), []byte(sampleConfig), 0755)
		assert.Nil(t, err)

		_, err = HandleAllConfigSetup(tmpFile.Name())
		assert.Error(t, err)
	})

	t.Run("invalid-query-timeout-specified", func(t *testing.T) {
		const sampleConfig = `
query_timeout = 0.0
`

		tmpFile, err := ioutil.TempFile("", "")
		assert.Nil(t, err)
		defer os.Remove(tmpFile.Name())

		err = ioutil.WriteFile(tmpFile.Name(), []byte(sampleConfig), 0755)
		assert.Nil(t, err)

		_, err = HandleAllConfigSetup(tmpFile.Name())
		assert.Error(t, err)
	})
}
