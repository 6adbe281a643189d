package configs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp(t.TempDir(), "test_config_*.yml")
	require.NoError(t, err)
	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())
	return tmpfile.Name()
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	path := writeTempConfig(t, `log:
  level: debug
input:
  path: /data/measurements.txt
  mode: read
  compression: none
aggregation:
  workers: 8
  page_align: false
  max_key_bytes: 64
output:
  dir: ./out
metrics:
  textfile_path: ./out/aggregator.prom
`)

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/data/measurements.txt", cfg.Input.Path)
	assert.Equal(t, "read", cfg.Input.Mode)
	assert.Equal(t, "none", cfg.Input.Compression)
	assert.Equal(t, 8, cfg.Aggregation.Workers)
	assert.False(t, cfg.Aggregation.PageAlign)
	assert.Equal(t, 64, cfg.Aggregation.MaxKeyBytes)
	assert.Equal(t, "./out", cfg.Output.Dir)
	assert.Equal(t, "./out/aggregator.prom", cfg.Metrics.TextfilePath)
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "./measurements.txt", cfg.Input.Path)
	assert.Equal(t, "mmap", cfg.Input.Mode)
	assert.Equal(t, "auto", cfg.Input.Compression)
	assert.Equal(t, 0, cfg.Aggregation.Workers)
	assert.True(t, cfg.Aggregation.PageAlign)
	assert.Equal(t, 100, cfg.Aggregation.MaxKeyBytes)
	assert.Empty(t, cfg.Output.Dir)
	assert.False(t, cfg.Profile.Enabled)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := writeTempConfig(t, `aggregation:
  workers: 8
`)

	flags := NewFlagSet("aggregator")
	require.NoError(t, flags.Parse([]string{"-t", "3", "--log-level", "warn", "weather.txt"}))

	cfg, err := LoadConfig(path, flags)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Aggregation.Workers)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "weather.txt", cfg.Input.Path)
}

func TestLoadConfig_NumThreadsAlias(t *testing.T) {
	flags := NewFlagSet("aggregator")
	require.NoError(t, flags.Parse([]string{"--num-threads", "5"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Aggregation.Workers)
}

func TestLoadConfig_UnsetFlagsKeepDefaults(t *testing.T) {
	flags := NewFlagSet("aggregator")
	require.NoError(t, flags.Parse([]string{}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "mmap", cfg.Input.Mode)
	assert.Equal(t, "./measurements.txt", cfg.Input.Path)
}

func TestLoadConfig_EnvironmentOverride(t *testing.T) {
	t.Setenv("AGGREGATOR_AGGREGATION_WORKERS", "12")
	t.Setenv("AGGREGATOR_INPUT_MODE", "read")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Aggregation.Workers)
	assert.Equal(t, "read", cfg.Input.Mode)
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	path := writeTempConfig(t, `log:
  level: invalid
`)

	cfg, err := LoadConfig(path, nil)
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "log.level")
}

func TestLoadConfig_InvalidInputMode(t *testing.T) {
	path := writeTempConfig(t, `input:
  mode: stream
`)

	cfg, err := LoadConfig(path, nil)
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "input.mode (oneof=mmap read)")
}

func TestLoadConfig_NegativeWorkers(t *testing.T) {
	path := writeTempConfig(t, `aggregation:
  workers: -1
`)

	cfg, err := LoadConfig(path, nil)
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "aggregation.workers (min=0)")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/config.yml", nil)
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
