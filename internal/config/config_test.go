package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) }) //nolint:errcheck
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chTempDir(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "https://maps.googleapis.com/maps/api", cfg.Maps.BaseURL)
	assert.InDelta(t, 10.0, cfg.Maps.QPS, 0.001)
	assert.Empty(t, cfg.Maps.Key)
	assert.Equal(t, "https://api.zippopotam.us", cfg.Postal.BaseURL)
	assert.Equal(t, 50000, cfg.Search.Radius)
	assert.Equal(t, 200, cfg.Search.MaxAPICalls)
	assert.Equal(t, 1, cfg.Search.Workers)
	assert.Equal(t, "store", cfg.Search.PlaceType)
	assert.Equal(t, 30, cfg.Cache.TTLMinutes)
	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Equal(t, int64(16*1024*1024), cfg.Upload.MaxBytes)
	assert.InDelta(t, 0.032, cfg.Pricing.PlacesSearch, 0.0001)
	assert.Equal(t, 200, cfg.Pricing.FreeTier)
}

func TestLoadFromYAML(t *testing.T) {
	dir := chTempDir(t)

	yaml := `
server:
  port: 9090
log:
  level: debug
  format: console
search:
  radius: 100000
  workers: 4
data:
  dir: /var/lib/storescout
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 100000, cfg.Search.Radius)
	assert.Equal(t, 4, cfg.Search.Workers)
	assert.Equal(t, "/var/lib/storescout", cfg.Data.Dir)
	// Defaults still apply for unset values
	assert.Equal(t, 200, cfg.Search.MaxAPICalls)
	assert.Equal(t, 30, cfg.Cache.TTLMinutes)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := chTempDir(t)

	yaml := `
server:
  port: 9090
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))
	t.Setenv("STORESCOUT_SERVER_PORT", "7070")
	t.Setenv("STORESCOUT_MAPS_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "test-key", cfg.Maps.Key)
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	require.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))
	assert.Error(t, InitLogger(LogConfig{Level: "not-a-level"}))
}
