package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `
[server]
http_port = 9090
read_timeout = 5
write_timeout = 5
idle_timeout = 30
shutdown_timeout = 10

[parking]
total_slots = 25

[logs]
file = "app.log"
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "parking"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 25, cfg.Parking.TotalSlots)
	assert.Equal(t, "app.log", cfg.Logs.File)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "parking", cfg.Metrics.ServiceName)
}

func TestLoad_DefaultsApplied(t *testing.T) {
	// Частичный конфиг: незаданные секции берутся из значений по умолчанию
	path := writeConfigFile(t, `
[parking]
total_slots = 10
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Parking.TotalSlots)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_InvalidTotalSlots(t *testing.T) {
	path := writeConfigFile(t, `
[parking]
total_slots = 0
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "total_slots")
}

func TestLoad_InvalidPort(t *testing.T) {
	path := writeConfigFile(t, `
[server]
http_port = 70000
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http_port")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
