package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_FullConfig(t *testing.T) {
	t.Setenv("APP_DATA_DIR", "/tmp/library-data")
	t.Setenv("APP_DEFAULT_THEME", "dark")
	t.Setenv("STORAGE_LOCAL_STATE_FILE", "/tmp/library-data/state.json")
	t.Setenv("STORAGE_REMOTE_DRIVER", "pgx")
	t.Setenv("STORAGE_REMOTE_DATABASE_URI", "postgres://localhost:5432/library")
	t.Setenv("STORAGE_REMOTE_REQUEST_TIMEOUT", "7s")
	t.Setenv("STORAGE_REMOTE_BREAKER_COOLDOWN", "45s")
	t.Setenv("STORAGE_REMOTE_BREAKER_TRIP", "5")
	t.Setenv("WORKERS_REFRESH_INTERVAL", "10m")

	cfg := &Config{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/tmp/library-data", cfg.App.DataDir)
	assert.Equal(t, "dark", cfg.App.DefaultTheme)
	assert.Equal(t, "/tmp/library-data/state.json", cfg.Storage.Local.StateFile)
	assert.Equal(t, "pgx", cfg.Storage.Remote.Driver)
	assert.Equal(t, "postgres://localhost:5432/library", cfg.Storage.Remote.DSN)
	assert.Equal(t, 7*time.Second, cfg.Storage.Remote.RequestTimeout)
	assert.Equal(t, 45*time.Second, cfg.Storage.Remote.BreakerCooldown)
	assert.Equal(t, uint32(5), cfg.Storage.Remote.BreakerTrip)
	assert.Equal(t, 10*time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseEnv_Empty(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.Storage.Remote.Driver)
	assert.Zero(t, cfg.Workers.RefreshInterval)
}

func TestParseEnv_BadDuration(t *testing.T) {
	t.Setenv("STORAGE_REMOTE_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &Config{}
	err := parseEnv(cfg)
	require.Error(t, err)
}
