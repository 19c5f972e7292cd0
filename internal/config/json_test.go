package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {"data_dir": "/data", "default_theme": "dark"},
		"storage": {
			"local": {"state_file": "/data/state.json"},
			"remote": {
				"driver": "pgx",
				"dsn": "postgres://localhost/library",
				"request_timeout": "4s",
				"breaker_cooldown": "20s",
				"breaker_trip": 2
			}
		},
		"workers": {"refresh_interval": "90s"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "/data", cfg.App.DataDir)
	assert.Equal(t, "dark", cfg.App.DefaultTheme)
	assert.Equal(t, "/data/state.json", cfg.Storage.Local.StateFile)
	assert.Equal(t, "pgx", cfg.Storage.Remote.Driver)
	assert.Equal(t, "postgres://localhost/library", cfg.Storage.Remote.DSN)
	assert.Equal(t, 4*time.Second, cfg.Storage.Remote.RequestTimeout)
	assert.Equal(t, 20*time.Second, cfg.Storage.Remote.BreakerCooldown)
	assert.Equal(t, uint32(2), cfg.Storage.Remote.BreakerTrip)
	assert.Equal(t, 90*time.Second, cfg.Workers.RefreshInterval)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// Durations may also be given as nanosecond numbers.
	path := writeTempJSON(t, `{"workers": {"refresh_interval": 60000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{"app": `)

	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestValidate_RemoteDrivers(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr error
	}{
		{
			name:   "local only",
			mutate: func(cfg *Config) {},
		},
		{
			name: "pgx with dsn",
			mutate: func(cfg *Config) {
				cfg.Storage.Remote.Driver = DriverPostgres
				cfg.Storage.Remote.DSN = "postgres://localhost/library"
			},
		},
		{
			name: "pgx without dsn",
			mutate: func(cfg *Config) {
				cfg.Storage.Remote.Driver = DriverPostgres
			},
			wantErr: ErrInvalidRemoteConfigs,
		},
		{
			name: "http without address",
			mutate: func(cfg *Config) {
				cfg.Storage.Remote.Driver = DriverHTTP
			},
			wantErr: ErrInvalidRemoteConfigs,
		},
		{
			name: "unknown driver",
			mutate: func(cfg *Config) {
				cfg.Storage.Remote.Driver = "oracle"
			},
			wantErr: ErrUnknownRemoteDriver,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.NotEmpty(t, cfg.App.DataDir)
	assert.Equal(t, "light", cfg.App.DefaultTheme)
	assert.Equal(t, filepath.Join(cfg.App.DataDir, "library.json"), cfg.Storage.Local.StateFile)
	assert.Equal(t, 5*time.Second, cfg.Storage.Remote.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.Storage.Remote.BreakerCooldown)
	assert.Equal(t, uint32(3), cfg.Storage.Remote.BreakerTrip)
	assert.Equal(t, 5*time.Minute, cfg.Workers.RefreshInterval)
}
