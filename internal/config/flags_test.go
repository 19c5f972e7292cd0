package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-driver", "http",
		"-remote-address", "library.example.com:8080",
		"-request-timeout", "3s",
		"-breaker-cooldown", "1m",
		"-f", "/var/lib/library/state.json",
		"-data-dir", "/var/lib/library",
		"-theme", "dark",
		"-refresh-interval", "2m",
		"-c", "/etc/library/config.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "http", cfg.Storage.Remote.Driver)
	assert.Equal(t, "library.example.com:8080", cfg.Storage.Remote.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Storage.Remote.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Storage.Remote.BreakerCooldown)
	assert.Equal(t, "/var/lib/library/state.json", cfg.Storage.Local.StateFile)
	assert.Equal(t, "/var/lib/library", cfg.App.DataDir)
	assert.Equal(t, "dark", cfg.App.DefaultTheme)
	assert.Equal(t, 2*time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, "/etc/library/config.json", cfg.JSONFilePath)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-config", "cfg.json"})
	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.Storage.Remote.Driver)
	assert.Empty(t, cfg.Storage.Local.StateFile)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-definitely-unknown"})
	require.Error(t, err)
}
