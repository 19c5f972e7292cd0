package config

import (
	"os"
	"path/filepath"
	"time"
)

// Known remote driver names accepted by [Config.validate].
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
	DriverHTTP     = "http"
)

// applyDefaults fills in every field a user is allowed to omit. Called after
// merging all sources and before validation, so validation only has to deal
// with genuinely invalid values.
func (cfg *Config) applyDefaults() {
	if cfg.App.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.App.DataDir = filepath.Join(home, ".library")
	}
	if cfg.App.DefaultTheme == "" {
		cfg.App.DefaultTheme = "light"
	}
	if cfg.Storage.Local.StateFile == "" {
		cfg.Storage.Local.StateFile = filepath.Join(cfg.App.DataDir, "library.json")
	}
	if cfg.Storage.Remote.RequestTimeout == 0 {
		cfg.Storage.Remote.RequestTimeout = 5 * time.Second
	}
	if cfg.Storage.Remote.BreakerCooldown == 0 {
		cfg.Storage.Remote.BreakerCooldown = 30 * time.Second
	}
	if cfg.Storage.Remote.BreakerTrip == 0 {
		cfg.Storage.Remote.BreakerTrip = 3
	}
	if cfg.Workers.RefreshInterval == 0 {
		cfg.Workers.RefreshInterval = 5 * time.Minute
	}
}

// validate checks that the final merged [Config] satisfies all application
// invariants before it is used at startup.
//
// The remote store is optional: an empty driver means the application runs
// purely against the local mirror. When a driver is set, the settings it
// needs must be present.
func (cfg *Config) validate() error {
	switch cfg.Storage.Remote.Driver {
	case "":
		// Local-only mode.
	case DriverPostgres, DriverSQLite:
		if cfg.Storage.Remote.DSN == "" {
			return ErrInvalidRemoteConfigs
		}
	case DriverHTTP:
		if cfg.Storage.Remote.HTTPAddress == "" {
			return ErrInvalidRemoteConfigs
		}
	default:
		return ErrUnknownRemoteDriver
	}

	if cfg.App.DefaultTheme != "light" && cfg.App.DefaultTheme != "dark" {
		return ErrInvalidAppConfigs
	}

	return nil
}
