package config

import "errors"

// Validation errors returned by [Config.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidRemoteConfigs indicates incomplete remote store settings
	// (for example, a SQL driver without a DSN, or the http driver without
	// an address).
	ErrInvalidRemoteConfigs = errors.New("invalid remote storage configuration")
	// ErrUnknownRemoteDriver indicates a remote driver name that is not one
	// of "pgx", "sqlite3" or "http".
	ErrUnknownRemoteDriver = errors.New("unknown remote driver")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown default theme).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
