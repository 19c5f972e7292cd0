package config

import (
	"flag"
	"time"
)

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-driver remote driver name ("pgx", "sqlite3" or "http")
//	-d remote database DSN
//	-remote-address hosted library server address
//	-request-timeout remote request timeout (e.g., "5s")
//	-breaker-cooldown breaker open duration before re-probe (e.g., "30s")
//	-f local state file path
//	-data-dir application data directory
//	-theme default theme ("light" or "dark")
//	-refresh-interval background refresh interval (e.g., "5m")
//	-c/-config json file path with configs
//
// A dedicated FlagSet is used instead of the global flag.CommandLine so the
// parser can be exercised from tests with arbitrary argument vectors.
func parseFlags(args []string) (*Config, error) {
	fs := flag.NewFlagSet("library", flag.ContinueOnError)

	var (
		driver          string
		databaseDSN     string
		remoteAddress   string
		requestTimeout  time.Duration
		breakerCooldown time.Duration
		stateFile       string
		dataDir         string
		theme           string
		refreshInterval time.Duration
		jsonConfigPath  string
	)

	fs.StringVar(&driver, "driver", "", "Remote driver: pgx, sqlite3 or http")
	fs.StringVar(&databaseDSN, "d", "", "Remote database DSN")
	fs.StringVar(&remoteAddress, "remote-address", "", "Hosted library server address")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 5s)")
	fs.DurationVar(&breakerCooldown, "breaker-cooldown", 0, "Breaker cooldown before re-probe (e.g., 30s)")
	fs.StringVar(&stateFile, "f", "", "Local state file path")
	fs.StringVar(&dataDir, "data-dir", "", "Application data directory")
	fs.StringVar(&theme, "theme", "", "Default theme: light or dark")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh interval (e.g., 5m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &Config{
		App: App{
			DataDir:      dataDir,
			DefaultTheme: theme,
		},
		Storage: Storage{
			Local: Local{
				StateFile: stateFile,
			},
			Remote: Remote{
				Driver:          driver,
				DSN:             databaseDSN,
				HTTPAddress:     remoteAddress,
				RequestTimeout:  requestTimeout,
				BreakerCooldown: breakerCooldown,
			},
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
