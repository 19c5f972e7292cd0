package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type jsonConfig struct {
	App struct {
		DataDir      string `json:"data_dir"`
		DefaultTheme string `json:"default_theme"`
	} `json:"app,omitempty"`

	Storage struct {
		Local struct {
			StateFile string `json:"state_file"`
		} `json:"local,omitempty"`

		Remote struct {
			Driver          string   `json:"driver"`
			DSN             string   `json:"dsn"`
			HTTPAddress     string   `json:"http_address"`
			RequestTimeout  Duration `json:"request_timeout"`
			BreakerCooldown Duration `json:"breaker_cooldown"`
			BreakerTrip     uint32   `json:"breaker_trip"`
		} `json:"remote,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg jsonConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		App: App{
			DataDir:      jsonCfg.App.DataDir,
			DefaultTheme: jsonCfg.App.DefaultTheme,
		},
		Storage: Storage{
			Local: Local{
				StateFile: jsonCfg.Storage.Local.StateFile,
			},
			Remote: Remote{
				Driver:          jsonCfg.Storage.Remote.Driver,
				DSN:             jsonCfg.Storage.Remote.DSN,
				HTTPAddress:     jsonCfg.Storage.Remote.HTTPAddress,
				RequestTimeout:  time.Duration(jsonCfg.Storage.Remote.RequestTimeout),
				BreakerCooldown: time.Duration(jsonCfg.Storage.Remote.BreakerCooldown),
				BreakerTrip:     jsonCfg.Storage.Remote.BreakerTrip,
			},
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
