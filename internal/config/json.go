package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		FarmID    string `json:"farm_id"`
		AuthToken string `json:"auth_token"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Remote struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"remote,omitempty"`

	Sync struct {
		MaxAttempts      int      `json:"max_attempts"`
		BackoffBase      Duration `json:"backoff_base"`
		BackoffMax       Duration `json:"backoff_max"`
		StuckAge         Duration `json:"stuck_age"`
		InFlightTimeout  Duration `json:"in_flight_timeout"`
		FreshnessWindow  Duration `json:"freshness_window"`
		PendingHighWater int      `json:"pending_high_water"`
	} `json:"sync,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			FarmID:    jsonCfg.App.FarmID,
			AuthToken: jsonCfg.App.AuthToken,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Remote: Remote{
			BaseURL:        jsonCfg.Remote.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
		},
		Sync: Sync{
			MaxAttempts:      jsonCfg.Sync.MaxAttempts,
			BackoffBase:      time.Duration(jsonCfg.Sync.BackoffBase),
			BackoffMax:       time.Duration(jsonCfg.Sync.BackoffMax),
			StuckAge:         time.Duration(jsonCfg.Sync.StuckAge),
			InFlightTimeout:  time.Duration(jsonCfg.Sync.InFlightTimeout),
			FreshnessWindow:  time.Duration(jsonCfg.Sync.FreshnessWindow),
			PendingHighWater: jsonCfg.Sync.PendingHighWater,
		},
		Workers: Workers{
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
		},
		JSONFilePath: "",
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
