package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-farm active farm identifier
//	-d database file path (SQLite)
//	-remote remote data service base URL
//	-request-timeout remote request timeout (e.g., "15s")
//	-sync-interval periodic drain interval (e.g., "5m")
//	-max-attempts retry cap per queue item
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var farmID string
	var databaseDSN string
	var remoteBaseURL string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var maxAttempts int
	var jsonConfigPath string

	flag.StringVar(&farmID, "farm", "", "Active farm identifier")
	flag.StringVar(&databaseDSN, "d", "", "Database file path")
	flag.StringVar(&remoteBaseURL, "remote", "", "Remote data service base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 15s)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Periodic drain interval (e.g., 5m)")
	flag.IntVar(&maxAttempts, "max-attempts", 0, "Retry cap per queue item")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			FarmID: farmID,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Remote: Remote{
			BaseURL:        remoteBaseURL,
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			MaxAttempts: maxAttempts,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
