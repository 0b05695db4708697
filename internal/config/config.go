// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Volkhin

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// herdsync application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the active farm.
	App App `envPrefix:"APP_"`

	// Storage holds the embedded database settings backing the queue and
	// the read cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Remote holds address and timeout settings for the remote data
	// service.
	Remote Remote `envPrefix:"REMOTE_"`

	// Sync holds drain, retry, and freshness policy settings.
	Sync Sync `envPrefix:"SYNC_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config
	// flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// FarmID is the identifier of the active farm. Queue items and cache
	// entries are keyed by it.
	// Env: APP_FARM_ID
	FarmID string `env:"FARM_ID"`

	// AuthToken is the opaque bearer token forwarded to the remote data
	// service. Issuance and refresh are owned by the host application.
	// Env: APP_AUTH_TOKEN
	AuthToken string `env:"AUTH_TOKEN"`
}

// Storage holds settings for the embedded SQLite database.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the embedded database.
type DB struct {
	// DSN is the SQLite file path (e.g. "herdsync.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Remote holds network settings for the remote data service client.
type Remote struct {
	// BaseURL is the remote data service endpoint
	// (e.g. "https://api.example.farm").
	// Env: REMOTE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the per-call timeout for remote requests. Expiry
	// of an individual call counts as a transient failure.
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds drain and retry policy settings.
type Sync struct {
	// MaxAttempts caps remote retries per queue item; an item that fails
	// this many times is reported as stuck.
	// Env: SYNC_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`

	// BackoffBase is the delay after the first failed attempt; the delay
	// doubles per retry.
	// Env: SYNC_BACKOFF_BASE
	BackoffBase time.Duration `env:"BACKOFF_BASE"`

	// BackoffMax caps the per-item retry delay.
	// Env: SYNC_BACKOFF_MAX
	BackoffMax time.Duration `env:"BACKOFF_MAX"`

	// StuckAge is the age beyond which an unresolved item is reported as
	// stuck regardless of its retry count.
	// Env: SYNC_STUCK_AGE
	StuckAge time.Duration `env:"STUCK_AGE"`

	// InFlightTimeout is how long an item may stay in-flight before the
	// next drain treats it as failed and re-attempts it.
	// Env: SYNC_IN_FLIGHT_TIMEOUT
	InFlightTimeout time.Duration `env:"IN_FLIGHT_TIMEOUT"`

	// FreshnessWindow bounds cache freshness: an entry refreshed within
	// the window is reported fresh.
	// Env: SYNC_FRESHNESS_WINDOW
	FreshnessWindow time.Duration `env:"FRESHNESS_WINDOW"`

	// PendingHighWater is the pending-count threshold above which sync
	// health degrades.
	// Env: SYNC_PENDING_HIGH_WATER
	PendingHighWater int `env:"PENDING_HIGH_WATER"`
}

// Workers holds background worker settings.
type Workers struct {
	// SyncInterval is the coarse periodic drain interval used as a
	// fallback when the host background agent is unavailable.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from environment variables, command-line flags, and an
// optional JSON file.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
