// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Volkhin

package config

import "time"

// Defaults applied after merging all configuration sources. Policy knobs
// get working values so a bare `-farm X -remote URL` invocation runs.
const (
	defaultRequestTimeout   = 15 * time.Second
	defaultSyncInterval     = 5 * time.Minute
	defaultBackoffBase      = 30 * time.Second
	defaultBackoffMax       = 15 * time.Minute
	defaultStuckAge         = 24 * time.Hour
	defaultInFlightTimeout  = 5 * time.Minute
	defaultFreshnessWindow  = 15 * time.Minute
	defaultMaxAttempts      = 5
	defaultPendingHighWater = 50
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Remote.RequestTimeout == 0 {
		cfg.Remote.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Workers.SyncInterval == 0 {
		cfg.Workers.SyncInterval = defaultSyncInterval
	}
	if cfg.Sync.MaxAttempts == 0 {
		cfg.Sync.MaxAttempts = defaultMaxAttempts
	}
	if cfg.Sync.BackoffBase == 0 {
		cfg.Sync.BackoffBase = defaultBackoffBase
	}
	if cfg.Sync.BackoffMax == 0 {
		cfg.Sync.BackoffMax = defaultBackoffMax
	}
	if cfg.Sync.StuckAge == 0 {
		cfg.Sync.StuckAge = defaultStuckAge
	}
	if cfg.Sync.InFlightTimeout == 0 {
		cfg.Sync.InFlightTimeout = defaultInFlightTimeout
	}
	if cfg.Sync.FreshnessWindow == 0 {
		cfg.Sync.FreshnessWindow = defaultFreshnessWindow
	}
	if cfg.Sync.PendingHighWater == 0 {
		cfg.Sync.PendingHighWater = defaultPendingHighWater
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Sync.MaxAttempts < 0 || cfg.Sync.PendingHighWater < 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}

func (cfg *AgentConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Remote.BaseURL == "" || cfg.Remote.RequestTimeout == 0 {
		return ErrInvalidRemoteConfigs
	}

	if cfg.App.FarmID == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.SyncInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
