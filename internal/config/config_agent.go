package config

import (
	"fmt"
	"time"
)

// AgentApp holds application-level settings for the sync agent.
type AgentApp struct {
	// FarmID is the identifier of the active farm.
	FarmID string
	// AuthToken is the opaque bearer token forwarded to the remote service.
	AuthToken string
}

// AgentRemote holds network settings used by the remote adapter.
type AgentRemote struct {
	// BaseURL is the remote data service endpoint.
	BaseURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// AgentDB contains local database connection settings for the agent.
type AgentDB struct {
	// DSN is the SQLite file path used by the agent.
	DSN string
}

// AgentStorage groups agent storage backend settings.
type AgentStorage struct {
	// DB holds local database settings.
	DB AgentDB
}

// AgentSync contains drain and retry policy settings.
type AgentSync struct {
	MaxAttempts      int
	BackoffBase      time.Duration
	BackoffMax       time.Duration
	StuckAge         time.Duration
	InFlightTimeout  time.Duration
	FreshnessWindow  time.Duration
	PendingHighWater int
}

// AgentWorkers contains background worker settings.
type AgentWorkers struct {
	// SyncInterval defines how often the fallback periodic drain runs.
	SyncInterval time.Duration
}

// AgentConfig is the top-level sync agent configuration assembled from
// [StructuredConfig].
type AgentConfig struct {
	// App contains application-level agent settings.
	App AgentApp
	// Remote contains remote service addresses and timeouts.
	Remote AgentRemote
	// Storage contains agent storage settings.
	Storage AgentStorage
	// Sync contains drain and retry policy settings.
	Sync AgentSync
	// Workers contains background job settings.
	Workers AgentWorkers
}

// GetAgentConfig builds and validates an agent-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the agent runtime, and validates the resulting [AgentConfig].
func GetAgentConfig() (*AgentConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	agentCfg := &AgentConfig{
		App: AgentApp{
			FarmID:    cfg.App.FarmID,
			AuthToken: cfg.App.AuthToken,
		},
		Remote: AgentRemote{
			BaseURL:        cfg.Remote.BaseURL,
			RequestTimeout: cfg.Remote.RequestTimeout,
		},
		Storage: AgentStorage{
			DB: AgentDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Sync: AgentSync{
			MaxAttempts:      cfg.Sync.MaxAttempts,
			BackoffBase:      cfg.Sync.BackoffBase,
			BackoffMax:       cfg.Sync.BackoffMax,
			StuckAge:         cfg.Sync.StuckAge,
			InFlightTimeout:  cfg.Sync.InFlightTimeout,
			FreshnessWindow:  cfg.Sync.FreshnessWindow,
			PendingHighWater: cfg.Sync.PendingHighWater,
		},
		Workers: AgentWorkers{
			SyncInterval: cfg.Workers.SyncInterval,
		},
	}

	if err := agentCfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid agent config: %w", err)
	}

	return agentCfg, nil
}
