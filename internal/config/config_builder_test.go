package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_EmptyBuilderAppliesDefaults verifies that building with no
// sources still yields working policy defaults.
func TestBuild_EmptyBuilderAppliesDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Second, cfg.Remote.RequestTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 5, cfg.Sync.MaxAttempts)
	assert.Equal(t, 30*time.Second, cfg.Sync.BackoffBase)
	assert.Equal(t, 15*time.Minute, cfg.Sync.BackoffMax)
	assert.Equal(t, 24*time.Hour, cfg.Sync.StuckAge)
	assert.Equal(t, 5*time.Minute, cfg.Sync.InFlightTimeout)
	assert.Equal(t, 15*time.Minute, cfg.Sync.FreshnessWindow)
	assert.Equal(t, 50, cfg.Sync.PendingHighWater)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergePrecedence verifies that earlier sources win: a field
// already set by the first config is not overwritten by later ones.
func TestBuild_MergePrecedence(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{FarmID: "farm-from-env"}},
		&StructuredConfig{
			App:    App{FarmID: "farm-from-flags", AuthToken: "token-from-flags"},
			Remote: Remote{BaseURL: "https://api.example.farm"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "farm-from-env", cfg.App.FarmID)
	assert.Equal(t, "token-from-flags", cfg.App.AuthToken)
	assert.Equal(t, "https://api.example.farm", cfg.Remote.BaseURL)
}

func TestBuild_ExplicitValuesSurviveDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Sync: Sync{MaxAttempts: 3, BackoffBase: time.Minute},
	})

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Sync.MaxAttempts)
	assert.Equal(t, time.Minute, cfg.Sync.BackoffBase)
	// Untouched knobs still default.
	assert.Equal(t, 15*time.Minute, cfg.Sync.BackoffMax)
}

func TestBuild_RejectsNegativePolicy(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Sync: Sync{MaxAttempts: -1},
	})

	_, err := b.build()
	require.ErrorIs(t, err, ErrInvalidSyncConfigs)
}

func TestWithJSON_MergesFileValues(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"farm_id": "farm-json"},
		"remote": map[string]any{
			"base_url":        "https://api.example.farm",
			"request_timeout": "20s",
		},
		"sync": map[string]any{
			"backoff_base": "45s",
		},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)

	assert.Equal(t, "farm-json", cfg.App.FarmID)
	assert.Equal(t, "https://api.example.farm", cfg.Remote.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.Remote.RequestTimeout)
	assert.Equal(t, 45*time.Second, cfg.Sync.BackoffBase)
}

func TestWithJSON_MissingFileIsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	_, err := b.withJSON().build()
	require.Error(t, err)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	cfg, err := newConfigBuilder().withJSON().build()
	require.NoError(t, err)
	require.NotNil(t, cfg)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("APP_FARM_ID", "farm-env")
	t.Setenv("REMOTE_BASE_URL", "https://env.example.farm")
	t.Setenv("SYNC_MAX_ATTEMPTS", "7")
	t.Setenv("SYNC_BACKOFF_BASE", "1m")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "farm-env", cfg.App.FarmID)
	assert.Equal(t, "https://env.example.farm", cfg.Remote.BaseURL)
	assert.Equal(t, 7, cfg.Sync.MaxAttempts)
	assert.Equal(t, time.Minute, cfg.Sync.BackoffBase)
}

func TestAgentConfigValidate(t *testing.T) {
	valid := func() *AgentConfig {
		return &AgentConfig{
			App:     AgentApp{FarmID: "farm-1"},
			Remote:  AgentRemote{BaseURL: "https://api.example.farm", RequestTimeout: 15 * time.Second},
			Storage: AgentStorage{DB: AgentDB{DSN: "herdsync.db"}},
			Workers: AgentWorkers{SyncInterval: 5 * time.Minute},
		}
	}

	require.NoError(t, valid().validate())

	missingDSN := valid()
	missingDSN.Storage.DB.DSN = ""
	assert.ErrorIs(t, missingDSN.validate(), ErrInvalidStorageConfigs)

	missingRemote := valid()
	missingRemote.Remote.BaseURL = ""
	assert.ErrorIs(t, missingRemote.validate(), ErrInvalidRemoteConfigs)

	missingFarm := valid()
	missingFarm.App.FarmID = ""
	assert.ErrorIs(t, missingFarm.validate(), ErrInvalidAppConfigs)

	missingInterval := valid()
	missingInterval.Workers.SyncInterval = 0
	assert.ErrorIs(t, missingInterval.validate(), ErrInvalidWorkerConfigs)
}
