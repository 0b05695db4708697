package service

import (
	"context"

	"github.com/avolkhin/herdsync/models"
)

// CacheService is the optimistic read cache exposed to the UI layer.
// Reads never block on the network; staleness is advisory only.
type CacheService interface {
	// Get returns the cached entry for one collection, or an empty entry
	// when none exists.
	Get(ctx context.Context, farmID string, entityType models.EntityType) (models.CacheEntry, error)

	// ApplyOptimistic inserts a provisional record, visible to readers
	// before any network round trip.
	ApplyOptimistic(ctx context.Context, farmID string, entityType models.EntityType, record models.Record) error

	// Reconcile replaces the optimistic record with its server-confirmed
	// counterpart, preserving list position. If the optimistic record is
	// gone (e.g. the cache was cleared), the server record is appended.
	Reconcile(ctx context.Context, farmID string, entityType models.EntityType, optimisticID string, serverRecord models.Record) error

	// Rollback removes a provisional record that failed permanently.
	Rollback(ctx context.Context, farmID string, entityType models.EntityType, optimisticID string) error

	// Refresh performs a full read-through from the remote service,
	// replacing the collection and updating its last-updated stamp.
	Refresh(ctx context.Context, farmID string, entityType models.EntityType) (models.CacheEntry, error)

	// Stats returns counts and freshness per collection for the settings
	// UI.
	Stats(ctx context.Context, farmID string) (models.CacheStats, error)

	// ClearAll wipes every cache entry across all farms. Irreversible.
	ClearAll(ctx context.Context) error
}

// SyncEngine drains the durable queue against the remote service.
type SyncEngine interface {
	// Drain runs one full pass over eligible pending intents. A Drain
	// while another is active returns immediately as a no-op.
	Drain(ctx context.Context) error

	// Run consumes the trigger bus and drains on every trigger until ctx
	// is cancelled.
	Run(ctx context.Context)
}

// MutationService is the entry point exposed to forms and dialogs. The
// active farm is fixed at construction.
type MutationService interface {
	// EnqueueMutation validates the payload, materializes an optimistic
	// record, and either applies the mutation immediately (online) or
	// captures it durably in the queue (offline).
	EnqueueMutation(ctx context.Context, mutationType models.MutationType, payload any) (models.QueueItem, error)
}

// HealthService computes point-in-time sync diagnostics for the active
// farm. Probe failures are reported inside the snapshot rather than as
// errors, so callers always get a complete picture.
type HealthService interface {
	GetSyncHealth(ctx context.Context) models.SyncHealthStatus
	DiagnoseSyncIssues(ctx context.Context) []models.SyncDiagnostic
}

// RepairService applies corrective actions derived from diagnostics.
type RepairService interface {
	// RepairSyncState re-arms the background agent, resets failed items,
	// and triggers a drain. Best-effort: a false Success carries a
	// descriptive message rather than an error.
	RepairSyncState(ctx context.Context) models.RepairResult
}

// OnlineChecker reports the last known host connectivity state.
type OnlineChecker interface {
	Online() bool
}

// StoragePinger probes the persistent store backing the queue and cache.
type StoragePinger interface {
	Ping(ctx context.Context) error
}
