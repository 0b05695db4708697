package store

import (
	"context"
	"time"

	"github.com/avolkhin/herdsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// QueueRepository is the durable mutation queue. Items are persisted before
// Enqueue returns so a crash immediately afterwards cannot lose the intent.
type QueueRepository interface {
	// Enqueue persists a fully-formed item. Calling it twice with the same
	// id is a no-op on the second call.
	Enqueue(ctx context.Context, item models.QueueItem) error

	// ListPending returns all pending and failed items ordered by
	// created_at ascending. The sync engine relies on this ordering for
	// FIFO draining.
	ListPending(ctx context.Context) ([]models.QueueItem, error)

	// MarkInFlight transitions a pending or failed item to in-flight and
	// stamps the attempt time.
	MarkInFlight(ctx context.Context, id string, at time.Time) error

	// MarkCompleted transitions an item to completed.
	MarkCompleted(ctx context.Context, id string) error

	// MarkFailed transitions an item to failed, increments its retry count
	// and records the cause.
	MarkFailed(ctx context.Context, id string, cause string, at time.Time) error

	// MarkFailedPermanent is MarkFailed with the retry count pinned to at
	// least attemptCap, so the item reads as permanently failed to both
	// the drain skip logic and the stuck-item diagnostics.
	MarkFailedPermanent(ctx context.Context, id string, cause string, at time.Time, attemptCap int) error

	// PurgeCompleted removes all completed items. A no-op on an empty
	// queue.
	PurgeCompleted(ctx context.Context) error

	// ResetForRetry transitions failed items back to pending and clears
	// their retry bookkeeping. With no ids it resets every failed item.
	ResetForRetry(ctx context.Context, ids ...string) error

	// RequeueStaleInFlight returns items stuck in-flight since before
	// cutoff to pending. Used at drain start to recover from a crash or
	// suspension mid-item.
	RequeueStaleInFlight(ctx context.Context, cutoff time.Time) error

	// CountByStatus returns item counts grouped by status.
	CountByStatus(ctx context.Context) (map[models.QueueStatus]int, error)

	// FindStuck returns unresolved items that have exhausted their retry
	// budget or are older than cutoff.
	FindStuck(ctx context.Context, maxAttempts int, cutoff time.Time) ([]models.QueueItem, error)
}

// CacheRepository persists per-farm, per-entity-type cache entries. Entries
// are written as whole snapshots; record-level invariants are enforced by
// the cache service above it.
type CacheRepository interface {
	// GetEntry returns the entry and true, or a zero entry and false when
	// absent. Absence is not an error.
	GetEntry(ctx context.Context, farmID string, entityType models.EntityType) (models.CacheEntry, bool, error)

	// PutEntry inserts or replaces the entry.
	PutEntry(ctx context.Context, farmID string, entityType models.EntityType, entry models.CacheEntry) error

	// ListEntries returns every entry stored for the farm.
	ListEntries(ctx context.Context, farmID string) (map[models.EntityType]models.CacheEntry, error)

	// HasEntries reports whether any entry exists for the farm.
	HasEntries(ctx context.Context, farmID string) (bool, error)

	// ClearAll wipes every entry across all farms. Irreversible.
	ClearAll(ctx context.Context) error
}
