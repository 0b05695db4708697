package models

import (
	"encoding/json"
	"time"
)

// QueueStatus is the lifecycle state of a queued mutation intent.
type QueueStatus string

const (
	// StatusPending marks an intent that has never been attempted, or has
	// been manually reset for retry.
	StatusPending QueueStatus = "pending"

	// StatusInFlight marks an intent currently being applied to the remote
	// service. An in-flight item older than the in-flight timeout is
	// treated as failed and re-attempted on the next drain.
	StatusInFlight QueueStatus = "in-flight"

	// StatusFailed marks an intent whose last attempt did not succeed.
	// Failed items stay eligible for draining until the retry cap.
	StatusFailed QueueStatus = "failed"

	// StatusCompleted marks an intent confirmed by the remote service.
	// Completed items are purged at the end of a drain pass.
	StatusCompleted QueueStatus = "completed"
)

// MutationType identifies the kind of mutation an intent carries and
// determines both the payload shape and the remote operation to invoke.
type MutationType string

const (
	MutationWeightRecord    MutationType = "weight-record"
	MutationFeedingRecord   MutationType = "feeding-record"
	MutationMilkYieldRecord MutationType = "milk-yield-record"
	MutationExitRecord      MutationType = "exit-record"
)

// QueueItem is a pending mutation intent, captured durably before it is
// known whether it can reach the remote service.
//
// ID is client-generated, immutable, and doubles as the idempotency token
// passed to the remote service. OptimisticID correlates the intent with the
// provisional record placed in the read cache and is never reused.
type QueueItem struct {
	ID            string       `json:"id"`
	FarmID        string       `json:"farm_id"`
	Type          MutationType `json:"type"`
	Payload       json.RawMessage `json:"payload"`
	OptimisticID  string       `json:"optimistic_id"`
	Status        QueueStatus  `json:"status"`
	RetryCount    int          `json:"retry_count"`
	LastAttemptAt *time.Time   `json:"last_attempt_at,omitempty"`
	LastError     string       `json:"last_error,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

// NextAttemptAt returns the earliest moment the item may be re-attempted,
// derived from the persisted retry count so the schedule survives process
// restarts. Delay doubles per retry, starting at base, capped at max.
func (q QueueItem) NextAttemptAt(base, max time.Duration) time.Time {
	if q.LastAttemptAt == nil || q.RetryCount == 0 {
		return q.CreatedAt
	}

	delay := base
	for i := 1; i < q.RetryCount && delay < max; i++ {
		delay *= 2
	}
	if delay > max {
		delay = max
	}

	return q.LastAttemptAt.Add(delay)
}

// Stuck reports whether an unresolved item has exhausted its retries or
// was created at or before cutoff. This is the single definition of
// "stuck"; diagnostics filter queue rows through it.
func (q QueueItem) Stuck(maxAttempts int, cutoff time.Time) bool {
	if q.Status != StatusFailed && q.Status != StatusPending {
		return false
	}
	if q.Status == StatusFailed && q.RetryCount >= maxAttempts {
		return true
	}
	return !q.CreatedAt.After(cutoff)
}
