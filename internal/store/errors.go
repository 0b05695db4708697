package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// failure conditions. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrStorageUnavailable is returned when the persistent store backing
	// the queue and cache cannot be reached. It blocks enqueue and surfaces
	// as an unhealthy overall sync status.
	ErrStorageUnavailable = errors.New("local storage unavailable")

	// ErrQueueItemNotFound is returned when a status transition targets a
	// queue item id that does not exist.
	ErrQueueItemNotFound = errors.New("queue item not found")

	// ErrInvalidTransition is returned when a status transition is applied
	// to an item that is not in an eligible state (for example, marking an
	// already in-flight item in-flight again).
	ErrInvalidTransition = errors.New("invalid queue item status transition")
)
