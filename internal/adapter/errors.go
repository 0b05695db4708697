package adapter

import "errors"

// Remote failure taxonomy. The sync engine classifies adapter errors with
// [errors.Is] to decide between retrying, halting the drain pass, and
// rolling back the optimistic record.
var (
	// ErrValidation is a non-retryable rejection: the remote service
	// considers the payload malformed. The item is failed permanently and
	// its optimistic record rolled back.
	ErrValidation = errors.New("remote rejected payload as invalid")

	// ErrConflict is a non-retryable state mismatch (for example, an exit
	// record for an animal already exited). Surfaced for manual
	// inspection rather than silently dropped.
	ErrConflict = errors.New("remote state conflict")

	// ErrTransient is a retryable failure: network error, timeout, or a
	// server-side 5xx. The item stays queued and is retried with backoff.
	ErrTransient = errors.New("transient remote failure")

	// ErrUnauthorized is returned when the bearer token is missing or
	// expired. Token refresh is owned by the host application.
	ErrUnauthorized = errors.New("remote request unauthorized")
)
