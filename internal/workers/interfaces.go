// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way, plus the concrete workers
// that drive background synchronization: a periodic timer and a
// connectivity watcher.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to spawn goroutines internally and return
// promptly; lifetime is bounded by the context given at construction.
type Worker interface {
	Run()
}

// BackgroundAgent abstracts the host platform's background-execution hook.
// On platforms without one the NewUnsupportedAgent stub is used, which
// reports itself unregistered so diagnostics can surface the gap.
type BackgroundAgent interface {
	// Register arms the platform hook so Wake fires while the app is
	// backgrounded.
	Register(ctx context.Context) error
	// Registered reports whether the hook is currently armed.
	Registered(ctx context.Context) (bool, error)
	// Wake requests an immediate background sync pass.
	Wake()
}
