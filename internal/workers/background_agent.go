package workers

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrAgentUnsupported is returned by Register on platforms without a
// background-execution hook.
var ErrAgentUnsupported = errors.New("background agent is not supported on this platform")

type unsupportedAgent struct{}

// NewUnsupportedAgent returns a BackgroundAgent stub for platforms without a
// background-execution hook. It always reports itself unregistered, which
// surfaces as a degraded finding in sync diagnostics.
func NewUnsupportedAgent() BackgroundAgent {
	return &unsupportedAgent{}
}

func (a *unsupportedAgent) Register(context.Context) error {
	return ErrAgentUnsupported
}

func (a *unsupportedAgent) Registered(context.Context) (bool, error) {
	return false, nil
}

func (a *unsupportedAgent) Wake() {}

// wakeAgent is a BackgroundAgent backed by an in-process wake callback. It
// is used where the application itself hosts the sync loop, so registration
// always succeeds.
type wakeAgent struct {
	wake       func()
	registered atomic.Bool
}

// NewWakeAgent returns a BackgroundAgent that invokes wake on each Wake call
// once Register has been called.
func NewWakeAgent(wake func()) BackgroundAgent {
	return &wakeAgent{wake: wake}
}

func (a *wakeAgent) Register(context.Context) error {
	a.registered.Store(true)
	return nil
}

func (a *wakeAgent) Registered(context.Context) (bool, error) {
	return a.registered.Load(), nil
}

func (a *wakeAgent) Wake() {
	if a.registered.Load() {
		a.wake()
	}
}
