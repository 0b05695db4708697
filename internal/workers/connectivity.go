package workers

import (
	"context"
	"sync/atomic"
)

// ConnectivityWatcher tracks the device's network reachability from a stream
// of events and reports the latest state. An offline-to-online transition
// invokes the notify callback so queued mutations drain as soon as the
// network returns.
type ConnectivityWatcher struct {
	ctx    context.Context
	events <-chan bool
	notify func()
	online atomic.Bool
}

// NewConnectivityWatcher creates a watcher over events, where each value is
// the new reachability state. The initial state is offline until the first
// event arrives.
func NewConnectivityWatcher(ctx context.Context, events <-chan bool, notify func()) *ConnectivityWatcher {
	return &ConnectivityWatcher{ctx: ctx, events: events, notify: notify}
}

// Online reports the most recently observed reachability state.
func (w *ConnectivityWatcher) Online() bool {
	return w.online.Load()
}

// Run implements Worker. It consumes events until the context is cancelled
// or the event channel is closed.
func (w *ConnectivityWatcher) Run() {
	go func() {
		for {
			select {
			case <-w.ctx.Done():
				return
			case online, ok := <-w.events:
				if !ok {
					return
				}
				wasOnline := w.online.Swap(online)
				if online && !wasOnline {
					w.notify()
				}
			}
		}
	}()
}
