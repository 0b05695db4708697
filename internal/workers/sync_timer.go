package workers

import (
	"context"
	"sync"
	"time"
)

type syncTimer struct {
	ctx      context.Context
	interval time.Duration
	notify   func()

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncTimer creates a worker that calls notify every interval. If interval
// is zero or negative it defaults to 5 minutes. The worker is idle until Run
// is called and exits when ctx is cancelled or Stop is called.
func NewSyncTimer(ctx context.Context, interval time.Duration, notify func()) *syncTimer {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &syncTimer{ctx: ctx, interval: interval, notify: notify}
}

// Run implements Worker. It stops any previously running timer goroutine
// before launching a new one.
func (w *syncTimer) Run() {
	w.Stop()

	w.mu.Lock()
	timerCtx, cancel := context.WithCancel(w.ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-timerCtx.Done():
				return
			case <-t.C:
				w.notify()
			}
		}
	}()
}

// Stop cancels the timer goroutine and blocks until it has fully exited.
// Safe to call when the timer is not running (no-op in that case).
func (w *syncTimer) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
