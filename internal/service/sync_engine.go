package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/avolkhin/herdsync/internal/adapter"
	"github.com/avolkhin/herdsync/internal/config"
	"github.com/avolkhin/herdsync/internal/logger"
	"github.com/avolkhin/herdsync/internal/store"
	"github.com/avolkhin/herdsync/models"
)

type syncEngine struct {
	queue  store.QueueRepository
	cache  CacheService
	remote adapter.RemoteService
	cfg    config.AgentSync
	bus    *TriggerBus
	logger *logger.Logger

	draining atomic.Bool
	now      func() time.Time
}

// NewSyncEngine creates the drain engine. The engine is idle until Run is
// started or Drain is called directly.
func NewSyncEngine(
	queue store.QueueRepository,
	cache CacheService,
	remote adapter.RemoteService,
	cfg config.AgentSync,
	bus *TriggerBus,
	log *logger.Logger,
) SyncEngine {
	return &syncEngine{
		queue:  queue,
		cache:  cache,
		remote: remote,
		cfg:    cfg,
		bus:    bus,
		logger: log,
		now:    time.Now,
	}
}

// Run implements SyncEngine. It consumes the trigger bus until ctx is
// cancelled. Drain failures are logged and do not stop the loop: the next
// trigger simply retries.
func (e *syncEngine) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case source := <-e.bus.C():
			e.logger.Debug().
				Str("trigger", string(source)).
				Msg("drain triggered")
			if err := e.Drain(ctx); err != nil {
				e.logger.Warn().Err(err).
					Str("trigger", string(source)).
					Msg("drain pass failed")
			}
		}
	}
}

// Drain implements SyncEngine. At most one pass is active at a time; a
// re-entrant call is a no-op, not queued. Items are processed strictly in
// created_at order within each farm:
//
//   - success: reconcile the cache, mark completed;
//   - transient failure (network, timeout, 5xx): mark failed and freeze
//     the rest of that farm's items for this pass, so a later item can
//     never commit ahead of an earlier one;
//   - permanent failure (validation, conflict): mark failed permanently,
//     roll back the optimistic record, and continue; a malformed item
//     must not block unrelated work.
//
// Completed items are purged at the end of the pass.
func (e *syncEngine) Drain(ctx context.Context) error {
	if !e.draining.CompareAndSwap(false, true) {
		return nil
	}
	defer e.draining.Store(false)

	// Recover items left in-flight by a crash or app suspension. The
	// remote deduplicates on the item id, so re-attempting is safe.
	staleCutoff := e.now().Add(-e.cfg.InFlightTimeout)
	if err := e.queue.RequeueStaleInFlight(ctx, staleCutoff); err != nil {
		return fmt.Errorf("requeue stale in-flight items: %w", err)
	}

	items, err := e.queue.ListPending(ctx)
	if err != nil {
		return fmt.Errorf("list pending items: %w", err)
	}
	if len(items) == 0 {
		return nil
	}

	halted := make(map[string]bool)
	for _, item := range items {
		if halted[item.FarmID] {
			continue
		}
		// Items at the retry cap are permanently failed: they surface as
		// stuck in diagnostics and wait for a manual reset, but do not
		// block the rest of the queue.
		if item.RetryCount >= e.cfg.MaxAttempts {
			continue
		}
		if e.now().Before(item.NextAttemptAt(e.cfg.BackoffBase, e.cfg.BackoffMax)) {
			// Still backing off. Later items of the same farm must wait
			// too, or they would commit out of order.
			halted[item.FarmID] = true
			continue
		}

		if err := e.queue.MarkInFlight(ctx, item.ID, e.now()); err != nil {
			return fmt.Errorf("mark item in-flight: %w", err)
		}

		result, submitErr := submitItem(ctx, e.remote, item)
		switch {
		case submitErr == nil:
			if err := e.complete(ctx, item, result); err != nil {
				return err
			}
		case isPermanentFailure(submitErr):
			if err := e.failPermanent(ctx, item, submitErr); err != nil {
				return err
			}
		default:
			if err := e.fail(ctx, item, submitErr); err != nil {
				return err
			}
			halted[item.FarmID] = true
			e.logger.Info().
				Str("id", item.ID).
				Str("farm_id", item.FarmID).
				Err(submitErr).
				Msg("transient failure, halting farm queue for this pass")
		}
	}

	if err := e.queue.PurgeCompleted(ctx); err != nil {
		return fmt.Errorf("purge completed items: %w", err)
	}

	return nil
}

func (e *syncEngine) complete(ctx context.Context, item models.QueueItem, result models.RemoteResult) error {
	record := result.Record
	if record.ServerID == "" {
		record.ServerID = result.ServerID
	}
	record.OptimisticID = item.OptimisticID

	entityType := models.EntityTypeFor(item.Type)
	if err := e.cache.Reconcile(ctx, item.FarmID, entityType, item.OptimisticID, record); err != nil {
		return fmt.Errorf("reconcile cache for item %s: %w", item.ID, err)
	}
	if err := e.queue.MarkCompleted(ctx, item.ID); err != nil {
		return fmt.Errorf("mark item completed: %w", err)
	}

	e.logger.Debug().
		Str("id", item.ID).
		Str("server_id", record.ServerID).
		Msg("queue item applied")
	return nil
}

func (e *syncEngine) fail(ctx context.Context, item models.QueueItem, cause error) error {
	if err := e.queue.MarkFailed(ctx, item.ID, cause.Error(), e.now()); err != nil {
		return fmt.Errorf("mark item failed: %w", err)
	}
	return nil
}

func (e *syncEngine) failPermanent(ctx context.Context, item models.QueueItem, cause error) error {
	if err := e.queue.MarkFailedPermanent(ctx, item.ID, cause.Error(), e.now(), e.cfg.MaxAttempts); err != nil {
		return fmt.Errorf("mark item permanently failed: %w", err)
	}

	entityType := models.EntityTypeFor(item.Type)
	if err := e.cache.Rollback(ctx, item.FarmID, entityType, item.OptimisticID); err != nil {
		return fmt.Errorf("roll back optimistic record for item %s: %w", item.ID, err)
	}

	e.logger.Warn().
		Str("id", item.ID).
		Str("type", string(item.Type)).
		Err(cause).
		Msg("queue item rejected permanently, optimistic record rolled back")
	return nil
}
