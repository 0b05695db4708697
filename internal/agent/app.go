// Package agent assembles the sync subsystem into a runnable application:
// storage, remote adapter, services and background workers, wired so that
// connectivity changes, the periodic timer and background wakes all funnel
// into the same trigger bus.
package agent

import (
	"context"
	"fmt"

	"github.com/avolkhin/herdsync/internal/adapter"
	"github.com/avolkhin/herdsync/internal/config"
	"github.com/avolkhin/herdsync/internal/logger"
	"github.com/avolkhin/herdsync/internal/service"
	"github.com/avolkhin/herdsync/internal/store"
	"github.com/avolkhin/herdsync/internal/workers"
	"github.com/avolkhin/herdsync/models"
)

type App struct {
	cfg      *config.AgentConfig
	storages *store.Storages
	services *service.SyncContext
	online   *workers.ConnectivityWatcher
	agent    workers.BackgroundAgent
	workers  *workers.Workers
	logger   *logger.Logger

	cancel context.CancelFunc
}

// NewApp wires the full agent. connectivity is the host's reachability
// event stream; each value is the new online state.
func NewApp(cfg *config.AgentConfig, connectivity <-chan bool, log *logger.Logger) (*App, error) {
	ctx, cancel := context.WithCancel(context.Background())

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("create storages: %w", err)
	}

	remote, err := adapter.NewHTTPRemoteService(cfg.Remote, cfg.App, log)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("create remote adapter: %w", err)
	}

	bus := service.NewTriggerBus()
	backgroundAgent := workers.NewWakeAgent(func() {
		bus.Notify(service.TriggerBackground)
	})

	watcher := workers.NewConnectivityWatcher(ctx, connectivity, func() {
		bus.Notify(service.TriggerConnectivity)
	})
	timer := workers.NewSyncTimer(ctx, cfg.Workers.SyncInterval, func() {
		bus.Notify(service.TriggerTimer)
	})

	services := service.NewSyncContext(storages, remote, watcher, backgroundAgent, cfg, bus, log)

	return &App{
		cfg:      cfg,
		storages: storages,
		services: services,
		online:   watcher,
		agent:    backgroundAgent,
		workers:  workers.NewWorkers(watcher, timer),
		logger:   log,
		cancel:   cancel,
	}, nil
}

// Services exposes the wired sync subsystem to the UI layer.
func (a *App) Services() *service.SyncContext {
	return a.services
}

// Run starts the background workers and the drain loop, preloads the cache,
// and blocks until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if err := a.agent.Register(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("background agent registration failed")
	}

	a.workers.Run()
	a.preloadCache(ctx)

	// Kick one pass at startup to recover anything queued before the last
	// shutdown.
	a.services.Triggers.Notify(service.TriggerManual)

	a.services.Engine.Run(ctx)
	return nil
}

// Close releases worker goroutines and the storage handle.
func (a *App) Close() error {
	a.cancel()
	return a.storages.Close()
}

// preloadCache warms the read-only collections. Failures are expected when
// the device starts offline and are only logged.
func (a *App) preloadCache(ctx context.Context) {
	for _, entityType := range []models.EntityType{models.EntityAnimals, models.EntityFeedInventory} {
		if _, err := a.services.Cache.Refresh(ctx, a.cfg.App.FarmID, entityType); err != nil {
			a.logger.Warn().
				Str("entity_type", string(entityType)).
				Err(err).
				Msg("cache preload skipped")
		}
	}
}
