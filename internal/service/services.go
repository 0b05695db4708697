package service

import (
	"github.com/avolkhin/herdsync/internal/adapter"
	"github.com/avolkhin/herdsync/internal/config"
	"github.com/avolkhin/herdsync/internal/logger"
	"github.com/avolkhin/herdsync/internal/store"
	"github.com/avolkhin/herdsync/internal/workers"
)

// SyncContext bundles the sync subsystem the application works through.
type SyncContext struct {
	Cache     CacheService
	Engine    SyncEngine
	Mutations MutationService
	Health    HealthService
	Repair    RepairService
	Triggers  *TriggerBus
}

// NewSyncContext wires the services over shared storage and remote
// adapters. The trigger bus is passed in because the background workers
// publishing to it are constructed before the services.
func NewSyncContext(
	storages *store.Storages,
	remote adapter.RemoteService,
	online OnlineChecker,
	agent workers.BackgroundAgent,
	cfg *config.AgentConfig,
	bus *TriggerBus,
	log *logger.Logger,
) *SyncContext {
	cacheSvc := NewCacheService(storages.Cache, remote, cfg.Sync.FreshnessWindow)
	engine := NewSyncEngine(storages.Queue, cacheSvc, remote, cfg.Sync, bus, log)
	mutationSvc := NewMutationService(storages.Queue, cacheSvc, remote, online, cfg.App.FarmID, log)
	healthSvc := NewHealthService(storages.Queue, storages.Cache, storages, agent, cfg.Sync, cfg.App.FarmID, log)
	repairSvc := NewRepairService(storages.Queue, engine, agent, log)

	return &SyncContext{
		Cache:     cacheSvc,
		Engine:    engine,
		Mutations: mutationSvc,
		Health:    healthSvc,
		Repair:    repairSvc,
		Triggers:  bus,
	}
}
