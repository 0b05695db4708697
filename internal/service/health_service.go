// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Volkhin

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avolkhin/herdsync/internal/config"
	"github.com/avolkhin/herdsync/internal/logger"
	"github.com/avolkhin/herdsync/internal/store"
	"github.com/avolkhin/herdsync/internal/workers"
	"github.com/avolkhin/herdsync/models"
)

type healthService struct {
	queue   store.QueueRepository
	cache   store.CacheRepository
	pinger  StoragePinger
	agent   workers.BackgroundAgent
	cfg     config.AgentSync
	farmID  string
	logger  *logger.Logger
	now     func() time.Time
}

// NewHealthService creates the read-only diagnostics surface over the sync
// subsystem. It never mutates state; the repair service acts on its findings.
func NewHealthService(
	queue store.QueueRepository,
	cache store.CacheRepository,
	pinger StoragePinger,
	agent workers.BackgroundAgent,
	cfg config.AgentSync,
	farmID string,
	log *logger.Logger,
) HealthService {
	return &healthService{
		queue:  queue,
		cache:  cache,
		pinger: pinger,
		agent:  agent,
		cfg:    cfg,
		farmID: farmID,
		logger: log,
		now:    time.Now,
	}
}

// GetSyncHealth implements HealthService. Each probe is independent: a failed
// storage check still yields agent and cache sections, so the caller always
// gets a full picture.
func (s *healthService) GetSyncHealth(ctx context.Context) models.SyncHealthStatus {
	status := models.SyncHealthStatus{
		CheckedAt: s.now(),
	}

	status.Storage = s.probeStorage(ctx)
	status.Agent = s.probeAgent(ctx)
	status.Queue = s.probeQueue(ctx)
	status.Cache = s.probeCache(ctx)

	status.Overall = s.overall(status)
	return status
}

// DiagnoseSyncIssues implements HealthService. The result is a human-readable
// issue list suitable for a support screen; an empty slice means no findings.
func (s *healthService) DiagnoseSyncIssues(ctx context.Context) []models.SyncDiagnostic {
	status := s.GetSyncHealth(ctx)

	var diags []models.SyncDiagnostic
	if !status.Storage.Available {
		diags = append(diags, models.SyncDiagnostic{
			Issue: "local storage is unavailable: " + status.Storage.Error,
		})
	}
	if !status.Agent.Registered {
		diags = append(diags, models.SyncDiagnostic{
			Issue: "background sync is not registered with the platform",
		})
	}
	if status.Queue.HasStuckItems {
		diags = append(diags, models.SyncDiagnostic{
			Issue: fmt.Sprintf("queue has %d stuck items that exhausted their retries", status.Queue.StuckCount),
		})
	}
	if status.Queue.PendingCount > s.cfg.PendingHighWater {
		diags = append(diags, models.SyncDiagnostic{
			Issue: fmt.Sprintf("queue backlog is high: %d pending mutations", status.Queue.PendingCount),
		})
	}
	if !status.Cache.HasData {
		diags = append(diags, models.SyncDiagnostic{
			Issue: "no cached data is available for offline use",
		})
	}
	return diags
}

func (s *healthService) probeStorage(ctx context.Context) models.StorageHealth {
	if err := s.pinger.Ping(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("storage health probe failed")
		return models.StorageHealth{Available: false, Error: err.Error()}
	}
	return models.StorageHealth{Available: true}
}

func (s *healthService) probeAgent(ctx context.Context) models.BackgroundAgentHealth {
	registered, err := s.agent.Registered(ctx)
	if err != nil {
		return models.BackgroundAgentHealth{Registered: false, Error: err.Error()}
	}
	return models.BackgroundAgentHealth{Registered: registered}
}

func (s *healthService) probeQueue(ctx context.Context) models.QueueHealth {
	health := models.QueueHealth{}

	counts, err := s.queue.CountByStatus(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("queue count probe failed")
		health.Error = err.Error()
		return health
	}
	health.PendingCount = counts[models.StatusPending] + counts[models.StatusFailed]
	health.InFlightCount = counts[models.StatusInFlight]

	stuckCutoff := s.now().Add(-s.cfg.StuckAge)
	stuck, err := s.queue.FindStuck(ctx, s.cfg.MaxAttempts, stuckCutoff)
	if err != nil {
		s.logger.Warn().Err(err).Msg("stuck item probe failed")
		health.Error = err.Error()
		return health
	}
	health.StuckCount = len(stuck)
	health.HasStuckItems = len(stuck) > 0
	return health
}

func (s *healthService) probeCache(ctx context.Context) models.CacheHealth {
	hasData, err := s.cache.HasEntries(ctx, s.farmID)
	if err != nil {
		return models.CacheHealth{HasData: false, Error: err.Error()}
	}
	return models.CacheHealth{HasData: hasData}
}

// overall folds the section probes into one level. Storage loss is fatal
// for an offline-first app; the queue degrades on stuck items or a backlog
// above the high-water mark. An empty cache or an unregistered agent is a
// diagnostic finding, not a degraded verdict: a fresh install with nothing
// queued is healthy.
func (s *healthService) overall(status models.SyncHealthStatus) models.HealthLevel {
	if !status.Storage.Available {
		return models.HealthUnhealthy
	}
	if status.Queue.HasStuckItems ||
		status.Queue.PendingCount > s.cfg.PendingHighWater {
		return models.HealthDegraded
	}
	return models.HealthHealthy
}
