package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/avolkhin/herdsync/internal/logger"
	"github.com/avolkhin/herdsync/internal/store"
	"github.com/avolkhin/herdsync/internal/workers"
	"github.com/avolkhin/herdsync/models"
)

type repairService struct {
	queue  store.QueueRepository
	engine SyncEngine
	agent  workers.BackgroundAgent
	logger *logger.Logger
}

// NewRepairService creates the corrective-action surface behind the
// "fix sync" support button.
func NewRepairService(
	queue store.QueueRepository,
	engine SyncEngine,
	agent workers.BackgroundAgent,
	log *logger.Logger,
) RepairService {
	return &repairService{
		queue:  queue,
		engine: engine,
		agent:  agent,
		logger: log,
	}
}

// RepairSyncState implements RepairService. Steps run in order and are
// independent: a failed step is recorded and the next one still runs, so a
// broken background agent does not prevent a queue reset.
func (s *repairService) RepairSyncState(ctx context.Context) models.RepairResult {
	var failures []string

	if err := s.agent.Register(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("repair: background agent registration failed")
		failures = append(failures, fmt.Sprintf("background agent registration: %v", err))
	}

	if err := s.queue.ResetForRetry(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("repair: queue reset failed")
		failures = append(failures, fmt.Sprintf("queue reset: %v", err))
	}

	if err := s.engine.Drain(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("repair: drain failed")
		failures = append(failures, fmt.Sprintf("drain: %v", err))
	}

	if len(failures) > 0 {
		return models.RepairResult{
			Success: false,
			Message: "repair finished with failures: " + strings.Join(failures, "; "),
		}
	}
	return models.RepairResult{
		Success: true,
		Message: "sync state repaired: agent re-registered, stuck items reset, queue drained",
	}
}
