package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/avolkhin/herdsync/internal/logger"
	"github.com/avolkhin/herdsync/internal/mock"
	"github.com/avolkhin/herdsync/internal/workers"
)

// stubEngine is a hand-written SyncEngine for repair tests.
type stubEngine struct {
	drainErr error
	drains   int
}

func (s *stubEngine) Drain(context.Context) error {
	s.drains++
	return s.drainErr
}

func (s *stubEngine) Run(context.Context) {}

func TestRepairService_RepairSyncState_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueue := mock.NewMockQueueRepository(ctrl)
	engine := &stubEngine{}
	agent := workers.NewWakeAgent(func() {})

	svc := NewRepairService(mockQueue, engine, agent, logger.Nop())
	ctx := context.Background()

	mockQueue.EXPECT().ResetForRetry(ctx).Return(nil)

	result := svc.RepairSyncState(ctx)

	assert.True(t, result.Success)
	assert.Equal(t, 1, engine.drains)

	registered, err := agent.Registered(ctx)
	require.NoError(t, err)
	assert.True(t, registered)
}

func TestRepairService_RepairSyncState_ContinuesPastFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueue := mock.NewMockQueueRepository(ctrl)
	engine := &stubEngine{}
	agent := workers.NewUnsupportedAgent()

	svc := NewRepairService(mockQueue, engine, agent, logger.Nop())
	ctx := context.Background()

	// Agent registration fails, but the reset and drain still run.
	mockQueue.EXPECT().ResetForRetry(ctx).Return(nil)

	result := svc.RepairSyncState(ctx)

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "background agent registration")
	assert.Equal(t, 1, engine.drains)
}

func TestRepairService_RepairSyncState_AggregatesAllFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueue := mock.NewMockQueueRepository(ctrl)
	engine := &stubEngine{drainErr: errors.New("remote unreachable")}
	agent := workers.NewUnsupportedAgent()

	svc := NewRepairService(mockQueue, engine, agent, logger.Nop())
	ctx := context.Background()

	mockQueue.EXPECT().ResetForRetry(ctx).Return(errors.New("database is locked"))

	result := svc.RepairSyncState(ctx)

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "background agent registration")
	assert.Contains(t, result.Message, "queue reset")
	assert.Contains(t, result.Message, "drain")
}
