package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/avolkhin/herdsync/internal/logger"
	"github.com/avolkhin/herdsync/internal/mock"
	"github.com/avolkhin/herdsync/internal/workers"
	"github.com/avolkhin/herdsync/models"
)

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping(context.Context) error { return s.err }

func newTestHealthSvc(t *testing.T, ctrl *gomock.Controller, pinger *stubPinger, agent workers.BackgroundAgent) (
	*healthService,
	*mock.MockQueueRepository,
	*mock.MockCacheRepository,
) {
	t.Helper()
	mockQueue := mock.NewMockQueueRepository(ctrl)
	mockCache := mock.NewMockCacheRepository(ctrl)

	svc := NewHealthService(mockQueue, mockCache, pinger, agent, testSyncConfig(), "farm-1", logger.Nop()).(*healthService)
	svc.now = func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) }

	return svc, mockQueue, mockCache
}

func registeredAgent(t *testing.T) workers.BackgroundAgent {
	t.Helper()
	agent := workers.NewWakeAgent(func() {})
	require.NoError(t, agent.Register(context.Background()))
	return agent
}

func TestHealthService_GetSyncHealth_Healthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockQueue, mockCache := newTestHealthSvc(t, ctrl, &stubPinger{}, registeredAgent(t))
	ctx := context.Background()

	mockQueue.EXPECT().CountByStatus(ctx).Return(map[models.QueueStatus]int{
		models.StatusPending: 2,
	}, nil)
	mockQueue.EXPECT().FindStuck(ctx, 5, gomock.Any()).Return(nil, nil)
	mockCache.EXPECT().HasEntries(ctx, "farm-1").Return(true, nil)

	status := svc.GetSyncHealth(ctx)

	assert.Equal(t, models.HealthHealthy, status.Overall)
	assert.True(t, status.Storage.Available)
	assert.True(t, status.Agent.Registered)
	assert.Equal(t, 2, status.Queue.PendingCount)
	assert.False(t, status.Queue.HasStuckItems)
	assert.True(t, status.Cache.HasData)
}

func TestHealthService_GetSyncHealth_HealthyOnFreshInstall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockQueue, mockCache := newTestHealthSvc(t, ctrl, &stubPinger{}, registeredAgent(t))
	ctx := context.Background()

	// Nothing queued, nothing cached yet. The empty cache is reported as a
	// finding but must not pull the verdict below healthy.
	mockQueue.EXPECT().CountByStatus(ctx).Return(map[models.QueueStatus]int{}, nil).Times(2)
	mockQueue.EXPECT().FindStuck(ctx, 5, gomock.Any()).Return(nil, nil).Times(2)
	mockCache.EXPECT().HasEntries(ctx, "farm-1").Return(false, nil).Times(2)

	status := svc.GetSyncHealth(ctx)

	assert.Equal(t, models.HealthHealthy, status.Overall)
	assert.Equal(t, 0, status.Queue.PendingCount)
	assert.False(t, status.Cache.HasData)

	diags := svc.DiagnoseSyncIssues(ctx)
	require.Len(t, diags, 1)
	assert.Equal(t, "no cached data is available for offline use", diags[0].Issue)
}

func TestHealthService_GetSyncHealth_UnhealthyWhenStorageDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pinger := &stubPinger{err: errors.New("database is locked")}
	svc, mockQueue, mockCache := newTestHealthSvc(t, ctrl, pinger, registeredAgent(t))
	ctx := context.Background()

	// Other probes still run so the snapshot is complete.
	mockQueue.EXPECT().CountByStatus(ctx).Return(nil, errors.New("database is locked"))
	mockCache.EXPECT().HasEntries(ctx, "farm-1").Return(false, errors.New("database is locked"))

	status := svc.GetSyncHealth(ctx)

	assert.Equal(t, models.HealthUnhealthy, status.Overall)
	assert.False(t, status.Storage.Available)
	assert.Contains(t, status.Storage.Error, "database is locked")
}

func TestHealthService_GetSyncHealth_DegradedByStuckItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockQueue, mockCache := newTestHealthSvc(t, ctrl, &stubPinger{}, registeredAgent(t))
	ctx := context.Background()

	stuck := []models.QueueItem{{ID: "q1", RetryCount: 5, Status: models.StatusFailed}}

	mockQueue.EXPECT().CountByStatus(ctx).Return(map[models.QueueStatus]int{
		models.StatusFailed: 1,
	}, nil)
	mockQueue.EXPECT().FindStuck(ctx, 5, gomock.Any()).Return(stuck, nil)
	mockCache.EXPECT().HasEntries(ctx, "farm-1").Return(true, nil)

	status := svc.GetSyncHealth(ctx)

	assert.Equal(t, models.HealthDegraded, status.Overall)
	assert.True(t, status.Queue.HasStuckItems)
	assert.Equal(t, 1, status.Queue.StuckCount)
}

func TestHealthService_GetSyncHealth_DegradedByBacklog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockQueue, mockCache := newTestHealthSvc(t, ctrl, &stubPinger{}, registeredAgent(t))
	ctx := context.Background()

	mockQueue.EXPECT().CountByStatus(ctx).Return(map[models.QueueStatus]int{
		models.StatusPending: 80,
	}, nil)
	mockQueue.EXPECT().FindStuck(ctx, 5, gomock.Any()).Return(nil, nil)
	mockCache.EXPECT().HasEntries(ctx, "farm-1").Return(true, nil)

	status := svc.GetSyncHealth(ctx)

	assert.Equal(t, models.HealthDegraded, status.Overall)
	assert.Equal(t, 80, status.Queue.PendingCount)
}

func TestHealthService_DiagnoseSyncIssues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Unregistered agent, stuck items, no cached data: three findings.
	svc, mockQueue, mockCache := newTestHealthSvc(t, ctrl, &stubPinger{}, workers.NewUnsupportedAgent())
	ctx := context.Background()

	stuck := []models.QueueItem{
		{ID: "q1", RetryCount: 5, Status: models.StatusFailed},
		{ID: "q2", RetryCount: 5, Status: models.StatusFailed},
	}

	mockQueue.EXPECT().CountByStatus(ctx).Return(map[models.QueueStatus]int{
		models.StatusFailed: 2,
	}, nil)
	mockQueue.EXPECT().FindStuck(ctx, 5, gomock.Any()).Return(stuck, nil)
	mockCache.EXPECT().HasEntries(ctx, "farm-1").Return(false, nil)

	diags := svc.DiagnoseSyncIssues(ctx)

	require.Len(t, diags, 3)
	issues := make([]string, 0, len(diags))
	for _, d := range diags {
		issues = append(issues, d.Issue)
	}
	assert.Contains(t, issues, "background sync is not registered with the platform")
	assert.Contains(t, issues, "queue has 2 stuck items that exhausted their retries")
	assert.Contains(t, issues, "no cached data is available for offline use")
}

func TestHealthService_DiagnoseSyncIssues_NoneWhenHealthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockQueue, mockCache := newTestHealthSvc(t, ctrl, &stubPinger{}, registeredAgent(t))
	ctx := context.Background()

	mockQueue.EXPECT().CountByStatus(ctx).Return(map[models.QueueStatus]int{}, nil)
	mockQueue.EXPECT().FindStuck(ctx, 5, gomock.Any()).Return(nil, nil)
	mockCache.EXPECT().HasEntries(ctx, "farm-1").Return(true, nil)

	assert.Empty(t, svc.DiagnoseSyncIssues(ctx))
}
