package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/avolkhin/herdsync/internal/mock"
	"github.com/avolkhin/herdsync/models"
)

func newTestCacheSvc(t *testing.T, ctrl *gomock.Controller) (*cacheService, *mock.MockCacheRepository, *mock.MockRemoteService) {
	t.Helper()
	mockRepo := mock.NewMockCacheRepository(ctrl)
	mockRemote := mock.NewMockRemoteService(ctrl)

	svc := NewCacheService(mockRepo, mockRemote, 15*time.Minute).(*cacheService)
	svc.now = func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) }

	return svc, mockRepo, mockRemote
}

func TestCacheService_Get_AbsentEntryIsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestCacheSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetEntry(ctx, "farm-1", models.EntityWeightRecords).
		Return(models.CacheEntry{}, false, nil)

	entry, err := svc.Get(ctx, "farm-1", models.EntityWeightRecords)
	require.NoError(t, err)
	assert.Empty(t, entry.Records)
	assert.True(t, entry.LastUpdated.IsZero())
}

func TestCacheService_ApplyOptimistic_ExactlyOnePerOptimisticID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestCacheSvc(t, ctrl)
	ctx := context.Background()

	existing := models.CacheEntry{Records: []models.Record{
		{ServerID: "srv-1", EntityType: models.EntityWeightRecords},
		{OptimisticID: "opt-1", EntityType: models.EntityWeightRecords},
	}}

	mockRepo.EXPECT().GetEntry(ctx, "farm-1", models.EntityWeightRecords).
		Return(existing, true, nil)

	var saved models.CacheEntry
	mockRepo.EXPECT().PutEntry(ctx, "farm-1", models.EntityWeightRecords, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, _ models.EntityType, entry models.CacheEntry) error {
			saved = entry
			return nil
		})

	// Re-applying with the same optimistic id replaces the old provisional
	// record instead of adding a second one.
	err := svc.ApplyOptimistic(ctx, "farm-1", models.EntityWeightRecords, models.Record{
		OptimisticID: "opt-1",
		EntityType:   models.EntityWeightRecords,
	})
	require.NoError(t, err)

	require.Len(t, saved.Records, 2)
	count := 0
	for _, rec := range saved.Records {
		if rec.OptimisticID == "opt-1" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestCacheService_ApplyOptimistic_RequiresOptimisticID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestCacheSvc(t, ctrl)

	err := svc.ApplyOptimistic(context.Background(), "farm-1", models.EntityWeightRecords, models.Record{})
	require.ErrorIs(t, err, ErrValidation)
}

func TestCacheService_Reconcile_PreservesListPosition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestCacheSvc(t, ctrl)
	ctx := context.Background()

	existing := models.CacheEntry{Records: []models.Record{
		{ServerID: "srv-1"},
		{OptimisticID: "opt-2"},
		{ServerID: "srv-3"},
	}}

	mockRepo.EXPECT().GetEntry(ctx, "farm-1", models.EntityMilkYields).
		Return(existing, true, nil)

	var saved models.CacheEntry
	mockRepo.EXPECT().PutEntry(ctx, "farm-1", models.EntityMilkYields, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, _ models.EntityType, entry models.CacheEntry) error {
			saved = entry
			return nil
		})

	err := svc.Reconcile(ctx, "farm-1", models.EntityMilkYields, "opt-2", models.Record{ServerID: "srv-2"})
	require.NoError(t, err)

	require.Len(t, saved.Records, 3)
	assert.Equal(t, "srv-2", saved.Records[1].ServerID)
	assert.Equal(t, "opt-2", saved.Records[1].OptimisticID)
}

func TestCacheService_Reconcile_AppendsWhenOptimisticRecordGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestCacheSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetEntry(ctx, "farm-1", models.EntityAnimalExits).
		Return(models.CacheEntry{}, false, nil)

	var saved models.CacheEntry
	mockRepo.EXPECT().PutEntry(ctx, "farm-1", models.EntityAnimalExits, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, _ models.EntityType, entry models.CacheEntry) error {
			saved = entry
			return nil
		})

	// The cache was cleared between enqueue and drain; the confirmed
	// record must still land.
	err := svc.Reconcile(ctx, "farm-1", models.EntityAnimalExits, "opt-1", models.Record{ServerID: "srv-1"})
	require.NoError(t, err)

	require.Len(t, saved.Records, 1)
	assert.Equal(t, "srv-1", saved.Records[0].ServerID)
}

func TestCacheService_Rollback_RemovesOptimisticRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestCacheSvc(t, ctrl)
	ctx := context.Background()

	existing := models.CacheEntry{Records: []models.Record{
		{ServerID: "srv-1"},
		{OptimisticID: "opt-1"},
	}}

	mockRepo.EXPECT().GetEntry(ctx, "farm-1", models.EntityWeightRecords).
		Return(existing, true, nil)

	var saved models.CacheEntry
	mockRepo.EXPECT().PutEntry(ctx, "farm-1", models.EntityWeightRecords, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, _ models.EntityType, entry models.CacheEntry) error {
			saved = entry
			return nil
		})

	require.NoError(t, svc.Rollback(ctx, "farm-1", models.EntityWeightRecords, "opt-1"))

	require.Len(t, saved.Records, 1)
	assert.Equal(t, "srv-1", saved.Records[0].ServerID)
}

func TestCacheService_Rollback_NoEntryIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestCacheSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetEntry(ctx, "farm-1", models.EntityWeightRecords).
		Return(models.CacheEntry{}, false, nil)

	require.NoError(t, svc.Rollback(ctx, "farm-1", models.EntityWeightRecords, "opt-1"))
}

func TestCacheService_Refresh_ReplacesCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockRemote := newTestCacheSvc(t, ctrl)
	ctx := context.Background()

	fetched := []models.Record{
		{ServerID: "srv-1", EntityType: models.EntityAnimals},
		{ServerID: "srv-2", EntityType: models.EntityAnimals},
	}

	mockRemote.EXPECT().FetchRecords(ctx, "farm-1", models.EntityAnimals).Return(fetched, nil)
	mockRepo.EXPECT().PutEntry(ctx, "farm-1", models.EntityAnimals, gomock.Any()).Return(nil)

	entry, err := svc.Refresh(ctx, "farm-1", models.EntityAnimals)
	require.NoError(t, err)

	assert.Len(t, entry.Records, 2)
	assert.Equal(t, svc.now(), entry.LastUpdated)
}

func TestCacheService_Stats_CountsOptimisticRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestCacheSvc(t, ctrl)
	ctx := context.Background()

	entries := map[models.EntityType]models.CacheEntry{
		models.EntityWeightRecords: {
			Records: []models.Record{
				{ServerID: "srv-1"},
				{OptimisticID: "opt-1"},
			},
			LastUpdated: svc.now().Add(-time.Minute),
		},
		models.EntityMilkYields: {
			Records:     []models.Record{{ServerID: "srv-2"}},
			LastUpdated: svc.now().Add(-time.Hour),
		},
	}

	mockRepo.EXPECT().ListEntries(ctx, "farm-1").Return(entries, nil)

	stats, err := svc.Stats(ctx, "farm-1")
	require.NoError(t, err)

	require.Len(t, stats.Collections, 2)
	// Sorted by entity type: milk-yields before weight-records.
	assert.Equal(t, models.EntityMilkYields, stats.Collections[0].EntityType)
	assert.False(t, stats.Collections[0].Fresh)
	assert.Equal(t, models.EntityWeightRecords, stats.Collections[1].EntityType)
	assert.Equal(t, 1, stats.Collections[1].OptimisticCount)
	assert.True(t, stats.Collections[1].Fresh)
}
