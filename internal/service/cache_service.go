package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/avolkhin/herdsync/internal/adapter"
	"github.com/avolkhin/herdsync/internal/store"
	"github.com/avolkhin/herdsync/models"
)

type cacheService struct {
	repo            store.CacheRepository
	remote          adapter.RemoteService
	freshnessWindow time.Duration

	// mu serializes read-modify-write cycles on cache entries so the
	// one-record-per-optimistic-id invariant is enforced in one place.
	mu  sync.Mutex
	now func() time.Time
}

func NewCacheService(repo store.CacheRepository, remote adapter.RemoteService, freshnessWindow time.Duration) CacheService {
	return &cacheService{
		repo:            repo,
		remote:          remote,
		freshnessWindow: freshnessWindow,
		now:             time.Now,
	}
}

func (s *cacheService) Get(ctx context.Context, farmID string, entityType models.EntityType) (models.CacheEntry, error) {
	entry, ok, err := s.repo.GetEntry(ctx, farmID, entityType)
	if err != nil {
		return models.CacheEntry{}, fmt.Errorf("get cache entry: %w", err)
	}
	if !ok {
		return models.CacheEntry{}, nil
	}
	return entry, nil
}

func (s *cacheService) ApplyOptimistic(ctx context.Context, farmID string, entityType models.EntityType, record models.Record) error {
	if record.OptimisticID == "" {
		return fmt.Errorf("%w: optimistic id is required", ErrValidation)
	}
	record.ServerID = ""
	if record.EntityType == "" {
		record.EntityType = entityType
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, _, err := s.repo.GetEntry(ctx, farmID, entityType)
	if err != nil {
		return fmt.Errorf("load cache entry for optimistic apply: %w", err)
	}

	entry.Records = append(withoutOptimistic(entry.Records, record.OptimisticID), record)

	if err := s.repo.PutEntry(ctx, farmID, entityType, entry); err != nil {
		return fmt.Errorf("save optimistic record: %w", err)
	}
	return nil
}

func (s *cacheService) Reconcile(ctx context.Context, farmID string, entityType models.EntityType, optimisticID string, serverRecord models.Record) error {
	serverRecord.OptimisticID = optimisticID
	if serverRecord.EntityType == "" {
		serverRecord.EntityType = entityType
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, _, err := s.repo.GetEntry(ctx, farmID, entityType)
	if err != nil {
		return fmt.Errorf("load cache entry for reconcile: %w", err)
	}

	replaced := false
	records := make([]models.Record, 0, len(entry.Records))
	for _, rec := range entry.Records {
		if rec.OptimisticID != optimisticID {
			records = append(records, rec)
			continue
		}
		// Replace in place, keeping list position. Duplicates (which
		// should not exist) collapse into the single confirmed record.
		if !replaced {
			records = append(records, serverRecord)
			replaced = true
		}
	}
	if !replaced {
		records = append(records, serverRecord)
	}
	entry.Records = records

	if err := s.repo.PutEntry(ctx, farmID, entityType, entry); err != nil {
		return fmt.Errorf("save reconciled record: %w", err)
	}
	return nil
}

func (s *cacheService) Rollback(ctx context.Context, farmID string, entityType models.EntityType, optimisticID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok, err := s.repo.GetEntry(ctx, farmID, entityType)
	if err != nil {
		return fmt.Errorf("load cache entry for rollback: %w", err)
	}
	if !ok {
		return nil
	}

	entry.Records = withoutOptimistic(entry.Records, optimisticID)

	if err := s.repo.PutEntry(ctx, farmID, entityType, entry); err != nil {
		return fmt.Errorf("save cache entry after rollback: %w", err)
	}
	return nil
}

func (s *cacheService) Refresh(ctx context.Context, farmID string, entityType models.EntityType) (models.CacheEntry, error) {
	records, err := s.remote.FetchRecords(ctx, farmID, entityType)
	if err != nil {
		return models.CacheEntry{}, fmt.Errorf("fetch records for refresh: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := models.CacheEntry{
		Records:     records,
		LastUpdated: s.now(),
	}
	if err := s.repo.PutEntry(ctx, farmID, entityType, entry); err != nil {
		return models.CacheEntry{}, fmt.Errorf("save refreshed cache entry: %w", err)
	}

	return entry, nil
}

func (s *cacheService) Stats(ctx context.Context, farmID string) (models.CacheStats, error) {
	entries, err := s.repo.ListEntries(ctx, farmID)
	if err != nil {
		return models.CacheStats{}, fmt.Errorf("list cache entries for stats: %w", err)
	}

	now := s.now()
	stats := models.CacheStats{FarmID: farmID}
	for entityType, entry := range entries {
		optimistic := 0
		for _, rec := range entry.Records {
			if !rec.Confirmed() {
				optimistic++
			}
		}
		stats.Collections = append(stats.Collections, models.CacheCollectionStats{
			EntityType:      entityType,
			RecordCount:     len(entry.Records),
			OptimisticCount: optimistic,
			LastUpdated:     entry.LastUpdated,
			Fresh:           entry.IsFresh(s.freshnessWindow, now),
		})
	}

	sort.Slice(stats.Collections, func(i, j int) bool {
		return stats.Collections[i].EntityType < stats.Collections[j].EntityType
	})

	return stats, nil
}

func (s *cacheService) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.ClearAll(ctx); err != nil {
		return fmt.Errorf("clear all cache entries: %w", err)
	}
	return nil
}

func withoutOptimistic(records []models.Record, optimisticID string) []models.Record {
	filtered := make([]models.Record, 0, len(records))
	for _, rec := range records {
		if rec.OptimisticID == optimisticID {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered
}
