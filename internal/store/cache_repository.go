package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/avolkhin/herdsync/internal/logger"
	"github.com/avolkhin/herdsync/models"
)

const (
	getCacheEntry = `
		SELECT records, last_updated
		FROM cache_entries
		WHERE farm_id = ? AND entity_type = ?;`

	putCacheEntry = `
		INSERT INTO cache_entries (farm_id, entity_type, records, last_updated)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (farm_id, entity_type) DO UPDATE SET
			records      = excluded.records,
			last_updated = excluded.last_updated;`

	listCacheEntries = `
		SELECT entity_type, records, last_updated
		FROM cache_entries
		WHERE farm_id = ?;`

	hasCacheEntries = `
		SELECT EXISTS (
			SELECT 1 FROM cache_entries WHERE farm_id = ?
		);`

	clearAllCacheEntries = `
		DELETE FROM cache_entries;`
)

type cacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewCacheRepository(db *DB, logger *logger.Logger) CacheRepository {
	return &cacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *cacheRepository) GetEntry(ctx context.Context, farmID string, entityType models.EntityType) (models.CacheEntry, bool, error) {
	log := logger.FromContext(ctx)

	var entry models.CacheEntry
	var records string

	row := c.DB.QueryRowContext(ctx, getCacheEntry, farmID, entityType)
	err := row.Scan(&records, &entry.LastUpdated)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CacheEntry{}, false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "cacheRepository.GetEntry").
			Str("farm_id", farmID).
			Str("entity_type", string(entityType)).
			Msg("failed to scan cache entry row")
		return models.CacheEntry{}, false, fmt.Errorf("failed to scan cache entry row: %w", err)
	}

	if err := json.Unmarshal([]byte(records), &entry.Records); err != nil {
		log.Err(err).
			Str("func", "cacheRepository.GetEntry").
			Str("farm_id", farmID).
			Str("entity_type", string(entityType)).
			Msg("failed to decode cached records")
		return models.CacheEntry{}, false, fmt.Errorf("failed to decode cached records: %w", err)
	}

	return entry, true, nil
}

func (c *cacheRepository) PutEntry(ctx context.Context, farmID string, entityType models.EntityType, entry models.CacheEntry) error {
	log := logger.FromContext(ctx)

	records := entry.Records
	if records == nil {
		records = []models.Record{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode cache records: %w", err)
	}

	_, err = c.DB.ExecContext(ctx, putCacheEntry, farmID, entityType, string(payload), entry.LastUpdated)
	if err != nil {
		log.Err(err).
			Str("func", "cacheRepository.PutEntry").
			Str("farm_id", farmID).
			Str("entity_type", string(entityType)).
			Msg("failed to execute upsert for cache entry")
		return fmt.Errorf("failed to save cache entry (farm_id=%s, entity_type=%s): %w", farmID, entityType, err)
	}

	return nil
}

func (c *cacheRepository) ListEntries(ctx context.Context, farmID string) (map[models.EntityType]models.CacheEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, listCacheEntries, farmID)
	if err != nil {
		log.Err(err).
			Str("func", "cacheRepository.ListEntries").
			Str("farm_id", farmID).
			Msg("failed to execute query for cache entries")
		return nil, fmt.Errorf("failed to query cache entries: %w", err)
	}
	defer rows.Close()

	entries := make(map[models.EntityType]models.CacheEntry)
	for rows.Next() {
		var entityType models.EntityType
		var records string
		var entry models.CacheEntry

		if err := rows.Scan(&entityType, &records, &entry.LastUpdated); err != nil {
			return nil, fmt.Errorf("failed to scan cache entry row: %w", err)
		}
		if err := json.Unmarshal([]byte(records), &entry.Records); err != nil {
			return nil, fmt.Errorf("failed to decode cached records: %w", err)
		}

		entries[entityType] = entry
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cache entry rows: %w", err)
	}

	return entries, nil
}

func (c *cacheRepository) HasEntries(ctx context.Context, farmID string) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	if err := c.DB.QueryRowContext(ctx, hasCacheEntries, farmID).Scan(&exists); err != nil {
		log.Err(err).
			Str("func", "cacheRepository.HasEntries").
			Str("farm_id", farmID).
			Msg("failed to check cache entry existence")
		return false, fmt.Errorf("failed to check cache entry existence: %w", err)
	}

	return exists, nil
}

func (c *cacheRepository) ClearAll(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := c.DB.ExecContext(ctx, clearAllCacheEntries); err != nil {
		log.Err(err).
			Str("func", "cacheRepository.ClearAll").
			Msg("failed to clear cache entries")
		return fmt.Errorf("failed to clear cache entries: %w", err)
	}

	return nil
}
