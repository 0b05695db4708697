package store

import (
	"context"
	"fmt"

	"github.com/avolkhin/herdsync/internal/config"
	"github.com/avolkhin/herdsync/internal/logger"
)

// Storages groups the agent's repositories into a single value that can be
// passed to the service layer.
type Storages struct {
	// Queue is the durable mutation queue.
	Queue QueueRepository
	// Cache is the persisted read cache.
	Cache CacheRepository

	db *DB
}

// NewStorages initialises the storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh queue and
//     cache repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.AgentStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Queue: NewQueueRepository(db, logger),
		Cache: NewCacheRepository(db, logger),
		db:    db,
	}, nil
}

// Ping probes the underlying database. Health diagnostics use it to detect
// an unreachable store.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrStorageUnavailable
	}
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
