package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/avolkhin/herdsync/internal/logger"
	"github.com/avolkhin/herdsync/models"
)

type queueRepository struct {
	*DB
	logger *logger.Logger
}

func NewQueueRepository(db *DB, logger *logger.Logger) QueueRepository {
	return &queueRepository{
		DB:     db,
		logger: logger,
	}
}

func (q *queueRepository) Enqueue(ctx context.Context, item models.QueueItem) error {
	log := logger.FromContext(ctx)

	_, err := q.DB.ExecContext(ctx, enqueueItem,
		item.ID,
		item.FarmID,
		item.Type,
		string(item.Payload),
		item.OptimisticID,
		item.Status,
		item.RetryCount,
		item.LastAttemptAt,
		nullableString(item.LastError),
		item.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.Enqueue").
			Str("id", item.ID).
			Str("type", string(item.Type)).
			Msg("failed to execute insert for queue item")
		return fmt.Errorf("failed to enqueue item (id=%s): %w", item.ID, err)
	}

	return nil
}

func (q *queueRepository) ListPending(ctx context.Context) ([]models.QueueItem, error) {
	log := logger.FromContext(ctx)

	rows, err := q.DB.QueryContext(ctx, listPendingItems)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.ListPending").
			Msg("failed to execute query for pending queue items")
		return nil, fmt.Errorf("failed to query pending queue items: %w", err)
	}
	defer rows.Close()

	return scanQueueItems(rows)
}

func (q *queueRepository) MarkInFlight(ctx context.Context, id string, at time.Time) error {
	return q.transition(ctx, "MarkInFlight", id, markItemInFlight, at, id)
}

func (q *queueRepository) MarkCompleted(ctx context.Context, id string) error {
	return q.transition(ctx, "MarkCompleted", id, markItemCompleted, id)
}

func (q *queueRepository) MarkFailed(ctx context.Context, id string, cause string, at time.Time) error {
	return q.transition(ctx, "MarkFailed", id, markItemFailed, cause, at, id)
}

func (q *queueRepository) MarkFailedPermanent(ctx context.Context, id string, cause string, at time.Time, attemptCap int) error {
	return q.transition(ctx, "MarkFailedPermanent", id, markItemFailedPermanent, attemptCap, cause, at, id)
}

// transition runs a single-item status update and verifies exactly one row
// changed. Zero affected rows means either the item does not exist
// (ErrQueueItemNotFound) or it is not in an eligible state
// (ErrInvalidTransition).
func (q *queueRepository) transition(ctx context.Context, op string, id string, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := q.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository."+op).
			Str("id", id).
			Msg("failed to execute status transition")
		return fmt.Errorf("failed to %s queue item (id=%s): %w", op, id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository."+op).
			Str("id", id).
			Msg("failed to get rows affected after status transition")
		return fmt.Errorf("failed to get rows affected (id=%s): %w", id, err)
	}

	if affected == 0 {
		var count int
		if scanErr := q.DB.QueryRowContext(ctx, countItemByID, id).Scan(&count); scanErr == nil && count == 0 {
			log.Warn().
				Str("func", "queueRepository."+op).
				Str("id", id).
				Msg("status transition targeted a missing queue item")
			return fmt.Errorf("%w (id=%s)", ErrQueueItemNotFound, id)
		}
		log.Warn().
			Str("func", "queueRepository."+op).
			Str("id", id).
			Msg("no rows affected during status transition")
		return fmt.Errorf("%w (id=%s)", ErrInvalidTransition, id)
	}

	return nil
}

func (q *queueRepository) PurgeCompleted(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := q.DB.ExecContext(ctx, purgeCompletedItems); err != nil {
		log.Err(err).
			Str("func", "queueRepository.PurgeCompleted").
			Msg("failed to purge completed queue items")
		return fmt.Errorf("failed to purge completed queue items: %w", err)
	}

	return nil
}

func (q *queueRepository) ResetForRetry(ctx context.Context, ids ...string) error {
	log := logger.FromContext(ctx)

	builder := sq.Update("queue_items").
		Set("status", models.StatusPending).
		Set("retry_count", 0).
		Set("last_error", nil).
		Set("last_attempt_at", nil).
		Where(sq.Eq{"status": models.StatusFailed})
	if len(ids) > 0 {
		builder = builder.Where(sq.Eq{"id": ids})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build reset-for-retry query: %w", err)
	}

	if _, err := q.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "queueRepository.ResetForRetry").
			Msg("failed to reset failed queue items")
		return fmt.Errorf("failed to reset failed queue items: %w", err)
	}

	return nil
}

func (q *queueRepository) RequeueStaleInFlight(ctx context.Context, cutoff time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Update("queue_items").
		Set("status", models.StatusPending).
		Where(sq.Eq{"status": models.StatusInFlight}).
		Where(sq.LtOrEq{"last_attempt_at": cutoff}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build requeue-stale query: %w", err)
	}

	if _, err := q.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "queueRepository.RequeueStaleInFlight").
			Msg("failed to requeue stale in-flight items")
		return fmt.Errorf("failed to requeue stale in-flight items: %w", err)
	}

	return nil
}

func (q *queueRepository) CountByStatus(ctx context.Context) (map[models.QueueStatus]int, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("status", "COUNT(*)").
		From("queue_items").
		GroupBy("status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build count-by-status query: %w", err)
	}

	rows, err := q.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.CountByStatus").
			Msg("failed to count queue items by status")
		return nil, fmt.Errorf("failed to count queue items by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.QueueStatus]int)
	for rows.Next() {
		var status models.QueueStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count row: %w", err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status count rows: %w", err)
	}

	return counts, nil
}

// FindStuck loads the unresolved items and filters them through
// [models.QueueItem.Stuck], so the stuck predicate lives in exactly one
// place.
func (q *queueRepository) FindStuck(ctx context.Context, maxAttempts int, cutoff time.Time) ([]models.QueueItem, error) {
	log := logger.FromContext(ctx)

	rows, err := q.DB.QueryContext(ctx, listPendingItems)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.FindStuck").
			Msg("failed to query unresolved queue items")
		return nil, fmt.Errorf("failed to query unresolved queue items: %w", err)
	}
	defer rows.Close()

	items, err := scanQueueItems(rows)
	if err != nil {
		return nil, err
	}

	var stuck []models.QueueItem
	for _, item := range items {
		if item.Stuck(maxAttempts, cutoff) {
			stuck = append(stuck, item)
		}
	}

	return stuck, nil
}

func scanQueueItems(rows *sql.Rows) ([]models.QueueItem, error) {
	var items []models.QueueItem

	for rows.Next() {
		var item models.QueueItem
		var payload string
		var lastAttemptAt sql.NullTime
		var lastError sql.NullString

		scanErr := rows.Scan(
			&item.ID,
			&item.FarmID,
			&item.Type,
			&payload,
			&item.OptimisticID,
			&item.Status,
			&item.RetryCount,
			&lastAttemptAt,
			&lastError,
			&item.CreatedAt,
		)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan queue item row: %w", scanErr)
		}

		item.Payload = []byte(payload)
		if lastAttemptAt.Valid {
			at := lastAttemptAt.Time
			item.LastAttemptAt = &at
		}
		item.LastError = lastError.String

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating queue item rows: %w", rowsErr)
	}

	return items, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
