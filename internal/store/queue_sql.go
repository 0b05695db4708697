// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Volkhin

package store

const (
	enqueueItem = `
		INSERT INTO queue_items (
			id,
			farm_id,
			type,
			payload,
			optimistic_id,
			status,
			retry_count,
			last_attempt_at,
			last_error,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING;`

	queueItemColumns = `
			id,
			farm_id,
			type,
			payload,
			optimistic_id,
			status,
			retry_count,
			last_attempt_at,
			last_error,
			created_at`

	listPendingItems = `
		SELECT` + queueItemColumns + `
		FROM queue_items
		WHERE status IN ('pending', 'failed')
		ORDER BY created_at ASC;`

	markItemInFlight = `
		UPDATE queue_items SET
			status          = 'in-flight',
			last_attempt_at = ?
		WHERE id = ? AND status IN ('pending', 'failed');`

	markItemCompleted = `
		UPDATE queue_items SET
			status = 'completed'
		WHERE id = ?;`

	markItemFailed = `
		UPDATE queue_items SET
			status          = 'failed',
			retry_count     = retry_count + 1,
			last_error      = ?,
			last_attempt_at = ?
		WHERE id = ?;`

	markItemFailedPermanent = `
		UPDATE queue_items SET
			status          = 'failed',
			retry_count     = max(retry_count + 1, ?),
			last_error      = ?,
			last_attempt_at = ?
		WHERE id = ?;`

	purgeCompletedItems = `
		DELETE FROM queue_items
		WHERE status = 'completed';`

	countItemByID = `
		SELECT COUNT(1)
		FROM queue_items
		WHERE id = ?;`
)
