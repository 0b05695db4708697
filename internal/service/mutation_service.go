// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Volkhin

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avolkhin/herdsync/internal/adapter"
	"github.com/avolkhin/herdsync/internal/logger"
	"github.com/avolkhin/herdsync/internal/store"
	"github.com/avolkhin/herdsync/internal/utils"
	"github.com/avolkhin/herdsync/models"
)

type mutationService struct {
	queue   store.QueueRepository
	cache   CacheService
	remote  adapter.RemoteService
	online  OnlineChecker
	farmID  string
	uuidGen *utils.UUIDGenerator
	logger  *logger.Logger
	now     func() time.Time
}

// NewMutationService creates the write path for farm records. Every mutation
// is applied to the local cache immediately; delivery to the remote happens
// inline when the device is online and through the durable queue otherwise.
func NewMutationService(
	queue store.QueueRepository,
	cache CacheService,
	remote adapter.RemoteService,
	online OnlineChecker,
	farmID string,
	log *logger.Logger,
) MutationService {
	return &mutationService{
		queue:   queue,
		cache:   cache,
		remote:  remote,
		online:  online,
		farmID:  farmID,
		uuidGen: utils.NewUUIDGenerator(),
		logger:  log,
		now:     time.Now,
	}
}

// EnqueueMutation implements MutationService. The returned item is the queued
// form of the mutation; when the inline submit succeeds the item never reaches
// the queue and its status is already completed.
func (s *mutationService) EnqueueMutation(ctx context.Context, mutationType models.MutationType, payload any) (models.QueueItem, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return models.QueueItem{}, fmt.Errorf("encode %s payload: %w", mutationType, err)
	}
	if _, err := models.DecodePayload(mutationType, raw); err != nil {
		return models.QueueItem{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	now := s.now()
	item := models.QueueItem{
		ID:           s.uuidGen.Generate(),
		FarmID:       s.farmID,
		Type:         mutationType,
		Payload:      raw,
		OptimisticID: s.uuidGen.Generate(),
		Status:       models.StatusPending,
		CreatedAt:    now,
	}

	entityType := models.EntityTypeFor(mutationType)
	optimistic := models.Record{
		OptimisticID: item.OptimisticID,
		EntityType:   entityType,
		Data:         raw,
		RecordedAt:   now,
	}
	if err := s.cache.ApplyOptimistic(ctx, s.farmID, entityType, optimistic); err != nil {
		return models.QueueItem{}, fmt.Errorf("apply optimistic record: %w", err)
	}

	if s.online.Online() {
		done, err := s.submitInline(ctx, item, entityType)
		if done {
			if err == nil {
				item.Status = models.StatusCompleted
			}
			return item, err
		}
		// Transient failure: fall through to the durable queue. The next
		// drain pass retries with the same idempotency key.
		s.logger.Debug().
			Str("id", item.ID).
			Err(err).
			Msg("inline submit failed, queueing for background sync")
	}

	if err := s.queue.Enqueue(ctx, item); err != nil {
		if rbErr := s.cache.Rollback(ctx, s.farmID, entityType, item.OptimisticID); rbErr != nil {
			s.logger.Error().Err(rbErr).
				Str("id", item.ID).
				Msg("rollback after enqueue failure")
		}
		return models.QueueItem{}, fmt.Errorf("enqueue mutation: %w", err)
	}

	s.logger.Debug().
		Str("id", item.ID).
		Str("type", string(mutationType)).
		Msg("mutation queued")
	return item, nil
}

// submitInline attempts immediate delivery. It reports done=true when the
// outcome is final (accepted or permanently rejected) and the item must not
// be queued.
func (s *mutationService) submitInline(ctx context.Context, item models.QueueItem, entityType models.EntityType) (done bool, err error) {
	result, submitErr := submitItem(ctx, s.remote, item)
	if submitErr == nil {
		record := result.Record
		if record.ServerID == "" {
			record.ServerID = result.ServerID
		}
		record.OptimisticID = item.OptimisticID
		if err := s.cache.Reconcile(ctx, s.farmID, entityType, item.OptimisticID, record); err != nil {
			return true, fmt.Errorf("reconcile after inline submit: %w", err)
		}
		return true, nil
	}

	if isPermanentFailure(submitErr) {
		if rbErr := s.cache.Rollback(ctx, s.farmID, entityType, item.OptimisticID); rbErr != nil {
			submitErr = errors.Join(submitErr, rbErr)
		}
		return true, fmt.Errorf("%w: %v", ErrValidation, submitErr)
	}

	return false, submitErr
}
