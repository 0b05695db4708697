package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/avolkhin/herdsync/internal/adapter"
	"github.com/avolkhin/herdsync/models"
)

// submitItem invokes the remote operation matching the item's mutation
// type. The queue item id rides along as the idempotency token, so the
// same item can be submitted again after a crash or timeout without
// double-applying.
func submitItem(ctx context.Context, remote adapter.RemoteService, item models.QueueItem) (models.RemoteResult, error) {
	base := models.MutationRequest{
		IdempotencyKey: item.ID,
		OptimisticID:   item.OptimisticID,
		FarmID:         item.FarmID,
		RecordedAt:     item.CreatedAt,
	}

	switch item.Type {
	case models.MutationWeightRecord:
		var p models.WeightRecordPayload
		if err := json.Unmarshal(item.Payload, &p); err != nil {
			return models.RemoteResult{}, fmt.Errorf("%w: %v", models.ErrInvalidPayload, err)
		}
		return remote.SubmitWeightRecord(ctx, models.WeightRecordRequest{MutationRequest: base, WeightRecordPayload: p})
	case models.MutationFeedingRecord:
		var p models.FeedingRecordPayload
		if err := json.Unmarshal(item.Payload, &p); err != nil {
			return models.RemoteResult{}, fmt.Errorf("%w: %v", models.ErrInvalidPayload, err)
		}
		return remote.SubmitFeedingRecord(ctx, models.FeedingRecordRequest{MutationRequest: base, FeedingRecordPayload: p})
	case models.MutationMilkYieldRecord:
		var p models.MilkYieldRecordPayload
		if err := json.Unmarshal(item.Payload, &p); err != nil {
			return models.RemoteResult{}, fmt.Errorf("%w: %v", models.ErrInvalidPayload, err)
		}
		return remote.SubmitMilkYieldRecord(ctx, models.MilkYieldRecordRequest{MutationRequest: base, MilkYieldRecordPayload: p})
	case models.MutationExitRecord:
		var p models.ExitRecordPayload
		if err := json.Unmarshal(item.Payload, &p); err != nil {
			return models.RemoteResult{}, fmt.Errorf("%w: %v", models.ErrInvalidPayload, err)
		}
		return remote.SubmitExitRecord(ctx, models.ExitRecordRequest{MutationRequest: base, ExitRecordPayload: p})
	default:
		return models.RemoteResult{}, fmt.Errorf("%w: %q", models.ErrUnknownMutationType, item.Type)
	}
}

// isPermanentFailure reports whether the submit error must not be retried:
// the remote rejected the payload or its state, or the item itself cannot
// be dispatched.
func isPermanentFailure(err error) bool {
	return errorsIsAny(err,
		adapter.ErrValidation,
		adapter.ErrConflict,
		models.ErrInvalidPayload,
		models.ErrUnknownMutationType,
	)
}

func errorsIsAny(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
