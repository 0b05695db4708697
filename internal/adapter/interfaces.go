package adapter

import (
	"context"

	"github.com/avolkhin/herdsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteService is the remote data service consumed by the sync engine.
// One operation exists per mutation kind; every mutation call carries the
// queue item id as an idempotency token, so the engine never has to assume
// exactly-once delivery from its own side.
type RemoteService interface {
	SubmitWeightRecord(ctx context.Context, req models.WeightRecordRequest) (models.RemoteResult, error)
	SubmitFeedingRecord(ctx context.Context, req models.FeedingRecordRequest) (models.RemoteResult, error)
	SubmitMilkYieldRecord(ctx context.Context, req models.MilkYieldRecordRequest) (models.RemoteResult, error)
	SubmitExitRecord(ctx context.Context, req models.ExitRecordRequest) (models.RemoteResult, error)

	// FetchRecords performs a full read of one entity collection, used by
	// cache refresh.
	FetchRecords(ctx context.Context, farmID string, entityType models.EntityType) ([]models.Record, error)

	// Ping probes the remote service. Used by the connectivity fallback.
	Ping(ctx context.Context) error
}
