package models

import "time"

// MutationRequest carries the fields common to every remote mutation call.
// IdempotencyKey is the queue item id; the remote service deduplicates on
// it, so a retried call after a crash or timeout is safe.
type MutationRequest struct {
	IdempotencyKey string    `json:"idempotency_key"`
	OptimisticID   string    `json:"optimistic_id"`
	FarmID         string    `json:"farm_id"`
	RecordedAt     time.Time `json:"recorded_at"`
}

type WeightRecordRequest struct {
	MutationRequest
	WeightRecordPayload
}

type FeedingRecordRequest struct {
	MutationRequest
	FeedingRecordPayload
}

type MilkYieldRecordRequest struct {
	MutationRequest
	MilkYieldRecordPayload
}

type ExitRecordRequest struct {
	MutationRequest
	ExitRecordPayload
}

// RemoteResult is the remote service's answer to a mutation call. Record is
// the server-confirmed snapshot used to reconcile the optimistic cache
// entry.
type RemoteResult struct {
	Success  bool   `json:"success"`
	ServerID string `json:"server_id"`
	Record   Record `json:"record"`
}
