package models

import "time"

// HealthLevel is the overall sync health verdict.
type HealthLevel string

const (
	HealthHealthy   HealthLevel = "healthy"
	HealthDegraded  HealthLevel = "degraded"
	HealthUnhealthy HealthLevel = "unhealthy"
)

// StorageHealth reports reachability of the persistent store backing the
// queue and cache.
type StorageHealth struct {
	Available bool   `json:"available"`
	Error     string `json:"error,omitempty"`
}

// BackgroundAgentHealth reports whether the host background-execution hook
// is armed.
type BackgroundAgentHealth struct {
	Registered bool   `json:"registered"`
	Error      string `json:"error,omitempty"`
}

// QueueHealth summarizes the mutation queue. PendingCount includes items in
// failed status awaiting retry, since both still need delivery.
type QueueHealth struct {
	PendingCount  int    `json:"pending_count"`
	InFlightCount int    `json:"in_flight_count"`
	StuckCount    int    `json:"stuck_count"`
	HasStuckItems bool   `json:"has_stuck_items"`
	Error         string `json:"error,omitempty"`
}

// CacheHealth reports whether any cached data exists for the active farm.
type CacheHealth struct {
	HasData bool   `json:"has_data"`
	Error   string `json:"error,omitempty"`
}

// SyncHealthStatus is a point-in-time diagnostic snapshot. Overall is
// derived from the other fields when the snapshot is assembled; it is never
// persisted.
type SyncHealthStatus struct {
	Overall   HealthLevel           `json:"overall"`
	Storage   StorageHealth         `json:"storage"`
	Agent     BackgroundAgentHealth `json:"agent"`
	Queue     QueueHealth           `json:"queue"`
	Cache     CacheHealth           `json:"cache"`
	CheckedAt time.Time             `json:"checked_at"`
}

// SyncDiagnostic is a single human-readable finding. The diagnostic list is
// ephemeral and recomputed on demand.
type SyncDiagnostic struct {
	Issue string `json:"issue"`
}

// RepairResult is the outcome of a best-effort repair attempt.
type RepairResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
