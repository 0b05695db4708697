package models

import (
	"encoding/json"
	"time"
)

// EntityType names a per-farm cache collection.
type EntityType string

const (
	EntityWeightRecords  EntityType = "weight-records"
	EntityFeedingRecords EntityType = "feeding-records"
	EntityMilkYields     EntityType = "milk-yields"
	EntityAnimalExits    EntityType = "animal-exits"

	// Read-only collections, refreshed from the remote service but never
	// mutated optimistically.
	EntityAnimals       EntityType = "animals"
	EntityFeedInventory EntityType = "feed-inventory"
)

// EntityTypeFor maps a mutation kind to the cache collection its records
// live in.
func EntityTypeFor(mutationType MutationType) EntityType {
	switch mutationType {
	case MutationWeightRecord:
		return EntityWeightRecords
	case MutationFeedingRecord:
		return EntityFeedingRecords
	case MutationMilkYieldRecord:
		return EntityMilkYields
	case MutationExitRecord:
		return EntityAnimalExits
	default:
		return ""
	}
}

// Record is a single entity snapshot held in the read cache. A record with
// an empty ServerID is optimistic: it mirrors a mutation that has not yet
// been confirmed by the remote service.
type Record struct {
	ServerID     string          `json:"server_id,omitempty"`
	OptimisticID string          `json:"optimistic_id,omitempty"`
	EntityType   EntityType      `json:"entity_type"`
	Data         json.RawMessage `json:"data"`
	RecordedAt   time.Time       `json:"recorded_at"`
}

// Confirmed reports whether the record carries a server-assigned identity.
func (r Record) Confirmed() bool {
	return r.ServerID != ""
}

// CacheEntry is the cached snapshot of one entity collection for one farm.
type CacheEntry struct {
	Records     []Record  `json:"records"`
	LastUpdated time.Time `json:"last_updated"`
}

// IsFresh reports whether the entry was refreshed from the remote service
// within the freshness window. Staleness is advisory only and never blocks
// reads.
func (e CacheEntry) IsFresh(window time.Duration, now time.Time) bool {
	if e.LastUpdated.IsZero() {
		return false
	}
	return now.Sub(e.LastUpdated) < window
}

// CacheCollectionStats describes one cached collection for the settings UI.
type CacheCollectionStats struct {
	EntityType      EntityType `json:"entity_type"`
	RecordCount     int        `json:"record_count"`
	OptimisticCount int        `json:"optimistic_count"`
	LastUpdated     time.Time  `json:"last_updated"`
	Fresh           bool       `json:"fresh"`
}

// CacheStats aggregates per-collection stats for one farm.
type CacheStats struct {
	FarmID      string                 `json:"farm_id"`
	Collections []CacheCollectionStats `json:"collections"`
}
