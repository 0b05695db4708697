// Package http implements the development server handler. The devserver
// stands in for the production farm-records backend during local testing:
// it keeps everything in memory, deduplicates mutations on their
// idempotency key, and simulates the conflict cases the sync engine must
// handle (recording against an exited animal).
package http

import (
	"sync"

	"github.com/avolkhin/herdsync/internal/logger"
	"github.com/avolkhin/herdsync/internal/utils"
	"github.com/avolkhin/herdsync/models"
)

// storedResponse is a replayable mutation outcome keyed by idempotency key.
type storedResponse struct {
	status int
	body   []byte
}

type Handler struct {
	logger  *logger.Logger
	uuidGen *utils.UUIDGenerator

	mu        sync.Mutex
	records   map[string]map[models.EntityType][]models.Record
	responses map[string]storedResponse
	exited    map[string]map[string]bool
}

func NewHandler(logger *logger.Logger) *Handler {
	logger.Info().Msg("devserver handler created")
	return &Handler{
		logger:    logger,
		uuidGen:   utils.NewUUIDGenerator(),
		records:   make(map[string]map[models.EntityType][]models.Record),
		responses: make(map[string]storedResponse),
		exited:    make(map[string]map[string]bool),
	}
}

func (h *Handler) farmRecords(farmID string) map[models.EntityType][]models.Record {
	byType, ok := h.records[farmID]
	if !ok {
		byType = make(map[models.EntityType][]models.Record)
		h.records[farmID] = byType
	}
	return byType
}
