// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Volkhin

package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/avolkhin/herdsync/models"
)

type validator interface {
	Validate() error
}

func (h *Handler) ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) submitWeightRecord(w http.ResponseWriter, r *http.Request) {
	var req models.WeightRecordRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.accept(w, req.MutationRequest, models.EntityWeightRecords, req.WeightRecordPayload, req.AnimalID)
}

func (h *Handler) submitFeedingRecord(w http.ResponseWriter, r *http.Request) {
	var req models.FeedingRecordRequest
	if !h.decode(w, r, &req) {
		return
	}
	// Feeding is recorded per group, so there is no exited-animal conflict.
	h.accept(w, req.MutationRequest, models.EntityFeedingRecords, req.FeedingRecordPayload, "")
}

func (h *Handler) submitMilkYieldRecord(w http.ResponseWriter, r *http.Request) {
	var req models.MilkYieldRecordRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.accept(w, req.MutationRequest, models.EntityMilkYields, req.MilkYieldRecordPayload, req.AnimalID)
}

func (h *Handler) submitExitRecord(w http.ResponseWriter, r *http.Request) {
	var req models.ExitRecordRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.acceptExit(w, req)
}

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	farmID := chi.URLParam(r, "farmID")
	entityType := models.EntityType(chi.URLParam(r, "entityType"))

	h.mu.Lock()
	records := h.farmRecords(farmID)[entityType]
	h.mu.Unlock()

	if records == nil {
		records = []models.Record{}
	}
	h.writeJSON(w, http.StatusOK, records)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.Err(err).Str("func", "*Handler.decode").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return false
	}
	return true
}

// accept handles the common mutation path: validate, replay on a known
// idempotency key, reject mutations against exited animals, then store the
// record. The full response is memorized per idempotency key, so a retried
// call replays the original outcome byte for byte, conflicts included.
func (h *Handler) accept(w http.ResponseWriter, meta models.MutationRequest, entityType models.EntityType, payload validator, animalID string) {
	if err := payload.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if meta.IdempotencyKey == "" {
		http.Error(w, "idempotency_key is required", http.StatusUnprocessableEntity)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if resp, ok := h.responses[meta.IdempotencyKey]; ok {
		h.replay(w, resp)
		return
	}

	if animalID != "" && h.exited[meta.FarmID][animalID] {
		h.storeAndWrite(w, meta.IdempotencyKey, storedResponse{
			status: http.StatusConflict,
			body:   []byte("animal has exited the herd\n"),
		})
		return
	}

	h.commit(w, meta, entityType, payload)
}

func (h *Handler) acceptExit(w http.ResponseWriter, req models.ExitRecordRequest) {
	if err := req.ExitRecordPayload.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if req.IdempotencyKey == "" {
		http.Error(w, "idempotency_key is required", http.StatusUnprocessableEntity)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if resp, ok := h.responses[req.IdempotencyKey]; ok {
		h.replay(w, resp)
		return
	}

	// A second exit for the same animal is a conflict, not a duplicate:
	// the first exit already removed it from the herd.
	if h.exited[req.FarmID][req.AnimalID] {
		h.storeAndWrite(w, req.IdempotencyKey, storedResponse{
			status: http.StatusConflict,
			body:   []byte("animal has already exited the herd\n"),
		})
		return
	}

	if h.exited[req.FarmID] == nil {
		h.exited[req.FarmID] = make(map[string]bool)
	}
	h.exited[req.FarmID][req.AnimalID] = true

	h.commit(w, req.MutationRequest, models.EntityAnimalExits, req.ExitRecordPayload)
}

// commit stores the record and writes the success response. Caller holds the
// lock.
func (h *Handler) commit(w http.ResponseWriter, meta models.MutationRequest, entityType models.EntityType, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "error encoding record", http.StatusInternalServerError)
		return
	}

	recordedAt := meta.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	record := models.Record{
		ServerID:     h.uuidGen.Generate(),
		OptimisticID: meta.OptimisticID,
		EntityType:   entityType,
		Data:         data,
		RecordedAt:   recordedAt,
	}

	byType := h.farmRecords(meta.FarmID)
	byType[entityType] = append(byType[entityType], record)

	result := models.RemoteResult{
		Success:  true,
		ServerID: record.ServerID,
		Record:   record,
	}
	body, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "error encoding response", http.StatusInternalServerError)
		return
	}

	h.storeAndWrite(w, meta.IdempotencyKey, storedResponse{
		status: http.StatusCreated,
		body:   body,
	})
}

func (h *Handler) storeAndWrite(w http.ResponseWriter, idempotencyKey string, resp storedResponse) {
	h.responses[idempotencyKey] = resp
	h.replay(w, resp)
}

func (h *Handler) replay(w http.ResponseWriter, resp storedResponse) {
	if resp.status == http.StatusCreated {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(resp.status)
	_, _ = w.Write(resp.body)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Err(err).Str("func", "*Handler.writeJSON").Msg("error encoding response")
	}
}
