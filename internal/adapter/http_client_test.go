package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkhin/herdsync/internal/config"
	"github.com/avolkhin/herdsync/internal/logger"
	"github.com/avolkhin/herdsync/models"
)

func newTestRemote(t *testing.T, handler http.HandlerFunc) (RemoteService, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	remote, err := NewHTTPRemoteService(
		config.AgentRemote{BaseURL: srv.URL, RequestTimeout: 2 * time.Second},
		config.AgentApp{AuthToken: "test-token"},
		logger.Nop(),
	)
	require.NoError(t, err)
	return remote, srv
}

func weightRequest() models.WeightRecordRequest {
	return models.WeightRecordRequest{
		MutationRequest: models.MutationRequest{
			IdempotencyKey: "q1",
			OptimisticID:   "opt-1",
			FarmID:         "farm-1",
			RecordedAt:     time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		},
		WeightRecordPayload: models.WeightRecordPayload{AnimalID: "cow-17", WeightKg: 512.5},
	}
}

func TestHTTPRemoteService_SubmitWeightRecord(t *testing.T) {
	var gotPath, gotIdempotency, gotAuth string

	remote, _ := newTestRemote(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotIdempotency = r.Header.Get("Idempotency-Key")
		gotAuth = r.Header.Get("Authorization")

		var req models.WeightRecordRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "cow-17", req.AnimalID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.RemoteResult{
			Success:  true,
			ServerID: "srv-1",
			Record:   models.Record{ServerID: "srv-1", EntityType: models.EntityWeightRecords},
		})
	})

	result, err := remote.SubmitWeightRecord(context.Background(), weightRequest())
	require.NoError(t, err)

	assert.Equal(t, "/api/records/weight", gotPath)
	assert.Equal(t, "q1", gotIdempotency)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.True(t, result.Success)
	assert.Equal(t, "srv-1", result.ServerID)
}

func TestHTTPRemoteService_SubmitExitRecord_Conflict(t *testing.T) {
	remote, _ := newTestRemote(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "animal has already exited the herd", http.StatusConflict)
	})

	_, err := remote.SubmitExitRecord(context.Background(), models.ExitRecordRequest{
		MutationRequest:   models.MutationRequest{IdempotencyKey: "q1"},
		ExitRecordPayload: models.ExitRecordPayload{AnimalID: "cow-17", Reason: "sold"},
	})
	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "already exited")
}

func TestHTTPRemoteService_Submit_ValidationRejection(t *testing.T) {
	remote, _ := newTestRemote(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "weight_kg must be positive", http.StatusUnprocessableEntity)
	})

	_, err := remote.SubmitWeightRecord(context.Background(), weightRequest())
	require.ErrorIs(t, err, ErrValidation)
}

func TestHTTPRemoteService_Submit_ServerErrorIsTransient(t *testing.T) {
	remote, _ := newTestRemote(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	})

	_, err := remote.SubmitWeightRecord(context.Background(), weightRequest())
	require.ErrorIs(t, err, ErrTransient)
}

func TestHTTPRemoteService_Submit_Unauthorized(t *testing.T) {
	remote, _ := newTestRemote(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "token expired", http.StatusUnauthorized)
	})

	_, err := remote.SubmitWeightRecord(context.Background(), weightRequest())
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestHTTPRemoteService_Submit_TransportErrorIsTransient(t *testing.T) {
	remote, srv := newTestRemote(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	srv.Close()

	_, err := remote.SubmitWeightRecord(context.Background(), weightRequest())
	require.ErrorIs(t, err, ErrTransient)
}

func TestHTTPRemoteService_FetchRecords(t *testing.T) {
	var gotPath string

	remote, _ := newTestRemote(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Record{
			{ServerID: "srv-1", EntityType: models.EntityAnimals},
			{ServerID: "srv-2", EntityType: models.EntityAnimals},
		})
	})

	records, err := remote.FetchRecords(context.Background(), "farm-1", models.EntityAnimals)
	require.NoError(t, err)

	assert.Equal(t, "/api/farms/farm-1/records/animals", gotPath)
	assert.Len(t, records, 2)
}

func TestHTTPRemoteService_Ping(t *testing.T) {
	remote, _ := newTestRemote(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ping", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, remote.Ping(context.Background()))
}

func TestNewHTTPRemoteService_RequiresBaseURL(t *testing.T) {
	_, err := NewHTTPRemoteService(config.AgentRemote{}, config.AgentApp{}, logger.Nop())
	require.Error(t, err)
}
