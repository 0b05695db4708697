package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/avolkhin/herdsync/internal/config"
	"github.com/avolkhin/herdsync/internal/logger"
	"github.com/avolkhin/herdsync/models"
)

type httpRemoteService struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPRemoteService builds the resty-backed remote data service client.
// Every request carries the configured timeout; expiry of an individual
// call is mapped to [ErrTransient].
func NewHTTPRemoteService(cfg config.AgentRemote, app config.AgentApp, log *logger.Logger) (RemoteService, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("remote base URL is required")
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &httpRemoteService{
		client: cli,
		logger: log,
		token:  strings.TrimSpace(app.AuthToken),
	}, nil
}

// SetToken replaces the bearer token forwarded with every request. The host
// application calls it after a token refresh.
func (h *httpRemoteService) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpRemoteService) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpRemoteService) SubmitWeightRecord(ctx context.Context, req models.WeightRecordRequest) (models.RemoteResult, error) {
	return h.submit(ctx, "/api/records/weight", req.IdempotencyKey, req)
}

func (h *httpRemoteService) SubmitFeedingRecord(ctx context.Context, req models.FeedingRecordRequest) (models.RemoteResult, error) {
	return h.submit(ctx, "/api/records/feeding", req.IdempotencyKey, req)
}

func (h *httpRemoteService) SubmitMilkYieldRecord(ctx context.Context, req models.MilkYieldRecordRequest) (models.RemoteResult, error) {
	return h.submit(ctx, "/api/records/milk-yield", req.IdempotencyKey, req)
}

func (h *httpRemoteService) SubmitExitRecord(ctx context.Context, req models.ExitRecordRequest) (models.RemoteResult, error) {
	return h.submit(ctx, "/api/records/exit", req.IdempotencyKey, req)
}

func (h *httpRemoteService) submit(ctx context.Context, path string, idempotencyKey string, body any) (models.RemoteResult, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Idempotency-Key", idempotencyKey).
		SetBody(body).
		Post(path)
	if err != nil {
		return models.RemoteResult{}, fmt.Errorf("%w: %v", ErrTransient, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteResult{}, err
	}

	var result models.RemoteResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.RemoteResult{}, fmt.Errorf("decode submit response: %w", err)
	}

	return result, nil
}

func (h *httpRemoteService) FetchRecords(ctx context.Context, farmID string, entityType models.EntityType) ([]models.Record, error) {
	resp, err := h.authedRequest(ctx).
		Get(fmt.Sprintf("/api/farms/%s/records/%s", farmID, entityType))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransient, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var records []models.Record
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("decode records response: %w", err)
	}

	return records, nil
}

func (h *httpRemoteService) Ping(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Get("/api/ping")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteService) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
