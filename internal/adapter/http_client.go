// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-sketch-keeper/internal/config"
	"github.com/MKhiriev/go-sketch-keeper/internal/logger"
	"github.com/MKhiriev/go-sketch-keeper/models"
	"github.com/go-resty/resty/v2"
)

const defaultRequestTimeout = 15 * time.Second

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates cfg.BaseURL, configures the
// underlying resty client with the resolved base URL and request timeout, and
// seeds the bearer token from cfg.Token.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(cfg config.Client, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid client base url: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	a := &httpServerAdapter{client: client, logger: logger}
	a.SetToken(cfg.Token)
	return a, nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) ListDrawings(ctx context.Context, query models.ListQuery) (models.ListDrawingsResponse, error) {
	req := h.authedRequest(ctx).
		SetQueryParam("category", string(query.Category)).
		SetQueryParam("page", strconv.Itoa(query.Page)).
		SetQueryParam("pageSize", strconv.Itoa(query.PageSize))
	if query.Search != "" {
		req.SetQueryParam("search", query.Search)
	}

	resp, err := req.Get("/api/drawings/")
	if err != nil {
		return models.ListDrawingsResponse{}, fmt.Errorf("list drawings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ListDrawingsResponse{}, err
	}

	var list models.ListDrawingsResponse
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return models.ListDrawingsResponse{}, fmt.Errorf("decode list drawings response: %w", err)
	}
	return list, nil
}

func (h *httpServerAdapter) GetDrawing(ctx context.Context, drawingID string) (models.GetDrawingResponse, error) {
	resp, err := h.authedRequest(ctx).Get("/api/drawings/" + url.PathEscape(drawingID))
	if err != nil {
		return models.GetDrawingResponse{}, fmt.Errorf("get drawing request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.GetDrawingResponse{}, err
	}

	var got models.GetDrawingResponse
	if err = json.Unmarshal(resp.Body(), &got); err != nil {
		return models.GetDrawingResponse{}, fmt.Errorf("decode get drawing response: %w", err)
	}
	return got, nil
}

func (h *httpServerAdapter) GetContent(ctx context.Context, drawingID string) (models.DrawingContent, error) {
	resp, err := h.authedRequest(ctx).Get("/api/drawings/" + url.PathEscape(drawingID) + "/content")
	if err != nil {
		return models.DrawingContent{}, fmt.Errorf("get content request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DrawingContent{}, err
	}

	var got models.GetContentResponse
	if err = json.Unmarshal(resp.Body(), &got); err != nil {
		return models.DrawingContent{}, fmt.Errorf("decode get content response: %w", err)
	}
	return got.Content, nil
}

func (h *httpServerAdapter) CreateDrawing(ctx context.Context, drawingID string, req models.CreateDrawingRequest) (models.Drawing, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(req).
		Post("/api/drawings/" + url.PathEscape(drawingID))
	if err != nil {
		return models.Drawing{}, fmt.Errorf("create drawing request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Drawing{}, err
	}

	var created models.CreateDrawingResponse
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Drawing{}, fmt.Errorf("decode create drawing response: %w", err)
	}
	return created.Drawing, nil
}

func (h *httpServerAdapter) UpdateMetadata(ctx context.Context, drawingID string, patch models.MetadataPatch) (models.Drawing, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(patch).
		Patch("/api/drawings/" + url.PathEscape(drawingID))
	if err != nil {
		return models.Drawing{}, fmt.Errorf("update metadata request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Drawing{}, err
	}

	var updated models.UpdateDrawingResponse
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.Drawing{}, fmt.Errorf("decode update drawing response: %w", err)
	}
	return updated.Drawing, nil
}

func (h *httpServerAdapter) SaveContent(ctx context.Context, drawingID string, req models.SaveContentRequest) (models.SaveContentResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(req).
		Put("/api/drawings/" + url.PathEscape(drawingID) + "/content")
	if err != nil {
		return models.SaveContentResponse{}, fmt.Errorf("save content request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SaveContentResponse{}, err
	}

	var saved models.SaveContentResponse
	if err = json.Unmarshal(resp.Body(), &saved); err != nil {
		return models.SaveContentResponse{}, fmt.Errorf("decode save content response: %w", err)
	}
	return saved, nil
}

func (h *httpServerAdapter) DeleteDrawing(ctx context.Context, drawingID string) (string, error) {
	resp, err := h.authedRequest(ctx).Delete("/api/drawings/" + url.PathEscape(drawingID))
	if err != nil {
		return "", fmt.Errorf("delete drawing request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var deleted models.DeleteDrawingResponse
	if err = json.Unmarshal(resp.Body(), &deleted); err != nil {
		return "", fmt.Errorf("decode delete drawing response: %w", err)
	}
	return deleted.DeletedID, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("base url is empty")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("base url %q has no host", raw)
	}
	return strings.TrimRight(parsed.String(), "/"), nil
}
