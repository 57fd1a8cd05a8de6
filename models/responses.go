// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ListDrawingsResponse is the body of GET /api/drawings.
type ListDrawingsResponse struct {
	Drawings []Drawing `json:"drawings"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"pageSize"`
	Category Category  `json:"category"`
}

// GetDrawingResponse is the body of GET /api/drawings/{id}. Access carries the
// evaluator's tag so the client can distinguish an owner view ("ALLOWED") from
// a public read-only view ("PUBLIC_ACCESS").
type GetDrawingResponse struct {
	Drawing Drawing `json:"drawing"`
	Access  string  `json:"access"`
}

// CreateDrawingResponse is the body of POST /api/drawings/{id}.
type CreateDrawingResponse struct {
	Success bool    `json:"success"`
	Drawing Drawing `json:"drawing"`
}

// UpdateDrawingResponse is the body of PATCH /api/drawings/{id}.
type UpdateDrawingResponse struct {
	Success bool    `json:"success"`
	Drawing Drawing `json:"drawing"`
	Message string  `json:"message"`
}

// DeleteDrawingResponse is the body of DELETE /api/drawings/{id}. DeletedID
// confirms which drawing was irreversibly removed.
type DeleteDrawingResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	DeletedID string `json:"deletedId"`
}

// GetContentResponse is the body of GET /api/drawings/{id}/content.
type GetContentResponse struct {
	Content DrawingContent `json:"content"`
}

// SaveContentResponse is the body of PUT /api/drawings/{id}/content.
// UpdatedAt is the new authoritative timestamp the client must present as
// LastModified on its next save.
type SaveContentResponse struct {
	Success   bool      `json:"success"`
	UpdatedAt time.Time `json:"updatedAt"`
	Message   string    `json:"message"`
}

// APIError is the uniform error body of every non-2xx response.
type APIError struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`

	// CurrentUpdatedAt accompanies content-save conflicts so the client
	// can reload before retrying.
	CurrentUpdatedAt *time.Time `json:"currentUpdatedAt,omitempty"`
}
