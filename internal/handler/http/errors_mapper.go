// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sketch-keeper/internal/logger"
	"github.com/MKhiriev/go-sketch-keeper/internal/service"
	"github.com/MKhiriev/go-sketch-keeper/internal/store"
	"github.com/MKhiriev/go-sketch-keeper/internal/validators"
	"github.com/MKhiriev/go-sketch-keeper/models"
)

var errorStatusMap = map[error]int{
	validators.ErrInvalidDrawingID:   http.StatusBadRequest,
	validators.ErrTitleTooLong:       http.StatusBadRequest,
	validators.ErrEmptyTitle:         http.StatusBadRequest,
	validators.ErrDescriptionTooLong: http.StatusBadRequest,
	validators.ErrEmptyPatch:         http.StatusBadRequest,
	validators.ErrMissingElements:    http.StatusBadRequest,
	validators.ErrMissingAppState:    http.StatusBadRequest,
	validators.ErrMissingFiles:       http.StatusBadRequest,
	validators.ErrInvalidPage:        http.StatusBadRequest,
	validators.ErrInvalidPageSize:    http.StatusBadRequest,

	service.ErrLoginRequired:        http.StatusUnauthorized,
	service.ErrTokenIsExpired:       http.StatusUnauthorized,
	service.ErrInvalidToken:         http.StatusUnauthorized,
	service.ErrForbidden:            http.StatusForbidden,
	service.ErrDrawingNotFound:      http.StatusNotFound,
	service.ErrDrawingDeleted:       http.StatusGone,
	service.ErrDrawingAlreadyExists: http.StatusConflict,
	service.ErrDrawingInTrash:       http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
	store.ErrEncodingContent:      http.StatusInternalServerError,
	store.ErrDecodingContent:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	var conflict *service.ConflictError
	if errors.As(err, &conflict) {
		return http.StatusConflict
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err as the uniform [models.APIError] body. Server-side
// failures are reported with a generic message; client errors carry the
// sentinel description. Content-save conflicts additionally expose the
// authoritative timestamp so the client can reload before retrying.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	body := models.APIError{Error: err.Error()}
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed")
		body.Error = http.StatusText(http.StatusInternalServerError)
	}

	var conflict *service.ConflictError
	if errors.As(err, &conflict) && !conflict.CurrentUpdatedAt.IsZero() {
		currentUpdatedAt := conflict.CurrentUpdatedAt
		body.CurrentUpdatedAt = &currentUpdatedAt
	}

	h.writeJSON(w, r, status, body)
}

// writeJSON renders any response body as JSON with the given status.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to encode response body")
	}
}
