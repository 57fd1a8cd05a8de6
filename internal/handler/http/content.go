// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-sketch-keeper/internal/logger"
	"github.com/MKhiriev/go-sketch-keeper/internal/utils"
	"github.com/MKhiriev/go-sketch-keeper/models"
)

// getContent handles GET /api/drawings/{drawingID}/content. Access follows
// the same rules as reading the drawing's metadata.
func (h *Handler) getContent(w http.ResponseWriter, r *http.Request) {
	requester, _ := utils.GetIdentityFromContext(r.Context())
	drawingID := chi.URLParam(r, "drawingID")

	content, _, err := h.services.DrawingService.GetContent(r.Context(), requester, drawingID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, models.GetContentResponse{Content: content})
}

// saveContent handles PUT /api/drawings/{drawingID}/content: a whole-document
// replace of the canvas. When the body carries lastModified the save is
// optimistic and a newer stored version responds 409 with the authoritative
// timestamp.
func (h *Handler) saveContent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	requester, _ := utils.GetIdentityFromContext(r.Context())
	drawingID := chi.URLParam(r, "drawingID")

	var request models.SaveContentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.saveContent").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedAt, err := h.services.DrawingService.SaveContent(r.Context(), requester, drawingID, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, models.SaveContentResponse{
		Success:   true,
		UpdatedAt: updatedAt,
		Message:   "content saved",
	})
}
