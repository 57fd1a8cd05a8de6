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

// listDrawings handles GET /api/drawings. Query parameters: category, page,
// pageSize, search. The listing is always scoped to the authenticated
// requester's own drawings.
func (h *Handler) listDrawings(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	requester, _ := utils.GetIdentityFromContext(r.Context())

	queryValues := r.URL.Query()
	query, err := h.validator.ParseListQuery(
		queryValues.Get("category"),
		queryValues.Get("page"),
		queryValues.Get("pageSize"),
		queryValues.Get("search"),
	)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listDrawings").Msg("invalid listing query")
		h.writeError(w, r, err)
		return
	}

	response, err := h.services.DrawingService.ListDrawings(r.Context(), requester, query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, response)
}

// createDrawing handles POST /api/drawings/{drawingID}. The id is generated
// on the client and travels in the URL; reusing a taken id responds 409.
func (h *Handler) createDrawing(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	requester, _ := utils.GetIdentityFromContext(r.Context())
	drawingID := chi.URLParam(r, "drawingID")

	var request models.CreateDrawingRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.createDrawing").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.DrawingService.CreateDrawing(r.Context(), requester, drawingID, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, models.CreateDrawingResponse{
		Success: true,
		Drawing: created,
	})
}

// getDrawing handles GET /api/drawings/{drawingID}. Anonymous requests are
// allowed; the access tag in the response tells the client how the read was
// granted.
func (h *Handler) getDrawing(w http.ResponseWriter, r *http.Request) {
	requester, _ := utils.GetIdentityFromContext(r.Context())
	drawingID := chi.URLParam(r, "drawingID")

	drawing, decision, err := h.services.DrawingService.GetDrawing(r.Context(), requester, drawingID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, models.GetDrawingResponse{
		Drawing: drawing,
		Access:  decision.String(),
	})
}

// updateDrawing handles PATCH /api/drawings/{drawingID}. Only the fields
// present in the body are applied; soft delete and restore travel through the
// isDeleted field.
func (h *Handler) updateDrawing(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	requester, _ := utils.GetIdentityFromContext(r.Context())
	drawingID := chi.URLParam(r, "drawingID")

	var patch models.MetadataPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Str("func", "*Handler.updateDrawing").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.DrawingService.UpdateMetadata(r.Context(), requester, drawingID, patch)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, models.UpdateDrawingResponse{
		Success: true,
		Drawing: updated,
		Message: "drawing updated",
	})
}

// deleteDrawing handles DELETE /api/drawings/{drawingID}: permanent removal
// of the drawing and its content. Moving to trash is a PATCH with
// isDeleted=true instead.
func (h *Handler) deleteDrawing(w http.ResponseWriter, r *http.Request) {
	requester, _ := utils.GetIdentityFromContext(r.Context())
	drawingID := chi.URLParam(r, "drawingID")

	deletedID, err := h.services.DrawingService.DeleteDrawing(r.Context(), requester, drawingID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, models.DeleteDrawingResponse{
		Success:   true,
		Message:   "drawing permanently deleted",
		DeletedID: deletedID,
	})
}
