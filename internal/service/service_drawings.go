// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-sketch-keeper/internal/access"
	"github.com/MKhiriev/go-sketch-keeper/internal/logger"
	"github.com/MKhiriev/go-sketch-keeper/internal/store"
	"github.com/MKhiriev/go-sketch-keeper/models"
)

type drawingService struct {
	drawingRepository store.DrawingRepository

	logger *logger.Logger
}

// NewDrawingService constructs the core [DrawingService] on top of a drawing
// repository. Input validation lives in the validation wrapper; this service
// assumes well-formed requests and concentrates on access and state rules.
func NewDrawingService(drawingRepository store.DrawingRepository, logger *logger.Logger) DrawingService {
	return &drawingService{
		drawingRepository: drawingRepository,
		logger:            logger,
	}
}

// ListDrawings returns one page of the requester's own drawings in the chosen
// category view. Listing never spans other users' drawings, public or not.
func (s *drawingService) ListDrawings(ctx context.Context, requester *models.Identity, query models.ListQuery) (models.ListDrawingsResponse, error) {
	if requester == nil {
		return models.ListDrawingsResponse{}, ErrLoginRequired
	}

	drawings, err := s.drawingRepository.ListDrawings(ctx, requester.ID, query)
	if err != nil {
		return models.ListDrawingsResponse{}, err
	}

	total, err := s.drawingRepository.CountDrawings(ctx, requester.ID, query)
	if err != nil {
		return models.ListDrawingsResponse{}, err
	}

	return models.ListDrawingsResponse{
		Drawings: drawings,
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
		Category: query.Category,
	}, nil
}

// CreateDrawing registers a new drawing under the requester's ownership. The
// id is generated on the client; reusing a taken id fails with
// [ErrDrawingAlreadyExists]. Missing content sections are seeded with the
// empty-canvas defaults.
func (s *drawingService) CreateDrawing(ctx context.Context, requester *models.Identity, drawingID string, req models.CreateDrawingRequest) (models.Drawing, error) {
	if requester == nil {
		return models.Drawing{}, ErrLoginRequired
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = models.DefaultDrawingTitle
	}

	drawing := models.Drawing{
		ID:          drawingID,
		OwnerID:     requester.ID,
		Title:       title,
		Description: req.Description,
	}

	content := models.EmptyDrawingContent(drawingID)
	if req.Content != nil {
		if req.Content.Elements != nil {
			content.Elements = req.Content.Elements
		}
		if req.Content.AppState != nil {
			content.AppState = req.Content.AppState
		}
		if req.Content.Files != nil {
			content.Files = req.Content.Files
		}
	}

	created, err := s.drawingRepository.CreateDrawingWithContent(ctx, drawing, content)
	if err != nil {
		if errors.Is(err, store.ErrDrawingAlreadyExists) {
			return models.Drawing{}, ErrDrawingAlreadyExists
		}
		return models.Drawing{}, err
	}

	logger.FromContext(ctx).Info().
		Str("func", "drawingService.CreateDrawing").
		Str("drawing_id", created.ID).
		Str("owner_id", created.OwnerID).
		Msg("drawing created")

	return created, nil
}

// GetDrawing reads drawing metadata under the access rules. The returned
// decision is Allowed for the owner and PublicAccess for anyone else reading
// a public drawing; every other decision surfaces as its sentinel error.
func (s *drawingService) GetDrawing(ctx context.Context, requester *models.Identity, drawingID string) (models.Drawing, access.Decision, error) {
	drawing, err := s.drawingRepository.GetDrawing(ctx, drawingID)
	if err != nil {
		if errors.Is(err, store.ErrDrawingNotFound) {
			return models.Drawing{}, access.NotFound, ErrDrawingNotFound
		}
		return models.Drawing{}, access.NotFound, err
	}

	decision := access.Evaluate(&drawing, requester)
	if !decision.Readable() {
		return models.Drawing{}, decision, decisionError(decision)
	}

	return drawing, decision, nil
}

// GetContent reads the canvas content under the same access rules as
// [drawingService.GetDrawing].
func (s *drawingService) GetContent(ctx context.Context, requester *models.Identity, drawingID string) (models.DrawingContent, access.Decision, error) {
	drawing, err := s.drawingRepository.GetDrawing(ctx, drawingID)
	if err != nil {
		if errors.Is(err, store.ErrDrawingNotFound) {
			return models.DrawingContent{}, access.NotFound, ErrDrawingNotFound
		}
		return models.DrawingContent{}, access.NotFound, err
	}

	decision := access.Evaluate(&drawing, requester)
	if !decision.Readable() {
		return models.DrawingContent{}, decision, decisionError(decision)
	}

	content, err := s.drawingRepository.GetContent(ctx, drawingID)
	if err != nil {
		if errors.Is(err, store.ErrContentNotFound) {
			// the drawing row exists, so its content row should too
			logger.FromContext(ctx).Error().
				Str("func", "drawingService.GetContent").
				Str("drawing_id", drawingID).
				Msg("drawing exists but its content row is missing")
			return models.DrawingContent{}, access.NotFound, ErrDrawingNotFound
		}
		return models.DrawingContent{}, decision, err
	}

	return content, decision, nil
}

// UpdateMetadata applies a partial metadata patch to one of the requester's
// drawings. Soft delete and restore travel through the IsDeleted field of the
// patch; the repository stamps or clears deleted_at accordingly.
func (s *drawingService) UpdateMetadata(ctx context.Context, requester *models.Identity, drawingID string, patch models.MetadataPatch) (models.Drawing, error) {
	if _, err := s.ownedDrawing(ctx, requester, drawingID); err != nil {
		return models.Drawing{}, err
	}

	updated, err := s.drawingRepository.UpdateMetadata(ctx, drawingID, patch)
	if err != nil {
		if errors.Is(err, store.ErrDrawingNotFound) {
			return models.Drawing{}, ErrDrawingNotFound
		}
		return models.Drawing{}, err
	}

	return updated, nil
}

// DeleteDrawing permanently removes one of the requester's drawings together
// with its content. Unlike moving to trash this cannot be undone.
func (s *drawingService) DeleteDrawing(ctx context.Context, requester *models.Identity, drawingID string) (string, error) {
	if _, err := s.ownedDrawing(ctx, requester, drawingID); err != nil {
		return "", err
	}

	deletedID, err := s.drawingRepository.DeleteDrawing(ctx, drawingID)
	if err != nil {
		if errors.Is(err, store.ErrDrawingNotFound) {
			return "", ErrDrawingNotFound
		}
		return "", err
	}

	logger.FromContext(ctx).Info().
		Str("func", "drawingService.DeleteDrawing").
		Str("drawing_id", deletedID).
		Msg("drawing permanently deleted")

	return deletedID, nil
}

// SaveContent replaces the whole canvas document of one of the requester's
// drawings.
//
// When the request carries LastModified, the save is optimistic: a stored
// UpdatedAt past the observed one rejects the save with a [*ConflictError]
// carrying the authoritative timestamp. When LastModified is absent the save
// is last-writer-wins and a race with another session is resolved by
// re-reading once and replaying.
func (s *drawingService) SaveContent(ctx context.Context, requester *models.Identity, drawingID string, req models.SaveContentRequest) (time.Time, error) {
	drawing, err := s.ownedDrawing(ctx, requester, drawingID)
	if err != nil {
		return time.Time{}, err
	}

	// a trashed drawing is read-only until restored, even for its owner
	if drawing.IsDeleted {
		return time.Time{}, ErrDrawingInTrash
	}

	if req.LastModified != nil && drawing.UpdatedAt.After(*req.LastModified) {
		return time.Time{}, &ConflictError{CurrentUpdatedAt: drawing.UpdatedAt}
	}

	content := models.DrawingContent{
		DrawingID: drawingID,
		Elements:  req.Elements,
		AppState:  req.AppState,
		Files:     req.Files,
	}

	updatedAt, err := s.drawingRepository.ReplaceContent(ctx, content, drawing.UpdatedAt)
	if err != nil && errors.Is(err, store.ErrConcurrentModification) && req.LastModified == nil {
		// last writer wins: pick up the fresh timestamp and replay once
		drawing, err = s.drawingRepository.GetDrawing(ctx, drawingID)
		if err != nil {
			if errors.Is(err, store.ErrDrawingNotFound) {
				return time.Time{}, ErrDrawingNotFound
			}
			return time.Time{}, err
		}
		updatedAt, err = s.drawingRepository.ReplaceContent(ctx, content, drawing.UpdatedAt)
	}
	if err != nil {
		switch {
		case errors.Is(err, store.ErrConcurrentModification):
			return time.Time{}, s.conflictWithCurrentTimestamp(ctx, drawingID)
		case errors.Is(err, store.ErrContentNotFound):
			return time.Time{}, ErrDrawingNotFound
		default:
			return time.Time{}, err
		}
	}

	return updatedAt, nil
}

// ownedDrawing loads the drawing and enforces ownership for write paths.
// Foreign drawings are reported as absent, so probing writes cannot reveal
// that an id exists.
func (s *drawingService) ownedDrawing(ctx context.Context, requester *models.Identity, drawingID string) (models.Drawing, error) {
	if requester == nil {
		return models.Drawing{}, ErrLoginRequired
	}

	drawing, err := s.drawingRepository.GetDrawing(ctx, drawingID)
	if err != nil {
		if errors.Is(err, store.ErrDrawingNotFound) {
			return models.Drawing{}, ErrDrawingNotFound
		}
		return models.Drawing{}, err
	}

	if !access.CanModify(&drawing, requester) {
		logger.FromContext(ctx).Warn().
			Str("func", "drawingService.ownedDrawing").
			Str("drawing_id", drawingID).
			Str("requester_id", requester.ID).
			Msg("write attempt on foreign drawing reported as not found")
		return models.Drawing{}, ErrDrawingNotFound
	}

	return drawing, nil
}

// conflictWithCurrentTimestamp builds the conflict error for a save that lost
// the race, attaching the latest stored UpdatedAt when it can still be read.
func (s *drawingService) conflictWithCurrentTimestamp(ctx context.Context, drawingID string) error {
	current, err := s.drawingRepository.GetDrawing(ctx, drawingID)
	if err != nil {
		return &ConflictError{}
	}
	return &ConflictError{CurrentUpdatedAt: current.UpdatedAt}
}

// decisionError maps a non-readable access decision to its sentinel error.
func decisionError(decision access.Decision) error {
	switch decision {
	case access.NotFound:
		return ErrDrawingNotFound
	case access.Deleted:
		return ErrDrawingDeleted
	case access.LoginRequired:
		return ErrLoginRequired
	default:
		return ErrForbidden
	}
}
