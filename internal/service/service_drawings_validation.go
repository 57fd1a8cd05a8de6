// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sketch-keeper/internal/access"
	"github.com/MKhiriev/go-sketch-keeper/internal/validators"
	"github.com/MKhiriev/go-sketch-keeper/models"
)

// DrawingValidationService decorates a [DrawingService] with input
// validation: every failed check is reported before the inner service or the
// database is touched. Validation failures wrap the validators package
// sentinels, which the transport layer maps to 400 responses.
type DrawingValidationService struct {
	inner     DrawingService
	validator *validators.DrawingValidator
}

// NewDrawingValidationService constructs a [DrawingServiceWrapper] that
// validates inputs with a [validators.DrawingValidator].
func NewDrawingValidationService() DrawingServiceWrapper {
	return &DrawingValidationService{
		validator: validators.NewDrawingValidator(),
	}
}

// Wrap implements [DrawingServiceWrapper].
func (v *DrawingValidationService) Wrap(inner DrawingService) DrawingService {
	return &DrawingValidationService{
		inner:     inner,
		validator: v.validator,
	}
}

func (v *DrawingValidationService) ListDrawings(ctx context.Context, requester *models.Identity, query models.ListQuery) (models.ListDrawingsResponse, error) {
	// the query is already normalized by ParseListQuery at the edge
	return v.inner.ListDrawings(ctx, requester, query)
}

func (v *DrawingValidationService) CreateDrawing(ctx context.Context, requester *models.Identity, drawingID string, req models.CreateDrawingRequest) (models.Drawing, error) {
	if err := v.validator.ValidateDrawingID(drawingID); err != nil {
		return models.Drawing{}, fmt.Errorf("error during drawing id validation: %w", err)
	}
	if err := v.validator.ValidateCreateRequest(&req); err != nil {
		return models.Drawing{}, fmt.Errorf("error during create request validation: %w", err)
	}

	return v.inner.CreateDrawing(ctx, requester, drawingID, req)
}

func (v *DrawingValidationService) GetDrawing(ctx context.Context, requester *models.Identity, drawingID string) (models.Drawing, access.Decision, error) {
	if err := v.validator.ValidateDrawingID(drawingID); err != nil {
		return models.Drawing{}, access.NotFound, fmt.Errorf("error during drawing id validation: %w", err)
	}

	return v.inner.GetDrawing(ctx, requester, drawingID)
}

func (v *DrawingValidationService) UpdateMetadata(ctx context.Context, requester *models.Identity, drawingID string, patch models.MetadataPatch) (models.Drawing, error) {
	if err := v.validator.ValidateDrawingID(drawingID); err != nil {
		return models.Drawing{}, fmt.Errorf("error during drawing id validation: %w", err)
	}
	if err := v.validator.ValidateMetadataPatch(&patch); err != nil {
		return models.Drawing{}, fmt.Errorf("error during metadata patch validation: %w", err)
	}

	return v.inner.UpdateMetadata(ctx, requester, drawingID, patch)
}

func (v *DrawingValidationService) DeleteDrawing(ctx context.Context, requester *models.Identity, drawingID string) (string, error) {
	if err := v.validator.ValidateDrawingID(drawingID); err != nil {
		return "", fmt.Errorf("error during drawing id validation: %w", err)
	}

	return v.inner.DeleteDrawing(ctx, requester, drawingID)
}

func (v *DrawingValidationService) GetContent(ctx context.Context, requester *models.Identity, drawingID string) (models.DrawingContent, access.Decision, error) {
	if err := v.validator.ValidateDrawingID(drawingID); err != nil {
		return models.DrawingContent{}, access.NotFound, fmt.Errorf("error during drawing id validation: %w", err)
	}

	return v.inner.GetContent(ctx, requester, drawingID)
}

func (v *DrawingValidationService) SaveContent(ctx context.Context, requester *models.Identity, drawingID string, req models.SaveContentRequest) (time.Time, error) {
	if err := v.validator.ValidateDrawingID(drawingID); err != nil {
		return time.Time{}, fmt.Errorf("error during drawing id validation: %w", err)
	}
	if err := v.validator.ValidateSaveContentRequest(&req); err != nil {
		return time.Time{}, fmt.Errorf("error during content request validation: %w", err)
	}

	return v.inner.SaveContent(ctx, requester, drawingID, req)
}
