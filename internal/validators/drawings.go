// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators encodes the input-validation rules of the drawing API:
// the canonical drawing identifier format and the structural bounds of
// create/patch/save/list requests.
//
// Validators are injected into services and handlers so the rules stay
// decoupled from transport and storage.
package validators

import (
	"regexp"
	"strconv"

	"github.com/MKhiriev/go-sketch-keeper/models"
)

const (
	maxTitleLength       = 255
	maxDescriptionLength = 1000

	// DefaultPageSize is applied when a listing request omits pageSize.
	DefaultPageSize = 50

	// MaxPageSize bounds a listing request's pageSize.
	MaxPageSize = 100
)

// canonicalDrawingID matches the hyphenated-hex-groups identifier format:
// RFC 4122 textual form, versions 1 through 5. Every id arriving from
// outside the process is checked against it before storage is touched.
var canonicalDrawingID = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// DrawingValidator validates drawing identifiers and request bodies.
type DrawingValidator struct {
}

func NewDrawingValidator() *DrawingValidator {
	return &DrawingValidator{}
}

// ValidateDrawingID fails fast with [ErrInvalidDrawingID] unless id is a
// canonical drawing identifier. Matching is case-insensitive: the editor
// generates lowercase ids, but uppercase hex spells the same identifier.
func (v *DrawingValidator) ValidateDrawingID(id string) error {
	if !canonicalDrawingID.MatchString(id) {
		return ErrInvalidDrawingID
	}
	return nil
}

// ValidateCreateRequest checks the structural bounds of a create body.
// An empty title is allowed here; the service substitutes the default title.
func (v *DrawingValidator) ValidateCreateRequest(req *models.CreateDrawingRequest) error {
	if len(req.Title) > maxTitleLength {
		return ErrTitleTooLong
	}
	if req.Description != nil && len(*req.Description) > maxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}

// ValidateMetadataPatch checks a PATCH body: at least one field, a non-empty
// bounded title when present, bounded description.
func (v *DrawingValidator) ValidateMetadataPatch(patch *models.MetadataPatch) error {
	if patch.Empty() {
		return ErrEmptyPatch
	}
	if patch.Title != nil {
		if *patch.Title == "" {
			return ErrEmptyTitle
		}
		if len(*patch.Title) > maxTitleLength {
			return ErrTitleTooLong
		}
	}
	if patch.Description != nil && len(*patch.Description) > maxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}

// ValidateSaveContentRequest requires the full content document: the save is
// a whole-document replace, so all three sections must be present. Elements
// may be empty but not absent.
func (v *DrawingValidator) ValidateSaveContentRequest(req *models.SaveContentRequest) error {
	if req.Elements == nil {
		return ErrMissingElements
	}
	if req.AppState == nil {
		return ErrMissingAppState
	}
	if req.Files == nil {
		return ErrMissingFiles
	}
	return nil
}

// ParseListQuery validates and normalizes raw listing query values. Unknown
// categories fall back to recent; empty page/pageSize take defaults; out of
// range values are rejected rather than clamped.
func (v *DrawingValidator) ParseListQuery(rawCategory, rawPage, rawPageSize, rawSearch string) (models.ListQuery, error) {
	query := models.ListQuery{
		Category: models.ParseCategory(rawCategory),
		Page:     1,
		PageSize: DefaultPageSize,
		Search:   rawSearch,
	}

	if rawPage != "" {
		page, err := strconv.Atoi(rawPage)
		if err != nil || page < 1 {
			return models.ListQuery{}, ErrInvalidPage
		}
		query.Page = page
	}

	if rawPageSize != "" {
		pageSize, err := strconv.Atoi(rawPageSize)
		if err != nil || pageSize < 1 || pageSize > MaxPageSize {
			return models.ListQuery{}, ErrInvalidPageSize
		}
		query.PageSize = pageSize
	}

	return query, nil
}
