// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-sketch-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDrawingID(t *testing.T) {
	v := NewDrawingValidator()

	valid := []string{
		"11111111-1111-4111-8111-111111111111",
		"a1b2c3d4-e5f6-1a2b-9c3d-0123456789ab",
		"00000000-0000-5000-a000-000000000000",
		"AAAAAAAA-AAAA-4AAA-8AAA-AAAAAAAAAAAA", // uppercase hex spells the same id
		"A1b2C3d4-E5f6-1A2b-9C3d-0123456789AB",
	}
	for _, id := range valid {
		assert.NoError(t, v.ValidateDrawingID(id), id)
	}

	invalid := []string{
		"",
		"not-a-uuid",
		"11111111-1111-4111-8111-11111111111",   // too short
		"11111111-1111-4111-8111-1111111111111", // too long
		"11111111-1111-7111-8111-111111111111",  // version 7 not canonical
		"11111111-1111-4111-c111-111111111111",  // bad variant nibble
		"11111111111141118111111111111111",      // missing hyphens
		"11111111-1111-4111-8111-11111111111Z",
		"11111111-1111-4111-8111-111111111111\n",
	}
	for _, id := range invalid {
		assert.ErrorIs(t, v.ValidateDrawingID(id), ErrInvalidDrawingID, "%q", id)
	}
}

func TestValidateCreateRequest(t *testing.T) {
	v := NewDrawingValidator()

	assert.NoError(t, v.ValidateCreateRequest(&models.CreateDrawingRequest{}))
	assert.NoError(t, v.ValidateCreateRequest(&models.CreateDrawingRequest{Title: "My Sketch"}))

	longTitle := strings.Repeat("x", 256)
	assert.ErrorIs(t,
		v.ValidateCreateRequest(&models.CreateDrawingRequest{Title: longTitle}),
		ErrTitleTooLong)

	longDescription := strings.Repeat("x", 1001)
	assert.ErrorIs(t,
		v.ValidateCreateRequest(&models.CreateDrawingRequest{Description: &longDescription}),
		ErrDescriptionTooLong)
}

func TestValidateMetadataPatch(t *testing.T) {
	v := NewDrawingValidator()

	assert.ErrorIs(t, v.ValidateMetadataPatch(&models.MetadataPatch{}), ErrEmptyPatch)

	empty := ""
	assert.ErrorIs(t,
		v.ValidateMetadataPatch(&models.MetadataPatch{Title: &empty}),
		ErrEmptyTitle)

	long := strings.Repeat("x", 256)
	assert.ErrorIs(t,
		v.ValidateMetadataPatch(&models.MetadataPatch{Title: &long}),
		ErrTitleTooLong)

	pinned := true
	assert.NoError(t, v.ValidateMetadataPatch(&models.MetadataPatch{IsPinned: &pinned}))

	title := "Renamed"
	assert.NoError(t, v.ValidateMetadataPatch(&models.MetadataPatch{Title: &title}))
}

func TestValidateSaveContentRequest(t *testing.T) {
	v := NewDrawingValidator()

	full := &models.SaveContentRequest{
		Elements: []models.Element{},
		AppState: models.AppState{},
		Files:    models.Files{},
	}
	assert.NoError(t, v.ValidateSaveContentRequest(full))

	assert.ErrorIs(t, v.ValidateSaveContentRequest(&models.SaveContentRequest{
		AppState: models.AppState{}, Files: models.Files{},
	}), ErrMissingElements)
	assert.ErrorIs(t, v.ValidateSaveContentRequest(&models.SaveContentRequest{
		Elements: []models.Element{}, Files: models.Files{},
	}), ErrMissingAppState)
	assert.ErrorIs(t, v.ValidateSaveContentRequest(&models.SaveContentRequest{
		Elements: []models.Element{}, AppState: models.AppState{},
	}), ErrMissingFiles)
}

func TestParseListQuery_Defaults(t *testing.T) {
	v := NewDrawingValidator()

	query, err := v.ParseListQuery("", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryRecent, query.Category)
	assert.Equal(t, 1, query.Page)
	assert.Equal(t, DefaultPageSize, query.PageSize)
	assert.Empty(t, query.Search)
}

func TestParseListQuery_Values(t *testing.T) {
	v := NewDrawingValidator()

	query, err := v.ParseListQuery("trash", "3", "25", "wireframe")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryTrash, query.Category)
	assert.Equal(t, 3, query.Page)
	assert.Equal(t, 25, query.PageSize)
	assert.Equal(t, "wireframe", query.Search)
}

func TestParseListQuery_Invalid(t *testing.T) {
	v := NewDrawingValidator()

	_, err := v.ParseListQuery("", "0", "", "")
	assert.ErrorIs(t, err, ErrInvalidPage)

	_, err = v.ParseListQuery("", "-1", "", "")
	assert.ErrorIs(t, err, ErrInvalidPage)

	_, err = v.ParseListQuery("", "x", "", "")
	assert.ErrorIs(t, err, ErrInvalidPage)

	_, err = v.ParseListQuery("", "", "0", "")
	assert.ErrorIs(t, err, ErrInvalidPageSize)

	_, err = v.ParseListQuery("", "", "101", "")
	assert.ErrorIs(t, err, ErrInvalidPageSize)
}
