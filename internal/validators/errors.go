// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrInvalidDrawingID = errors.New("invalid drawing ID format")

	ErrTitleTooLong       = errors.New("title must be at most 255 characters")
	ErrEmptyTitle         = errors.New("title cannot be empty")
	ErrDescriptionTooLong = errors.New("description must be at most 1000 characters")
	ErrEmptyPatch         = errors.New("at least one field must be provided for update")

	ErrMissingElements = errors.New("elements are required")
	ErrMissingAppState = errors.New("appState is required")
	ErrMissingFiles    = errors.New("files are required")

	ErrInvalidPage     = errors.New("page must be a positive integer")
	ErrInvalidPageSize = errors.New("pageSize must be between 1 and the configured maximum")
)
