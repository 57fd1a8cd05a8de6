// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CreateDrawingRequest is the body of POST /api/drawings/{id}. The drawing id
// itself travels in the URL because it is generated on the client.
type CreateDrawingRequest struct {
	// Title is optional; empty means [DefaultDrawingTitle].
	Title string `json:"title,omitempty"`

	// Description is optional free text.
	Description *string `json:"description,omitempty"`

	// Content optionally seeds the canvas. Missing fields fall back to the
	// empty-canvas defaults.
	Content *InitialContent `json:"content,omitempty"`
}

// InitialContent carries the optional canvas payload of a create request.
type InitialContent struct {
	Elements []Element `json:"elements,omitempty"`
	AppState AppState  `json:"appState,omitempty"`
	Files    Files     `json:"files,omitempty"`
}

// MetadataPatch is the body of PATCH /api/drawings/{id}. Only non-nil fields
// are applied; the server refuses an entirely empty patch.
type MetadataPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	IsPinned    *bool   `json:"isPinned,omitempty"`
	IsPublic    *bool   `json:"isPublic,omitempty"`
	IsArchived  *bool   `json:"isArchived,omitempty"`

	// IsDeleted toggles the soft-delete state. Transitioning to true stamps
	// DeletedAt; transitioning to false clears it.
	IsDeleted *bool `json:"isDeleted,omitempty"`
}

// Empty reports whether the patch carries no fields at all.
func (p *MetadataPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.IsPinned == nil &&
		p.IsPublic == nil && p.IsArchived == nil && p.IsDeleted == nil
}

// SaveContentRequest is the body of PUT /api/drawings/{id}/content. The whole
// content document is replaced; there is no field-level merge.
type SaveContentRequest struct {
	Elements []Element `json:"elements"`
	AppState AppState  `json:"appState"`
	Files    Files     `json:"files"`

	// LastModified is the drawing's UpdatedAt as last observed by the
	// caller. When set, the save is rejected with a conflict if the stored
	// UpdatedAt has moved past it (another session has written since).
	// When nil, the save is an unconditional last-writer-wins replace.
	LastModified *time.Time `json:"lastModified,omitempty"`
}

// ListQuery is the parsed and normalized query string of GET /api/drawings.
type ListQuery struct {
	// Category selects the listing view; defaults to [CategoryRecent].
	Category Category `json:"category"`

	// Page is 1-based.
	Page int `json:"page"`

	// PageSize is bounded by the validator's configured maximum.
	PageSize int `json:"pageSize"`

	// Search is a case-insensitive substring match on Title.
	// Leading/trailing whitespace is trimmed; blank means no filter.
	Search string `json:"search,omitempty"`
}
