// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Drawing is the metadata record of a single canvas.
// The canvas payload itself lives in a separate [DrawingContent] row whose
// lifecycle is tied to the drawing via a cascading delete.
type Drawing struct {
	// ID is the client-generated unique identifier of the drawing.
	// It must be a canonical UUID string and is immutable after creation.
	ID string `json:"id"`

	// OwnerID identifies the user who created the drawing.
	// Immutable after creation; ownership is the sole write permission.
	OwnerID string `json:"ownerId"`

	// Title is the display name. Never empty; defaults to
	// [DefaultDrawingTitle] when omitted at creation.
	Title string `json:"title"`

	// Description is optional free text shown in listings.
	Description *string `json:"description"`

	// IsPinned marks the drawing as pinned in the sidebar.
	IsPinned bool `json:"isPinned"`

	// IsPublic grants read-only access to anyone, including anonymous
	// requesters. It never grants write access.
	IsPublic bool `json:"isPublic"`

	// IsArchived moves the drawing out of the recent view.
	IsArchived bool `json:"isArchived"`

	// IsDeleted marks the drawing as soft-deleted (in trash). A trashed
	// drawing is visible to its owner only, regardless of IsPublic.
	IsDeleted bool `json:"isDeleted"`

	// CreatedAt is set once at creation and never mutated.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is refreshed on every accepted metadata or content
	// mutation. It is the sole basis of the optimistic-lock check on
	// content saves.
	UpdatedAt time.Time `json:"updatedAt"`

	// DeletedAt is non-nil exactly when IsDeleted is true.
	DeletedAt *time.Time `json:"deletedAt"`
}

// DefaultDrawingTitle is assigned when a drawing is created without a title.
const DefaultDrawingTitle = "Untitled Drawing"

// DrawingContent is the canvas payload of a drawing, stored one-to-one with
// its [Drawing] row. The application never interprets the payload fields; they
// are persisted and returned atomically as a unit.
type DrawingContent struct {
	// DrawingID references the owning drawing and is the primary key of
	// the content row.
	DrawingID string `json:"drawingId"`

	// Elements is the ordered sequence of canvas shapes.
	Elements []Element `json:"elements"`

	// AppState is the canvas view and tool state document.
	AppState AppState `json:"appState"`

	// Files holds embedded binary resources addressed by key.
	Files Files `json:"files"`
}

// Element is a single opaque canvas shape.
type Element = map[string]any

// AppState is the opaque canvas view/tool state document.
type AppState = map[string]any

// Files is the opaque embedded-resource document, addressed by key.
type Files = map[string]any

// EmptyAppState returns the baseline app-state document assigned to a drawing
// created without initial content. The defaults mirror the editor's initial
// canvas state.
func EmptyAppState() AppState {
	return AppState{
		"theme":                      "light",
		"viewBackgroundColor":        "#ffffff",
		"currentItemStrokeColor":     "#000000",
		"currentItemBackgroundColor": "transparent",
		"currentItemFillStyle":       "solid",
		"currentItemStrokeWidth":     1,
		"currentItemStrokeStyle":     "solid",
		"currentItemRoughness":       1,
		"currentItemOpacity":         100,
		"currentItemFontFamily":      1,
		"currentItemFontSize":        20,
		"currentItemTextAlign":       "left",
		"gridSize":                   nil,
		"colorPalette":               map[string]any{},
	}
}

// EmptyDrawingContent returns the content row created alongside a drawing when
// the caller supplies no initial content.
func EmptyDrawingContent(drawingID string) DrawingContent {
	return DrawingContent{
		DrawingID: drawingID,
		Elements:  []Element{},
		AppState:  EmptyAppState(),
		Files:     Files{},
	}
}
