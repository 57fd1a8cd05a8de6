// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client's drawing mirror store.
//
// The mirror keeps a local copy of the user's drawing metadata so the UI can
// list, filter, and toggle drawings without a round trip per keystroke.
// Mutations are applied optimistically: the local copy is updated first, the
// server call follows, and the local copy is reverted if the server refuses.
// Permanent deletion is the exception: it is confirm-first and only removes
// the local row once the server has acknowledged.
package client

import (
	"context"

	"github.com/MKhiriev/go-sketch-keeper/models"
)

// MirrorStore is the client-side view of the user's drawings. All reads are
// served from the in-memory mirror; mutations propagate to the server in the
// same call.
type MirrorStore interface {
	// Load seeds the in-memory mirror from the local cache, so a previous
	// session's listing is available before the first server round trip.
	Load(ctx context.Context) error

	// Refresh replaces the mirror with the server's current state and
	// persists it to the local cache.
	Refresh(ctx context.Context) error

	// Drawings returns the mirrored drawings belonging to the given category,
	// optionally filtered by a case-insensitive title substring, ordered by
	// UpdatedAt descending.
	Drawings(category models.Category, search string) []models.Drawing

	// GetDrawing returns one mirrored drawing by id.
	GetDrawing(drawingID string) (models.Drawing, bool)

	// GetContent fetches the full canvas document from the server. Content is
	// never cached locally.
	GetContent(ctx context.Context, drawingID string) (models.DrawingContent, error)

	// CreateDrawing registers a new drawing under a locally generated id and
	// mirrors the server's record.
	CreateDrawing(ctx context.Context, req models.CreateDrawingRequest) (models.Drawing, error)

	// UpdateMetadata applies a metadata patch optimistically and reverts the
	// mirror if the server refuses.
	UpdateMetadata(ctx context.Context, drawingID string, patch models.MetadataPatch) (models.Drawing, error)

	// TogglePinned, TogglePublic and ToggleArchived flip the corresponding
	// flag relative to the mirrored value.
	TogglePinned(ctx context.Context, drawingID string) (models.Drawing, error)
	TogglePublic(ctx context.Context, drawingID string) (models.Drawing, error)
	ToggleArchived(ctx context.Context, drawingID string) (models.Drawing, error)

	// SoftDelete moves a drawing to trash; Restore brings it back.
	SoftDelete(ctx context.Context, drawingID string) (models.Drawing, error)
	Restore(ctx context.Context, drawingID string) (models.Drawing, error)

	// PermanentlyDelete removes a drawing and its content for good. It is not
	// optimistic: the server is asked first, and on failure the mirror is
	// resynchronized instead of guessing.
	PermanentlyDelete(ctx context.Context, drawingID string) error

	// SaveContent replaces the canvas document on the server and advances the
	// mirrored UpdatedAt on success.
	SaveContent(ctx context.Context, drawingID string, req models.SaveContentRequest) (models.SaveContentResponse, error)

	// Reset clears the mirror and the local cache, used on sign-out.
	Reset(ctx context.Context) error
}
