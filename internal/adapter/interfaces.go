// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the go-sketch-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the client's
// mirror store from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-sketch-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// go-sketch-keeper server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// ListDrawings fetches one page of the caller's drawings filtered by
	// query.Category and query.Search.
	ListDrawings(ctx context.Context, query models.ListQuery) (models.ListDrawingsResponse, error)

	// GetDrawing fetches the metadata of a single drawing together with the
	// server's access verdict for the current caller.
	GetDrawing(ctx context.Context, drawingID string) (models.GetDrawingResponse, error)

	// GetContent fetches the full canvas document of a drawing.
	GetContent(ctx context.Context, drawingID string) (models.DrawingContent, error)

	// CreateDrawing registers a new drawing under a client-generated id.
	// Returns [ErrConflict] (wrapped) if the id is already taken.
	CreateDrawing(ctx context.Context, drawingID string, req models.CreateDrawingRequest) (models.Drawing, error)

	// UpdateMetadata applies a partial metadata patch to an owned drawing and
	// returns the updated record.
	UpdateMetadata(ctx context.Context, drawingID string, patch models.MetadataPatch) (models.Drawing, error)

	// SaveContent replaces the canvas document of an owned drawing. Returns a
	// *[ConflictError] when the server rejects the save because another
	// session has written since req.LastModified; on success returns the new
	// authoritative UpdatedAt.
	SaveContent(ctx context.Context, drawingID string, req models.SaveContentRequest) (models.SaveContentResponse, error)

	// DeleteDrawing permanently removes an owned drawing and its content.
	DeleteDrawing(ctx context.Context, drawingID string) (string, error)
}
