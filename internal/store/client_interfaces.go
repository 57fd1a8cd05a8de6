package store

import (
	"context"

	"github.com/MKhiriev/go-sketch-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalDrawingRepository is the low-level local metadata cache of the client.
// It holds a mirror of the drawings the server last reported, so listing and
// filtering keep working between refreshes.
type LocalDrawingRepository interface {
	// UpsertDrawings inserts or replaces the given drawings by id.
	UpsertDrawings(ctx context.Context, drawings ...models.Drawing) error

	// GetDrawing returns the cached drawing with the given id.
	// Returns [ErrDrawingNotFound] when the cache has no such row.
	GetDrawing(ctx context.Context, drawingID string) (models.Drawing, error)

	// GetAllDrawings returns every cached drawing, newest update first.
	GetAllDrawings(ctx context.Context) ([]models.Drawing, error)

	// ReplaceAll atomically swaps the whole cache for the given set,
	// used after a full refresh from the server.
	ReplaceAll(ctx context.Context, drawings []models.Drawing) error

	// DeleteDrawing removes one cached row. Deleting an absent id is a no-op.
	DeleteDrawing(ctx context.Context, drawingID string) error
}
