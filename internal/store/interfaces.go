package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-sketch-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store.go -package=mock

// DrawingRepository is the server-side persistence contract for drawings and
// their canvas content.
//
// Ownership is not enforced here: methods address drawings by id and return
// whatever is stored. Access decisions belong to the service layer, which
// reads the drawing first and evaluates the requester against it.
type DrawingRepository interface {
	// GetDrawing returns the drawing with the given id, including soft-deleted
	// ones. Returns [ErrDrawingNotFound] when no row matches.
	GetDrawing(ctx context.Context, drawingID string) (models.Drawing, error)

	// DrawingExists reports whether a drawing with the given id exists,
	// regardless of its lifecycle state.
	DrawingExists(ctx context.Context, drawingID string) (bool, error)

	// CreateDrawingWithContent inserts a new drawing row and its content row
	// in a single transaction. Returns [ErrDrawingAlreadyExists] when the id
	// is already taken.
	CreateDrawingWithContent(ctx context.Context, drawing models.Drawing, content models.DrawingContent) (models.Drawing, error)

	// ListDrawings returns one page of the owner's drawings matching the
	// category and search filters, newest update first.
	ListDrawings(ctx context.Context, ownerID string, query models.ListQuery) ([]models.Drawing, error)

	// CountDrawings returns the total number of the owner's drawings matching
	// the category and search filters, ignoring pagination.
	CountDrawings(ctx context.Context, ownerID string, query models.ListQuery) (int64, error)

	// UpdateMetadata applies the non-nil fields of patch to the drawing and
	// bumps updated_at. Toggling IsDeleted stamps or clears deleted_at.
	// Returns the updated row, or [ErrDrawingNotFound].
	UpdateMetadata(ctx context.Context, drawingID string, patch models.MetadataPatch) (models.Drawing, error)

	// GetContent returns the canvas content of the drawing.
	// Returns [ErrContentNotFound] when no content row exists.
	GetContent(ctx context.Context, drawingID string) (models.DrawingContent, error)

	// ReplaceContent overwrites the drawing's content document and bumps the
	// drawing's updated_at, both in one transaction. The bump is conditional
	// on updated_at still equalling observedUpdatedAt; when another session
	// has written in between, [ErrConcurrentModification] is returned and
	// nothing is changed. The new updated_at is returned on success.
	ReplaceContent(ctx context.Context, content models.DrawingContent, observedUpdatedAt time.Time) (time.Time, error)

	// DeleteDrawing permanently removes the drawing; the content row goes
	// with it via the cascading foreign key. Returns the deleted id, or
	// [ErrDrawingNotFound].
	DeleteDrawing(ctx context.Context, drawingID string) (string, error)
}

// ErrorClassificator decides whether a failed database operation is transient
// and worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
