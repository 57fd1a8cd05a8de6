package service

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrDrawingNotFound is returned when the drawing does not exist — or
	// when a write targets a drawing the requester does not own, so that
	// foreign drawings are indistinguishable from absent ones.
	ErrDrawingNotFound = errors.New("drawing was not found")

	// ErrDrawingDeleted is returned when a non-owner reads a trashed drawing.
	ErrDrawingDeleted = errors.New("drawing was deleted")

	// ErrLoginRequired is returned when an anonymous requester reads a
	// private drawing.
	ErrLoginRequired = errors.New("login required")

	// ErrForbidden is returned when an authenticated requester reads another
	// user's private drawing.
	ErrForbidden = errors.New("access forbidden")

	// ErrDrawingAlreadyExists is returned when a create request reuses a
	// drawing id that is already taken.
	ErrDrawingAlreadyExists = errors.New("drawing id already exists")

	// ErrDrawingInTrash is returned when a content save targets a
	// soft-deleted drawing. The drawing must be restored first.
	ErrDrawingInTrash = errors.New("cannot save content to a deleted drawing")

	// ErrInvalidToken is returned when a bearer token fails verification.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenIsExpired is returned when a bearer token has expired.
	ErrTokenIsExpired = errors.New("token is expired")
)

// ConflictError reports a rejected content save: the drawing has been
// modified since the caller last observed it. CurrentUpdatedAt carries the
// authoritative timestamp so the client can reload before retrying.
type ConflictError struct {
	CurrentUpdatedAt time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("drawing was modified at %s, reload before saving", e.CurrentUpdatedAt.Format(time.RFC3339))
}
