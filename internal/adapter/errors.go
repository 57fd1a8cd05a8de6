package adapter

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrBadRequest corresponds to an HTTP 400 response.
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized corresponds to an HTTP 401 response.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrForbidden corresponds to an HTTP 403 response.
	ErrForbidden = errors.New("access forbidden")
	// ErrNotFound corresponds to an HTTP 404 response.
	ErrNotFound = errors.New("drawing not found")
	// ErrGone corresponds to an HTTP 410 response: the drawing is in trash.
	ErrGone = errors.New("drawing deleted")
	// ErrConflict corresponds to an HTTP 409 response.
	ErrConflict = errors.New("conflict")
	// ErrInternalServerError corresponds to an HTTP 500 response.
	ErrInternalServerError = errors.New("internal server error")
)

// ConflictError is returned for a content-save 409 whose body carries the
// drawing's current server-side timestamp. It unwraps to [ErrConflict].
type ConflictError struct {
	CurrentUpdatedAt time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: drawing was modified at %s", e.CurrentUpdatedAt.Format(time.RFC3339))
}

func (e *ConflictError) Unwrap() error { return ErrConflict }
