package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDrawingNotFound is returned when a query targets a drawing id that
	// does not exist in the database.
	ErrDrawingNotFound = errors.New("drawing was not found")

	// ErrDrawingAlreadyExists is returned when an INSERT of a new drawing
	// fails because a drawing with the same client-generated id is already
	// present.
	ErrDrawingAlreadyExists = errors.New("drawing id already exists")

	// ErrContentNotFound is returned when the content row for an existing
	// drawing is missing. With the schema's cascading foreign key this means
	// the drawing itself is gone.
	ErrContentNotFound = errors.New("drawing content was not found")

	// ErrConcurrentModification is returned when an optimistic-locking check
	// fails: the updated_at timestamp supplied by the caller no longer
	// matches the one stored in the database, meaning another session has
	// saved the drawing since the caller last read it.
	ErrConcurrentModification = errors.New("drawing was modified concurrently")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan drawing row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan drawing rows")

	// ErrEncodingContent is returned when a canvas content section cannot be
	// serialised to JSON for storage in a jsonb column.
	ErrEncodingContent = errors.New("failed to encode drawing content")

	// ErrDecodingContent is returned when a stored jsonb content section
	// cannot be deserialised back into its model form.
	ErrDecodingContent = errors.New("failed to decode drawing content")
)
