// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sketch-keeper/internal/logger"
	"github.com/MKhiriev/go-sketch-keeper/models"
)

// drawingRepository is the PostgreSQL-backed implementation of
// [DrawingRepository]. It executes all drawing CRUD operations against the
// "drawings" and "drawing_contents" tables using the embedded [*DB]
// connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (drawing_id, owner_id, category, etc.).
type drawingRepository struct {
	*DB
	logger *logger.Logger
}

// NewDrawingRepository constructs a [DrawingRepository] backed by the provided
// database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewDrawingRepository(db *DB, logger *logger.Logger) DrawingRepository {
	return &drawingRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanDrawing reads one row in [drawingColumns] order.
func scanDrawing(row rowScanner) (models.Drawing, error) {
	var drawing models.Drawing

	err := row.Scan(
		&drawing.ID,
		&drawing.OwnerID,
		&drawing.Title,
		&drawing.Description,
		&drawing.IsPinned,
		&drawing.IsPublic,
		&drawing.IsArchived,
		&drawing.IsDeleted,
		&drawing.CreatedAt,
		&drawing.UpdatedAt,
		&drawing.DeletedAt,
	)

	return drawing, err
}

// GetDrawing retrieves a single drawing by id, including soft-deleted ones.
//
// Returns [ErrDrawingNotFound] when no row matches.
func (r *drawingRepository) GetDrawing(ctx context.Context, drawingID string) (models.Drawing, error) {
	log := logger.FromContext(ctx)

	drawing, err := scanDrawing(r.DB.QueryRowContext(ctx, getDrawing, drawingID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Drawing{}, ErrDrawingNotFound
		}
		log.Err(err).
			Str("func", "drawingRepository.GetDrawing").
			Str("drawing_id", drawingID).
			Msg("failed to execute query for getting drawing")
		return models.Drawing{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return drawing, nil
}

// DrawingExists reports whether a drawing with the given id exists, regardless
// of its lifecycle state.
func (r *drawingRepository) DrawingExists(ctx context.Context, drawingID string) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	if err := r.DB.QueryRowContext(ctx, drawingExists, drawingID).Scan(&exists); err != nil {
		log.Err(err).
			Str("func", "drawingRepository.DrawingExists").
			Str("drawing_id", drawingID).
			Msg("failed to execute existence query")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

// CreateDrawingWithContent inserts the drawing row and its content row in a
// single transaction, so a drawing can never exist without canvas content.
//
// Returns [ErrDrawingAlreadyExists] when the client-generated id is already
// taken, identified via the unique-violation code of the pgx driver.
func (r *drawingRepository) CreateDrawingWithContent(ctx context.Context, drawing models.Drawing, content models.DrawingContent) (models.Drawing, error) {
	log := logger.FromContext(ctx)

	elements, appState, files, err := encodeContentSections(content)
	if err != nil {
		log.Err(err).
			Str("func", "drawingRepository.CreateDrawingWithContent").
			Str("drawing_id", drawing.ID).
			Msg("failed to encode initial drawing content")
		return models.Drawing{}, err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "drawingRepository.CreateDrawingWithContent").
			Str("drawing_id", drawing.ID).
			Msg("failed to begin transaction")
		return models.Drawing{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	created, err := scanDrawing(tx.QueryRowContext(ctx, createDrawing,
		drawing.ID,
		drawing.OwnerID,
		drawing.Title,
		drawing.Description,
		drawing.IsPinned,
		drawing.IsPublic,
		drawing.IsArchived,
		drawing.IsDeleted,
	))
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn().
				Str("func", "drawingRepository.CreateDrawingWithContent").
				Str("drawing_id", drawing.ID).
				Msg("drawing id already exists")
			return models.Drawing{}, ErrDrawingAlreadyExists
		}
		log.Err(err).
			Str("func", "drawingRepository.CreateDrawingWithContent").
			Str("drawing_id", drawing.ID).
			Msg("failed to insert drawing row")
		return models.Drawing{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err = tx.ExecContext(ctx, createContent, drawing.ID, elements, appState, files); err != nil {
		log.Err(err).
			Str("func", "drawingRepository.CreateDrawingWithContent").
			Str("drawing_id", drawing.ID).
			Msg("failed to insert drawing content row")
		return models.Drawing{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "drawingRepository.CreateDrawingWithContent").
			Str("drawing_id", drawing.ID).
			Msg("failed to commit transaction")
		return models.Drawing{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return created, nil
}

// ListDrawings returns one page of the owner's drawings matching the category
// and search filters, ordered by updated_at descending.
func (r *drawingRepository) ListDrawings(ctx context.Context, ownerID string, query models.ListQuery) ([]models.Drawing, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildListDrawingsQuery(ownerID, query)
	if err != nil {
		log.Err(err).
			Str("func", "drawingRepository.ListDrawings").
			Str("owner_id", ownerID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).
			Str("func", "drawingRepository.ListDrawings").
			Str("owner_id", ownerID).
			Str("category", string(query.Category)).
			Msg("failed to execute query for listing drawings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	drawings := make([]models.Drawing, 0, query.PageSize)

	for rows.Next() {
		drawing, scanErr := scanDrawing(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "drawingRepository.ListDrawings").
				Str("owner_id", ownerID).
				Msg("failed to scan drawing row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		drawings = append(drawings, drawing)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "drawingRepository.ListDrawings").
			Str("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return drawings, nil
}

// CountDrawings returns the total number of the owner's drawings matching the
// category and search filters, ignoring pagination.
func (r *drawingRepository) CountDrawings(ctx context.Context, ownerID string, query models.ListQuery) (int64, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildCountDrawingsQuery(ownerID, query)
	if err != nil {
		log.Err(err).
			Str("func", "drawingRepository.CountDrawings").
			Str("owner_id", ownerID).
			Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = r.DB.QueryRowContext(ctx, sqlQuery, args...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "drawingRepository.CountDrawings").
			Str("owner_id", ownerID).
			Str("category", string(query.Category)).
			Msg("failed to execute count query")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// UpdateMetadata applies the non-nil fields of patch to the drawing and bumps
// updated_at. Toggling IsDeleted stamps or clears deleted_at in the same
// statement.
//
// Returns the updated row, or [ErrDrawingNotFound] when the id does not exist.
func (r *drawingRepository) UpdateMetadata(ctx context.Context, drawingID string, patch models.MetadataPatch) (models.Drawing, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildUpdateMetadataQuery(drawingID, patch, time.Now().UTC())
	if err != nil {
		log.Err(err).
			Str("func", "drawingRepository.UpdateMetadata").
			Str("drawing_id", drawingID).
			Msg("failed to create query")
		return models.Drawing{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanDrawing(r.DB.QueryRowContext(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Drawing{}, ErrDrawingNotFound
		}
		log.Err(err).
			Str("func", "drawingRepository.UpdateMetadata").
			Str("drawing_id", drawingID).
			Msg("failed to execute metadata update")
		return models.Drawing{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// GetContent retrieves the canvas content document of the drawing.
//
// Returns [ErrContentNotFound] when no content row exists.
func (r *drawingRepository) GetContent(ctx context.Context, drawingID string) (models.DrawingContent, error) {
	log := logger.FromContext(ctx)

	var (
		content  models.DrawingContent
		elements []byte
		appState []byte
		files    []byte
	)

	err := r.DB.QueryRowContext(ctx, getContent, drawingID).
		Scan(&content.DrawingID, &elements, &appState, &files)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DrawingContent{}, ErrContentNotFound
		}
		log.Err(err).
			Str("func", "drawingRepository.GetContent").
			Str("drawing_id", drawingID).
			Msg("failed to execute query for getting drawing content")
		return models.DrawingContent{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = decodeContentSections(elements, appState, files, &content); err != nil {
		log.Err(err).
			Str("func", "drawingRepository.GetContent").
			Str("drawing_id", drawingID).
			Msg("failed to decode stored drawing content")
		return models.DrawingContent{}, err
	}

	return content, nil
}

// ReplaceContent overwrites the drawing's content document and bumps the
// drawing's updated_at in one transaction.
//
// The bump is conditional: the UPDATE on the drawings row matches on the
// updated_at value the caller observed when it last read the drawing. When
// another session has saved in between, the conditional UPDATE matches no row
// and the whole transaction rolls back with [ErrConcurrentModification].
//
// A transaction that fails with a transient driver error (connection loss,
// deadlock, serialization failure) is retried once.
func (r *drawingRepository) ReplaceContent(ctx context.Context, content models.DrawingContent, observedUpdatedAt time.Time) (time.Time, error) {
	log := logger.FromContext(ctx)

	updatedAt, err := r.replaceContentTx(ctx, content, observedUpdatedAt)
	if err != nil && r.errorClassificator.Classify(err) == Retryable {
		log.Warn().
			Str("func", "drawingRepository.ReplaceContent").
			Str("drawing_id", content.DrawingID).
			Msg("retrying content save after transient database error")
		updatedAt, err = r.replaceContentTx(ctx, content, observedUpdatedAt)
	}

	return updatedAt, err
}

// replaceContentTx performs one attempt of the content-save transaction.
func (r *drawingRepository) replaceContentTx(ctx context.Context, content models.DrawingContent, observedUpdatedAt time.Time) (time.Time, error) {
	log := logger.FromContext(ctx)

	elements, appState, files, err := encodeContentSections(content)
	if err != nil {
		log.Err(err).
			Str("func", "drawingRepository.replaceContentTx").
			Str("drawing_id", content.DrawingID).
			Msg("failed to encode drawing content")
		return time.Time{}, err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "drawingRepository.replaceContentTx").
			Str("drawing_id", content.DrawingID).
			Msg("failed to begin transaction")
		return time.Time{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	result, err := tx.ExecContext(ctx, replaceContent, content.DrawingID, elements, appState, files)
	if err != nil {
		log.Err(err).
			Str("func", "drawingRepository.replaceContentTx").
			Str("drawing_id", content.DrawingID).
			Msg("failed to replace drawing content")
		return time.Time{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Warn().
			Str("func", "drawingRepository.replaceContentTx").
			Str("drawing_id", content.DrawingID).
			Msg("no content row to replace")
		return time.Time{}, ErrContentNotFound
	}

	var newUpdatedAt time.Time
	err = tx.QueryRowContext(ctx, touchDrawing, content.DrawingID, observedUpdatedAt).Scan(&newUpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().
				Str("func", "drawingRepository.replaceContentTx").
				Str("drawing_id", content.DrawingID).
				Time("observed_updated_at", observedUpdatedAt).
				Msg("updated_at moved since the caller's read, aborting save")
			return time.Time{}, ErrConcurrentModification
		}
		log.Err(err).
			Str("func", "drawingRepository.replaceContentTx").
			Str("drawing_id", content.DrawingID).
			Msg("failed to bump drawing updated_at")
		return time.Time{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "drawingRepository.replaceContentTx").
			Str("drawing_id", content.DrawingID).
			Msg("failed to commit transaction")
		return time.Time{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return newUpdatedAt, nil
}

// DeleteDrawing permanently removes the drawing; the content row goes with it
// via the cascading foreign key.
//
// Returns the deleted id, or [ErrDrawingNotFound] when the id does not exist.
func (r *drawingRepository) DeleteDrawing(ctx context.Context, drawingID string) (string, error) {
	log := logger.FromContext(ctx)

	var deletedID string
	if err := r.DB.QueryRowContext(ctx, deleteDrawing, drawingID).Scan(&deletedID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrDrawingNotFound
		}
		log.Err(err).
			Str("func", "drawingRepository.DeleteDrawing").
			Str("drawing_id", drawingID).
			Msg("failed to execute delete statement")
		return "", fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deletedID, nil
}

// encodeContentSections serialises the three canvas sections for storage in
// jsonb columns. A nil elements slice is stored as an empty array so that
// reads never produce null where the canvas expects a list.
func encodeContentSections(content models.DrawingContent) (elements, appState, files []byte, err error) {
	sectionElements := content.Elements
	if sectionElements == nil {
		sectionElements = []models.Element{}
	}
	sectionAppState := content.AppState
	if sectionAppState == nil {
		sectionAppState = models.AppState{}
	}
	sectionFiles := content.Files
	if sectionFiles == nil {
		sectionFiles = models.Files{}
	}

	if elements, err = json.Marshal(sectionElements); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %w", ErrEncodingContent, err)
	}
	if appState, err = json.Marshal(sectionAppState); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %w", ErrEncodingContent, err)
	}
	if files, err = json.Marshal(sectionFiles); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %w", ErrEncodingContent, err)
	}

	return elements, appState, files, nil
}

// decodeContentSections deserialises the stored jsonb sections into content.
func decodeContentSections(elements, appState, files []byte, content *models.DrawingContent) error {
	if err := json.Unmarshal(elements, &content.Elements); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingContent, err)
	}
	if err := json.Unmarshal(appState, &content.AppState); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingContent, err)
	}
	if err := json.Unmarshal(files, &content.Files); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingContent, err)
	}
	return nil
}
