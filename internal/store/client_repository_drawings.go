package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sketch-keeper/internal/logger"
	"github.com/MKhiriev/go-sketch-keeper/models"
)

type localDrawingRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalDrawingRepository constructs a [LocalDrawingRepository] backed by
// the client's SQLite cache.
func NewLocalDrawingRepository(db *DB, logger *logger.Logger) LocalDrawingRepository {
	return &localDrawingRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localDrawingRepository) UpsertDrawings(ctx context.Context, drawings ...models.Drawing) error {
	log := logger.FromContext(ctx)

	for _, drawing := range drawings {
		_, err := l.DB.ExecContext(ctx, upsertLocalDrawing,
			drawing.ID,
			drawing.OwnerID,
			drawing.Title,
			drawing.Description,
			drawing.IsPinned,
			drawing.IsPublic,
			drawing.IsArchived,
			drawing.IsDeleted,
			drawing.CreatedAt,
			drawing.UpdatedAt,
			drawing.DeletedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "localDrawingRepository.UpsertDrawings").
				Str("drawing_id", drawing.ID).
				Msg("failed to execute upsert for cached drawing")
			return fmt.Errorf("failed to cache drawing (id=%s): %w", drawing.ID, err)
		}
	}

	return nil
}

func (l *localDrawingRepository) GetDrawing(ctx context.Context, drawingID string) (models.Drawing, error) {
	log := logger.FromContext(ctx)

	drawing, err := scanDrawing(l.DB.QueryRowContext(ctx, getLocalDrawing, drawingID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Drawing{}, ErrDrawingNotFound
		}
		log.Err(err).
			Str("func", "localDrawingRepository.GetDrawing").
			Str("drawing_id", drawingID).
			Msg("failed to query cached drawing")
		return models.Drawing{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return drawing, nil
}

func (l *localDrawingRepository) GetAllDrawings(ctx context.Context) ([]models.Drawing, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getAllLocalDrawings)
	if err != nil {
		log.Err(err).
			Str("func", "localDrawingRepository.GetAllDrawings").
			Msg("failed to query cached drawings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	drawings := make([]models.Drawing, 0, 50)

	for rows.Next() {
		drawing, scanErr := scanDrawing(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localDrawingRepository.GetAllDrawings").
				Msg("failed to scan cached drawing row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		drawings = append(drawings, drawing)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localDrawingRepository.GetAllDrawings").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return drawings, nil
}

// ReplaceAll swaps the whole cache inside a transaction so readers never see
// a half-refreshed mirror.
func (l *localDrawingRepository) ReplaceAll(ctx context.Context, drawings []models.Drawing) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "localDrawingRepository.ReplaceAll").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err = tx.ExecContext(ctx, deleteAllLocalDrawings); err != nil {
		log.Err(err).
			Str("func", "localDrawingRepository.ReplaceAll").
			Msg("failed to clear cached drawings")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for _, drawing := range drawings {
		_, err = tx.ExecContext(ctx, upsertLocalDrawing,
			drawing.ID,
			drawing.OwnerID,
			drawing.Title,
			drawing.Description,
			drawing.IsPinned,
			drawing.IsPublic,
			drawing.IsArchived,
			drawing.IsDeleted,
			drawing.CreatedAt,
			drawing.UpdatedAt,
			drawing.DeletedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "localDrawingRepository.ReplaceAll").
				Str("drawing_id", drawing.ID).
				Msg("failed to insert cached drawing")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "localDrawingRepository.ReplaceAll").
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (l *localDrawingRepository) DeleteDrawing(ctx context.Context, drawingID string) error {
	log := logger.FromContext(ctx)

	if _, err := l.DB.ExecContext(ctx, deleteLocalDrawing, drawingID); err != nil {
		log.Err(err).
			Str("func", "localDrawingRepository.DeleteDrawing").
			Str("drawing_id", drawingID).
			Msg("failed to delete cached drawing")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
