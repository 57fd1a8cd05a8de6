package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sketch-keeper/internal/config"
	"github.com/MKhiriev/go-sketch-keeper/internal/logger"
)

// ClientStorages groups the client-side repositories into a single value that
// can be passed around the mirror store. Currently it holds only
// [LocalDrawingRepository]; additional repositories can be added here as the
// feature set grows.
type ClientStorages struct {
	// DrawingRepository is the SQLite-backed cache of drawing metadata
	// mirrored from the server.
	DrawingRepository LocalDrawingRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It opens the SQLite cache file named by
// cfg.CachePath (creating it if needed), bootstraps the schema and wires a
// fresh [LocalDrawingRepository].
func NewClientStorages(cfg config.Client, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.CachePath, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		DrawingRepository: NewLocalDrawingRepository(db, logger),
	}, nil
}
