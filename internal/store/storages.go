package store

import "github.com/MKhiriev/go-sketch-keeper/internal/logger"

// Storages bundles the server-side repositories handed to the service layer.
type Storages struct {
	DrawingRepository DrawingRepository
}

// NewStorages wires every repository to the shared database connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		DrawingRepository: NewDrawingRepository(db, log),
	}
}
