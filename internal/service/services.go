package service

import (
	"github.com/MKhiriev/go-sketch-keeper/internal/config"
	"github.com/MKhiriev/go-sketch-keeper/internal/logger"
	"github.com/MKhiriev/go-sketch-keeper/internal/store"
)

// Services bundles the server-side services handed to the HTTP layer. The
// drawing service is wrapped with input validation.
type Services struct {
	DrawingService  DrawingService
	IdentityService IdentityService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	drawingService := NewDrawingService(storages.DrawingRepository, logger)
	drawingService = NewDrawingValidationService().Wrap(drawingService)

	return &Services{
		DrawingService:  drawingService,
		IdentityService: NewIdentityService(cfg.Auth, logger),
	}
}
