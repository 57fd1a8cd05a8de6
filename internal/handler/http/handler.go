package http

import (
	"github.com/MKhiriev/go-sketch-keeper/internal/logger"
	"github.com/MKhiriev/go-sketch-keeper/internal/service"
	"github.com/MKhiriev/go-sketch-keeper/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator *validators.DrawingValidator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewDrawingValidator(),
		logger:    logger,
	}
}
