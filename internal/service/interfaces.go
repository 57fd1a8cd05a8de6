package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-sketch-keeper/internal/access"
	"github.com/MKhiriev/go-sketch-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// DrawingService is the lifecycle manager for drawings: it evaluates access,
// applies state transitions and mediates every read and write between the
// HTTP layer and the repository.
//
// The requester parameter is nil for anonymous calls. Read operations return
// the evaluated [access.Decision] alongside the data so the transport layer
// can report how access was granted; write operations hide other users'
// drawings behind [ErrDrawingNotFound].
type DrawingService interface {
	ListDrawings(ctx context.Context, requester *models.Identity, query models.ListQuery) (models.ListDrawingsResponse, error)
	CreateDrawing(ctx context.Context, requester *models.Identity, drawingID string, req models.CreateDrawingRequest) (models.Drawing, error)
	GetDrawing(ctx context.Context, requester *models.Identity, drawingID string) (models.Drawing, access.Decision, error)
	UpdateMetadata(ctx context.Context, requester *models.Identity, drawingID string, patch models.MetadataPatch) (models.Drawing, error)
	DeleteDrawing(ctx context.Context, requester *models.Identity, drawingID string) (string, error)

	GetContent(ctx context.Context, requester *models.Identity, drawingID string) (models.DrawingContent, access.Decision, error)
	SaveContent(ctx context.Context, requester *models.Identity, drawingID string, req models.SaveContentRequest) (time.Time, error)
}

// IdentityService verifies bearer tokens issued by the external auth provider
// and resolves them to requester identities.
type IdentityService interface {
	ParseToken(ctx context.Context, tokenString string) (*models.Identity, error)
}

// DrawingServiceWrapper defines middleware composition for DrawingService.
// Implementations wrap an existing DrawingService to add behavior such as
// validating inputs before they reach the core service.
type DrawingServiceWrapper interface {
	Wrap(DrawingService) DrawingService
}
