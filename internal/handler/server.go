// Package handler implements the HTTP handlers for the cast directory API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into domain-specific files (health.go, cast.go, etc.) but
// all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/arisa-app/castdir/internal/domain"
)

// CastServicer defines the business operations the cast handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type CastServicer interface {
	Create(ctx context.Context, cast domain.Cast) (domain.Cast, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Cast, error)
	List(ctx context.Context, f domain.CastFilter) ([]domain.Cast, error)
	Update(ctx context.Context, patch domain.CastPatch) (domain.Cast, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AreaServicer defines the business operations the area label handlers depend on.
type AreaServicer interface {
	Create(ctx context.Context, area domain.AreaLabel) (domain.AreaLabel, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.AreaLabel, error)
	List(ctx context.Context) ([]domain.AreaLabel, error)
	Update(ctx context.Context, patch domain.AreaLabelPatch) (domain.AreaLabel, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ExportServicer defines the operation the export handler depends on.
type ExportServicer interface {
	Export(ctx context.Context, includeInactive bool) ([]domain.ExportRow, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via NewHTTPHandler.
type Server struct {
	casts  CastServicer
	areas  AreaServicer
	export ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(casts CastServicer, areas AreaServicer, export ExportServicer) *Server {
	return &Server{casts: casts, areas: areas, export: export}
}
