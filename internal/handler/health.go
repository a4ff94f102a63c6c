package handler

import (
	"context"

	"github.com/arisa-app/castdir/internal/handler/gen"
)

// GetHealth handles GET /healthz. It is a liveness probe only: it touches no
// service, so it answers even while the database is unreachable.
func (s *Server) GetHealth(_ context.Context, _ gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	return gen.GetHealth200JSONResponse{Status: "ok"}, nil
}
