package handler

import (
	"context"
	"errors"

	"github.com/arisa-app/castdir/internal/domain"
	"github.com/arisa-app/castdir/internal/handler/gen"
)

const (
	castNotFound = "cast not found"
	castDeleted  = "cast deleted"
)

// ListCasts handles GET /api/casts.
// area, serviceType and budgetRange narrow the result by equality; inactive
// casts are returned only for ?includeInactive=true.
func (s *Server) ListCasts(ctx context.Context, req gen.ListCastsRequestObject) (gen.ListCastsResponseObject, error) {
	p := req.Params
	f := domain.NewCastFilter(p.Area, p.ServiceType, p.BudgetRange, isTrue(p.IncludeInactive))

	casts, err := s.casts.List(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make(gen.ListCasts200JSONResponse, len(casts))
	for i, c := range casts {
		out[i] = castToResponse(c)
	}
	return out, nil
}

// CreateCast handles POST /api/casts.
func (s *Server) CreateCast(ctx context.Context, req gen.CreateCastRequestObject) (gen.CreateCastResponseObject, error) {
	if req.Body == nil {
		return gen.CreateCast400JSONResponse{BadRequestJSONResponse: requestBody("request body is required")}, nil
	}

	created, err := s.casts.Create(ctx, requestToCast(req.Body))
	if err != nil {
		if body, ok := badRequestBody(err); ok {
			return gen.CreateCast400JSONResponse{BadRequestJSONResponse: body}, nil
		}
		return nil, err
	}

	return gen.CreateCast201JSONResponse(castToResponse(created)), nil
}

// GetCast handles GET /api/casts/{id}.
func (s *Server) GetCast(ctx context.Context, req gen.GetCastRequestObject) (gen.GetCastResponseObject, error) {
	cast, err := s.casts.GetByID(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetCast404JSONResponse{NotFoundJSONResponse: notFoundBody(castNotFound)}, nil
		}
		return nil, err
	}

	return gen.GetCast200JSONResponse(castToResponse(cast)), nil
}

// UpdateCast handles PATCH /api/casts/{id}. Only the fields present in the
// body change.
func (s *Server) UpdateCast(ctx context.Context, req gen.UpdateCastRequestObject) (gen.UpdateCastResponseObject, error) {
	if req.Body == nil {
		return gen.UpdateCast400JSONResponse{BadRequestJSONResponse: requestBody("request body is required")}, nil
	}

	updated, err := s.casts.Update(ctx, requestToCastPatch(req.Id, req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UpdateCast404JSONResponse{NotFoundJSONResponse: notFoundBody(castNotFound)}, nil
		}
		if body, ok := badRequestBody(err); ok {
			return gen.UpdateCast400JSONResponse{BadRequestJSONResponse: body}, nil
		}
		return nil, err
	}

	return gen.UpdateCast200JSONResponse(castToResponse(updated)), nil
}

// DeleteCast handles DELETE /api/casts/{id}.
func (s *Server) DeleteCast(ctx context.Context, req gen.DeleteCastRequestObject) (gen.DeleteCastResponseObject, error) {
	if err := s.casts.Delete(ctx, req.Id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteCast404JSONResponse{NotFoundJSONResponse: notFoundBody(castNotFound)}, nil
		}
		return nil, err
	}

	return gen.DeleteCast200JSONResponse{DeletedJSONResponse: gen.DeletedJSONResponse{Message: castDeleted}}, nil
}

// --- mapping helpers --------------------------------------------------------

// isTrue reports whether an optional query flag is the literal "true".
func isTrue(s *string) bool {
	return s != nil && *s == "true"
}

func requestToCast(body *gen.CreateCastRequest) domain.Cast {
	return domain.Cast{
		Name:        body.Name,
		SNSLink:     body.SnsLink,
		StoreLink:   body.StoreLink,
		Area:        body.Area,
		ServiceType: domain.ServiceType(body.ServiceType),
		BudgetRange: domain.BudgetRange(body.BudgetRange),
	}
}

func requestToCastPatch(id gen.Id, body *gen.UpdateCastRequest) domain.CastPatch {
	p := domain.CastPatch{
		ID:        id,
		Name:      body.Name,
		SNSLink:   body.SnsLink,
		StoreLink: body.StoreLink,
		Area:      body.Area,
		IsActive:  body.IsActive,
	}
	if body.ServiceType != nil {
		st := domain.ServiceType(*body.ServiceType)
		p.ServiceType = &st
	}
	if body.BudgetRange != nil {
		br := domain.BudgetRange(*body.BudgetRange)
		p.BudgetRange = &br
	}
	return p
}

// castToResponse converts a domain.Cast into the generated gen.Cast type.
func castToResponse(c domain.Cast) gen.Cast {
	return gen.Cast{
		Id:          c.ID,
		Name:        c.Name,
		SnsLink:     c.SNSLink,
		StoreLink:   c.StoreLink,
		Area:        c.Area,
		ServiceType: gen.ServiceType(c.ServiceType),
		BudgetRange: gen.BudgetRange(c.BudgetRange),
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
