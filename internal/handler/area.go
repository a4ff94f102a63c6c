package handler

import (
	"context"
	"errors"

	"github.com/arisa-app/castdir/internal/domain"
	"github.com/arisa-app/castdir/internal/handler/gen"
)

const (
	areaNotFound = "area not found"
	areaDeleted  = "area deleted"
)

// ListAreas handles GET /api/areas. Inactive labels are included; clients
// that only want selectable areas filter on isActive.
func (s *Server) ListAreas(ctx context.Context, _ gen.ListAreasRequestObject) (gen.ListAreasResponseObject, error) {
	areas, err := s.areas.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make(gen.ListAreas200JSONResponse, len(areas))
	for i, a := range areas {
		out[i] = areaToResponse(a)
	}
	return out, nil
}

// CreateArea handles POST /api/areas.
func (s *Server) CreateArea(ctx context.Context, req gen.CreateAreaRequestObject) (gen.CreateAreaResponseObject, error) {
	if req.Body == nil {
		return gen.CreateArea400JSONResponse{BadRequestJSONResponse: requestBody("request body is required")}, nil
	}

	created, err := s.areas.Create(ctx, domain.AreaLabel{
		Key:       req.Body.Key,
		Label:     req.Body.Label,
		SortOrder: req.Body.SortOrder,
	})
	if err != nil {
		if body, ok := badRequestBody(err); ok {
			return gen.CreateArea400JSONResponse{BadRequestJSONResponse: body}, nil
		}
		return nil, err
	}

	return gen.CreateArea201JSONResponse(areaToResponse(created)), nil
}

// GetArea handles GET /api/areas/{id}.
func (s *Server) GetArea(ctx context.Context, req gen.GetAreaRequestObject) (gen.GetAreaResponseObject, error) {
	area, err := s.areas.GetByID(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetArea404JSONResponse{NotFoundJSONResponse: notFoundBody(areaNotFound)}, nil
		}
		return nil, err
	}

	return gen.GetArea200JSONResponse(areaToResponse(area)), nil
}

// UpdateArea handles PATCH /api/areas/{id}.
func (s *Server) UpdateArea(ctx context.Context, req gen.UpdateAreaRequestObject) (gen.UpdateAreaResponseObject, error) {
	if req.Body == nil {
		return gen.UpdateArea400JSONResponse{BadRequestJSONResponse: requestBody("request body is required")}, nil
	}

	updated, err := s.areas.Update(ctx, domain.AreaLabelPatch{
		ID:        req.Id,
		Key:       req.Body.Key,
		Label:     req.Body.Label,
		SortOrder: req.Body.SortOrder,
		IsActive:  req.Body.IsActive,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UpdateArea404JSONResponse{NotFoundJSONResponse: notFoundBody(areaNotFound)}, nil
		}
		if body, ok := badRequestBody(err); ok {
			return gen.UpdateArea400JSONResponse{BadRequestJSONResponse: body}, nil
		}
		return nil, err
	}

	return gen.UpdateArea200JSONResponse(areaToResponse(updated)), nil
}

// DeleteArea handles DELETE /api/areas/{id}.
// A label whose key is still used by a cast is refused with 400 area_in_use.
func (s *Server) DeleteArea(ctx context.Context, req gen.DeleteAreaRequestObject) (gen.DeleteAreaResponseObject, error) {
	if err := s.areas.Delete(ctx, req.Id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteArea404JSONResponse{NotFoundJSONResponse: notFoundBody(areaNotFound)}, nil
		}
		if body, ok := badRequestBody(err); ok {
			return gen.DeleteArea400JSONResponse{BadRequestJSONResponse: body}, nil
		}
		return nil, err
	}

	return gen.DeleteArea200JSONResponse{DeletedJSONResponse: gen.DeletedJSONResponse{Message: areaDeleted}}, nil
}

func areaToResponse(a domain.AreaLabel) gen.AreaLabel {
	return gen.AreaLabel{
		Id:        a.ID,
		Key:       a.Key,
		Label:     a.Label,
		SortOrder: a.Order(),
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
