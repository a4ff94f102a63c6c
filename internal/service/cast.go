// Package service contains the business logic for the cast directory.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here: services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/arisa-app/castdir/internal/domain"
	"github.com/arisa-app/castdir/internal/repo"
)

// CastService implements business logic for Cast operations.
type CastService struct {
	casts    repo.CastRepo
	validate *validator.Validate
}

// NewCastService constructs a CastService backed by the provided CastRepo.
func NewCastService(r repo.CastRepo) *CastService {
	return &CastService{casts: r, validate: newValidator()}
}

// Create validates and persists a new cast.
// Returns domain.ErrValidation for missing or malformed fields and
// domain.ErrConflict when the SNS link is already registered.
func (s *CastService) Create(ctx context.Context, cast domain.Cast) (domain.Cast, error) {
	cast.Name = strings.TrimSpace(cast.Name)
	cast.SNSLink = strings.TrimSpace(cast.SNSLink)
	cast.Area = strings.TrimSpace(cast.Area)
	cast.StoreLink = trimPtr(cast.StoreLink)
	if cast.StoreLink != nil && *cast.StoreLink == "" {
		cast.StoreLink = nil
	}

	if err := s.validate.Struct(cast); err != nil {
		return domain.Cast{}, validationError("service.CastService.Create", err)
	}

	result, err := s.casts.Create(ctx, cast)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.Cast{}, fmt.Errorf("service.CastService.Create: %w: snsLink %s is already registered", domain.ErrConflict, cast.SNSLink)
		}
		return domain.Cast{}, fmt.Errorf("service.CastService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single cast by ID.
func (s *CastService) GetByID(ctx context.Context, id uuid.UUID) (domain.Cast, error) {
	result, err := s.casts.GetByID(ctx, id)
	if err != nil {
		return domain.Cast{}, fmt.Errorf("service.CastService.GetByID: %w", err)
	}
	return result, nil
}

// List returns every cast matching the filter, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *CastService) List(ctx context.Context, f domain.CastFilter) ([]domain.Cast, error) {
	casts, err := s.casts.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("service.CastService.List: %w", err)
	}
	if casts == nil {
		return []domain.Cast{}, nil
	}
	return casts, nil
}

// Update applies a partial update. Only the fields present in the patch are
// checked, and only for shape (URL, enum membership, non-empty).
// An empty patch returns the current record unchanged.
func (s *CastService) Update(ctx context.Context, patch domain.CastPatch) (domain.Cast, error) {
	patch.Name = trimPtr(patch.Name)
	patch.SNSLink = trimPtr(patch.SNSLink)
	patch.Area = trimPtr(patch.Area)
	patch.StoreLink = trimPtr(patch.StoreLink)

	if err := s.validate.Struct(patch); err != nil {
		return domain.Cast{}, validationError("service.CastService.Update", err)
	}
	if patch.StoreLink != nil && *patch.StoreLink != "" {
		if err := s.validate.Var(*patch.StoreLink, "url"); err != nil {
			return domain.Cast{}, fmt.Errorf("service.CastService.Update: %w: storeLink must be a valid URL", domain.ErrValidation)
		}
	}

	if patch.Empty() {
		return s.GetByID(ctx, patch.ID)
	}

	result, err := s.casts.Update(ctx, patch)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.Cast{}, fmt.Errorf("service.CastService.Update: %w: snsLink is already registered", domain.ErrConflict)
		}
		return domain.Cast{}, fmt.Errorf("service.CastService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a cast. Nothing references casts, so there is no guard.
func (s *CastService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.casts.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.CastService.Delete: %w", err)
	}
	return nil
}
