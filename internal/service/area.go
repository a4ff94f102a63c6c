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

// AreaService implements business logic for AreaLabel operations, including
// the guard that keeps referenced labels from being deleted.
type AreaService struct {
	areas    repo.AreaRepo
	casts    repo.CastRepo
	validate *validator.Validate
}

// NewAreaService constructs an AreaService. The cast repo is only read, to
// report how many casts block a delete.
func NewAreaService(areas repo.AreaRepo, casts repo.CastRepo) *AreaService {
	return &AreaService{areas: areas, casts: casts, validate: newValidator()}
}

// Create validates and persists a new area label.
// Returns domain.ErrValidation for a missing label or malformed key and
// domain.ErrConflict when the key is already used.
func (s *AreaService) Create(ctx context.Context, area domain.AreaLabel) (domain.AreaLabel, error) {
	area.Key = strings.TrimSpace(area.Key)
	area.Label = strings.TrimSpace(area.Label)

	if err := s.validate.Struct(area); err != nil {
		return domain.AreaLabel{}, validationError("service.AreaService.Create", err)
	}

	result, err := s.areas.Create(ctx, area)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.AreaLabel{}, fmt.Errorf("service.AreaService.Create: %w: key %s is already in use", domain.ErrConflict, area.Key)
		}
		return domain.AreaLabel{}, fmt.Errorf("service.AreaService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single area label by ID.
func (s *AreaService) GetByID(ctx context.Context, id uuid.UUID) (domain.AreaLabel, error) {
	result, err := s.areas.GetByID(ctx, id)
	if err != nil {
		return domain.AreaLabel{}, fmt.Errorf("service.AreaService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all area labels in display order.
func (s *AreaService) List(ctx context.Context) ([]domain.AreaLabel, error) {
	areas, err := s.areas.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.AreaService.List: %w", err)
	}
	if areas == nil {
		return []domain.AreaLabel{}, nil
	}
	return areas, nil
}

// Update applies a partial update. A key change keeps the key format and is
// re-checked for uniqueness by the store. Casts that carry the old key are
// not rewritten.
func (s *AreaService) Update(ctx context.Context, patch domain.AreaLabelPatch) (domain.AreaLabel, error) {
	patch.Key = trimPtr(patch.Key)
	patch.Label = trimPtr(patch.Label)

	if err := s.validate.Struct(patch); err != nil {
		return domain.AreaLabel{}, validationError("service.AreaService.Update", err)
	}

	if patch.Key == nil && patch.Label == nil && patch.SortOrder == nil && patch.IsActive == nil {
		return s.GetByID(ctx, patch.ID)
	}

	result, err := s.areas.Update(ctx, patch)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.AreaLabel{}, fmt.Errorf("service.AreaService.Update: %w: key is already in use", domain.ErrConflict)
		}
		return domain.AreaLabel{}, fmt.Errorf("service.AreaService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an area label unless a cast still uses its key.
// Returns domain.ErrNotFound if the label does not exist and domain.ErrInUse
// if at least one cast references it; in both cases nothing is deleted.
func (s *AreaService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.areas.DeleteIfUnused(ctx, id)
	if err != nil {
		return fmt.Errorf("service.AreaService.Delete: %w", err)
	}
	if deleted {
		return nil
	}

	// Nothing was deleted: tell a missing label from a referenced one.
	area, err := s.areas.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service.AreaService.Delete: %w", err)
	}
	n, err := s.casts.CountByArea(ctx, area.Key)
	if err != nil {
		return fmt.Errorf("service.AreaService.Delete: %w", err)
	}
	return fmt.Errorf("service.AreaService.Delete: %w: area %s is used by %d cast(s)", domain.ErrInUse, area.Key, n)
}
