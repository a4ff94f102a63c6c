package service

import (
	"context"
	"fmt"

	"github.com/arisa-app/castdir/internal/domain"
	"github.com/arisa-app/castdir/internal/repo"
)

// ExportService assembles a flat export of casts with their labels resolved.
type ExportService struct {
	casts repo.CastRepo
	areas repo.AreaRepo
}

// NewExportService constructs an ExportService backed by the provided repos.
func NewExportService(casts repo.CastRepo, areas repo.AreaRepo) *ExportService {
	return &ExportService{casts: casts, areas: areas}
}

// Export returns one ExportRow per cast, newest first. Inactive casts are
// included only when includeInactive is set.
func (s *ExportService) Export(ctx context.Context, includeInactive bool) ([]domain.ExportRow, error) {
	casts, err := s.casts.List(ctx, domain.NewCastFilter(nil, nil, nil, includeInactive))
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	areas, err := s.areas.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	labels := make(map[string]string, len(areas))
	for _, a := range areas {
		labels[a.Key] = a.Label
	}

	rows := make([]domain.ExportRow, 0, len(casts))
	for _, c := range casts {
		row := domain.ExportRow{
			CastID:           c.ID.String(),
			Name:             c.Name,
			SNSLink:          c.SNSLink,
			Area:             c.Area,
			AreaLabel:        labels[c.Area],
			ServiceType:      string(c.ServiceType),
			ServiceTypeLabel: c.ServiceType.Label(),
			BudgetRange:      string(c.BudgetRange),
			BudgetRangeLabel: c.BudgetRange.Label(),
			IsActive:         c.IsActive,
			CreatedAt:        c.CreatedAt,
			UpdatedAt:        c.UpdatedAt,
		}
		if c.StoreLink != nil {
			row.StoreLink = *c.StoreLink
		}
		rows = append(rows, row)
	}
	return rows, nil
}
