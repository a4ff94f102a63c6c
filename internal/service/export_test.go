package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arisa-app/castdir/internal/domain"
	"github.com/arisa-app/castdir/internal/service"
)

func TestExportService_Export_ResolvesLabels(t *testing.T) {
	created := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	cast := domain.Cast{
		ID:          uuid.New(),
		Name:        "ゆい",
		SNSLink:     "https://twitter.com/yui_cast",
		Area:        "GINZA",
		ServiceType: domain.ServiceTypeLounge,
		BudgetRange: domain.BudgetFrom30KTo50K,
		IsActive:    true,
		CreatedAt:   created,
		UpdatedAt:   created,
	}

	var gotFilter domain.CastFilter
	casts := &mockCastRepo{
		list: func(_ context.Context, f domain.CastFilter) ([]domain.Cast, error) {
			gotFilter = f
			return []domain.Cast{cast}, nil
		},
	}
	areas := &mockAreaRepo{
		list: func(_ context.Context) ([]domain.AreaLabel, error) {
			return []domain.AreaLabel{{Key: "GINZA", Label: "銀座"}}, nil
		},
	}
	svc := service.NewExportService(casts, areas)

	rows, err := svc.Export(context.Background(), false)

	require.NoError(t, err)
	assert.False(t, gotFilter.IncludeInactive)
	require.Len(t, rows, 1)
	assert.Equal(t, cast.ID.String(), rows[0].CastID)
	assert.Equal(t, "銀座", rows[0].AreaLabel)
	assert.Equal(t, "LOUNGE", rows[0].ServiceType)
	assert.Equal(t, domain.ServiceTypeLounge.Label(), rows[0].ServiceTypeLabel)
	assert.Equal(t, domain.BudgetFrom30KTo50K.Label(), rows[0].BudgetRangeLabel)
	assert.Empty(t, rows[0].StoreLink)
}

func TestExportService_Export_UnknownAreaKeepsKey(t *testing.T) {
	casts := &mockCastRepo{
		list: func(_ context.Context, _ domain.CastFilter) ([]domain.Cast, error) {
			return []domain.Cast{{
				ID: uuid.New(), Name: "まい", Area: "NOWHERE", StoreLink: ptr("https://example.com/s"),
				ServiceType: domain.ServiceTypeKyaba, BudgetRange: domain.BudgetFrom20KTo30K,
			}}, nil
		},
	}
	areas := &mockAreaRepo{
		list: func(_ context.Context) ([]domain.AreaLabel, error) { return nil, nil },
	}
	svc := service.NewExportService(casts, areas)

	rows, err := svc.Export(context.Background(), true)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "NOWHERE", rows[0].Area)
	assert.Empty(t, rows[0].AreaLabel)
	assert.Equal(t, "https://example.com/s", rows[0].StoreLink)
}

func TestExportService_Export_Empty(t *testing.T) {
	casts := &mockCastRepo{
		list: func(_ context.Context, _ domain.CastFilter) ([]domain.Cast, error) { return nil, nil },
	}
	areas := &mockAreaRepo{
		list: func(_ context.Context) ([]domain.AreaLabel, error) { return nil, nil },
	}
	svc := service.NewExportService(casts, areas)

	rows, err := svc.Export(context.Background(), false)

	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
