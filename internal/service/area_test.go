package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arisa-app/castdir/internal/domain"
	"github.com/arisa-app/castdir/internal/service"
)

func echoAreaRepo() *mockAreaRepo {
	return &mockAreaRepo{
		create: func(_ context.Context, a domain.AreaLabel) (domain.AreaLabel, error) {
			a.ID = uuid.New()
			a.IsActive = true
			return a, nil
		},
		update: func(_ context.Context, p domain.AreaLabelPatch) (domain.AreaLabel, error) {
			return domain.AreaLabel{ID: p.ID}, nil
		},
	}
}

// ---- Create ----------------------------------------------------------------

func TestAreaService_Create_Valid(t *testing.T) {
	svc := service.NewAreaService(echoAreaRepo(), &mockCastRepo{})

	got, err := svc.Create(context.Background(), domain.AreaLabel{Key: "SHIBUYA", Label: "渋谷"})

	require.NoError(t, err)
	assert.Equal(t, "SHIBUYA", got.Key)
	assert.Nil(t, got.SortOrder, "an omitted sort order is left for the store to fill")
}

func TestAreaService_Create_Invalid(t *testing.T) {
	tests := []struct {
		name string
		area domain.AreaLabel
	}{
		{"missing key", domain.AreaLabel{Label: "渋谷"}},
		{"lowercase key", domain.AreaLabel{Key: "shibuya", Label: "渋谷"}},
		{"key with digits", domain.AreaLabel{Key: "AREA_1", Label: "x"}},
		{"missing label", domain.AreaLabel{Key: "SHIBUYA", Label: "  "}},
		{"negative sort order", domain.AreaLabel{Key: "SHIBUYA", Label: "渋谷", SortOrder: ptr(-1)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := service.NewAreaService(echoAreaRepo(), &mockCastRepo{})

			_, err := svc.Create(context.Background(), tc.area)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestAreaService_Create_DuplicateKey(t *testing.T) {
	r := &mockAreaRepo{
		create: func(_ context.Context, _ domain.AreaLabel) (domain.AreaLabel, error) {
			return domain.AreaLabel{}, domain.ErrConflict
		},
	}
	svc := service.NewAreaService(r, &mockCastRepo{})

	_, err := svc.Create(context.Background(), domain.AreaLabel{Key: "SHIBUYA", Label: "渋谷"})

	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "key SHIBUYA is already in use")
}

// ---- List / Update ---------------------------------------------------------

func TestAreaService_List_ReturnsEmptySlice(t *testing.T) {
	r := &mockAreaRepo{
		list: func(_ context.Context) ([]domain.AreaLabel, error) { return nil, nil },
	}
	svc := service.NewAreaService(r, &mockCastRepo{})

	areas, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, areas)
	assert.Empty(t, areas)
}

func TestAreaService_Update_KeyFormatChecked(t *testing.T) {
	svc := service.NewAreaService(echoAreaRepo(), &mockCastRepo{})

	_, err := svc.Update(context.Background(), domain.AreaLabelPatch{ID: uuid.New(), Key: ptr("Shibuya")})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAreaService_Update_SortOrderZeroAllowed(t *testing.T) {
	var received domain.AreaLabelPatch
	r := &mockAreaRepo{
		update: func(_ context.Context, p domain.AreaLabelPatch) (domain.AreaLabel, error) {
			received = p
			return domain.AreaLabel{ID: p.ID, SortOrder: p.SortOrder}, nil
		},
	}
	svc := service.NewAreaService(r, &mockCastRepo{})

	got, err := svc.Update(context.Background(), domain.AreaLabelPatch{ID: uuid.New(), SortOrder: ptr(0)})

	require.NoError(t, err)
	require.NotNil(t, received.SortOrder)
	assert.Equal(t, 0, got.Order())
}

func TestAreaService_Update_EmptyPatchReturnsCurrent(t *testing.T) {
	r := &mockAreaRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.AreaLabel, error) {
			return domain.AreaLabel{ID: id, Key: "GINZA"}, nil
		},
	}
	svc := service.NewAreaService(r, &mockCastRepo{})

	got, err := svc.Update(context.Background(), domain.AreaLabelPatch{ID: uuid.New()})

	require.NoError(t, err)
	assert.Equal(t, "GINZA", got.Key)
}

func TestAreaService_Update_DuplicateKey(t *testing.T) {
	r := &mockAreaRepo{
		update: func(_ context.Context, _ domain.AreaLabelPatch) (domain.AreaLabel, error) {
			return domain.AreaLabel{}, domain.ErrConflict
		},
	}
	svc := service.NewAreaService(r, &mockCastRepo{})

	_, err := svc.Update(context.Background(), domain.AreaLabelPatch{ID: uuid.New(), Key: ptr("GINZA")})

	assert.ErrorIs(t, err, domain.ErrConflict)
}

// ---- Delete (referential guard) --------------------------------------------

func TestAreaService_Delete_Unused(t *testing.T) {
	r := &mockAreaRepo{
		deleteIfUnused: func(_ context.Context, _ uuid.UUID) (bool, error) { return true, nil },
	}
	svc := service.NewAreaService(r, &mockCastRepo{})

	assert.NoError(t, svc.Delete(context.Background(), uuid.New()))
}

func TestAreaService_Delete_InUse(t *testing.T) {
	id := uuid.New()
	r := &mockAreaRepo{
		deleteIfUnused: func(_ context.Context, _ uuid.UUID) (bool, error) { return false, nil },
		getByID: func(_ context.Context, got uuid.UUID) (domain.AreaLabel, error) {
			return domain.AreaLabel{ID: got, Key: "SHIBUYA"}, nil
		},
	}
	casts := &mockCastRepo{
		countByArea: func(_ context.Context, key string) (int, error) {
			assert.Equal(t, "SHIBUYA", key)
			return 2, nil
		},
	}
	svc := service.NewAreaService(r, casts)

	err := svc.Delete(context.Background(), id)

	require.ErrorIs(t, err, domain.ErrInUse)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "area SHIBUYA is used by 2 cast(s)")
}

func TestAreaService_Delete_NotFound(t *testing.T) {
	r := &mockAreaRepo{
		deleteIfUnused: func(_ context.Context, _ uuid.UUID) (bool, error) { return false, nil },
		getByID: func(_ context.Context, _ uuid.UUID) (domain.AreaLabel, error) {
			return domain.AreaLabel{}, domain.ErrNotFound
		},
	}
	svc := service.NewAreaService(r, &mockCastRepo{})

	err := svc.Delete(context.Background(), uuid.New())

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrInUse)
}

func TestAreaService_Delete_RepoError(t *testing.T) {
	repoErr := errors.New("connection reset")
	r := &mockAreaRepo{
		deleteIfUnused: func(_ context.Context, _ uuid.UUID) (bool, error) { return false, repoErr },
	}
	svc := service.NewAreaService(r, &mockCastRepo{})

	err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, repoErr)
}
