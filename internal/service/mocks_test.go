package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/arisa-app/castdir/internal/domain"
	"github.com/arisa-app/castdir/internal/repo"
)

// mockCastRepo is a hand-written test double for repo.CastRepo.
// Each method is a function field; set only the ones your test needs.
type mockCastRepo struct {
	create      func(ctx context.Context, cast domain.Cast) (domain.Cast, error)
	getByID     func(ctx context.Context, id uuid.UUID) (domain.Cast, error)
	list        func(ctx context.Context, f domain.CastFilter) ([]domain.Cast, error)
	update      func(ctx context.Context, patch domain.CastPatch) (domain.Cast, error)
	delete      func(ctx context.Context, id uuid.UUID) error
	countByArea func(ctx context.Context, key string) (int, error)
	upsert      func(ctx context.Context, cast domain.Cast) (domain.Cast, error)
}

func (m *mockCastRepo) Create(ctx context.Context, cast domain.Cast) (domain.Cast, error) {
	return m.create(ctx, cast)
}
func (m *mockCastRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Cast, error) {
	return m.getByID(ctx, id)
}
func (m *mockCastRepo) List(ctx context.Context, f domain.CastFilter) ([]domain.Cast, error) {
	return m.list(ctx, f)
}
func (m *mockCastRepo) Update(ctx context.Context, patch domain.CastPatch) (domain.Cast, error) {
	return m.update(ctx, patch)
}
func (m *mockCastRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockCastRepo) CountByArea(ctx context.Context, key string) (int, error) {
	return m.countByArea(ctx, key)
}
func (m *mockCastRepo) Upsert(ctx context.Context, cast domain.Cast) (domain.Cast, error) {
	return m.upsert(ctx, cast)
}

// compile-time check: mockCastRepo must satisfy repo.CastRepo.
var _ repo.CastRepo = (*mockCastRepo)(nil)

// mockAreaRepo is a hand-written test double for repo.AreaRepo.
type mockAreaRepo struct {
	create         func(ctx context.Context, area domain.AreaLabel) (domain.AreaLabel, error)
	getByID        func(ctx context.Context, id uuid.UUID) (domain.AreaLabel, error)
	list           func(ctx context.Context) ([]domain.AreaLabel, error)
	update         func(ctx context.Context, patch domain.AreaLabelPatch) (domain.AreaLabel, error)
	deleteIfUnused func(ctx context.Context, id uuid.UUID) (bool, error)
	upsert         func(ctx context.Context, area domain.AreaLabel) (domain.AreaLabel, error)
}

func (m *mockAreaRepo) Create(ctx context.Context, area domain.AreaLabel) (domain.AreaLabel, error) {
	return m.create(ctx, area)
}
func (m *mockAreaRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.AreaLabel, error) {
	return m.getByID(ctx, id)
}
func (m *mockAreaRepo) List(ctx context.Context) ([]domain.AreaLabel, error) {
	return m.list(ctx)
}
func (m *mockAreaRepo) Update(ctx context.Context, patch domain.AreaLabelPatch) (domain.AreaLabel, error) {
	return m.update(ctx, patch)
}
func (m *mockAreaRepo) DeleteIfUnused(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.deleteIfUnused(ctx, id)
}
func (m *mockAreaRepo) Upsert(ctx context.Context, area domain.AreaLabel) (domain.AreaLabel, error) {
	return m.upsert(ctx, area)
}

var _ repo.AreaRepo = (*mockAreaRepo)(nil)

func ptr[T any](v T) *T { return &v }
