package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arisa-app/castdir/internal/domain"
	"github.com/arisa-app/castdir/internal/handler/gen"
	"github.com/arisa-app/castdir/internal/repo"
	"github.com/arisa-app/castdir/internal/service"
)

// The tests in this file run the real services behind the HTTP layer, with
// in-memory stores standing in for Postgres.

type memCastRepo struct {
	rows  map[uuid.UUID]domain.Cast
	clock time.Time
}

func newMemCastRepo() *memCastRepo {
	return &memCastRepo{rows: map[uuid.UUID]domain.Cast{}, clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *memCastRepo) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memCastRepo) snsTaken(link string, except uuid.UUID) bool {
	for id, c := range m.rows {
		if id != except && c.SNSLink == link {
			return true
		}
	}
	return false
}

func (m *memCastRepo) Create(_ context.Context, c domain.Cast) (domain.Cast, error) {
	if m.snsTaken(c.SNSLink, uuid.Nil) {
		return domain.Cast{}, fmt.Errorf("mem: %w", domain.ErrConflict)
	}
	c.ID = uuid.New()
	c.IsActive = true
	c.CreatedAt = m.tick()
	c.UpdatedAt = c.CreatedAt
	m.rows[c.ID] = c
	return c, nil
}

func (m *memCastRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Cast, error) {
	c, ok := m.rows[id]
	if !ok {
		return domain.Cast{}, domain.ErrNotFound
	}
	return c, nil
}

func (m *memCastRepo) List(_ context.Context, f domain.CastFilter) ([]domain.Cast, error) {
	var out []domain.Cast
	for _, c := range m.rows {
		if f.Matches(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memCastRepo) Update(_ context.Context, p domain.CastPatch) (domain.Cast, error) {
	c, ok := m.rows[p.ID]
	if !ok {
		return domain.Cast{}, domain.ErrNotFound
	}
	if p.SNSLink != nil && m.snsTaken(*p.SNSLink, p.ID) {
		return domain.Cast{}, domain.ErrConflict
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.SNSLink != nil {
		c.SNSLink = *p.SNSLink
	}
	if p.StoreLink != nil {
		c.StoreLink = p.StoreLink
		if *p.StoreLink == "" {
			c.StoreLink = nil
		}
	}
	if p.Area != nil {
		c.Area = *p.Area
	}
	if p.ServiceType != nil {
		c.ServiceType = *p.ServiceType
	}
	if p.BudgetRange != nil {
		c.BudgetRange = *p.BudgetRange
	}
	if p.IsActive != nil {
		c.IsActive = *p.IsActive
	}
	c.UpdatedAt = m.tick()
	m.rows[c.ID] = c
	return c, nil
}

func (m *memCastRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memCastRepo) CountByArea(_ context.Context, key string) (int, error) {
	n := 0
	for _, c := range m.rows {
		if c.Area == key {
			n++
		}
	}
	return n, nil
}

func (m *memCastRepo) Upsert(ctx context.Context, c domain.Cast) (domain.Cast, error) {
	for _, existing := range m.rows {
		if existing.SNSLink == c.SNSLink {
			return existing, nil
		}
	}
	return m.Create(ctx, c)
}

type memAreaRepo struct {
	rows  map[uuid.UUID]domain.AreaLabel
	casts *memCastRepo
}

func (m *memAreaRepo) keyTaken(key string, except uuid.UUID) bool {
	for id, a := range m.rows {
		if id != except && a.Key == key {
			return true
		}
	}
	return false
}

func (m *memAreaRepo) Create(_ context.Context, a domain.AreaLabel) (domain.AreaLabel, error) {
	if m.keyTaken(a.Key, uuid.Nil) {
		return domain.AreaLabel{}, domain.ErrConflict
	}
	if a.SortOrder == nil {
		n := len(m.rows)
		a.SortOrder = &n
	}
	a.ID = uuid.New()
	a.IsActive = true
	a.CreatedAt = m.casts.tick()
	a.UpdatedAt = a.CreatedAt
	m.rows[a.ID] = a
	return a, nil
}

func (m *memAreaRepo) GetByID(_ context.Context, id uuid.UUID) (domain.AreaLabel, error) {
	a, ok := m.rows[id]
	if !ok {
		return domain.AreaLabel{}, domain.ErrNotFound
	}
	return a, nil
}

func (m *memAreaRepo) List(_ context.Context) ([]domain.AreaLabel, error) {
	out := make([]domain.AreaLabel, 0, len(m.rows))
	for _, a := range m.rows {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order() != out[j].Order() {
			return out[i].Order() < out[j].Order()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memAreaRepo) Update(_ context.Context, p domain.AreaLabelPatch) (domain.AreaLabel, error) {
	a, ok := m.rows[p.ID]
	if !ok {
		return domain.AreaLabel{}, domain.ErrNotFound
	}
	if p.Key != nil && m.keyTaken(*p.Key, p.ID) {
		return domain.AreaLabel{}, domain.ErrConflict
	}
	if p.Key != nil {
		a.Key = *p.Key
	}
	if p.Label != nil {
		a.Label = *p.Label
	}
	if p.SortOrder != nil {
		a.SortOrder = p.SortOrder
	}
	if p.IsActive != nil {
		a.IsActive = *p.IsActive
	}
	m.rows[a.ID] = a
	return a, nil
}

func (m *memAreaRepo) DeleteIfUnused(ctx context.Context, id uuid.UUID) (bool, error) {
	a, ok := m.rows[id]
	if !ok {
		return false, nil
	}
	if n, _ := m.casts.CountByArea(ctx, a.Key); n > 0 {
		return false, nil
	}
	delete(m.rows, id)
	return true, nil
}

func (m *memAreaRepo) Upsert(ctx context.Context, a domain.AreaLabel) (domain.AreaLabel, error) {
	for _, existing := range m.rows {
		if existing.Key == a.Key {
			return existing, nil
		}
	}
	return m.Create(ctx, a)
}

var (
	_ repo.CastRepo = (*memCastRepo)(nil)
	_ repo.AreaRepo = (*memAreaRepo)(nil)
)

// newStack wires real services over fresh in-memory stores.
func newStack() (http.Handler, *memCastRepo) {
	casts := newMemCastRepo()
	areas := &memAreaRepo{rows: map[uuid.UUID]domain.AreaLabel{}, casts: casts}
	return newHTTPHandler(
		service.NewCastService(casts),
		service.NewAreaService(areas, casts),
		service.NewExportService(casts, areas),
	), casts
}

func shibuyaCast(snsLink string) map[string]any {
	return map[string]any{
		"name":        "美咲",
		"snsLink":     snsLink,
		"storeLink":   "https://example.com/store1",
		"area":        "SHIBUYA",
		"serviceType": "KYABA",
		"budgetRange": "FROM_20K_TO_30K",
	}
}

func TestE2E_ReferencedAreaCannotBeDeleted(t *testing.T) {
	h, _ := newStack()

	rec := do(t, h, http.MethodPost, "/api/areas", map[string]any{"key": "SHIBUYA", "label": "渋谷"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var area gen.AreaLabel
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&area))
	assert.Equal(t, 0, area.SortOrder)

	rec = do(t, h, http.MethodPost, "/api/casts", shibuyaCast("https://twitter.com/misaki_cast"))
	require.Equal(t, http.StatusCreated, rec.Code)
	var cast gen.Cast
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&cast))

	rec = do(t, h, http.MethodDelete, "/api/areas/"+area.Id.String(), nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, gen.ErrorDetailCodeAreaInUse, decodeError(t, rec).Code)

	// Refusal leaves the label in place.
	rec = do(t, h, http.MethodGet, "/api/areas/"+area.Id.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Once the only referencing cast is gone the delete succeeds.
	rec = do(t, h, http.MethodDelete, "/api/casts/"+cast.Id.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, h, http.MethodDelete, "/api/areas/"+area.Id.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, h, http.MethodDelete, "/api/areas/"+area.Id.String(), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestE2E_DuplicateSNSLinkRejected(t *testing.T) {
	h, casts := newStack()

	rec := do(t, h, http.MethodPost, "/api/casts", shibuyaCast("https://twitter.com/misaki_cast"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/casts", shibuyaCast("https://twitter.com/misaki_cast"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, gen.ErrorDetailCodeConflict, decodeError(t, rec).Code)
	assert.Len(t, casts.rows, 1, "no second row is created")
}

func TestE2E_FilterWithNoMatchesReturnsEmptyArray(t *testing.T) {
	h, _ := newStack()

	rec := do(t, h, http.MethodPost, "/api/casts", shibuyaCast("https://twitter.com/misaki_cast"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/casts?area=GINZA&budgetRange=OVER_50K", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestE2E_InactiveCastsHiddenUnlessRequested(t *testing.T) {
	h, _ := newStack()

	rec := do(t, h, http.MethodPost, "/api/casts", shibuyaCast("https://twitter.com/misaki_cast"))
	require.Equal(t, http.StatusCreated, rec.Code)
	var cast gen.Cast
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&cast))

	rec = do(t, h, http.MethodPatch, "/api/casts/"+cast.Id.String(), map[string]any{"isActive": false, "storeLink": ""})
	require.Equal(t, http.StatusOK, rec.Code)
	var patched gen.Cast
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&patched))
	assert.False(t, patched.IsActive)
	assert.Nil(t, patched.StoreLink)
	assert.Equal(t, "美咲", patched.Name, "absent fields are untouched")

	rec = do(t, h, http.MethodGet, "/api/casts?area=SHIBUYA", nil)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/casts?area=SHIBUYA&includeInactive=true", nil)
	var all []gen.Cast
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&all))
	require.Len(t, all, 1)
}

func TestE2E_AreaKeyFormatEnforced(t *testing.T) {
	h, _ := newStack()

	for _, key := range []string{"shibuya", "SHIBUYA1", "SHI-BUYA", "渋谷", ""} {
		rec := do(t, h, http.MethodPost, "/api/areas", map[string]any{"key": key, "label": "x"})
		assert.Equal(t, http.StatusBadRequest, rec.Code, "key %q", key)
	}
}
