package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arisa-app/castdir/internal/domain"
	"github.com/arisa-app/castdir/internal/repo"
)

func TestAreaRepo_Create_DefaultSortOrderIsCount(t *testing.T) {
	r := repo.NewAreaRepo(newTestTx(t))
	ctx := context.Background()

	a, err := r.Create(ctx, domain.AreaLabel{Key: "SHIBUYA", Label: "渋谷"})
	require.NoError(t, err)
	b, err := r.Create(ctx, domain.AreaLabel{Key: "GINZA", Label: "銀座"})
	require.NoError(t, err)

	assert.Equal(t, 0, a.Order())
	assert.Equal(t, 1, b.Order())
	assert.True(t, b.IsActive)
}

func TestAreaRepo_Create_DuplicateKey(t *testing.T) {
	r := repo.NewAreaRepo(newTestTx(t))
	ctx := context.Background()

	_, err := r.Create(ctx, domain.AreaLabel{Key: "SHIBUYA", Label: "渋谷"})
	require.NoError(t, err)

	_, err = r.Create(ctx, domain.AreaLabel{Key: "SHIBUYA", Label: "しぶや"})

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, repo.ConstraintAreaLabelKey, repo.ConflictConstraint(err))
}

func TestAreaRepo_List_SortedBySortOrder(t *testing.T) {
	r := repo.NewAreaRepo(newTestTx(t))
	ctx := context.Background()

	_, err := r.Create(ctx, domain.AreaLabel{Key: "GINZA", Label: "銀座", SortOrder: ptr(5)})
	require.NoError(t, err)
	_, err = r.Create(ctx, domain.AreaLabel{Key: "SHIBUYA", Label: "渋谷", SortOrder: ptr(0)})
	require.NoError(t, err)

	got, err := r.List(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "SHIBUYA", got[0].Key)
	assert.Equal(t, "GINZA", got[1].Key)
}

func TestAreaRepo_Update_KeyConflict(t *testing.T) {
	r := repo.NewAreaRepo(newTestTx(t))
	ctx := context.Background()

	_, err := r.Create(ctx, domain.AreaLabel{Key: "SHIBUYA", Label: "渋谷"})
	require.NoError(t, err)
	ginza, err := r.Create(ctx, domain.AreaLabel{Key: "GINZA", Label: "銀座"})
	require.NoError(t, err)

	_, err = r.Update(ctx, domain.AreaLabelPatch{ID: ginza.ID, Key: ptr("SHIBUYA")})
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, err := r.Update(ctx, domain.AreaLabelPatch{ID: ginza.ID, Label: ptr("ぎんざ")})
	require.NoError(t, err)
	assert.Equal(t, "GINZA", got.Key)
	assert.Equal(t, "ぎんざ", got.Label)
}

func TestAreaRepo_DeleteIfUnused(t *testing.T) {
	tx := newTestTx(t)
	areas := repo.NewAreaRepo(tx)
	casts := repo.NewCastRepo(tx)
	ctx := context.Background()

	shibuya, err := areas.Create(ctx, domain.AreaLabel{Key: "SHIBUYA", Label: "渋谷"})
	require.NoError(t, err)
	ginza, err := areas.Create(ctx, domain.AreaLabel{Key: "GINZA", Label: "銀座"})
	require.NoError(t, err)
	_, err = casts.Create(ctx, castFixture("https://x.test/a")) // area SHIBUYA
	require.NoError(t, err)

	deleted, err := areas.DeleteIfUnused(ctx, shibuya.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "referenced label must survive")
	_, err = areas.GetByID(ctx, shibuya.ID)
	require.NoError(t, err)

	deleted, err = areas.DeleteIfUnused(ctx, ginza.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = areas.DeleteIfUnused(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, deleted)
}
