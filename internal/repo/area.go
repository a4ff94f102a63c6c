package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/arisa-app/castdir/internal/domain"
)

// AreaRepo defines the persistence operations for AreaLabels.
type AreaRepo interface {
	// Create inserts a new area label. A nil SortOrder stores the current
	// number of area labels, placing the new label last.
	// Returns domain.ErrConflict if the key is already taken.
	Create(ctx context.Context, area domain.AreaLabel) (domain.AreaLabel, error)

	// GetByID retrieves a single area label by primary key.
	// Returns domain.ErrNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (domain.AreaLabel, error)

	// List returns all area labels ordered by sort_order, then created_at.
	List(ctx context.Context) ([]domain.AreaLabel, error)

	// Update applies the non-nil fields of the patch in a single statement.
	// Returns domain.ErrNotFound or domain.ErrConflict (duplicate key).
	Update(ctx context.Context, patch domain.AreaLabelPatch) (domain.AreaLabel, error)

	// DeleteIfUnused removes the area label only when no cast references its
	// key, in one statement. It reports whether a row was deleted; false means
	// the label is missing or still referenced and the caller must tell which.
	DeleteIfUnused(ctx context.Context, id uuid.UUID) (bool, error)

	// Upsert inserts an area label by key or returns the existing row.
	Upsert(ctx context.Context, area domain.AreaLabel) (domain.AreaLabel, error)
}

const areaColumns = `id, key, label, sort_order, is_active, created_at, updated_at`

// pgAreaRepo is the Postgres implementation of AreaRepo.
type pgAreaRepo struct {
	db db
}

// NewAreaRepo constructs an AreaRepo backed by the provided db connection.
func NewAreaRepo(db db) AreaRepo {
	return &pgAreaRepo{db: db}
}

// Create inserts an area label. The default sort order is computed in the
// same statement as the insert.
func (r *pgAreaRepo) Create(ctx context.Context, area domain.AreaLabel) (domain.AreaLabel, error) {
	const q = `
		INSERT INTO area_labels (key, label, sort_order, is_active)
		VALUES (@key, @label, COALESCE(@sort_order, (SELECT count(*)::int FROM area_labels)), TRUE)
		RETURNING ` + areaColumns

	args := pgx.NamedArgs{
		"key":        area.Key,
		"label":      area.Label,
		"sort_order": area.SortOrder, // nil falls back to the count
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanArea(row)
	if err != nil {
		return domain.AreaLabel{}, fmt.Errorf("repo.AreaRepo.Create: %w", mapError(err))
	}
	return result, nil
}

// GetByID retrieves an area label by primary key.
func (r *pgAreaRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.AreaLabel, error) {
	const q = `SELECT ` + areaColumns + ` FROM area_labels WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanArea(row)
	if err != nil {
		return domain.AreaLabel{}, fmt.Errorf("repo.AreaRepo.GetByID: %w", mapError(err))
	}
	return result, nil
}

// List returns all area labels, active or not.
func (r *pgAreaRepo) List(ctx context.Context) ([]domain.AreaLabel, error) {
	const q = `
		SELECT ` + areaColumns + `
		FROM area_labels
		ORDER BY sort_order ASC, created_at ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.AreaRepo.List: %w", err)
	}
	defer rows.Close()

	areas := []domain.AreaLabel{}
	for rows.Next() {
		a, err := scanArea(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.AreaRepo.List: scan: %w", err)
		}
		areas = append(areas, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.AreaRepo.List: rows: %w", err)
	}
	return areas, nil
}

// Update applies the patch with COALESCE so nil fields keep their value.
// A key change that collides with another label fails on the unique index.
func (r *pgAreaRepo) Update(ctx context.Context, patch domain.AreaLabelPatch) (domain.AreaLabel, error) {
	const q = `
		UPDATE area_labels
		SET key        = COALESCE(@key, key),
		    label      = COALESCE(@label, label),
		    sort_order = COALESCE(@sort_order, sort_order),
		    is_active  = COALESCE(@is_active, is_active),
		    updated_at = now()
		WHERE id = @id
		RETURNING ` + areaColumns

	args := pgx.NamedArgs{
		"id":         patch.ID,
		"key":        patch.Key,
		"label":      patch.Label,
		"sort_order": patch.SortOrder,
		"is_active":  patch.IsActive,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanArea(row)
	if err != nil {
		return domain.AreaLabel{}, fmt.Errorf("repo.AreaRepo.Update: %w", mapError(err))
	}
	return result, nil
}

// DeleteIfUnused deletes the label only if no cast row carries its key.
// The reference check and the delete run as one statement.
func (r *pgAreaRepo) DeleteIfUnused(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `
		DELETE FROM area_labels a
		WHERE a.id = @id
		  AND NOT EXISTS (SELECT 1 FROM casts c WHERE c.area = a.key)`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return false, fmt.Errorf("repo.AreaRepo.DeleteIfUnused: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Upsert inserts an area label by key, or returns the existing row on conflict.
func (r *pgAreaRepo) Upsert(ctx context.Context, area domain.AreaLabel) (domain.AreaLabel, error) {
	const q = `
		INSERT INTO area_labels (key, label, sort_order, is_active)
		VALUES (@key, @label, COALESCE(@sort_order, (SELECT count(*)::int FROM area_labels)), TRUE)
		ON CONFLICT (key) DO UPDATE SET key = EXCLUDED.key
		RETURNING ` + areaColumns

	args := pgx.NamedArgs{
		"key":        area.Key,
		"label":      area.Label,
		"sort_order": area.SortOrder,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanArea(row)
	if err != nil {
		return domain.AreaLabel{}, fmt.Errorf("repo.AreaRepo.Upsert: %w", mapError(err))
	}
	return result, nil
}

// scanArea maps a single database row into a domain.AreaLabel.
func scanArea(s scanner) (domain.AreaLabel, error) {
	var (
		a         domain.AreaLabel
		id        pgtype.UUID
		sortOrder int
	)
	err := s.Scan(&id, &a.Key, &a.Label, &sortOrder, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return domain.AreaLabel{}, err
	}
	a.ID = uuid.UUID(id.Bytes)
	a.SortOrder = &sortOrder
	return a, nil
}
