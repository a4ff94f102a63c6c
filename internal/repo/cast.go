package repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/arisa-app/castdir/internal/domain"
)

// CastRepo defines the persistence operations for Casts.
// The service layer depends on this interface, not the concrete Postgres implementation,
// which allows the service to be unit-tested with a mock.
type CastRepo interface {
	// Create inserts a new cast and returns the persisted record (with DB-generated
	// id, created_at, and updated_at populated). New casts are always active.
	// Returns domain.ErrConflict if the SNS link is already taken.
	Create(ctx context.Context, cast domain.Cast) (domain.Cast, error)

	// GetByID retrieves a single cast by its UUID primary key.
	// Returns domain.ErrNotFound if no cast with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Cast, error)

	// List returns every cast matching the filter, newest first. No limit.
	List(ctx context.Context, f domain.CastFilter) ([]domain.Cast, error)

	// Update applies the non-nil fields of the patch in a single statement and
	// returns the updated record. Returns domain.ErrNotFound if the cast does
	// not exist and domain.ErrConflict on a duplicate SNS link.
	Update(ctx context.Context, patch domain.CastPatch) (domain.Cast, error)

	// Delete removes a cast by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByArea returns the number of casts (active or not) whose area equals key.
	CountByArea(ctx context.Context, key string) (int, error)

	// Upsert inserts a cast or leaves the existing row with the same SNS link
	// untouched, returning whichever row is stored. Used by the seed command.
	Upsert(ctx context.Context, cast domain.Cast) (domain.Cast, error)
}

// castColumns lists the columns every cast query selects, in scanCast order.
const castColumns = `id, name, sns_link, store_link, area, service_type, budget_range, is_active, created_at, updated_at`

// filterColumns maps domain filter fields to cast columns. Only fields listed
// here may reach the WHERE clause.
var filterColumns = map[string]string{
	domain.FieldIsActive:    "is_active",
	domain.FieldArea:        "area",
	domain.FieldServiceType: "service_type",
	domain.FieldBudgetRange: "budget_range",
}

// pgCastRepo is the Postgres implementation of CastRepo.
type pgCastRepo struct {
	db db
}

// NewCastRepo constructs a CastRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewCastRepo(db db) CastRepo {
	return &pgCastRepo{db: db}
}

// Create inserts a new cast row and returns the full persisted record.
func (r *pgCastRepo) Create(ctx context.Context, cast domain.Cast) (domain.Cast, error) {
	const q = `
		INSERT INTO casts (name, sns_link, store_link, area, service_type, budget_range, is_active)
		VALUES (@name, @sns_link, @store_link, @area, @service_type, @budget_range, TRUE)
		RETURNING ` + castColumns

	row := r.db.QueryRow(ctx, q, castArgs(cast))
	result, err := scanCast(row)
	if err != nil {
		return domain.Cast{}, fmt.Errorf("repo.CastRepo.Create: %w", mapError(err))
	}
	return result, nil
}

// GetByID retrieves a cast by primary key.
func (r *pgCastRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Cast, error) {
	const q = `SELECT ` + castColumns + ` FROM casts WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanCast(row)
	if err != nil {
		return domain.Cast{}, fmt.Errorf("repo.CastRepo.GetByID: %w", mapError(err))
	}
	return result, nil
}

// List renders the filter as an equality conjunction and returns every match
// ordered by created_at descending (most recent first).
func (r *pgCastRepo) List(ctx context.Context, f domain.CastFilter) ([]domain.Cast, error) {
	where, args, err := buildWhere(f)
	if err != nil {
		return nil, fmt.Errorf("repo.CastRepo.List: %w", err)
	}
	q := `SELECT ` + castColumns + ` FROM casts` + where + ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.CastRepo.List: %w", err)
	}
	defer rows.Close()

	casts := []domain.Cast{}
	for rows.Next() {
		c, err := scanCast(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.CastRepo.List: scan: %w", err)
		}
		casts = append(casts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CastRepo.List: rows: %w", err)
	}
	return casts, nil
}

// buildWhere turns filter conditions into " WHERE a = @a AND b = @b".
// Returns an empty clause when the filter has no conditions.
func buildWhere(f domain.CastFilter) (string, pgx.NamedArgs, error) {
	conds := f.Conditions()
	args := pgx.NamedArgs{}
	if len(conds) == 0 {
		return "", args, nil
	}
	parts := make([]string, 0, len(conds))
	for _, c := range conds {
		col, ok := filterColumns[c.Field]
		if !ok {
			return "", nil, fmt.Errorf("unknown filter field %q", c.Field)
		}
		parts = append(parts, col+" = @"+col)
		args[col] = c.Value
	}
	return " WHERE " + strings.Join(parts, " AND "), args, nil
}

// Update applies the patch. COALESCE keeps the current value for nil fields,
// so the existence check and the write are one statement.
func (r *pgCastRepo) Update(ctx context.Context, patch domain.CastPatch) (domain.Cast, error) {
	const q = `
		UPDATE casts
		SET name         = COALESCE(@name, name),
		    sns_link     = COALESCE(@sns_link, sns_link),
		    store_link   = CASE WHEN @set_store_link THEN NULLIF(@store_link, '') ELSE store_link END,
		    area         = COALESCE(@area, area),
		    service_type = COALESCE(@service_type, service_type),
		    budget_range = COALESCE(@budget_range, budget_range),
		    is_active    = COALESCE(@is_active, is_active),
		    updated_at   = now()
		WHERE id = @id
		RETURNING ` + castColumns

	storeLink := ""
	if patch.StoreLink != nil {
		storeLink = *patch.StoreLink
	}
	args := pgx.NamedArgs{
		"id":             patch.ID,
		"name":           patch.Name,
		"sns_link":       patch.SNSLink,
		"set_store_link": patch.StoreLink != nil,
		"store_link":     storeLink,
		"area":           patch.Area,
		"service_type":   enumPtr(patch.ServiceType),
		"budget_range":   enumPtr(patch.BudgetRange),
		"is_active":      patch.IsActive,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanCast(row)
	if err != nil {
		return domain.Cast{}, fmt.Errorf("repo.CastRepo.Update: %w", mapError(err))
	}
	return result, nil
}

// Delete removes a cast by primary key.
func (r *pgCastRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM casts WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.CastRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.CastRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// CountByArea counts casts referencing an area key.
func (r *pgCastRepo) CountByArea(ctx context.Context, key string) (int, error) {
	const q = `SELECT count(*) FROM casts WHERE area = @area`

	var n int
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"area": key}).Scan(&n); err != nil {
		return 0, fmt.Errorf("repo.CastRepo.CountByArea: %w", err)
	}
	return n, nil
}

// Upsert inserts a cast by SNS link, or returns the existing row on conflict.
// The DO UPDATE SET trick forces the RETURNING clause to fire even when
// the conflict handler skips the insert.
func (r *pgCastRepo) Upsert(ctx context.Context, cast domain.Cast) (domain.Cast, error) {
	const q = `
		INSERT INTO casts (name, sns_link, store_link, area, service_type, budget_range, is_active)
		VALUES (@name, @sns_link, @store_link, @area, @service_type, @budget_range, TRUE)
		ON CONFLICT (sns_link) DO UPDATE SET sns_link = EXCLUDED.sns_link
		RETURNING ` + castColumns

	row := r.db.QueryRow(ctx, q, castArgs(cast))
	result, err := scanCast(row)
	if err != nil {
		return domain.Cast{}, fmt.Errorf("repo.CastRepo.Upsert: %w", mapError(err))
	}
	return result, nil
}

// castArgs builds the named arguments shared by Create and Upsert.
func castArgs(cast domain.Cast) pgx.NamedArgs {
	return pgx.NamedArgs{
		"name":         cast.Name,
		"sns_link":     cast.SNSLink,
		"store_link":   cast.StoreLink, // nil becomes NULL
		"area":         cast.Area,
		"service_type": string(cast.ServiceType),
		"budget_range": string(cast.BudgetRange),
	}
}

// enumPtr converts an optional enum value to *string so pgx encodes it as text
// (or NULL when absent).
func enumPtr[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

// scanCast maps a single database row into a domain.Cast.
// It handles the UUID, nullable store_link, and enum conversions.
func scanCast(s scanner) (domain.Cast, error) {
	var (
		c           domain.Cast
		id          pgtype.UUID
		storeLink   pgtype.Text
		serviceType string
		budgetRange string
	)

	err := s.Scan(&id, &c.Name, &c.SNSLink, &storeLink, &c.Area, &serviceType, &budgetRange,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Cast{}, err
	}

	c.ID = uuid.UUID(id.Bytes)
	c.ServiceType = domain.ServiceType(serviceType)
	c.BudgetRange = domain.BudgetRange(budgetRange)
	if storeLink.Valid {
		sl := storeLink.String
		c.StoreLink = &sl
	}
	return c, nil
}
