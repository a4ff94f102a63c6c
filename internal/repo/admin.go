package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/arisa-app/castdir/internal/domain"
)

// AdminRepo defines the persistence operations for operator accounts.
type AdminRepo interface {
	// Upsert inserts an admin by email. An existing account is returned as-is;
	// its password hash is never overwritten by a re-seed.
	Upsert(ctx context.Context, admin domain.Admin) (domain.Admin, error)

	// GetByEmail returns the admin with the given email or domain.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (domain.Admin, error)
}

type pgAdminRepo struct {
	db db
}

// NewAdminRepo constructs an AdminRepo backed by the provided db connection.
func NewAdminRepo(db db) AdminRepo {
	return &pgAdminRepo{db: db}
}

func (r *pgAdminRepo) Upsert(ctx context.Context, admin domain.Admin) (domain.Admin, error) {
	const q = `
		INSERT INTO admins (email, password_hash, name)
		VALUES (@email, @password_hash, @name)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id, email, password_hash, name, created_at, updated_at`

	args := pgx.NamedArgs{
		"email":         admin.Email,
		"password_hash": admin.PasswordHash,
		"name":          admin.Name,
	}
	result, err := scanAdmin(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Admin{}, fmt.Errorf("repo.AdminRepo.Upsert: %w", mapError(err))
	}
	return result, nil
}

func (r *pgAdminRepo) GetByEmail(ctx context.Context, email string) (domain.Admin, error) {
	const q = `
		SELECT id, email, password_hash, name, created_at, updated_at
		FROM admins
		WHERE email = @email`

	result, err := scanAdmin(r.db.QueryRow(ctx, q, pgx.NamedArgs{"email": email}))
	if err != nil {
		return domain.Admin{}, fmt.Errorf("repo.AdminRepo.GetByEmail: %w", mapError(err))
	}
	return result, nil
}

func scanAdmin(s scanner) (domain.Admin, error) {
	var (
		a  domain.Admin
		id pgtype.UUID
	)
	if err := s.Scan(&id, &a.Email, &a.PasswordHash, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return domain.Admin{}, err
	}
	a.ID = uuid.UUID(id.Bytes)
	return a, nil
}
