// Package repo contains all database access logic for the cast directory.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/arisa-app/castdir/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan helpers
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// uniqueViolation is the Postgres SQLSTATE for a unique index violation.
const uniqueViolation = "23505"

// mapError translates driver errors into domain sentinels.
// pgx.ErrNoRows becomes domain.ErrNotFound; a unique violation becomes
// domain.ErrConflict with the constraint name attached.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return &conflictError{constraint: pgErr.ConstraintName}
	}
	return err
}

// conflictError wraps domain.ErrConflict with the violated constraint so the
// service layer can report which field collided.
type conflictError struct {
	constraint string
}

func (e *conflictError) Error() string {
	return domain.ErrConflict.Error() + ": " + e.constraint
}

func (e *conflictError) Unwrap() error { return domain.ErrConflict }

// Constraint names declared in migrations.
const (
	ConstraintCastSNSLink  = "casts_sns_link_key"
	ConstraintAreaLabelKey = "area_labels_key_key"
	ConstraintAdminEmail   = "admins_email_key"
)

// ConflictConstraint returns the constraint name carried by a conflict error
// produced by this package, or "" if err is not one.
func ConflictConstraint(err error) string {
	var ce *conflictError
	if errors.As(err, &ce) {
		return ce.constraint
	}
	return ""
}
