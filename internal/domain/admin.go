package domain

import (
	"time"

	"github.com/google/uuid"
)

// Admin is an operator account. Accounts are provisioned by the seed command;
// PasswordHash is a bcrypt hash and never leaves the process.
type Admin struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
