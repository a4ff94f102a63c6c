// Package domain contains the core data types for the cast directory.
// This package has no database or transport dependencies and is imported by
// every other internal package (repo, service, handler, wizard).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Cast is one listed profile: who they are, where to find them, and how they
// are classified for the onboarding filter.
//
// Area holds an AreaLabel key. It is matched by convention only; the store
// does not enforce it as a foreign key.
type Cast struct {
	ID          uuid.UUID
	Name        string      `json:"name" validate:"required"`
	SNSLink     string      `json:"snsLink" validate:"required,url"`
	StoreLink   *string     `json:"storeLink" validate:"omitempty,url"` // nil when the cast has no store page
	Area        string      `json:"area" validate:"required"`
	ServiceType ServiceType `json:"serviceType" validate:"required,service_type"`
	BudgetRange BudgetRange `json:"budgetRange" validate:"required,budget_range"`
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CastPatch is a partial update. Nil fields are left untouched.
// A non-nil StoreLink pointing at "" clears the store link.
type CastPatch struct {
	ID          uuid.UUID
	Name        *string      `json:"name" validate:"omitempty,min=1"`
	SNSLink     *string      `json:"snsLink" validate:"omitempty,url"`
	StoreLink   *string      `json:"storeLink"`
	Area        *string      `json:"area" validate:"omitempty,min=1"`
	ServiceType *ServiceType `json:"serviceType" validate:"omitempty,service_type"`
	BudgetRange *BudgetRange `json:"budgetRange" validate:"omitempty,budget_range"`
	IsActive    *bool        `json:"isActive"`
}

// Empty reports whether the patch changes nothing.
func (p CastPatch) Empty() bool {
	return p.Name == nil && p.SNSLink == nil && p.StoreLink == nil && p.Area == nil &&
		p.ServiceType == nil && p.BudgetRange == nil && p.IsActive == nil
}
