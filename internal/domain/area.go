package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// areaKeyPattern is the only allowed shape for AreaLabel.Key.
var areaKeyPattern = regexp.MustCompile(`^[A-Z_]+$`)

// ValidAreaKey reports whether key is upper-case letters and underscores only.
func ValidAreaKey(key string) bool {
	return areaKeyPattern.MatchString(key)
}

// AreaLabel is an admin-managed geographic category. Casts reference it by Key.
type AreaLabel struct {
	ID        uuid.UUID
	Key       string `json:"key" validate:"required,area_key"`
	Label     string `json:"label" validate:"required"`
	SortOrder *int   `json:"sortOrder" validate:"omitempty,min=0"` // nil on create means "append after the last label"
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Order returns SortOrder, or 0 when unset.
func (a AreaLabel) Order() int {
	if a.SortOrder == nil {
		return 0
	}
	return *a.SortOrder
}

// AreaLabelPatch is a partial update. Nil fields are left untouched.
type AreaLabelPatch struct {
	ID        uuid.UUID
	Key       *string `json:"key" validate:"omitempty,area_key"`
	Label     *string `json:"label" validate:"omitempty,min=1"`
	SortOrder *int    `json:"sortOrder" validate:"omitempty,min=0"`
	IsActive  *bool   `json:"isActive"`
}
