package domain

import "time"

// ExportRow is a single row in the cast export.
// It is a flat, denormalized view: one row per cast with the display labels
// of its area, service type and budget range resolved alongside the raw keys.
//
// AreaLabel is empty when the cast's area key has no matching AreaLabel
// (the area was renamed or removed outside the guarded delete path).
type ExportRow struct {
	CastID    string
	Name      string
	SNSLink   string
	StoreLink string // empty string when nil

	Area             string
	AreaLabel        string
	ServiceType      string
	ServiceTypeLabel string
	BudgetRange      string
	BudgetRangeLabel string

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
