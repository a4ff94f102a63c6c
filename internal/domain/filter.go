package domain

// Filterable Cast fields. The repo layer maps each to a column.
const (
	FieldIsActive    = "isActive"
	FieldArea        = "area"
	FieldServiceType = "serviceType"
	FieldBudgetRange = "budgetRange"
)

// Condition is a single equality constraint: Field = Value.
type Condition struct {
	Field string
	Value any
}

// CastFilter is the listing filter for casts. Nil fields add no constraint.
// Values are not checked against their enumerations: an unknown value is a
// legitimate filter that matches nothing.
type CastFilter struct {
	Area            *string
	ServiceType     *string
	BudgetRange     *string
	IncludeInactive bool
}

// NewCastFilter builds a CastFilter from optional query parameters.
// Empty strings are treated the same as absent parameters.
func NewCastFilter(area, serviceType, budgetRange *string, includeInactive bool) CastFilter {
	return CastFilter{
		Area:            nonEmpty(area),
		ServiceType:     nonEmpty(serviceType),
		BudgetRange:     nonEmpty(budgetRange),
		IncludeInactive: includeInactive,
	}
}

// Conditions returns the equality conjunction the filter stands for, in a
// fixed order. With no parameters and IncludeInactive false the result is
// exactly [isActive = true].
func (f CastFilter) Conditions() []Condition {
	var conds []Condition
	if !f.IncludeInactive {
		conds = append(conds, Condition{Field: FieldIsActive, Value: true})
	}
	if f.Area != nil {
		conds = append(conds, Condition{Field: FieldArea, Value: *f.Area})
	}
	if f.ServiceType != nil {
		conds = append(conds, Condition{Field: FieldServiceType, Value: *f.ServiceType})
	}
	if f.BudgetRange != nil {
		conds = append(conds, Condition{Field: FieldBudgetRange, Value: *f.BudgetRange})
	}
	return conds
}

// Matches reports whether c satisfies every condition of the filter.
// It is the in-memory twin of the SQL the repo renders.
func (f CastFilter) Matches(c Cast) bool {
	for _, cond := range f.Conditions() {
		switch cond.Field {
		case FieldIsActive:
			if c.IsActive != cond.Value.(bool) {
				return false
			}
		case FieldArea:
			if c.Area != cond.Value.(string) {
				return false
			}
		case FieldServiceType:
			if string(c.ServiceType) != cond.Value.(string) {
				return false
			}
		case FieldBudgetRange:
			if string(c.BudgetRange) != cond.Value.(string) {
				return false
			}
		}
	}
	return true
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
