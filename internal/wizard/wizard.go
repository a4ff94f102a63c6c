// Package wizard is the onboarding flow that collects an area, a service type
// and a budget range before showing matching casts.
//
// Each step is its own State type. Transitions are pure functions: they take a
// state and return the next one, so callers (the terminal UI, tests) own the
// only copy of the current state.
package wizard

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/arisa-app/castdir/internal/domain"
)

// TotalSteps is the number of steps in the flow, welcome included.
const TotalSteps = 4

// ResultsPath is where a completed wizard sends the user.
const ResultsPath = "/results"

// Query parameter names. They match the filter parameters of GET /api/casts.
const (
	ParamArea        = "area"
	ParamServiceType = "serviceType"
	ParamBudgetRange = "budgetRange"
)

var (
	// ErrCannotProceed is returned by Advance when the current step still
	// needs a selection.
	ErrCannotProceed = errors.New("selection required")

	// ErrNoSelection is returned by Select on a step that takes no input.
	ErrNoSelection = errors.New("step takes no selection")

	// ErrInvalidOption is returned by Select for a value outside the step's options.
	ErrInvalidOption = errors.New("invalid option")
)

// Selection accumulates the user's choices. Empty fields were never chosen.
type Selection struct {
	Area        string
	ServiceType domain.ServiceType
	BudgetRange domain.BudgetRange
}

// Query returns the selection as URL query values. Unset fields are omitted.
func (s Selection) Query() url.Values {
	q := url.Values{}
	if s.Area != "" {
		q.Set(ParamArea, s.Area)
	}
	if s.ServiceType != "" {
		q.Set(ParamServiceType, string(s.ServiceType))
	}
	if s.BudgetRange != "" {
		q.Set(ParamBudgetRange, string(s.BudgetRange))
	}
	return q
}

// Encode returns Query().Encode().
func (s Selection) Encode() string {
	return s.Query().Encode()
}

// State is one step of the wizard. The set of implementations is closed.
type State interface {
	// Step returns the 1-based position of the state.
	Step() int
	// Selection returns everything chosen so far.
	Selection() Selection
	state()
}

// Welcome is step 1. It has no input.
type Welcome struct{ Sel Selection }

// AreaStep is step 2: pick an area label key.
type AreaStep struct{ Sel Selection }

// ServiceStep is step 3: pick a service type.
type ServiceStep struct{ Sel Selection }

// BudgetStep is step 4: pick a budget range. Advancing from here completes the wizard.
type BudgetStep struct{ Sel Selection }

func (Welcome) Step() int     { return 1 }
func (AreaStep) Step() int    { return 2 }
func (ServiceStep) Step() int { return 3 }
func (BudgetStep) Step() int  { return 4 }

func (s Welcome) Selection() Selection     { return s.Sel }
func (s AreaStep) Selection() Selection    { return s.Sel }
func (s ServiceStep) Selection() Selection { return s.Sel }
func (s BudgetStep) Selection() Selection  { return s.Sel }

func (Welcome) state()     {}
func (AreaStep) state()    {}
func (ServiceStep) state() {}
func (BudgetStep) state()  {}

// Result is produced when the final step is advanced.
type Result struct {
	Selection Selection
}

// Query returns the encoded query string, without a leading "?".
func (r Result) Query() string {
	return r.Selection.Encode()
}

// URL returns the results path with the query attached.
func (r Result) URL() string {
	if q := r.Query(); q != "" {
		return ResultsPath + "?" + q
	}
	return ResultsPath
}

// Start returns the initial state: step 1 with nothing selected.
func Start() State {
	return Welcome{}
}

// CanProceed reports whether s has what it needs to advance.
func CanProceed(s State) bool {
	switch s := s.(type) {
	case Welcome:
		return true
	case AreaStep:
		return s.Sel.Area != ""
	case ServiceStep:
		return s.Sel.ServiceType != ""
	case BudgetStep:
		return s.Sel.BudgetRange != ""
	default:
		return false
	}
}

// Advance moves to the next step. On BudgetStep it returns a non-nil Result
// and the state unchanged. When CanProceed(s) is false it returns s and
// ErrCannotProceed.
func Advance(s State) (State, *Result, error) {
	if !CanProceed(s) {
		return s, nil, fmt.Errorf("wizard.Advance step %d: %w", s.Step(), ErrCannotProceed)
	}
	switch s := s.(type) {
	case Welcome:
		return AreaStep(s), nil, nil
	case AreaStep:
		return ServiceStep(s), nil, nil
	case ServiceStep:
		return BudgetStep(s), nil, nil
	case BudgetStep:
		return s, &Result{Selection: s.Sel}, nil
	default:
		return s, nil, fmt.Errorf("wizard.Advance: unknown state %T", s)
	}
}

// Retreat moves to the previous step. On Welcome it is a no-op.
func Retreat(s State) State {
	switch s := s.(type) {
	case AreaStep:
		return Welcome(s)
	case ServiceStep:
		return AreaStep(s)
	case BudgetStep:
		return ServiceStep(s)
	default:
		return s
	}
}

// Select records value as the current step's choice, replacing any earlier
// choice for the same step. Area values must be well-formed area keys;
// service and budget values must belong to their enumerations.
func Select(s State, value string) (State, error) {
	switch s := s.(type) {
	case AreaStep:
		if !domain.ValidAreaKey(value) {
			return s, fmt.Errorf("wizard.Select area %q: %w", value, ErrInvalidOption)
		}
		s.Sel.Area = value
		return s, nil
	case ServiceStep:
		st := domain.ServiceType(value)
		if !st.Valid() {
			return s, fmt.Errorf("wizard.Select serviceType %q: %w", value, ErrInvalidOption)
		}
		s.Sel.ServiceType = st
		return s, nil
	case BudgetStep:
		b := domain.BudgetRange(value)
		if !b.Valid() {
			return s, fmt.Errorf("wizard.Select budgetRange %q: %w", value, ErrInvalidOption)
		}
		s.Sel.BudgetRange = b
		return s, nil
	default:
		return s, fmt.Errorf("wizard.Select step %d: %w", s.Step(), ErrNoSelection)
	}
}

// Current returns the value selected on s's own step, or "" when nothing is
// selected there yet or the step takes no input.
func Current(s State) string {
	sel := s.Selection()
	switch s.(type) {
	case AreaStep:
		return sel.Area
	case ServiceStep:
		return string(sel.ServiceType)
	case BudgetStep:
		return string(sel.BudgetRange)
	default:
		return ""
	}
}
