package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/arisa-app/castdir/internal/domain"
)

// newValidator builds the validator shared by all services. Field names in
// messages use the JSON names clients send, and the domain enumerations and
// area key format are registered as custom rules.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("area_key", func(fl validator.FieldLevel) bool {
		return domain.ValidAreaKey(fl.Field().String())
	})
	_ = v.RegisterValidation("service_type", func(fl validator.FieldLevel) bool {
		return domain.ServiceType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("budget_range", func(fl validator.FieldLevel) bool {
		return domain.BudgetRange(fl.Field().String()).Valid()
	})
	return v
}

// validationError converts a validator error into a wrapped domain.ErrValidation
// carrying a short message for the first failing field.
func validationError(op string, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%s: %w: %s", op, domain.ErrValidation, fieldMessage(verrs[0]))
	}
	return fmt.Errorf("%s: %w", op, err)
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "url":
		return field + " must be a valid URL"
	case "area_key":
		return field + " must contain only uppercase letters and underscores"
	case "service_type":
		return fmt.Sprintf("%s must be one of %s", field, joinEnum(domain.ServiceTypes))
	case "budget_range":
		return fmt.Sprintf("%s must be one of %s", field, joinEnum(domain.BudgetRanges))
	case "min":
		if fe.Kind() == reflect.String {
			return field + " must not be empty"
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return field + " is invalid"
	}
}

func joinEnum[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

// trimPtr trims a non-nil string in place.
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
