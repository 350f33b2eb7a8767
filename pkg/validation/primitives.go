package validation

import (
	"fmt"
	"strings"

	dErrors "aquaria/pkg/domain-errors"
)

// Number covers the numeric kinds the domain validates.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// NotEmpty rejects strings that are empty after trimming whitespace.
func NotEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return dErrors.New(dErrors.CodeValidation, field+" cannot be empty")
	}
	return nil
}

// Required combines NotEmpty with a maximum length check.
func Required(field, value string, max int) error {
	if err := NotEmpty(field, value); err != nil {
		return err
	}
	return MaxLength(field, value, max)
}

// MaxLength rejects strings longer than max characters.
func MaxLength(field, value string, max int) error {
	if len([]rune(value)) > max {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s exceeds max length of %d", field, max))
	}
	return nil
}

// Positive rejects zero and negative values.
func Positive[T Number](field string, value T) error {
	if value <= 0 {
		return dErrors.New(dErrors.CodeValidation, field+" must be positive")
	}
	return nil
}

// NonNegative rejects negative values.
func NonNegative[T Number](field string, value T) error {
	if value < 0 {
		return dErrors.New(dErrors.CodeValidation, field+" cannot be negative")
	}
	return nil
}

// InRange rejects values outside [min, max].
func InRange[T Number](field string, value, min, max T) error {
	if value < min || value > max {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s must be between %v and %v", field, min, max))
	}
	return nil
}

// Email rejects values that are not a well-formed address.
func Email(value string) error {
	if err := NotEmpty("Email", value); err != nil {
		return err
	}
	if err := MaxLength("Email", value, MaxEmailLength); err != nil {
		return err
	}
	if err := defaultValidator.Var(value, "email"); err != nil {
		return dErrors.New(dErrors.CodeValidation, "Invalid email format")
	}
	return nil
}

// OneOf parses value case-insensitively into one of the allowed enum values.
func OneOf[T ~string](field, value string, allowed ...T) (T, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	for _, a := range allowed {
		if string(a) == normalized {
			return a, nil
		}
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	var zero T
	return zero, dErrors.New(dErrors.CodeValidation,
		fmt.Sprintf("%s must be one of [%s]", field, strings.Join(names, " ")))
}

// First returns the first non-nil error, so callers can validate every
// field of a command before touching any state.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
