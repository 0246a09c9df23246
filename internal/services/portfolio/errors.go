package portfolio

import (
	"errors"
	"fmt"
)

// ErrValidation indicates a manual entry was rejected before reaching the
// merge. Callers map this to HTTP 400.
var ErrValidation = errors.New("validation failed")

// ValidationError wraps ErrValidation with the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
