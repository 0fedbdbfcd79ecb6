package models

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateKey is returned by the store when a unique constraint is violated.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrValidation is the sentinel wrapped by every ValidationError.
	ErrValidation = errors.New("validation failed")
)

// ValidationError reports a missing or malformed form field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
