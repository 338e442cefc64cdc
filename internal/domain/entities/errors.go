package entities

import (
	"errors"
	"fmt"
)

// Error kinds shared by every aggregate. Entity specific sentinels wrap one of
// these so callers can branch on the kind with errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
)

// ErrVersionConflict is returned by repositories when a conditional write
// observed a different version than the one the caller read.
var ErrVersionConflict = fmt.Errorf("version mismatch: %w", ErrConflict)

// ValidationError describes a rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError is a shorthand used by the domain checks.
func NewValidationError(field, message string) ValidationError {
	return ValidationError{Field: field, Message: message}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
