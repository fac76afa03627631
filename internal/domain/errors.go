package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrValidation        = errors.New("validation error")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrForbidden         = errors.New("forbidden")
	ErrConflict          = errors.New("conflict")
	ErrInvalidTransition = errors.New("invalid order transition")
	ErrInvalidMedia      = errors.New("invalid media")
	ErrUploadFailed      = errors.New("upload failed")
)

// ErrItemHasOrders rejects deleting an item that orders still reference.
var ErrItemHasOrders = fmt.Errorf("item has orders: %w", ErrConflict)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
// Marketplace forms report only the first violated rule, so most
// ValidationErrors carry exactly one entry.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Message returns the user-facing message of the first violation.
func (e *ValidationError) Message() string {
	if len(e.Errors) == 0 {
		return ""
	}
	return e.Errors[0].Message
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// MediaError reports a rejected upload precondition. It unwraps to ErrInvalidMedia.
type MediaError struct {
	Reason string
}

func (e *MediaError) Error() string { return "invalid media: " + e.Reason }

func (e *MediaError) Unwrap() error { return ErrInvalidMedia }
