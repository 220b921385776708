package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrUpstream marks a failed call to an external collaborator
	// (object store, event broker).
	ErrUpstream = errors.New("upstream failure")

	// ErrRoleLookupFailed is returned alongside a member-level caller when the
	// account role could not be read. It never grants admin.
	ErrRoleLookupFailed = errors.New("role lookup failed")

	// ErrAuditFailed is logged when an audit entry could not be written.
	// It is never returned to the caller of the audited operation.
	ErrAuditFailed = errors.New("audit write failed")
)

// ErrInvalidStatus is a validation error for unknown listing statuses or
// moderation actions.
var ErrInvalidStatus = &invalidStatusError{}

type invalidStatusError struct{}

func (e *invalidStatusError) Error() string { return "invalid status" }

func (e *invalidStatusError) Unwrap() error { return ErrValidation }

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
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

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
