package services

import (
	"errors"

	"movie-catalog/internal/validation"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("authentication credentials were not provided or are invalid")
	ErrForbidden    = errors.New("you do not have permission to perform this action")
)

// ValidationError carries field-level messages for a rejected request.
type ValidationError struct {
	Fields validation.FieldErrors
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Fields.Error()
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: validation.FieldErrors{field: {message}}}
}

// validateInput runs struct validation and wraps failures.
func validateInput(input interface{}) error {
	if errs := validation.ValidateStruct(input); errs != nil {
		return &ValidationError{Fields: errs}
	}
	return nil
}
