package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// HandleValidationError converts a binding/validation failure into an
// ErrorDetail, using the first field error for the message when available.
func HandleValidationError(err error) *ErrorDetail {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		first := fieldErrors[0]
		return NewErrorDetail(ErrorCodeValidationFailed, formatFieldError(first)).
			WithField(first.Field()).
			WithDetails(err.Error())
	}
	return NewErrorDetail(ErrorCodeValidationFailed, "Invalid request format").
		WithDetails(err.Error())
}

// formatFieldError creates a human-readable validation error message
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "gte":
		return e.Field() + " must be at least " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " is invalid"
	}
}
