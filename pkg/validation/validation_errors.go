package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldError is one entry in the "errors" list of a 400 response body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FormatFieldErrors converts a validator error into per-field messages.
func FormatFieldErrors(err error) []FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, surface as a single generic entry
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		out = append(out, FieldError{
			Field:   e.Field(),
			Message: formatSingleError(e),
		})
	}
	return out
}

func formatSingleError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a well-formed URL"
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("must be at least %s characters", e.Param())
		}
		return fmt.Sprintf("must be at least %s", e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("must be at most %s characters", e.Param())
		}
		return fmt.Sprintf("must be at most %s", e.Param())
	default:
		return fmt.Sprintf("failed %s validation", e.Tag())
	}
}
