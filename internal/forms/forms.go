// Package forms checks submit payloads client-side so invalid forms
// never reach the network; a failed check keeps the submit control
// disabled rather than raising an error at the call site.
package forms

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldError represents a single validation error
type FieldError struct {
	Field   string
	Message string
}

// Check validates a payload struct against its validate tags and
// returns per-field errors, empty when the payload is submittable.
func Check(payload any) []FieldError {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fields []FieldError
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range validationErrors {
			fields = append(fields, FieldError{
				Field:   fe.Field(),
				Message: errorMessage(fe),
			})
		}
		return fields
	}
	return []FieldError{{Field: "", Message: "invalid form"}}
}

// Valid reports whether the payload passes all checks.
func Valid(payload any) bool {
	return len(Check(payload)) == 0
}

// Summary joins field errors into one banner line.
func Summary(fields []FieldError) string {
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

func errorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " must not exceed " + fe.Param() + " characters"
	case "len":
		return fe.Field() + " must be exactly " + fe.Param() + " characters"
	case "numeric":
		return fe.Field() + " must contain only digits"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}
