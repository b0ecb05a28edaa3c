package apierrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Common application errors with proper types for error handling

var (
	// ErrNotFound indicates a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates missing or invalid authentication
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the user doesn't have permission
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidInput indicates invalid input data
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict indicates a conflict with existing data
	ErrConflict = errors.New("conflict")

	// ErrServer indicates a backend-side failure
	ErrServer = errors.New("server error")
)

// FallbackMessage is shown when a backend response carries no usable
// message field.
const FallbackMessage = "Something went wrong. Please try again."

// APIError is a non-2xx response from one of the backend services.
// Message holds the human-readable text extracted from the response body
// when present.
type APIError struct {
	Service    string
	Operation  string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: %d %s", e.Service, e.Operation, e.StatusCode, e.DisplayMessage())
}

// DisplayMessage returns the backend message or the generic fallback.
func (e *APIError) DisplayMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return FallbackMessage
}

// Is maps the response status class onto the sentinel taxonomy so callers
// can branch with errors.Is without inspecting status codes.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrConflict:
		return e.StatusCode == http.StatusConflict
	case ErrInvalidInput:
		return e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusUnprocessableEntity
	case ErrServer:
		return e.StatusCode >= 500
	}
	return false
}

// MessageFrom extracts a display message from any error returned by the
// API layer. Transport failures and unexpected errors fall back to the
// generic message.
func MessageFrom(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.DisplayMessage()
	}
	return FallbackMessage
}
