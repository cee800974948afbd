package models

import (
	"errors"
	"fmt"
)

// APIError represents a standardized error response for unexpected failures
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrInternalServer is the code of every APIError the service sends
const ErrInternalServer = "INTERNAL_SERVER_ERROR"

// Client facing messages
const (
	MsgRestaurantNotFound = "Restaurant not found"
	MsgValidationErrors   = "validation errors"
)

var (
	// ErrRestaurantNotFound is returned when no restaurant has the requested id
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrPizzaNotFound is returned when no pizza has the requested id
	ErrPizzaNotFound = errors.New("pizza not found")
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string) APIError {
	return APIError{Code: code, Message: message}
}

// ValidationError reports a field that failed validation
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// IsValidationError reports whether err wraps a *ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrorResponse is the body sent on 404 responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse is the body sent on 400 responses
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}
