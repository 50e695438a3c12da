package errors

import (
	"fmt"
	"net/http"
)

// Violation describes one invalid input value in a validation failure.
type Violation struct {
	Message string `json:"message"`
	Value   any    `json:"value"`
}

// APIError represents a custom error type for API responses
type APIError struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Status     int         `json:"status"`
	Details    string      `json:"details,omitempty"`
	Violations []Violation `json:"-"`
}

// Error returns the error message
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAPIError(code, message string, status int, details ...string) *APIError {
	err := &APIError{
		Code:    code,
		Message: message,
		Status:  status,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

// Validation wraps a list of violations as a 400 error. The response body of
// a validation failure is the bare violation array.
func Validation(violations []Violation) *APIError {
	return &APIError{
		Code:       "VALIDATION_FAILED",
		Message:    "Invalid request data",
		Status:     http.StatusBadRequest,
		Violations: violations,
	}
}

// InvalidID reports an id that is not a valid object id hex string. Treated
// as a validation failure at the HTTP boundary.
func InvalidID(value string) *APIError {
	return Validation([]Violation{{Message: "invalid object id", Value: value}})
}

var (
	ErrInvalidInput = NewAPIError("INVALID_INPUT", "Invalid request data", http.StatusBadRequest)
	ErrNotFound     = NewAPIError("NOT_FOUND", "Resource not found", http.StatusNotFound)
	ErrInternal     = NewAPIError("INTERNAL_SERVER_ERROR", "Internal server error", http.StatusInternalServerError)
)

func Wrap(err error, code, message string, status int) *APIError {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr
	}
	return NewAPIError(code, message, status, err.Error())
}
