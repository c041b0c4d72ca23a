// Package apperror provides the presentation-boundary error type of the
// dashboard. Errors carry an HTTP status code and a user-safe message. The
// Echo error handler and the section pages map them to responses and banners.
//
// NEVER show raw backend or transport errors to the user. Wrap them in an
// apperror type so only the safe message reaches the page.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the base error type for all presentation errors. It carries an
// HTTP status code, a machine-readable error type, and a human-readable
// message safe to show to the user.
type AppError struct {
	// Code is the HTTP status code (e.g., 404, 422, 502).
	Code int `json:"-"`

	// Type is a machine-readable error classifier (e.g., "not_found").
	Type string `json:"type"`

	// Message is a human-readable description safe for the user.
	Message string `json:"message"`

	// Internal holds the underlying error for logging. Never exposed to the user.
	Internal error `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (internal: %v)", e.Type, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *AppError) Unwrap() error {
	return e.Internal
}

// --- Constructors for common error types ---

// NewNotFound creates a 404 Not Found error.
func NewNotFound(message string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Type:    "not_found",
		Message: message,
	}
}

// NewBadRequest creates a 400 Bad Request error.
func NewBadRequest(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Type:    "bad_request",
		Message: message,
	}
}

// NewValidation creates a 422 Unprocessable Entity error for validation
// failures. The underlying validation error is kept for field messages.
func NewValidation(message string, err error) *AppError {
	return &AppError{
		Code:     http.StatusUnprocessableEntity,
		Type:     "validation_error",
		Message:  message,
		Internal: err,
	}
}

// NewBadGateway creates a 502 Bad Gateway error for a failed request to the
// catalog backend. The message names the attempted action; the backend error
// is kept in Internal for logging.
func NewBadGateway(message string, err error) *AppError {
	return &AppError{
		Code:     http.StatusBadGateway,
		Type:     "backend_error",
		Message:  message,
		Internal: err,
	}
}

// NewInternal creates a 500 Internal Server Error. The real error is stored
// in Internal for logging but the user only sees a generic message.
func NewInternal(err error) *AppError {
	return &AppError{
		Code:     http.StatusInternalServerError,
		Type:     "internal_error",
		Message:  "Ocurrió un error inesperado. Intente nuevamente.",
		Internal: err,
	}
}

// As extracts an AppError from err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// SafeMessage returns the user-safe message from an error. If the error is
// an AppError, returns its Message field. For any other error type, returns
// a generic message so transport details never reach the page.
func SafeMessage(err error) string {
	if appErr, ok := As(err); ok {
		return appErr.Message
	}
	return "Ocurrió un error inesperado."
}

// SafeCode returns the HTTP status code from an AppError, or 500 for any
// other error type.
func SafeCode(err error) int {
	if appErr, ok := As(err); ok {
		return appErr.Code
	}
	return http.StatusInternalServerError
}
