package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents an application error carrying the HTTP status it maps to.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NotFound marks a missing entity.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message, nil)
}

// Conflict marks a uniqueness violation. It keeps its own constructor for
// taxonomy but maps to 400 on the wire, like every other client fault.
func Conflict(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

// Invalid marks a business-rule or input validation failure.
func Invalid(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

// Unauthorized marks bad credentials or an invalid token.
func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message, nil)
}

// Storage wraps an underlying persistence error with the failing operation.
func Storage(op string, err error) *Error {
	return New(http.StatusInternalServerError, fmt.Sprintf("Error %s", op), err)
}

// StatusCode returns the HTTP status for any error; non-application errors
// map to 500.
func StatusCode(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// PublicMessage returns the client-facing message for any error. Internal
// causes of storage and unknown errors are not exposed.
func PublicMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		if appErr.Code == http.StatusInternalServerError {
			return "Internal server error"
		}
		return appErr.Message
	}
	return "Internal server error"
}

// IsNotFound reports whether err is a not-found application error.
func IsNotFound(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Code == http.StatusNotFound
}
