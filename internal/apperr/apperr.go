package apperr

import (
	"errors"
	"net/http"
)

// Error is a domain outcome with the HTTP status it maps to.
// Message is safe to show to the caller; Err carries internal detail for logs.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error with the given status and caller-facing message
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// Wrap attaches internal detail to a caller-facing error
func Wrap(status int, message string, err error) *Error {
	return &Error{Status: status, Message: message, Err: err}
}

// ------------- Constructors per taxonomy -------------

// BadRequest: malformed input or a state rule rejected the request (400)
func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// Unauthorized: missing or invalid session (401)
func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

// Forbidden: tenant mismatch or insufficient rights (403).
// Kept vague so callers cannot confirm cross-tenant resource existence.
func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message)
}

// NotFound: the resource does not exist for this caller (404)
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// Conflict: overlap with an existing booking (409). Expected under
// legitimate concurrent use, not a bug.
func Conflict(message string) *Error {
	return New(http.StatusConflict, message)
}

// Internal: unexpected persistence failure (500). Detail stays in logs.
func Internal(err error) *Error {
	return Wrap(http.StatusInternalServerError, "Internal server error", err)
}

// StatusOf returns the HTTP status for err, defaulting to 500
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the caller-facing message for err
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}
