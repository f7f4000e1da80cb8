// Package apperror defines the error type that crosses the service boundary.
// The HTTP error middleware is the only place it is rendered.
package apperror

import (
	"errors"
	"net/http"
)

// Error codes.
const (
	CodeInternal     = "INTERNAL_ERROR"
	CodeDatabase     = "DATABASE_ERROR"
	CodeUnavailable  = "SERVICE_UNAVAILABLE"
	CodePrecondition = "PRECONDITION_FAILED"
)

var statusByCode = map[string]int{
	CodeInternal:     http.StatusInternalServerError,
	CodeDatabase:     http.StatusInternalServerError,
	CodeUnavailable:  http.StatusServiceUnavailable,
	CodePrecondition: http.StatusInternalServerError,
}

// AppError carries a machine-readable code, a message safe to show to
// clients, and an optional cause that is logged but never rendered.
type AppError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	Err     error          `json:"-"`
}

func (e *AppError) Error() string {
	msg := e.Code + ": " + e.Message
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status for the error code.
func (e *AppError) Status() int {
	if s, ok := statusByCode[e.Code]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// WithDetail sets a detail value and returns e.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// NewPrecondition reports a missing required collaborator at construction time.
func NewPrecondition(message string) *AppError {
	return &AppError{Code: CodePrecondition, Message: message}
}

// NewDatabase wraps a storage failure; op names the failed operation.
func NewDatabase(op string, err error) *AppError {
	return &AppError{
		Code:    CodeDatabase,
		Message: "Database error",
		Details: map[string]any{"operation": op},
		Err:     err,
	}
}

// NewUnavailable reports a feature that cannot serve in the current setup.
func NewUnavailable(message string) *AppError {
	return &AppError{Code: CodeUnavailable, Message: message}
}

// NewInternal hides err behind a generic message.
func NewInternal(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "Internal server error", Err: err}
}

// AsAppError extracts an AppError from the error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsAppError reports whether err wraps an AppError.
func IsAppError(err error) bool {
	_, ok := AsAppError(err)
	return ok
}

// From returns the AppError in err's chain, or wraps err as internal.
func From(err error) *AppError {
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	return NewInternal(err)
}

// IsPrecondition reports whether err is a precondition failure.
func IsPrecondition(err error) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == CodePrecondition
}
