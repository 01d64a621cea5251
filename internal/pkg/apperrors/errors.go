package apperrors

import (
	"errors"
	"net/http"
)

// Resource errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
	ErrUnknownField     = errors.New("unknown form field")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrSessionNotFound    = errors.New("session not found")
	ErrPermissionDenied   = errors.New("permission denied")
)

// Backend errors
var (
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrUnexpectedResponse = errors.New("unexpected backend response")
)

// Is returns whether err matches target or any of errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError carries an application error together with the context it was
// raised in (backend status code, operation, field details).
type CustomError struct {
	Err        error
	Message    string
	StatusCode int
	Details    map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithStatus records the HTTP status the error was derived from
func (e *CustomError) WithStatus(code int) *CustomError {
	e.StatusCode = code
	return e
}

// NewResourceNotFoundError creates a not-found error with a message
func NewResourceNotFoundError(message string) error {
	return NewCustomError(ErrResourceNotFound, message)
}

// NewValidationError creates a validation error listing the offending fields
func NewValidationError(fields map[string]string) error {
	details := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		details[k] = v
	}
	return NewCustomError(ErrValidationFailed, "validation failed").WithDetails(details)
}

// FromStatus maps a backend HTTP status onto the sentinel it represents.
func FromStatus(status int) error {
	switch {
	case status == http.StatusNotFound:
		return ErrResourceNotFound
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return ErrValidationFailed
	case status == http.StatusUnauthorized:
		return ErrTokenInvalid
	case status == http.StatusForbidden:
		return ErrPermissionDenied
	case status >= http.StatusInternalServerError:
		return ErrBackendUnavailable
	default:
		return ErrUnexpectedResponse
	}
}

// FieldErrors extracts per-field messages from a validation error, if any.
func FieldErrors(err error) map[string]string {
	var ce *CustomError
	if !errors.As(err, &ce) || !errors.Is(ce, ErrValidationFailed) {
		return nil
	}
	out := make(map[string]string, len(ce.Details))
	for k, v := range ce.Details {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}
