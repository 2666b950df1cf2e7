package apperror

import (
	"net/http"
	"time"
)

// Kind classifies an Error into the fixed taxonomy understood by the HTTP layer.
type Kind string

const (
	KindPersistence         Kind = "persistence"
	KindValidation          Kind = "validation"
	KindUnauthorized        Kind = "unauthorized"
	KindForbidden           Kind = "forbidden"
	KindNotFound            Kind = "notFound"
	KindBadRequest          Kind = "badRequest"
	KindConflict            Kind = "conflict"
	KindInternalServerError Kind = "internalServerError"
)

// Error is the single typed error carried across layer boundaries. Cause keeps
// the originating failure for logging without exposing it to callers.
type Error struct {
	Kind      Kind
	Message   string
	Cause     error
	Details   map[string]any
	Timestamp time.Time
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Cause }

func newError(kind Kind, message string, cause error, details map[string]any) *Error {
	return &Error{
		Kind:      kind,
		Message:   message,
		Cause:     cause,
		Details:   details,
		Timestamp: time.Now(),
	}
}

func Persistence(message string, cause error, details ...map[string]any) *Error {
	return newError(KindPersistence, message, cause, firstOrNil(details))
}

func Validation(message string, cause error, details ...map[string]any) *Error {
	return newError(KindValidation, message, cause, firstOrNil(details))
}

func Unauthorized(message string, cause error, details ...map[string]any) *Error {
	return newError(KindUnauthorized, message, cause, firstOrNil(details))
}

func Forbidden(message string, cause error, details ...map[string]any) *Error {
	return newError(KindForbidden, message, cause, firstOrNil(details))
}

func NotFound(message string, cause error, details ...map[string]any) *Error {
	return newError(KindNotFound, message, cause, firstOrNil(details))
}

func BadRequest(message string, cause error, details ...map[string]any) *Error {
	return newError(KindBadRequest, message, cause, firstOrNil(details))
}

func Conflict(message string, cause error, details ...map[string]any) *Error {
	return newError(KindConflict, message, cause, firstOrNil(details))
}

func Internal(message string, cause error, details ...map[string]any) *Error {
	return newError(KindInternalServerError, message, cause, firstOrNil(details))
}

// From normalizes any failure into an *Error. An already-typed error passes
// through unchanged (same instance, never re-wrapped); anything else becomes
// internalServerError with a generic message and the original attached as cause.
func From(err error) *Error {
	if typed, ok := err.(*Error); ok {
		return typed
	}
	return Internal("An unknown error occurred", err)
}

var statusByKind = map[Kind]int{
	KindPersistence:         http.StatusInternalServerError,
	KindValidation:          http.StatusBadRequest,
	KindUnauthorized:        http.StatusUnauthorized,
	KindForbidden:           http.StatusForbidden,
	KindNotFound:            http.StatusNotFound,
	KindBadRequest:          http.StatusBadRequest,
	KindConflict:            http.StatusConflict,
	KindInternalServerError: http.StatusInternalServerError,
}

// StatusCode maps the error kind to its HTTP status; unrecognized kinds
// default to 500.
func (e *Error) StatusCode() int {
	if status, ok := statusByKind[e.Kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func firstOrNil(details []map[string]any) map[string]any {
	if len(details) > 0 {
		return details[0]
	}
	return nil
}
