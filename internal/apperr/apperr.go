// Package apperr defines the typed errors raised by repositories and services.
// The API layer translates these into transport responses; nothing below the
// handlers ever writes an HTTP status itself.
package apperr

import (
	"fmt"
	"net/http"
)

// Kind classifies an error independently of its HTTP mapping.
type Kind string

const (
	KindNotFound     Kind = "NotFoundError"
	KindConflict     Kind = "ConflictError"
	KindValidation   Kind = "ValidationError"
	KindUnauthorized Kind = "UnauthorizedError"
	KindInternal     Kind = "InternalError"
)

// Error carries the status code, a human message, the error kind, and the
// repository or service method that raised it.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Kind    Kind   `json:"kind"`
	Source  string `json:"source"`
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Source, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/errors.As chains.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCause attaches the underlying storage or codec error. The cause is kept
// for logging only and never serialized to clients.
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

func NotFound(source, message string) *Error {
	return &Error{Code: http.StatusNotFound, Message: message, Kind: KindNotFound, Source: source}
}

func Conflict(source, message string) *Error {
	return &Error{Code: http.StatusConflict, Message: message, Kind: KindConflict, Source: source}
}

func Validation(source, message string) *Error {
	return &Error{Code: http.StatusUnprocessableEntity, Message: message, Kind: KindValidation, Source: source}
}

func Unauthorized(source, message string) *Error {
	return &Error{Code: http.StatusUnauthorized, Message: message, Kind: KindUnauthorized, Source: source}
}

func Internal(source, message string) *Error {
	return &Error{Code: http.StatusInternalServerError, Message: message, Kind: KindInternal, Source: source}
}
