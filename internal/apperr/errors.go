// Package apperr defines the error kinds the HTTP boundary knows how to
// translate. Business code returns these; handlers map them to a response
// exactly once.
package apperr

import (
	"fmt"
	"net/http"
)

// Error is a business-rule or validation failure carrying the HTTP status it
// should surface as. Status codes live here and in the single translation
// point of the handlers package, nowhere else.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Payload is the wire shape every non-2xx response uses.
func (e *Error) Payload() map[string]any {
	return map[string]any{
		"message": e.Message,
		"code":    e.Status,
	}
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

func Internal(message string) *Error {
	return New(http.StatusInternalServerError, message)
}

// StorageError wraps a low-level storage failure so it stays distinguishable
// from business errors while propagating up. The repository rolls back before
// returning one of these.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Storage wraps err as a StorageError. Returns nil for a nil err so callers
// can wrap unconditionally.
func Storage(err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Err: err}
}
