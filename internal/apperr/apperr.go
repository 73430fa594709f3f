// Package apperr tags errors with the error taxonomy of the JSON API so
// the web layer can map them to HTTP statuses in one place.
package apperr

import (
	"github.com/gofiber/fiber/v2"
)

// Kind classifies an API error.
type Kind int

const (
	// KindInternal is an unexpected backend failure.
	KindInternal Kind = iota
	// KindBadRequest is a missing identifier or unparsable body.
	KindBadRequest
	// KindUnauthorized means no caller identity.
	KindUnauthorized
	// KindForbidden is a role, ownership or published-lock failure.
	KindForbidden
	// KindNotFound is a referenced entity that does not exist.
	KindNotFound
)

// Status returns the HTTP status code of the kind.
func (k Kind) Status() int {
	switch k {
	case KindBadRequest:
		return fiber.StatusBadRequest
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	case KindForbidden:
		return fiber.StatusForbidden
	case KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// Error is a kind-tagged error with a user-facing message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a tagged error with a user-facing message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap tags an underlying error with a kind and user-facing message.
func Wrap(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}
