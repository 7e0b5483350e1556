package services

import (
	"errors"

	"github.com/socialweb-app/backend/internal/repositories"
)

// ErrNotFound signals that the target entity is missing (404-equivalent).
// It aliases the repository sentinel so store lookups pass through unchanged.
var ErrNotFound = repositories.ErrNotFound

// ErrInvalidOperation signals a structurally invalid action such as
// following yourself (400-equivalent).
var ErrInvalidOperation = errors.New("invalid operation")

// ErrUnauthorized signals a request without a resolved identity.
var ErrUnauthorized = errors.New("unauthorized")

// ValidationError carries a user-facing message for rejected input
// (400-equivalent, rendered inline in forms).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}
