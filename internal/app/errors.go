// Package app holds the application services and business logic.
package app

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services and adapters for stable
// status-code mapping at the HTTP boundary.
var (
	// ErrInvalidCredentials indicates a wrong password for a known account.
	ErrInvalidCredentials = errors.New("incorrect password")
	// ErrAccountNotFound indicates no account exists for the given email.
	ErrAccountNotFound = errors.New("user not found")
	// ErrEmailTaken indicates a registration against an existing email.
	ErrEmailTaken = errors.New("email already exists")
	// ErrNotFound indicates the requested list or item does not exist
	// for the authenticated account.
	ErrNotFound = errors.New("not found")
)

// ValidationError reports a missing, empty, or malformed input field.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
