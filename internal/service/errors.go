package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login failures do not reveal which one it was.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// ErrDuplicateEmail is returned when registering an email that already exists.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrAccountInactive is returned for a deactivated account. Account status
	// is not a secret, so this stays distinct from credential failures.
	ErrAccountInactive = errors.New("user account is inactive")
	// ErrUnauthorized covers missing, malformed and expired bearer tokens, and
	// tokens whose subject no longer resolves to a user.
	ErrUnauthorized = errors.New("could not validate credentials")
	// ErrForbidden is returned when the authenticated user lacks the required role.
	ErrForbidden = errors.New("operation requires a different role")
)

// ValidationError reports malformed input, rejected before any store access.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
