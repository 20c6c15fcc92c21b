package repository

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail indicates a user row with the same email already exists.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrNotConfigured indicates the backing store has no connection
	// parameters. Callers translate it into a service-unavailable response.
	ErrNotConfigured = errors.New("store is not configured")
)
