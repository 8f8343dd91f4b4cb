// Package app holds the application services and business logic.
package app

import "errors"

var (
	// ErrNotAuthenticated indicates that no resolvable identity is present.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrInvalidInput indicates a validation failure on user-supplied fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound indicates that an entity is absent or not owned by the caller.
	ErrNotFound = errors.New("not found")
)
