// Package sentinel lists the errors stores may return. Services match them
// with errors.Is and turn them into domain errors in one place.
package sentinel

import "errors"

var (
	// ErrNotFound means the row or key does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyUsed reports a unique constraint hit, such as a taken email.
	ErrAlreadyUsed = errors.New("already used")
	// ErrConflict reports a write that lost against a concurrent change.
	ErrConflict = errors.New("conflict")
	// ErrInvalidState flags a stored row that no longer decodes into the model.
	ErrInvalidState = errors.New("invalid state")
	// ErrUnavailable wraps infrastructure that could not be reached.
	ErrUnavailable = errors.New("unavailable")
)
