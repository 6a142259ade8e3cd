package domain

import "errors"

// Domain errors represent error conditions in the recipebox domain.
// They are returned by the public API and can be checked with errors.Is.
var (
	// ErrNotFound is returned when no recipe has the requested id.
	ErrNotFound = errors.New("recipebox: recipe not found")

	// ErrKeyNotFound is returned by a key-value medium when the key is absent.
	ErrKeyNotFound = errors.New("recipebox: key not found")

	// ErrQuotaExceeded is returned by a key-value medium when a value does not fit.
	ErrQuotaExceeded = errors.New("recipebox: storage quota exceeded")

	// ErrUnavailable is returned when the stored collection could not be
	// read, so a change would overwrite data that may still exist.
	ErrUnavailable = errors.New("recipebox: storage unavailable")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("recipebox: invalid configuration")
)
