package ledger

import "errors"

var (
	// ErrNotFound is returned when no marker exists.
	ErrNotFound = errors.New("ledger: marker not found")

	// ErrInvalidMarker is returned when a marker lacks a course or a valid date.
	ErrInvalidMarker = errors.New("ledger: invalid marker")

	// ErrUnavailable wraps backend failures.
	ErrUnavailable = errors.New("ledger: store unavailable")
)
