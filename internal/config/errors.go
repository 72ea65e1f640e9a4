package config

import "errors"

var (
	// ErrInvalidConfig wraps every configuration problem.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrRequired marks a missing variable.
	ErrRequired = errors.New("is required")

	// ErrMalformed marks a variable that cannot be parsed.
	ErrMalformed = errors.New("is malformed")

	// ErrUnsupported marks a value outside the allowed set.
	ErrUnsupported = errors.New("is not supported")
)
