package demo

import "errors"

var (
	// ErrInvalidConfig is returned when the configuration fails validation
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidInteger is returned when an integer flag cannot be parsed
	ErrInvalidInteger = errors.New("invalid integer")
)
