package hash

import "errors"

var (
	// ErrEmptySeed is returned when no seed material is provided
	ErrEmptySeed = errors.New("seed cannot be empty")

	// ErrInvalidRange is returned when range parameters are invalid
	ErrInvalidRange = errors.New("invalid range: min must not exceed max")
)
