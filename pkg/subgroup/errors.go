package subgroup

import "errors"

var (
	// ErrInfiniteBase is returned when the base point is the identity
	ErrInfiniteBase = errors.New("base point cannot be the point at infinity")

	// ErrPointNotInCycle is returned when a target never appears in the generated subgroup
	ErrPointNotInCycle = errors.New("point not in cycle")

	// ErrCycleLimitExceeded is returned when enumeration hits the configured step limit
	ErrCycleLimitExceeded = errors.New("cycle enumeration limit exceeded")
)
