package rand

import "errors"

var (
	// ErrNilBound is returned when a range bound is nil
	ErrNilBound = errors.New("range bound cannot be nil")

	// ErrInvalidRange is returned when range parameters are invalid
	ErrInvalidRange = errors.New("invalid range: min must not exceed max")
)
