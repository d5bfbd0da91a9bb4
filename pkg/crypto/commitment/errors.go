package commitment

import "errors"

var (
	// ErrNilPoint is returned when a generator or base point is nil
	ErrNilPoint = errors.New("point cannot be nil")

	// ErrNilWitness is returned when a witness or blinding value is nil
	ErrNilWitness = errors.New("witness and blinding values cannot be nil")

	// ErrInfinitePoint is returned when a generator or base point is the identity
	ErrInfinitePoint = errors.New("point cannot be the point at infinity")
)
