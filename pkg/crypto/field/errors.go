package field

import "errors"

var (
	// ErrInvalidModulus is returned when the field modulus is nil or below 2
	ErrInvalidModulus = errors.New("modulus must be at least 2")

	// ErrNilElement is returned when a nil element is provided
	ErrNilElement = errors.New("field element cannot be nil")

	// ErrFieldMismatch is returned when operands belong to different prime fields
	ErrFieldMismatch = errors.New("field elements belong to different fields")

	// ErrDivisionByZero is returned when the inverse of zero is requested
	ErrDivisionByZero = errors.New("division by zero in prime field")

	// ErrValueTooWide is returned when a value does not fit a fixed-width encoding
	ErrValueTooWide = errors.New("value does not fit in 256 bits")
)
