package curve

import "errors"

var (
	// ErrUnsupportedCurve is returned when an unknown curve preset is requested
	ErrUnsupportedCurve = errors.New("unsupported curve preset")

	// ErrInvalidCurveParameters is returned when a or b is not a member of the field
	ErrInvalidCurveParameters = errors.New("invalid curve parameters")

	// ErrNilCurve is returned when a nil curve is provided
	ErrNilCurve = errors.New("curve cannot be nil")

	// ErrPointNotOnCurve is returned when coordinates do not satisfy the curve equation
	ErrPointNotOnCurve = errors.New("invalid point: not on curve")

	// ErrInvalidCoordinates is returned when only one coordinate is provided
	ErrInvalidCoordinates = errors.New("invalid point coordinates: both or neither must be set")

	// ErrNilPoint is returned when a nil point is provided
	ErrNilPoint = errors.New("point cannot be nil")

	// ErrCurveMismatch is returned when points belong to different curves
	ErrCurveMismatch = errors.New("points belong to different curves")

	// ErrInvalidScalar is returned when a nil scalar is provided
	ErrInvalidScalar = errors.New("invalid scalar value")

	// ErrGroupLawInvariant is returned when no case of the addition law applies
	ErrGroupLawInvariant = errors.New("group law invariant violated: no addition case matched")
)
