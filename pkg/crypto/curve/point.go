package curve

import (
	"fmt"
	"math/big"

	"github.com/Caqil/ecsubgroup/pkg/crypto/field"
)

// Point is either a finite affine point (x, y) on a curve or the point at infinity.
// Points are immutable; every group operation returns a new value.
type Point struct {
	curve *Curve
	inf   bool
	x, y  *field.Element
}

// NewPoint lifts raw coordinates into the curve's field and verifies the curve
// equation. Passing nil for both coordinates yields the point at infinity.
func NewPoint(c *Curve, x, y *big.Int) (*Point, error) {
	if c == nil {
		return nil, ErrNilCurve
	}
	if x == nil && y == nil {
		return c.inf, nil
	}
	if x == nil || y == nil {
		return nil, ErrInvalidCoordinates
	}

	return c.newFinite(c.field.NewElement(x), c.field.NewElement(y))
}

// NewPointInt64 is NewPoint for machine integers
func NewPointInt64(c *Curve, x, y int64) (*Point, error) {
	return NewPoint(c, big.NewInt(x), big.NewInt(y))
}

func (c *Curve) newFinite(x, y *field.Element) (*Point, error) {
	if !c.satisfies(x, y) {
		return nil, fmt.Errorf("%w: (%s, %s) on %s", ErrPointNotOnCurve, x.Value(), y.Value(), c.name)
	}
	return &Point{curve: c, x: x, y: y}, nil
}

// Curve returns the curve the point belongs to
func (p *Point) Curve() *Curve {
	return p.curve
}

// IsInfinity reports whether p is the identity element
func (p *Point) IsInfinity() bool {
	return p.inf
}

// X returns the x coordinate, or nil for the point at infinity
func (p *Point) X() *field.Element {
	return p.x
}

// Y returns the y coordinate, or nil for the point at infinity
func (p *Point) Y() *field.Element {
	return p.y
}

// Equal reports whether two points are the same element of the same curve group
func (p *Point) Equal(q *Point) bool {
	if p == nil || q == nil {
		return p == q
	}
	if !p.curve.Equal(q.curve) {
		return false
	}
	if p.inf || q.inf {
		return p.inf == q.inf
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// Negate returns -p = (x, -y). The identity is its own negation.
func (p *Point) Negate() *Point {
	if p.inf {
		return p
	}
	return &Point{curve: p.curve, x: p.x, y: p.y.Neg()}
}

// Add returns p + q. Cases are evaluated in a fixed order:
//  1. p is infinity: q
//  2. q is infinity: p
//  3. p.x == q.x and p.y == -q.y: infinity (includes doubling a point with y == 0)
//  4. p.x != q.x: chord through p and q
//  5. p == q: tangent at p
//
// Case 3 must precede 4 and 5 so the chord and tangent denominators are nonzero.
func (p *Point) Add(q *Point) (*Point, error) {
	if p == nil || q == nil {
		return nil, ErrNilPoint
	}
	if !p.curve.Equal(q.curve) {
		return nil, ErrCurveMismatch
	}

	if p.inf {
		return q, nil
	}
	if q.inf {
		return p, nil
	}

	if p.x.Equal(q.x) && p.y.Equal(q.y.Neg()) {
		return p.curve.inf, nil
	}

	if !p.x.Equal(q.x) {
		return p.chord(q)
	}

	if p.y.Equal(q.y) {
		return p.tangent()
	}

	return nil, ErrGroupLawInvariant
}

// chord computes s = (qy - py) / (qx - px), x3 = s^2 - px - qx, y3 = s(px - x3) - py
func (p *Point) chord(q *Point) (*Point, error) {
	num, err := q.y.Sub(p.y)
	if err != nil {
		return nil, err
	}
	den, err := q.x.Sub(p.x)
	if err != nil {
		return nil, err
	}
	s, err := num.Div(den)
	if err != nil {
		return nil, err
	}

	x3, err := s.Square().Sub(p.x)
	if err != nil {
		return nil, err
	}
	x3, err = x3.Sub(q.x)
	if err != nil {
		return nil, err
	}

	return p.finish(s, x3)
}

// tangent computes s = (3px^2 + a) / 2py, x3 = s^2 - 2px, y3 = s(px - x3) - py
func (p *Point) tangent() (*Point, error) {
	num, err := p.x.Square().ScalarMul(big.NewInt(3)).Add(p.curve.a)
	if err != nil {
		return nil, err
	}
	s, err := num.Div(p.y.ScalarMul(big.NewInt(2)))
	if err != nil {
		return nil, err
	}

	x3, err := s.Square().Sub(p.x.ScalarMul(big.NewInt(2)))
	if err != nil {
		return nil, err
	}

	return p.finish(s, x3)
}

// finish computes y3 = s(px - x3) - py and builds the validated result point
func (p *Point) finish(s, x3 *field.Element) (*Point, error) {
	dx, err := p.x.Sub(x3)
	if err != nil {
		return nil, err
	}
	y3, err := s.Mul(dx)
	if err != nil {
		return nil, err
	}
	y3, err = y3.Sub(p.y)
	if err != nil {
		return nil, err
	}

	return p.curve.newFinite(x3, y3)
}

// Double returns p + p
func (p *Point) Double() (*Point, error) {
	return p.Add(p)
}

// ScalarMult returns k*p using double-and-add over the bits of |k|, least
// significant first. Negative k multiplies -p by |k|; k == 0 yields infinity.
func (p *Point) ScalarMult(k *big.Int) (*Point, error) {
	if p == nil {
		return nil, ErrNilPoint
	}
	if k == nil {
		return nil, ErrInvalidScalar
	}

	running := p
	if k.Sign() < 0 {
		running = p.Negate()
	}
	n := new(big.Int).Abs(k)

	result := p.curve.inf
	for i := 0; i < n.BitLen(); i++ {
		var err error
		if n.Bit(i) == 1 {
			result, err = result.Add(running)
			if err != nil {
				return nil, err
			}
		}
		running, err = running.Add(running)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// ScalarMultInt64 is ScalarMult for machine integers
func (p *Point) ScalarMultInt64(k int64) (*Point, error) {
	return p.ScalarMult(big.NewInt(k))
}

func (p *Point) String() string {
	if p.inf {
		return "infinity"
	}
	return fmt.Sprintf("(%s, %s)", p.x.Hex(), p.y.Hex())
}
