// Package curve provides short Weierstrass elliptic curves y^2 = x^3 + ax + b
// over prime fields, with the affine group law and double-and-add scalar
// multiplication. Arithmetic is variable-time.
package curve

import (
	"fmt"
	"math/big"

	"github.com/Caqil/ecsubgroup/pkg/crypto/field"
)

// Curve is an immutable short Weierstrass curve over a prime field
type Curve struct {
	name  string
	a     *field.Element
	b     *field.Element
	field *field.PrimeField
	inf   *Point
}

// NewCurve creates the curve y^2 = x^3 + ax + b over f
func NewCurve(a, b *big.Int, f *field.PrimeField) (*Curve, error) {
	return NewNamedCurve("", a, b, f)
}

// NewNamedCurve creates a curve carrying a display name
func NewNamedCurve(name string, a, b *big.Int, f *field.PrimeField) (*Curve, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil field", ErrInvalidCurveParameters)
	}
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: nil coefficient", ErrInvalidCurveParameters)
	}

	c := &Curve{
		name:  name,
		a:     f.NewElement(a),
		b:     f.NewElement(b),
		field: f,
	}

	if !f.Contains(c.a) || !f.Contains(c.b) {
		return nil, ErrInvalidCurveParameters
	}

	c.inf = &Point{curve: c, inf: true}
	if c.name == "" {
		c.name = fmt.Sprintf("y^2 = x^3 + %sx + %s over %s", c.a.Value(), c.b.Value(), f)
	}

	return c, nil
}

// Name returns the curve name
func (c *Curve) Name() string {
	return c.name
}

// A returns the linear coefficient
func (c *Curve) A() *field.Element {
	return c.a
}

// B returns the constant coefficient
func (c *Curve) B() *field.Element {
	return c.b
}

// Field returns the underlying prime field
func (c *Curve) Field() *field.PrimeField {
	return c.field
}

// Infinity returns the identity element of the curve group
func (c *Curve) Infinity() *Point {
	return c.inf
}

// Equal reports whether two curves have the same field and coefficients
func (c *Curve) Equal(other *Curve) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c == other ||
		(c.field.Equal(other.field) && c.a.Equal(other.a) && c.b.Equal(other.b))
}

// IsSingular reports whether 4a^3 + 27b^2 == 0 mod p
func (c *Curve) IsSingular() bool {
	a3, _ := c.a.Square().Mul(c.a)
	b2 := c.b.Square()
	d, _ := a3.ScalarMul(big.NewInt(4)).Add(b2.ScalarMul(big.NewInt(27)))
	return d.IsZero()
}

// Contains reports whether p satisfies y^2 = x^3 + ax + b.
// The identity is contained by convention.
func (c *Curve) Contains(p *Point) bool {
	if p == nil {
		return false
	}
	if p.inf {
		return true
	}
	return c.satisfies(p.x, p.y)
}

func (c *Curve) satisfies(x, y *field.Element) bool {
	if !c.field.Contains(x) || !c.field.Contains(y) {
		return false
	}

	x3, err := x.Square().Mul(x)
	if err != nil {
		return false
	}
	ax, err := c.a.Mul(x)
	if err != nil {
		return false
	}
	rhs, err := x3.Add(ax)
	if err != nil {
		return false
	}
	rhs, err = rhs.Add(c.b)
	if err != nil {
		return false
	}

	return y.Square().Equal(rhs)
}

func (c *Curve) String() string {
	return c.name
}
