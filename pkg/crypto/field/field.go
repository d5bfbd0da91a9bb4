// Package field implements arithmetic over prime fields Z/pZ.
// Elements are immutable: every operation returns a fresh element that
// shares the read-only field definition of its operands.
package field

import (
	"fmt"
	"math/big"
)

// PrimeField represents Z/pZ for a prime p.
// Primality of p is not verified; callers are responsible for it.
type PrimeField struct {
	prime *big.Int
}

// NewPrimeField creates a prime field with the given modulus
func NewPrimeField(prime *big.Int) (*PrimeField, error) {
	if prime == nil || prime.Cmp(big.NewInt(2)) < 0 {
		return nil, ErrInvalidModulus
	}

	return &PrimeField{prime: new(big.Int).Set(prime)}, nil
}

// Prime returns a copy of the field modulus
func (f *PrimeField) Prime() *big.Int {
	return new(big.Int).Set(f.prime)
}

// Contains reports whether e is an element of this field with a value in [0, p)
func (f *PrimeField) Contains(e *Element) bool {
	if e == nil || e.value == nil || !f.Equal(e.field) {
		return false
	}
	return e.value.Sign() >= 0 && e.value.Cmp(f.prime) < 0
}

// Equal reports whether two fields share the same modulus
func (f *PrimeField) Equal(other *PrimeField) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f == other || f.prime.Cmp(other.prime) == 0
}

// NewElement lifts v into the field, reducing it modulo p
func (f *PrimeField) NewElement(v *big.Int) *Element {
	if v == nil {
		return f.Zero()
	}
	return &Element{value: new(big.Int).Mod(v, f.prime), field: f}
}

// NewElementInt64 lifts a machine integer into the field
func (f *PrimeField) NewElementInt64(v int64) *Element {
	return f.NewElement(big.NewInt(v))
}

// Zero returns the additive identity
func (f *PrimeField) Zero() *Element {
	return &Element{value: new(big.Int), field: f}
}

// One returns the multiplicative identity
func (f *PrimeField) One() *Element {
	return &Element{value: big.NewInt(1), field: f}
}

// hexWidth is the number of hex digits used to render elements of this field.
// Fields up to 256 bits use 64 digits so output stays fixed-width.
func (f *PrimeField) hexWidth() int {
	width := 2 * ((f.prime.BitLen() + 7) / 8)
	if width < 64 {
		return 64
	}
	return width
}

func (f *PrimeField) String() string {
	return fmt.Sprintf("GF(%s)", f.prime)
}
