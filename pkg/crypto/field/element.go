package field

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// Element is a value in [0, p) tagged with its prime field
type Element struct {
	value *big.Int
	field *PrimeField
}

// Value returns a copy of the reduced integer value
func (e *Element) Value() *big.Int {
	return new(big.Int).Set(e.value)
}

// Field returns the field the element belongs to
func (e *Element) Field() *PrimeField {
	return e.field
}

// IsZero reports whether the element is the additive identity
func (e *Element) IsZero() bool {
	return e.value.Sign() == 0
}

// Equal reports value equality within the same field.
// Elements of different fields are never equal.
func (e *Element) Equal(other *Element) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.field.Equal(other.field) && e.value.Cmp(other.value) == 0
}

// Add returns (e + o) mod p
func (e *Element) Add(o *Element) (*Element, error) {
	if err := e.compatible(o); err != nil {
		return nil, err
	}
	return e.field.NewElement(new(big.Int).Add(e.value, o.value)), nil
}

// Sub returns (e - o) mod p
func (e *Element) Sub(o *Element) (*Element, error) {
	if err := e.compatible(o); err != nil {
		return nil, err
	}
	return e.field.NewElement(new(big.Int).Sub(e.value, o.value)), nil
}

// Mul returns (e * o) mod p
func (e *Element) Mul(o *Element) (*Element, error) {
	if err := e.compatible(o); err != nil {
		return nil, err
	}
	return e.field.NewElement(new(big.Int).Mul(e.value, o.value)), nil
}

// ScalarMul returns (k * e) mod p for any integer k, including negative ones
func (e *Element) ScalarMul(k *big.Int) *Element {
	if k == nil {
		return e.field.Zero()
	}
	return e.field.NewElement(new(big.Int).Mul(k, e.value))
}

// Neg returns the additive inverse -e mod p
func (e *Element) Neg() *Element {
	return e.field.NewElement(new(big.Int).Neg(e.value))
}

// Square returns e^2 mod p
func (e *Element) Square() *Element {
	return e.field.NewElement(new(big.Int).Mul(e.value, e.value))
}

// Pow returns e^exp mod p.
// Negative exponents raise the inverse e^(p-2) to |exp| (Fermat's little theorem),
// so e.Pow(-1) is the multiplicative inverse.
func (e *Element) Pow(exp *big.Int) (*Element, error) {
	if exp == nil {
		return nil, ErrNilElement
	}
	if exp.Sign() == 0 {
		return e.field.One(), nil
	}

	base := e.value
	if exp.Sign() < 0 {
		// 0^(p-2) is 0, which is not an inverse
		if e.IsZero() {
			return nil, ErrDivisionByZero
		}
		pMinus2 := new(big.Int).Sub(e.field.prime, big.NewInt(2))
		base = new(big.Int).Exp(e.value, pMinus2, e.field.prime)
		exp = new(big.Int).Neg(exp)
	}

	return e.field.NewElement(new(big.Int).Exp(base, exp, e.field.prime)), nil
}

// Inverse returns the multiplicative inverse of e
func (e *Element) Inverse() (*Element, error) {
	return e.Pow(big.NewInt(-1))
}

// Div returns e * o^-1
func (e *Element) Div(o *Element) (*Element, error) {
	if err := e.compatible(o); err != nil {
		return nil, err
	}

	inv, err := o.Inverse()
	if err != nil {
		return nil, err
	}

	return e.Mul(inv)
}

// Bytes32 returns the big-endian 32-byte encoding of the value
func (e *Element) Bytes32() ([32]byte, error) {
	u, overflow := uint256.FromBig(e.value)
	if overflow {
		return [32]byte{}, ErrValueTooWide
	}
	return u.Bytes32(), nil
}

// Hex renders the value as "0x" followed by zero-padded lowercase hex digits.
// The width is 64 digits for fields up to 256 bits.
func (e *Element) Hex() string {
	width := e.field.hexWidth()
	if width == 64 {
		if b, err := e.Bytes32(); err == nil {
			return "0x" + hex.EncodeToString(b[:])
		}
	}
	return fmt.Sprintf("0x%0*x", width, e.value)
}

func (e *Element) String() string {
	return e.Hex()
}

func (e *Element) compatible(o *Element) error {
	if e == nil || o == nil {
		return ErrNilElement
	}
	if !e.field.Equal(o.field) {
		return fmt.Errorf("%w: %s and %s", ErrFieldMismatch, e.field, o.field)
	}
	return nil
}
