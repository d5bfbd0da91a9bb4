package field

import (
	"errors"
	"math/big"
	"strings"
	"testing"
)

func newTestField(t *testing.T, p int64) *PrimeField {
	t.Helper()
	f, err := NewPrimeField(big.NewInt(p))
	if err != nil {
		t.Fatalf("Failed to create field: %v", err)
	}
	return f
}

// TestNewPrimeFieldInvalid tests modulus validation
func TestNewPrimeFieldInvalid(t *testing.T) {
	for _, p := range []*big.Int{nil, big.NewInt(0), big.NewInt(1), big.NewInt(-7)} {
		if _, err := NewPrimeField(p); err != ErrInvalidModulus {
			t.Errorf("NewPrimeField(%v): expected ErrInvalidModulus, got %v", p, err)
		}
	}
}

// TestContains tests field membership
func TestContains(t *testing.T) {
	f := newTestField(t, 17)

	if !f.Contains(f.NewElementInt64(16)) {
		t.Error("16 should be in GF(17)")
	}
	if !f.Contains(f.NewElementInt64(40)) {
		t.Error("lifted elements are always reduced into the field")
	}

	raw := &Element{value: big.NewInt(17), field: f}
	if f.Contains(raw) {
		t.Error("unreduced value 17 should not be in GF(17)")
	}

	other := newTestField(t, 19)
	if f.Contains(other.NewElementInt64(3)) {
		t.Error("element of GF(19) should not be in GF(17)")
	}
	if f.Contains(nil) {
		t.Error("nil element should not be contained")
	}
}

// TestClosure tests that add, sub and mul stay in [0, p) for every pair
func TestClosure(t *testing.T) {
	f := newTestField(t, 17)
	p := big.NewInt(17)

	for i := int64(0); i < 17; i++ {
		for j := int64(0); j < 17; j++ {
			a, b := f.NewElementInt64(i), f.NewElementInt64(j)

			ops := map[string]func(*Element) (*Element, error){
				"add": a.Add,
				"sub": a.Sub,
				"mul": a.Mul,
			}
			for name, op := range ops {
				r, err := op(b)
				if err != nil {
					t.Fatalf("%s(%d, %d) failed: %v", name, i, j, err)
				}
				if r.value.Sign() < 0 || r.value.Cmp(p) >= 0 {
					t.Errorf("%s(%d, %d) = %s out of range", name, i, j, r.value)
				}
				if !f.Contains(r) {
					t.Errorf("%s(%d, %d) result not contained in field", name, i, j)
				}
			}
		}
	}
}

// TestArithmetic tests known values
func TestArithmetic(t *testing.T) {
	f := newTestField(t, 17)
	a, b := f.NewElementInt64(5), f.NewElementInt64(13)

	sum, _ := a.Add(b)
	if sum.Value().Int64() != 1 {
		t.Errorf("5 + 13 mod 17: expected 1, got %s", sum.Value())
	}

	diff, _ := a.Sub(b)
	if diff.Value().Int64() != 9 {
		t.Errorf("5 - 13 mod 17: expected 9, got %s", diff.Value())
	}

	prod, _ := a.Mul(b)
	if prod.Value().Int64() != 14 {
		t.Errorf("5 * 13 mod 17: expected 14, got %s", prod.Value())
	}

	quo, err := a.Div(b)
	if err != nil {
		t.Fatalf("Failed to divide: %v", err)
	}
	back, _ := quo.Mul(b)
	if !back.Equal(a) {
		t.Errorf("(5 / 13) * 13: expected 5, got %s", back.Value())
	}

	if a.Neg().Value().Int64() != 12 {
		t.Errorf("-5 mod 17: expected 12, got %s", a.Neg().Value())
	}
	if a.Square().Value().Int64() != 8 {
		t.Errorf("5^2 mod 17: expected 8, got %s", a.Square().Value())
	}
}

// TestScalarMul tests integer scaling with positive and negative scalars
func TestScalarMul(t *testing.T) {
	f := newTestField(t, 17)
	a := f.NewElementInt64(5)

	tests := []struct {
		k    int64
		want int64
	}{
		{0, 0},
		{1, 5},
		{3, 15},
		{4, 3},
		{-1, 12},
		{-4, 14},
		{-34, 0},
	}

	for _, tt := range tests {
		got := a.ScalarMul(big.NewInt(tt.k))
		if got.Value().Int64() != tt.want {
			t.Errorf("%d * 5 mod 17: expected %d, got %s", tt.k, tt.want, got.Value())
		}
	}
}

// TestPow tests exponentiation including negative exponents
func TestPow(t *testing.T) {
	f := newTestField(t, 17)
	three := f.NewElementInt64(3)

	r, err := three.Pow(big.NewInt(4))
	if err != nil {
		t.Fatalf("Failed to exponentiate: %v", err)
	}
	if r.Value().Int64() != 13 {
		t.Errorf("3^4 mod 17: expected 13, got %s", r.Value())
	}

	r, _ = three.Pow(big.NewInt(0))
	if r.Value().Int64() != 1 {
		t.Errorf("3^0: expected 1, got %s", r.Value())
	}

	// 3^-1 = 6 since 3*6 = 18 = 1 mod 17
	r, _ = three.Pow(big.NewInt(-1))
	if r.Value().Int64() != 6 {
		t.Errorf("3^-1 mod 17: expected 6, got %s", r.Value())
	}

	// 3^-2 = 6^2 = 2 mod 17
	r, _ = three.Pow(big.NewInt(-2))
	if r.Value().Int64() != 2 {
		t.Errorf("3^-2 mod 17: expected 2, got %s", r.Value())
	}

	r, _ = f.Zero().Pow(big.NewInt(0))
	if !r.Equal(f.One()) {
		t.Errorf("0^0: expected 1, got %s", r.Value())
	}

	if _, err := f.Zero().Pow(big.NewInt(-1)); err != ErrDivisionByZero {
		t.Errorf("0^-1: expected ErrDivisionByZero, got %v", err)
	}
}

// TestInverse tests a * a^-1 == 1 for every nonzero element
func TestInverse(t *testing.T) {
	for _, p := range []int64{2, 3, 17, 101, 65537} {
		f := newTestField(t, p)
		limit := p
		if limit > 500 {
			limit = 500
		}
		for v := int64(1); v < limit; v++ {
			a := f.NewElementInt64(v)
			inv, err := a.Inverse()
			if err != nil {
				t.Fatalf("Failed to invert %d mod %d: %v", v, p, err)
			}
			one, _ := a.Mul(inv)
			if one.Value().Int64() != 1 {
				t.Errorf("%d * %d^-1 mod %d: expected 1, got %s", v, v, p, one.Value())
			}
		}
	}
}

// TestDivisionByZero tests that every division by zero is rejected
func TestDivisionByZero(t *testing.T) {
	f := newTestField(t, 17)
	zero := f.Zero()

	for v := int64(0); v < 17; v++ {
		_, err := f.NewElementInt64(v).Div(zero)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("%d / 0: expected ErrDivisionByZero, got %v", v, err)
		}
	}
}

// TestFieldMismatch tests cross-field operations
func TestFieldMismatch(t *testing.T) {
	f17 := newTestField(t, 17)
	f19 := newTestField(t, 19)
	a, b := f17.NewElementInt64(3), f19.NewElementInt64(3)

	ops := map[string]func(*Element) (*Element, error){
		"add": a.Add,
		"sub": a.Sub,
		"mul": a.Mul,
		"div": a.Div,
	}
	for name, op := range ops {
		if _, err := op(b); !errors.Is(err, ErrFieldMismatch) {
			t.Errorf("%s: expected ErrFieldMismatch, got %v", name, err)
		}
	}

	if a.Equal(b) {
		t.Error("elements of different fields should not be equal")
	}

	// Independently constructed fields with the same modulus are the same field
	again := newTestField(t, 17)
	if _, err := a.Add(again.NewElementInt64(1)); err != nil {
		t.Errorf("same-modulus fields should be compatible: %v", err)
	}

	if _, err := a.Add(nil); err != ErrNilElement {
		t.Errorf("expected ErrNilElement, got %v", err)
	}
}

// TestHex tests fixed-width rendering
func TestHex(t *testing.T) {
	f := newTestField(t, 17)

	got := f.NewElementInt64(16).Hex()
	want := "0x" + strings.Repeat("0", 62) + "10"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
	if f.Zero().String() != "0x"+strings.Repeat("0", 64) {
		t.Errorf("unexpected zero rendering %s", f.Zero())
	}

	// Fields wider than 256 bits grow the width
	wide, err := NewPrimeField(new(big.Int).Lsh(big.NewInt(1), 300))
	if err != nil {
		t.Fatalf("Failed to create field: %v", err)
	}
	e := wide.NewElementInt64(255)
	if len(e.Hex()) != 2+2*38 {
		t.Errorf("expected %d characters, got %d", 2+2*38, len(e.Hex()))
	}
	if _, err := wide.NewElement(new(big.Int).Lsh(big.NewInt(1), 280)).Bytes32(); err != ErrValueTooWide {
		t.Errorf("expected ErrValueTooWide, got %v", err)
	}
}
