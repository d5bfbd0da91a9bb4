package curve

import (
	"crypto/elliptic"
	"fmt"
	"math/big"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/Caqil/ecsubgroup/pkg/crypto/field"
)

// Preset names accepted by LookupPreset
const (
	Demo17Name    = "demo17"
	Secp256k1Name = "secp256k1"
	P256Name      = "p256"
)

// Preset bundles a named curve with a generator and, when known, its order
type Preset struct {
	Curve     *Curve
	Generator *Point

	// Order is the order of Generator, nil when not published
	Order *big.Int
}

// Name returns the preset's curve name
func (p *Preset) Name() string {
	return p.Curve.Name()
}

// LookupPreset returns the preset registered under name (case-insensitive)
func LookupPreset(name string) (*Preset, error) {
	switch strings.ToLower(name) {
	case Demo17Name:
		return Demo17()
	case Secp256k1Name:
		return Secp256k1()
	case P256Name, "p-256", "secp256r1":
		return P256()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCurve, name)
	}
}

// Demo17 is y^2 = x^3 + 2x + 1 over GF(17) with generator (0, 1) of order 12.
// The full group has 24 points.
func Demo17() (*Preset, error) {
	f, err := field.NewPrimeField(big.NewInt(17))
	if err != nil {
		return nil, err
	}
	return newPreset(Demo17Name, f, big.NewInt(2), big.NewInt(1),
		big.NewInt(0), big.NewInt(1), big.NewInt(12))
}

// Secp256k1 is the Bitcoin curve y^2 = x^3 + 7 with parameters taken from btcec
func Secp256k1() (*Preset, error) {
	params := btcec.S256().Params()

	f, err := field.NewPrimeField(params.P)
	if err != nil {
		return nil, err
	}
	return newPreset(Secp256k1Name, f, big.NewInt(0), params.B,
		params.Gx, params.Gy, params.N)
}

// P256 is NIST P-256 (a = -3) with parameters taken from crypto/elliptic
func P256() (*Preset, error) {
	params := elliptic.P256().Params()

	f, err := field.NewPrimeField(params.P)
	if err != nil {
		return nil, err
	}
	return newPreset(P256Name, f, big.NewInt(-3), params.B,
		params.Gx, params.Gy, params.N)
}

func newPreset(name string, f *field.PrimeField, a, b, gx, gy, order *big.Int) (*Preset, error) {
	c, err := NewNamedCurve(name, a, b, f)
	if err != nil {
		return nil, err
	}

	g, err := NewPoint(c, gx, gy)
	if err != nil {
		return nil, fmt.Errorf("%s generator: %w", name, err)
	}

	return &Preset{
		Curve:     c,
		Generator: g,
		Order:     new(big.Int).Set(order),
	}, nil
}
