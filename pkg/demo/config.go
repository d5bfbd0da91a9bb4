package demo

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/Caqil/ecsubgroup/internal/security"
	"github.com/Caqil/ecsubgroup/pkg/crypto/commitment"
	"github.com/Caqil/ecsubgroup/pkg/crypto/curve"
)

// CustomCurve selects a curve built from Prime, A and B instead of a preset
const CustomCurve = "custom"

// maxSeedLength bounds the seed accepted for deterministic blinding
const maxSeedLength = 64

// Config holds the demonstration parameters
type Config struct {
	// Curve is a preset name (demo17, secp256k1, p256) or CustomCurve
	Curve string

	// Prime, A and B define a custom curve; ignored for presets
	Prime *big.Int
	A     *big.Int
	B     *big.Int

	// GeneratorX and GeneratorY override the preset generator.
	// Both are required for custom curves.
	GeneratorX *big.Int
	GeneratorY *big.Int

	// BaseX and BaseY select the point whose cycle is searched.
	// When unset the base is the negation of the generator.
	BaseX *big.Int
	BaseY *big.Int

	// Witness holds w1, w2, w3
	Witness *commitment.Witness

	// BlindingMin and BlindingMax bound r1 and r2 (inclusive)
	BlindingMin *big.Int
	BlindingMax *big.Int

	// Seed makes blinding deterministic via HKDF; nil draws from crypto/rand
	Seed []byte

	// Limit caps cycle enumeration; 0 means unbounded
	Limit int
}

// DefaultConfig returns the standard demonstration parameters:
// y^2 = x^3 + 2x + 1 over GF(17), G = (0, 1), base (0, -1), w = (3, 2, 1), r in [1, 17]
func DefaultConfig() *Config {
	return &Config{
		Curve:       curve.Demo17Name,
		Witness:     commitment.DefaultWitness(),
		BlindingMin: big.NewInt(1),
		BlindingMax: big.NewInt(17),
		Limit:       1 << 20,
	}
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}

	if strings.EqualFold(c.Curve, CustomCurve) {
		if err := security.ValidateModulus(c.Prime); err != nil {
			return fmt.Errorf("%w: prime: %v", ErrInvalidConfig, err)
		}
		if c.A == nil || c.B == nil {
			return fmt.Errorf("%w: custom curve needs both a and b", ErrInvalidConfig)
		}
		if c.GeneratorX == nil || c.GeneratorY == nil {
			return fmt.Errorf("%w: custom curve needs a generator", ErrInvalidConfig)
		}
	} else if _, err := curve.LookupPreset(c.Curve); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if (c.GeneratorX == nil) != (c.GeneratorY == nil) {
		return fmt.Errorf("%w: generator needs both coordinates", ErrInvalidConfig)
	}
	if (c.BaseX == nil) != (c.BaseY == nil) {
		return fmt.Errorf("%w: base point needs both coordinates", ErrInvalidConfig)
	}

	if c.Witness == nil || c.Witness.W1 == nil || c.Witness.W2 == nil || c.Witness.W3 == nil {
		return fmt.Errorf("%w: witness needs w1, w2 and w3", ErrInvalidConfig)
	}

	if err := security.ValidateNonNegative(c.BlindingMin); err != nil {
		return fmt.Errorf("%w: blinding min: %v", ErrInvalidConfig, err)
	}
	if err := security.ValidateRange(c.BlindingMin, c.BlindingMax); err != nil {
		return fmt.Errorf("%w: blinding: %v", ErrInvalidConfig, err)
	}

	if err := security.ValidateLength(c.Seed, maxSeedLength); err != nil {
		return fmt.Errorf("%w: seed: %v", ErrInvalidConfig, err)
	}

	if c.Limit < 0 {
		return fmt.Errorf("%w: limit must be non-negative", ErrInvalidConfig)
	}

	return nil
}

// ParseInteger parses a decimal or 0x-prefixed hexadecimal integer, optionally signed
func ParseInteger(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)

	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+")

	base := 10
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		base = 16
		digits = digits[2:]
	}

	z, ok := new(big.Int).SetString(digits, base)
	if !ok || strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInteger, s)
	}
	if neg {
		z.Neg(z)
	}
	return z, nil
}
