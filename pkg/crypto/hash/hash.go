// Package hash derives deterministic scalars from seed material
package hash

import (
	"crypto/sha256"
	"io"
	"math/big"

	"golang.org/x/crypto/hkdf"
)

// domain separates derivations made by this module from other HKDF users
const domain = "ecsubgroup-v1|"

// HKDF derives length bytes of key material using HKDF-SHA256
func HKDF(secret, salt, info []byte, length int) ([]byte, error) {
	out := make([]byte, length)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, salt, info), out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeriveScalar maps (seed, label) to an integer in the inclusive range [min, max].
// 16 extra bytes are drawn before reduction so the modulo bias is negligible.
func DeriveScalar(seed []byte, label string, min, max *big.Int) (*big.Int, error) {
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}
	if min == nil || max == nil || min.Cmp(max) > 0 {
		return nil, ErrInvalidRange
	}

	span := new(big.Int).Sub(max, min)
	span.Add(span, big.NewInt(1))

	okm, err := HKDF(seed, nil, []byte(domain+label), (span.BitLen()+7)/8+16)
	if err != nil {
		return nil, err
	}

	v := new(big.Int).SetBytes(okm)
	v.Mod(v, span)
	return v.Add(v, min), nil
}
