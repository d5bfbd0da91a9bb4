// Package security validates externally supplied parameters before they reach
// the arithmetic core
package security

import (
	"errors"
	"math/big"
)

// primalityRounds is the Miller-Rabin round count used by LooksPrime
const primalityRounds = 20

var (
	// ErrInvalidModulus is returned when a modulus is nil or below 2
	ErrInvalidModulus = errors.New("modulus must be at least 2")

	// ErrInvalidRange is returned when a range is empty or has nil bounds
	ErrInvalidRange = errors.New("invalid range: min must not exceed max")

	// ErrNegativeValue is returned when a value must be non-negative
	ErrNegativeValue = errors.New("value must be non-negative")

	// ErrNilValue is returned when a required value is missing
	ErrNilValue = errors.New("nil value provided")

	// ErrInputTooLong is returned when input exceeds its maximum length
	ErrInputTooLong = errors.New("input exceeds maximum length")
)

// ValidateModulus checks that p can serve as a field modulus
func ValidateModulus(p *big.Int) error {
	if p == nil || p.Cmp(big.NewInt(2)) < 0 {
		return ErrInvalidModulus
	}
	return nil
}

// LooksPrime reports whether p passes a probabilistic primality test
func LooksPrime(p *big.Int) bool {
	return p != nil && p.ProbablyPrime(primalityRounds)
}

// ValidateRange checks that min <= max with both bounds set
func ValidateRange(min, max *big.Int) error {
	if min == nil || max == nil || min.Cmp(max) > 0 {
		return ErrInvalidRange
	}
	return nil
}

// ValidateNonNegative checks that value is set and >= 0
func ValidateNonNegative(value *big.Int) error {
	if value == nil {
		return ErrNilValue
	}
	if value.Sign() < 0 {
		return ErrNegativeValue
	}
	return nil
}

// ValidateLength checks that input is at most maxLength bytes
func ValidateLength(input []byte, maxLength int) error {
	if len(input) > maxLength {
		return ErrInputTooLong
	}
	return nil
}
