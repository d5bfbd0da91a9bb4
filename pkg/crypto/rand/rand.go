// Package rand provides cryptographically secure random scalars
package rand

import (
	"crypto/rand"
	"io"
	"math/big"
)

// Reader is the source of randomness; tests may replace it
var Reader io.Reader = rand.Reader

// GenerateRandomInRange generates a uniform integer in the inclusive range [min, max]
func GenerateRandomInRange(min, max *big.Int) (*big.Int, error) {
	if min == nil || max == nil {
		return nil, ErrNilBound
	}
	if min.Cmp(max) > 0 {
		return nil, ErrInvalidRange
	}

	span := new(big.Int).Sub(max, min)
	span.Add(span, big.NewInt(1))

	value, err := rand.Int(Reader, span)
	if err != nil {
		return nil, err
	}

	return value.Add(value, min), nil
}
