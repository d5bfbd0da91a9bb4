// Package commitment builds the three-term commitment/response transcript
// whose response sum is the reference point searched for in a subgroup cycle.
//
// With generator G, base point P, witnesses w1..w3 and blinding r1, r2,
// r3 = r1 + r2:
//
//	R1 = P,  R2 = r2*P,  R3 = r3*(-P)
//	Z1 = (r1 + w1)*G,  Z2 = (r2 + w2)*G,  Z3 = (r3 - w3)*(-G)
//	Reference = Z1 + Z2 + Z3 = (w1 + w2 + w3)*G
package commitment

import (
	"fmt"
	"math/big"

	"github.com/Caqil/ecsubgroup/pkg/crypto/curve"
)

// Witness holds the three witness scalars
type Witness struct {
	W1, W2, W3 *big.Int
}

// DefaultWitness returns w = (3, 2, 1)
func DefaultWitness() *Witness {
	return &Witness{W1: big.NewInt(3), W2: big.NewInt(2), W3: big.NewInt(1)}
}

// Sum returns w1 + w2 + w3
func (w *Witness) Sum() *big.Int {
	s := new(big.Int).Add(w.W1, w.W2)
	return s.Add(s, w.W3)
}

// Blinding holds the blinding scalars; R3 is always R1 + R2
type Blinding struct {
	R1, R2, R3 *big.Int
}

// NewBlinding creates blinding values with r3 = r1 + r2
func NewBlinding(r1, r2 *big.Int) (*Blinding, error) {
	if r1 == nil || r2 == nil {
		return nil, ErrNilWitness
	}
	return &Blinding{
		R1: new(big.Int).Set(r1),
		R2: new(big.Int).Set(r2),
		R3: new(big.Int).Add(r1, r2),
	}, nil
}

// Transcript is the full set of commitments and responses
type Transcript struct {
	Commitments   [3]*curve.Point
	CommitmentSum *curve.Point
	Responses     [3]*curve.Point
	Reference     *curve.Point
}

// Build computes the transcript for generator g and base point p
func Build(g, p *curve.Point, w *Witness, b *Blinding) (*Transcript, error) {
	if g == nil || p == nil {
		return nil, ErrNilPoint
	}
	if g.IsInfinity() || p.IsInfinity() {
		return nil, ErrInfinitePoint
	}
	if !g.Curve().Equal(p.Curve()) {
		return nil, curve.ErrCurveMismatch
	}
	if w == nil || w.W1 == nil || w.W2 == nil || w.W3 == nil {
		return nil, ErrNilWitness
	}
	if b == nil || b.R1 == nil || b.R2 == nil || b.R3 == nil {
		return nil, ErrNilWitness
	}

	negP, negG := p.Negate(), g.Negate()
	tr := &Transcript{}

	r2P, err := p.ScalarMult(b.R2)
	if err != nil {
		return nil, fmt.Errorf("commitment R2: %w", err)
	}
	r3P, err := negP.ScalarMult(b.R3)
	if err != nil {
		return nil, fmt.Errorf("commitment R3: %w", err)
	}
	tr.Commitments = [3]*curve.Point{p, r2P, r3P}

	if tr.CommitmentSum, err = sum(tr.Commitments[:]); err != nil {
		return nil, fmt.Errorf("commitment sum: %w", err)
	}

	z1, err := g.ScalarMult(new(big.Int).Add(b.R1, w.W1))
	if err != nil {
		return nil, fmt.Errorf("response Z1: %w", err)
	}
	z2, err := g.ScalarMult(new(big.Int).Add(b.R2, w.W2))
	if err != nil {
		return nil, fmt.Errorf("response Z2: %w", err)
	}

	// nr = w3 - r3; Z3 = -nr * (-G)
	nr := new(big.Int).Sub(w.W3, b.R3)
	z3, err := negG.ScalarMult(nr.Neg(nr))
	if err != nil {
		return nil, fmt.Errorf("response Z3: %w", err)
	}
	tr.Responses = [3]*curve.Point{z1, z2, z3}

	if tr.Reference, err = sum(tr.Responses[:]); err != nil {
		return nil, fmt.Errorf("reference point: %w", err)
	}

	return tr, nil
}

func sum(points []*curve.Point) (*curve.Point, error) {
	acc := points[0].Curve().Infinity()
	for _, p := range points {
		var err error
		if acc, err = acc.Add(p); err != nil {
			return nil, err
		}
	}
	return acc, nil
}
