// Package subgroup enumerates the cyclic subgroup generated by a base point
// and locates points within it by linear search.
package subgroup

import (
	"fmt"
	"iter"
	"sync"

	"github.com/Caqil/ecsubgroup/pkg/crypto/curve"
	"github.com/Caqil/ecsubgroup/pkg/logger"
)

// Cycle is the sequence B, 2B, 3B, ..., nB = infinity for a base point B of order n
type Cycle struct {
	base  *curve.Point
	limit int
	log   *logger.Logger

	once   sync.Once
	points []*curve.Point
	err    error

	mu      sync.Mutex
	iterErr error
}

// Option configures a Cycle
type Option func(*Cycle)

// WithLimit stops enumeration with ErrCycleLimitExceeded after n elements.
// Zero means unbounded.
func WithLimit(n int) Option {
	return func(c *Cycle) {
		if n > 0 {
			c.limit = n
		}
	}
}

// WithLogger traces every step at debug level
func WithLogger(l *logger.Logger) Option {
	return func(c *Cycle) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates the cycle generated by base
func New(base *curve.Point, opts ...Option) (*Cycle, error) {
	if base == nil {
		return nil, curve.ErrNilPoint
	}
	if base.IsInfinity() {
		return nil, ErrInfiniteBase
	}

	c := &Cycle{base: base, log: logger.Nop()}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Base returns the generating point
func (c *Cycle) Base() *curve.Point {
	return c.base
}

// Walk calls fn with each 1-based index and multiple of the base, ending after
// the identity is reached or when fn returns false. Every call restarts from B.
func (c *Cycle) Walk(fn func(index int, p *curve.Point) bool) error {
	current := c.base

	for index := 1; ; index++ {
		if c.limit > 0 && index > c.limit {
			return fmt.Errorf("%w: %d steps", ErrCycleLimitExceeded, c.limit)
		}

		c.log.Debug().Int("index", index).Stringer("point", current).Msg("cycle step")

		if !fn(index, current) || current.IsInfinity() {
			return nil
		}

		next, err := current.Add(c.base)
		if err != nil {
			return fmt.Errorf("cycle step %d: %w", index+1, err)
		}
		current = next
	}
}

// All returns a lazy, restartable sequence of (index, point) pairs.
// An enumeration error ends the sequence early and is reported by Err.
func (c *Cycle) All() iter.Seq2[int, *curve.Point] {
	return func(yield func(int, *curve.Point) bool) {
		err := c.Walk(yield)

		c.mu.Lock()
		c.iterErr = err
		c.mu.Unlock()
	}
}

// Err returns the error that ended the most recent range over All, if any
func (c *Cycle) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.iterErr
}

// Points returns every element of the cycle, the identity last.
// The result is computed once and shared; callers must not modify it.
func (c *Cycle) Points() ([]*curve.Point, error) {
	c.once.Do(func() {
		var points []*curve.Point
		c.err = c.Walk(func(_ int, p *curve.Point) bool {
			points = append(points, p)
			return true
		})
		if c.err == nil {
			c.points = points
		}
	})
	return c.points, c.err
}

// Order returns the number of elements in the cycle, i.e. the order of the base point
func (c *Cycle) Order() (int, error) {
	points, err := c.Points()
	if err != nil {
		return 0, err
	}
	return len(points), nil
}

// FindIndex returns the 1-based position of the first element equal to target
func (c *Cycle) FindIndex(target *curve.Point) (int, error) {
	if target == nil {
		return 0, curve.ErrNilPoint
	}

	found := 0
	err := c.Walk(func(index int, p *curve.Point) bool {
		if p.Equal(target) {
			found = index
			return false
		}
		return true
	})
	if err != nil {
		return 0, err
	}
	if found == 0 {
		return 0, fmt.Errorf("%w: %s", ErrPointNotInCycle, target)
	}

	c.log.Debug().Int("index", found).Stringer("target", target).Msg("target located")
	return found, nil
}
