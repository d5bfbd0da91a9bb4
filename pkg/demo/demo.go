// Package demo wires the arithmetic core into the reference-point search:
// it builds the commitment transcript, enumerates the base point's cycle and
// reports where the reference point falls in it.
package demo

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/Caqil/ecsubgroup/internal/security"
	"github.com/Caqil/ecsubgroup/pkg/crypto/commitment"
	"github.com/Caqil/ecsubgroup/pkg/crypto/curve"
	"github.com/Caqil/ecsubgroup/pkg/crypto/field"
	"github.com/Caqil/ecsubgroup/pkg/crypto/hash"
	"github.com/Caqil/ecsubgroup/pkg/crypto/rand"
	"github.com/Caqil/ecsubgroup/pkg/logger"
	"github.com/Caqil/ecsubgroup/pkg/subgroup"
)

// Run executes the demonstration described by cfg
func Run(cfg *Config, log *logger.Logger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}
	start := time.Now()

	c, g, order, err := resolveCurve(cfg)
	if err != nil {
		return nil, err
	}
	log = log.With().Str("curve", c.Name()).Logger()

	if !security.LooksPrime(c.Field().Prime()) {
		log.Warn().Stringer("prime", c.Field().Prime()).Msg("modulus is not prime; field inverses may not exist")
	}
	if c.IsSingular() {
		log.Warn().Msg("curve is singular")
	}

	base := g.Negate()
	if cfg.BaseX != nil {
		if base, err = curve.NewPoint(c, cfg.BaseX, cfg.BaseY); err != nil {
			return nil, fmt.Errorf("base point: %w", err)
		}
	}

	// the order of +-G is published for named presets
	if order != nil && cfg.Limit > 0 && (base.Equal(g) || base.Equal(g.Negate())) {
		if order.Cmp(big.NewInt(int64(cfg.Limit))) > 0 {
			log.Warn().Msgf("generator order %s exceeds enumeration limit %d", order, cfg.Limit)
			return nil, fmt.Errorf("%w: order %s exceeds %d steps", subgroup.ErrCycleLimitExceeded, order, cfg.Limit)
		}
	}

	blinding, err := drawBlinding(cfg)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Stringer("r1", blinding.R1).
		Stringer("r2", blinding.R2).
		Stringer("r3", blinding.R3).
		Bool("seeded", len(cfg.Seed) > 0).
		Msg("blinding drawn")

	tr, err := commitment.Build(g, base, cfg.Witness, blinding)
	if err != nil {
		return nil, err
	}
	log.Info().
		Stringer("reference", tr.Reference).
		Stringer("commitment_sum", tr.CommitmentSum).
		Msg("transcript built")

	cycle, err := subgroup.New(base, subgroup.WithLimit(cfg.Limit), subgroup.WithLogger(log))
	if err != nil {
		return nil, err
	}

	points, err := cycle.Points()
	if err != nil {
		return nil, fmt.Errorf("enumerating cycle of %s: %w", base, err)
	}

	report := &Report{
		Curve:      c,
		Generator:  g,
		Base:       base,
		Witness:    cfg.Witness,
		Blinding:   blinding,
		Transcript: tr,
		Cycle:      points,
	}

	index, err := cycle.FindIndex(tr.Reference)
	switch {
	case err == nil:
		report.Index = index
	case errors.Is(err, subgroup.ErrPointNotInCycle):
		log.Warn().Stringer("reference", tr.Reference).Msg("reference point not in cycle")
	default:
		return nil, err
	}

	log.Info().
		Int("order", len(points)).
		Int("index", report.Index).
		Dur("elapsed", time.Since(start)).
		Msg("search complete")

	return report, nil
}

// resolveCurve returns the configured curve and generator, plus the
// generator's order when it is the published one of a preset
func resolveCurve(cfg *Config) (*curve.Curve, *curve.Point, *big.Int, error) {
	if strings.EqualFold(cfg.Curve, CustomCurve) {
		f, err := field.NewPrimeField(cfg.Prime)
		if err != nil {
			return nil, nil, nil, err
		}
		c, err := curve.NewCurve(cfg.A, cfg.B, f)
		if err != nil {
			return nil, nil, nil, err
		}
		g, err := curve.NewPoint(c, cfg.GeneratorX, cfg.GeneratorY)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("generator: %w", err)
		}
		return c, g, nil, nil
	}

	preset, err := curve.LookupPreset(cfg.Curve)
	if err != nil {
		return nil, nil, nil, err
	}

	g := preset.Generator
	if cfg.GeneratorX != nil {
		if g, err = curve.NewPoint(preset.Curve, cfg.GeneratorX, cfg.GeneratorY); err != nil {
			return nil, nil, nil, fmt.Errorf("generator: %w", err)
		}
	}
	if g.IsInfinity() {
		return nil, nil, nil, fmt.Errorf("generator: %w", commitment.ErrInfinitePoint)
	}

	var order *big.Int
	if g.Equal(preset.Generator) {
		order = preset.Order
	}

	return preset.Curve, g, order, nil
}

// drawBlinding picks r1 and r2 from the seed when one is set, else from crypto/rand
func drawBlinding(cfg *Config) (*commitment.Blinding, error) {
	draw := func(label string) (*big.Int, error) {
		if len(cfg.Seed) > 0 {
			return hash.DeriveScalar(cfg.Seed, label, cfg.BlindingMin, cfg.BlindingMax)
		}
		return rand.GenerateRandomInRange(cfg.BlindingMin, cfg.BlindingMax)
	}

	r1, err := draw("r1")
	if err != nil {
		return nil, fmt.Errorf("blinding r1: %w", err)
	}
	r2, err := draw("r2")
	if err != nil {
		return nil, fmt.Errorf("blinding r2: %w", err)
	}

	return commitment.NewBlinding(r1, r2)
}
