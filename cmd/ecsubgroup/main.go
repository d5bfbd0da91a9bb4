// Command ecsubgroup computes a reference point from a commitment transcript
// and reports its position in the cycle generated by a base point.
//
// Usage:
//
//	ecsubgroup [flags]
//
// Flags:
//
//	-curve      Curve preset: demo17, secp256k1, p256 or custom (default: demo17)
//	-p -a -b    Custom curve parameters, decimal or 0x-hex
//	-gx -gy     Generator coordinates (required for custom curves)
//	-px -py     Base point coordinates (default: negated generator)
//	-w1 -w2 -w3 Witness scalars (default: 3, 2, 1)
//	-rmin -rmax Inclusive range for blinding scalars (default: 1, 17)
//	-seed       Hex seed for deterministic blinding
//	-limit      Maximum cycle length to enumerate (default: 1048576)
//	-log-level  debug, info, warn, error or off (default: warn)
//	-pretty     Human-readable logs on stderr
//
// Exit status is 0 when the reference point is found, 2 when it is not in the
// cycle and 1 on any error.
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/Caqil/ecsubgroup/pkg/demo"
	"github.com/Caqil/ecsubgroup/pkg/logger"
)

const (
	exitFound    = 0
	exitError    = 1
	exitNotFound = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the testable entry point; it returns the process exit status
func run(args []string, stdout, stderr io.Writer) int {
	cfg, logCfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitFound
		}
		fmt.Fprintf(stderr, "ecsubgroup: %v\n", err)
		return exitError
	}

	log := logger.New(logCfg)

	report, err := demo.Run(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("demonstration failed")
		fmt.Fprintf(stderr, "ecsubgroup: %v\n", err)
		return exitError
	}

	if err := report.WriteText(stdout); err != nil {
		log.Error().Err(err).Msg("writing report failed")
		return exitError
	}

	if !report.Found() {
		return exitNotFound
	}
	return exitFound
}

// bigFlag implements flag.Value for optional big integers
type bigFlag struct {
	v **big.Int
}

func (f bigFlag) String() string {
	if f.v == nil || *f.v == nil {
		return ""
	}
	return (*f.v).String()
}

func (f bigFlag) Set(s string) error {
	z, err := demo.ParseInteger(s)
	if err != nil {
		return err
	}
	*f.v = z
	return nil
}

func parseFlags(args []string, stderr io.Writer) (*demo.Config, *logger.Config, error) {
	cfg := demo.DefaultConfig()
	logCfg := logger.DefaultConfig()
	logCfg.Level = "warn"
	logCfg.Output = stderr

	fs := flag.NewFlagSet("ecsubgroup", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.Curve, "curve", cfg.Curve, "curve preset (demo17, secp256k1, p256) or custom")
	fs.Var(bigFlag{&cfg.Prime}, "p", "custom curve prime modulus")
	fs.Var(bigFlag{&cfg.A}, "a", "custom curve coefficient a")
	fs.Var(bigFlag{&cfg.B}, "b", "custom curve coefficient b")
	fs.Var(bigFlag{&cfg.GeneratorX}, "gx", "generator x coordinate")
	fs.Var(bigFlag{&cfg.GeneratorY}, "gy", "generator y coordinate")
	fs.Var(bigFlag{&cfg.BaseX}, "px", "base point x coordinate")
	fs.Var(bigFlag{&cfg.BaseY}, "py", "base point y coordinate")
	fs.Var(bigFlag{&cfg.Witness.W1}, "w1", "witness w1")
	fs.Var(bigFlag{&cfg.Witness.W2}, "w2", "witness w2")
	fs.Var(bigFlag{&cfg.Witness.W3}, "w3", "witness w3")
	fs.Var(bigFlag{&cfg.BlindingMin}, "rmin", "minimum blinding scalar (inclusive)")
	fs.Var(bigFlag{&cfg.BlindingMax}, "rmax", "maximum blinding scalar (inclusive)")
	seed := fs.String("seed", "", "hex seed for deterministic blinding")
	fs.IntVar(&cfg.Limit, "limit", cfg.Limit, "maximum cycle length to enumerate (0 = unbounded)")
	fs.StringVar(&logCfg.Level, "log-level", logCfg.Level, "log level: debug, info, warn, error, off")
	fs.BoolVar(&logCfg.Pretty, "pretty", false, "human-readable logs")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() > 0 {
		return nil, nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if *seed != "" {
		b, err := hex.DecodeString(*seed)
		if err != nil {
			return nil, nil, fmt.Errorf("bad -seed: %w", err)
		}
		cfg.Seed = b
	}

	if !logger.ValidLevel(logCfg.Level) {
		return nil, nil, fmt.Errorf("bad -log-level %q", logCfg.Level)
	}

	return cfg, logCfg, nil
}
