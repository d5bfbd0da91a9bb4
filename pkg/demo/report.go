package demo

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Caqil/ecsubgroup/pkg/crypto/commitment"
	"github.com/Caqil/ecsubgroup/pkg/crypto/curve"
)

// Report is the outcome of a demonstration run
type Report struct {
	Curve      *curve.Curve
	Generator  *curve.Point
	Base       *curve.Point
	Witness    *commitment.Witness
	Blinding   *commitment.Blinding
	Transcript *commitment.Transcript

	// Cycle lists B, 2B, ..., infinity
	Cycle []*curve.Point

	// Index is the 1-based cycle position of the reference point, 0 when absent
	Index int
}

// Found reports whether the reference point occurs in the cycle
func (r *Report) Found() bool {
	return r.Index > 0
}

// WriteText writes the fixed-width textual report
func (r *Report) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "W: %s %s %s\n", r.Witness.W1, r.Witness.W2, r.Witness.W3)
	fmt.Fprintln(bw, "Reference point:")
	writePoint(bw, r.Transcript.Reference)
	fmt.Fprintf(bw, "Length of cycle: %d\n\n", len(r.Cycle))

	fmt.Fprintln(bw, "Points in the cycle:")
	for i, p := range r.Cycle {
		fmt.Fprintf(bw, "Point %d:\n", i+1)
		writePoint(bw, p)
	}
	fmt.Fprintln(bw)

	if r.Found() {
		fmt.Fprintf(bw, "Reference Point matches the point %d in the given cycle\n", r.Index)
	} else {
		fmt.Fprintln(bw, "Reference Point not found in the given cycle")
	}

	return bw.Flush()
}

func writePoint(w io.Writer, p *curve.Point) {
	if p.IsInfinity() {
		fmt.Fprintln(w, "infinity")
		return
	}
	fmt.Fprintln(w, p.X().Hex())
	fmt.Fprintln(w, p.Y().Hex())
}
