package subgroup

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Caqil/ecsubgroup/pkg/crypto/curve"
	"github.com/Caqil/ecsubgroup/pkg/logger"
)

func demoPoint(t *testing.T, x, y int64) *curve.Point {
	t.Helper()
	preset, err := curve.Demo17()
	if err != nil {
		t.Fatalf("Failed to create demo curve: %v", err)
	}
	p, err := curve.NewPointInt64(preset.Curve, x, y)
	if err != nil {
		t.Fatalf("Failed to create point (%d, %d): %v", x, y, err)
	}
	return p
}

// TestCycleClosure tests that (0, 16) generates a cycle of order 12 on the curve
func TestCycleClosure(t *testing.T) {
	base := demoPoint(t, 0, 16)
	cycle, err := New(base)
	if err != nil {
		t.Fatalf("Failed to create cycle: %v", err)
	}

	points, err := cycle.Points()
	if err != nil {
		t.Fatalf("Failed to enumerate cycle: %v", err)
	}
	if len(points) != 12 {
		t.Fatalf("expected order 12, got %d", len(points))
	}

	want := [][2]int64{
		{0, 16}, {1, 2}, {8, 11}, {7, 16}, {10, 1}, {5, 0},
		{10, 16}, {7, 1}, {8, 6}, {1, 15}, {0, 1},
	}
	for i, xy := range want {
		if !points[i].Equal(demoPoint(t, xy[0], xy[1])) {
			t.Errorf("point %d: expected (%d, %d), got %s", i+1, xy[0], xy[1], points[i])
		}
	}
	if !points[11].IsInfinity() {
		t.Errorf("last element should be infinity, got %s", points[11])
	}

	c := base.Curve()
	for i, p := range points {
		if !c.Contains(p) {
			t.Errorf("point %d (%s) is not on the curve", i+1, p)
		}
		k, err := base.ScalarMultInt64(int64(i + 1))
		if err != nil {
			t.Fatalf("Failed to multiply: %v", err)
		}
		if !k.Equal(p) {
			t.Errorf("point %d: repeated addition gave %s but scalar multiplication gave %s", i+1, p, k)
		}
	}

	order, err := cycle.Order()
	if err != nil || order != 12 {
		t.Errorf("Order(): expected 12, got %d (%v)", order, err)
	}
}

// TestAllRestartable tests that the lazy sequence restarts and stops early
func TestAllRestartable(t *testing.T) {
	cycle, err := New(demoPoint(t, 0, 16))
	if err != nil {
		t.Fatalf("Failed to create cycle: %v", err)
	}

	for pass := 0; pass < 2; pass++ {
		count := 0
		for i, p := range cycle.All() {
			count++
			if i != count {
				t.Errorf("pass %d: expected index %d, got %d", pass, count, i)
			}
			if i == 12 && !p.IsInfinity() {
				t.Errorf("pass %d: element 12 should be infinity", pass)
			}
		}
		if count != 12 {
			t.Errorf("pass %d: expected 12 elements, got %d", pass, count)
		}
	}

	seen := 0
	for i := range cycle.All() {
		seen = i
		if i == 3 {
			break
		}
	}
	if seen != 3 {
		t.Errorf("expected early stop at 3, got %d", seen)
	}
	if err := cycle.Err(); err != nil {
		t.Errorf("expected no error after early stop, got %v", err)
	}
}

// TestAllLimitErr tests that a range cut short by the limit reports why
func TestAllLimitErr(t *testing.T) {
	cycle, err := New(demoPoint(t, 0, 16), WithLimit(5))
	if err != nil {
		t.Fatalf("Failed to create cycle: %v", err)
	}

	count := 0
	for range cycle.All() {
		count++
	}
	if count != 5 {
		t.Errorf("expected 5 elements before the limit, got %d", count)
	}
	if err := cycle.Err(); !errors.Is(err, ErrCycleLimitExceeded) {
		t.Errorf("expected ErrCycleLimitExceeded, got %v", err)
	}

	unbounded, err := New(demoPoint(t, 0, 16))
	if err != nil {
		t.Fatalf("Failed to create cycle: %v", err)
	}
	for range unbounded.All() {
	}
	if err := unbounded.Err(); err != nil {
		t.Errorf("expected no error for a complete cycle, got %v", err)
	}
}

// TestFindIndex tests locating multiples of the base point
func TestFindIndex(t *testing.T) {
	base := demoPoint(t, 0, 16)
	cycle, err := New(base)
	if err != nil {
		t.Fatalf("Failed to create cycle: %v", err)
	}

	for k := int64(1); k <= 12; k++ {
		target, err := base.ScalarMultInt64(k)
		if err != nil {
			t.Fatalf("Failed to multiply: %v", err)
		}
		got, err := cycle.FindIndex(target)
		if err != nil {
			t.Fatalf("Failed to find %d*B: %v", k, err)
		}
		if int64(got) != k {
			t.Errorf("%d*B: expected index %d, got %d", k, k, got)
		}
	}

	// 6G with G = (0, 1) = -B is -6B = 6B
	g := demoPoint(t, 0, 1)
	ref, _ := g.ScalarMultInt64(6)
	got, err := cycle.FindIndex(ref)
	if err != nil || got != 6 {
		t.Errorf("6G: expected index 6, got %d (%v)", got, err)
	}
}

// TestFindIndexNotInCycle tests points outside the generated subgroup
func TestFindIndexNotInCycle(t *testing.T) {
	cycle, err := New(demoPoint(t, 0, 16))
	if err != nil {
		t.Fatalf("Failed to create cycle: %v", err)
	}

	for _, xy := range [][2]int64{{3, 0}, {9, 0}, {2, 8}, {16, 7}} {
		_, err := cycle.FindIndex(demoPoint(t, xy[0], xy[1]))
		if !errors.Is(err, ErrPointNotInCycle) {
			t.Errorf("(%d, %d): expected ErrPointNotInCycle, got %v", xy[0], xy[1], err)
		}
	}

	if _, err := cycle.FindIndex(nil); err != curve.ErrNilPoint {
		t.Errorf("expected ErrNilPoint, got %v", err)
	}
}

// TestNewInvalidBase tests base point validation
func TestNewInvalidBase(t *testing.T) {
	base := demoPoint(t, 0, 16)

	if _, err := New(base.Curve().Infinity()); err != ErrInfiniteBase {
		t.Errorf("expected ErrInfiniteBase, got %v", err)
	}
	if _, err := New(nil); err != curve.ErrNilPoint {
		t.Errorf("expected ErrNilPoint, got %v", err)
	}
}

// TestWithLimit tests the enumeration guard
func TestWithLimit(t *testing.T) {
	base := demoPoint(t, 0, 16)

	limited, _ := New(base, WithLimit(5))
	if _, err := limited.Order(); !errors.Is(err, ErrCycleLimitExceeded) {
		t.Errorf("expected ErrCycleLimitExceeded, got %v", err)
	}

	// Targets inside the limit are still found
	target, _ := base.ScalarMultInt64(4)
	if got, err := limited.FindIndex(target); err != nil || got != 4 {
		t.Errorf("expected index 4, got %d (%v)", got, err)
	}

	exact, _ := New(base, WithLimit(12))
	if order, err := exact.Order(); err != nil || order != 12 {
		t.Errorf("limit equal to the order should succeed, got %d (%v)", order, err)
	}
}

// TestWithLogger tests debug tracing of steps
func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&logger.Config{Level: "debug", Output: &buf})

	cycle, _ := New(demoPoint(t, 0, 16), WithLogger(log))
	if _, err := cycle.Order(); err != nil {
		t.Fatalf("Failed to enumerate: %v", err)
	}

	if n := strings.Count(buf.String(), "cycle step"); n != 12 {
		t.Errorf("expected 12 traced steps, got %d", n)
	}
}
