package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireRelNearlyEqual fails t if got and want differ by more than rel
// relative to the larger magnitude. Two exact zeros are equal.
func RequireRelNearlyEqual(t *testing.T, got, want, rel float64) {
	t.Helper()
	if got == want {
		return
	}
	scale := math.Max(math.Abs(got), math.Abs(want))
	if diff := math.Abs(got - want); diff > rel*scale {
		t.Fatalf("got %v, want %v (rel diff %v > %v)", got, want, diff/scale, rel)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireNonNegative fails t if any element is below zero or NaN.
func RequireNonNegative(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if !(v >= 0) {
			t.Fatalf("index %d: negative value %v", i, v)
		}
	}
}

// MaxRelDiff returns the largest element-wise relative difference between
// a and b. Returns an error if the slices differ in length.
func MaxRelDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		scale := math.Max(math.Abs(a[i]), math.Abs(b[i]))
		if scale == 0 {
			continue
		}
		if d := math.Abs(a[i]-b[i]) / scale; d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
