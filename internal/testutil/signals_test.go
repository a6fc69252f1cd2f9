package testutil

import (
	"math"
	"testing"
)

func TestHarmonicTableShape(t *testing.T) {
	time, cols := HarmonicTable(2, 64, 64, 3)
	if len(time) != 64 || len(cols) != 3 {
		t.Fatalf("shape = %d x %d, want 64 x 3", len(time), len(cols))
	}
	if math.Abs(time[1]-1.0/64) > 1e-15 {
		t.Fatalf("time[1] = %v, want %v", time[1], 1.0/64)
	}
	for k, col := range cols {
		peak := 0.0
		for _, v := range col {
			peak = math.Max(peak, math.Abs(v))
		}
		want := 1 / float64(k+1)
		if peak > want+1e-12 {
			t.Fatalf("harmonic %d peak %v exceeds amplitude %v", k+1, peak, want)
		}
	}
}

func TestLogGridEndpoints(t *testing.T) {
	g := LogGrid(1e13, 1e16, 4)
	RequireSliceNearlyEqual(t, []float64{g[0] / 1e13, g[1] / 1e14, g[2] / 1e15, g[3] / 1e16}, []float64{1, 1, 1, 1}, 1e-12)
}
