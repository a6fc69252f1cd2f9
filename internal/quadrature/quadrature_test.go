package quadrature

import (
	"math"
	"testing"
)

func TestIntegratePolynomialExact(t *testing.T) {
	res := Integrate(func(x float64) float64 { return x * x }, 0, 3)
	if !res.Converged {
		t.Fatalf("expected convergence, got %+v", res)
	}
	if math.Abs(res.Value-9) > 1e-12 {
		t.Fatalf("Value = %v, want 9", res.Value)
	}
	if res.Subintervals != 1 {
		t.Fatalf("Subintervals = %d, want 1 for a polynomial", res.Subintervals)
	}
}

func TestIntegrateSine(t *testing.T) {
	res := Integrate(math.Sin, 0, math.Pi)
	if math.Abs(res.Value-2) > 1e-12 {
		t.Fatalf("Value = %v, want 2", res.Value)
	}
}

func TestIntegrateReversedBoundsNegates(t *testing.T) {
	fwd := Integrate(math.Exp, 0, 1)
	rev := Integrate(math.Exp, 1, 0)
	if fwd.Value != -rev.Value {
		t.Fatalf("reversed = %v, want %v", rev.Value, -fwd.Value)
	}
	if math.Abs(fwd.Value-(math.E-1)) > 1e-13 {
		t.Fatalf("Value = %v, want e-1", fwd.Value)
	}
}

func TestIntegrateEmptyInterval(t *testing.T) {
	res := Integrate(math.Exp, 2, 2)
	if res.Value != 0 || !res.Converged || res.Evaluations != 0 {
		t.Fatalf("unexpected result for empty interval: %+v", res)
	}
}

func TestIntegrateNonFiniteBounds(t *testing.T) {
	res := Integrate(math.Exp, 0, math.Inf(1))
	if !math.IsNaN(res.Value) || res.Converged {
		t.Fatalf("expected NaN result, got %+v", res)
	}
}

func TestIntegrateNarrowPeakNeedsRefinement(t *testing.T) {
	// Gaussian of width 1e-2 inside [0, 1].
	sigma := 1e-2
	f := func(x float64) float64 {
		d := (x - 0.3) / sigma
		return math.Exp(-0.5 * d * d)
	}
	want := sigma * math.Sqrt(2*math.Pi)

	res := Integrate(f, 0, 1)
	if !res.Converged {
		t.Fatalf("expected convergence, got %+v", res)
	}
	if res.Subintervals < 2 {
		t.Fatalf("Subintervals = %d, want refinement", res.Subintervals)
	}
	if math.Abs(res.Value-want)/want > 1e-8 {
		t.Fatalf("Value = %v, want %v", res.Value, want)
	}
}

func TestIntegrateBreakpointsSeedPartition(t *testing.T) {
	res := Integrate(func(x float64) float64 { return x }, 0, 4,
		WithBreakpoints(3, 1, 2, -5, 9, 2))
	if res.Subintervals != 4 {
		t.Fatalf("Subintervals = %d, want 4", res.Subintervals)
	}
	if math.Abs(res.Value-8) > 1e-13 {
		t.Fatalf("Value = %v, want 8", res.Value)
	}
}

func TestIntegratePanelBudget(t *testing.T) {
	f := func(x float64) float64 { return math.Sqrt(x) }
	res := Integrate(f, 0, 1, WithTolerance(0, 0), WithMaxSubintervals(5))
	if res.Converged {
		t.Fatalf("expected budget exhaustion, got %+v", res)
	}
	if res.Subintervals != 5 {
		t.Fatalf("Subintervals = %d, want 5", res.Subintervals)
	}
	if math.Abs(res.Value-2.0/3.0) > 1e-4 {
		t.Fatalf("Value = %v, want ~2/3", res.Value)
	}
}

func TestIntegrateIgnoresInvalidOptions(t *testing.T) {
	res := Integrate(math.Sin, 0, math.Pi, WithTolerance(-1, -1), WithMaxSubintervals(0), nil)
	if !res.Converged || math.Abs(res.Value-2) > 1e-12 {
		t.Fatalf("unexpected result: %+v", res)
	}
}
