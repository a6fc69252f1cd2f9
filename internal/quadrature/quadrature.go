// Package quadrature provides globally adaptive integration of smooth
// one-dimensional functions over finite intervals.
//
// Each panel is estimated twice with gonum's fixed Gauss-Legendre rule, at
// a low and a high order. The difference is taken as the panel error and
// the worst panel is bisected until the requested tolerance is met or the
// panel budget is spent.
package quadrature

import (
	"container/heap"
	"math"
	"sort"

	"gonum.org/v1/gonum/integrate/quad"
)

const (
	lowOrder  = 10
	highOrder = 21

	// DefaultTolerance matches the absolute and relative tolerances QUADPACK
	// front ends use by default.
	DefaultTolerance = 1.49e-8

	// DefaultMaxSubintervals bounds the number of panels kept alive.
	DefaultMaxSubintervals = 200
)

// Result is the outcome of an adaptive integration.
type Result struct {
	Value        float64
	AbsError     float64
	Evaluations  int
	Subintervals int
	Converged    bool
}

// Option configures Integrate.
type Option func(*config)

type config struct {
	absTol      float64
	relTol      float64
	maxPanels   int
	breakpoints []float64
}

func defaultConfig() config {
	return config{
		absTol:    DefaultTolerance,
		relTol:    DefaultTolerance,
		maxPanels: DefaultMaxSubintervals,
	}
}

// WithTolerance sets the absolute and relative error targets. Negative
// values are ignored; at least one of the two should be positive.
func WithTolerance(abs, rel float64) Option {
	return func(c *config) {
		if abs >= 0 {
			c.absTol = abs
		}
		if rel >= 0 {
			c.relTol = rel
		}
	}
}

// WithMaxSubintervals caps the number of panels.
func WithMaxSubintervals(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxPanels = n
		}
	}
}

// WithBreakpoints seeds the initial partition. Points outside (a, b) are
// dropped.
func WithBreakpoints(points ...float64) Option {
	return func(c *config) {
		c.breakpoints = append(c.breakpoints[:0], points...)
	}
}

type panel struct {
	lo, hi float64
	value  float64
	err    float64
}

// panelHeap orders panels by descending error.
type panelHeap []panel

func (h panelHeap) Len() int           { return len(h) }
func (h panelHeap) Less(i, j int) bool { return h[i].err > h[j].err }
func (h panelHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *panelHeap) Push(x any)        { *h = append(*h, x.(panel)) }
func (h *panelHeap) Pop() any {
	old := *h
	n := len(old)
	p := old[n-1]
	*h = old[:n-1]
	return p
}

// Integrate approximates the integral of f over [a, b].
//
// If a == b the result is zero. If a > b the integral is taken over [b, a]
// and negated. Non-finite bounds are not supported and yield NaN.
func Integrate(f func(float64) float64, a, b float64, opts ...Option) Result {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return Result{Value: math.NaN(), AbsError: math.Inf(1)}
	}
	if a == b {
		return Result{Converged: true}
	}
	sign := 1.0
	if a > b {
		a, b = b, a
		sign = -1
	}

	edges := partition(a, b, cfg.breakpoints)
	panels := make(panelHeap, 0, len(edges)-1)
	res := Result{}
	for i := 0; i+1 < len(edges); i++ {
		p := estimate(f, edges[i], edges[i+1])
		res.Evaluations += lowOrder + highOrder
		panels = append(panels, p)
	}
	heap.Init(&panels)

	value, errSum := totals(panels)
	for !withinTolerance(value, errSum, cfg) && panels.Len() < cfg.maxPanels {
		worst := heap.Pop(&panels).(panel)
		mid := worst.lo + (worst.hi-worst.lo)/2
		if mid <= worst.lo || mid >= worst.hi {
			// Panel cannot be split further in float64.
			heap.Push(&panels, worst)
			break
		}
		left := estimate(f, worst.lo, mid)
		right := estimate(f, mid, worst.hi)
		res.Evaluations += 2 * (lowOrder + highOrder)
		heap.Push(&panels, left)
		heap.Push(&panels, right)

		value += left.value + right.value - worst.value
		errSum += left.err + right.err - worst.err
	}

	// Re-sum to shed the drift of the running totals.
	value, errSum = totals(panels)
	res.Value = sign * value
	res.AbsError = errSum
	res.Subintervals = panels.Len()
	res.Converged = withinTolerance(value, errSum, cfg)
	return res
}

func estimate(f func(float64) float64, lo, hi float64) panel {
	coarse := quad.Fixed(f, lo, hi, lowOrder, quad.Legendre{}, 0)
	fine := quad.Fixed(f, lo, hi, highOrder, quad.Legendre{}, 0)
	return panel{lo: lo, hi: hi, value: fine, err: math.Abs(fine - coarse)}
}

func totals(panels panelHeap) (value, errSum float64) {
	// Sum smallest-first for a slightly better rounding profile.
	sorted := make([]panel, len(panels))
	copy(sorted, panels)
	sort.Slice(sorted, func(i, j int) bool { return math.Abs(sorted[i].value) < math.Abs(sorted[j].value) })
	for _, p := range sorted {
		value += p.value
		errSum += p.err
	}
	return value, errSum
}

func withinTolerance(value, errSum float64, cfg config) bool {
	return errSum <= math.Max(cfg.absTol, cfg.relTol*math.Abs(value))
}

func partition(a, b float64, breakpoints []float64) []float64 {
	edges := []float64{a}
	inner := make([]float64, 0, len(breakpoints))
	for _, p := range breakpoints {
		if p > a && p < b {
			inner = append(inner, p)
		}
	}
	sort.Float64s(inner)
	for _, p := range inner {
		if p != edges[len(edges)-1] {
			edges = append(edges, p)
		}
	}
	return append(edges, b)
}
