package planck

import (
	"math"

	"github.com/cwbudde/algo-blackbody/internal/quadrature"
	"gonum.org/v1/gonum/floats"
)

// maxDecadePanels bounds the initial partition of very wide bands.
const maxDecadePanels = 64

// PowerEstimate carries the quadrature diagnostics behind a power value.
type PowerEstimate struct {
	Power        float64 // W
	AbsError     float64 // W
	Evaluations  int
	Subintervals int
	Converged    bool
}

// TotalPower returns the power in W radiated by a sphere of the given
// radius (m), emissivity and temperature (K), integrating [Radiance] over
// the band [DefaultBandMin, DefaultBandMax] unless [WithBand] says
// otherwise.
//
// The quadrature error estimate is discarded. The band is fixed rather than
// derived from the temperature, so spectra far outside roughly 1e2..1e5 K
// lose mass outside the band.
func TotalPower(radius, emissivity, temp float64, opts ...Option) (float64, error) {
	est, err := TotalPowerEstimate(radius, emissivity, temp, opts...)
	if err != nil {
		return 0, err
	}
	return est.Power, nil
}

// TotalPowerEstimate is [TotalPower] with quadrature diagnostics.
// A non-converged estimate is still returned without an error.
func TotalPowerEstimate(radius, emissivity, temp float64, opts ...Option) (PowerEstimate, error) {
	if err := validateBody(radius, emissivity); err != nil {
		return PowerEstimate{}, err
	}
	return IntegrateRadiance(IntensityScale(radius, emissivity), temp, opts...)
}

// IntegrateRadiance integrates [Radiance] for an explicit intensity scale
// over the configured band.
func IntegrateRadiance(scale, temp float64, opts ...Option) (PowerEstimate, error) {
	if err := validateScale(scale); err != nil {
		return PowerEstimate{}, err
	}
	if err := validateTemperature(temp); err != nil {
		return PowerEstimate{}, err
	}
	cfg := applyOptions(opts)

	f := func(freq float64) float64 { return Radiance(freq, scale, temp) }
	res := quadrature.Integrate(f, cfg.bandMin, cfg.bandMax,
		quadrature.WithTolerance(cfg.absTol, cfg.relTol),
		quadrature.WithMaxSubintervals(cfg.maxSubintervals),
		quadrature.WithBreakpoints(decadeEdges(cfg.bandMin, cfg.bandMax)...),
	)

	return PowerEstimate{
		Power:        res.Value,
		AbsError:     res.AbsError,
		Evaluations:  res.Evaluations,
		Subintervals: res.Subintervals,
		Converged:    res.Converged,
	}, nil
}

// decadeEdges splits [lo, hi] into roughly one panel per decade so the
// first quadrature pass samples every part of a spectrum spanning many
// orders of magnitude.
func decadeEdges(lo, hi float64) []float64 {
	n := int(math.Ceil(math.Log10(hi/lo))) + 1
	if n < 2 {
		return nil
	}
	if n > maxDecadePanels+1 {
		n = maxDecadePanels + 1
	}
	return floats.LogSpan(make([]float64, n), lo, hi)
}
