package planck

import (
	"math"

	"gonum.org/v1/gonum/optimize"
)

// simplexStep is the initial simplex edge relative to the seed.
const simplexStep = 0.05

// PeakResult describes where the peak search stopped.
type PeakResult struct {
	Frequency   float64 // Hz
	Radiance    float64 // W/Hz
	Status      string
	Iterations  int
	Evaluations int
	Converged   bool
}

// Peak returns the frequency (Hz) of maximum spectral radiance and the
// radiance there (W/Hz) for a sphere of the given radius, emissivity and
// temperature.
//
// The search is a Nelder-Mead simplex on [NegatedRadiance] seeded at
// [DefaultPeakSeed]. If it does not converge, for example for temperatures
// whose peak lies decades away from the seed, the last best point is
// returned without an error.
func Peak(radius, emissivity, temp float64, opts ...Option) (freq, radiance float64, err error) {
	if err := validateBody(radius, emissivity); err != nil {
		return 0, 0, err
	}
	res, err := PeakForScale(IntensityScale(radius, emissivity), temp, opts...)
	if err != nil {
		return 0, 0, err
	}
	return res.Frequency, res.Radiance, nil
}

// PeakSearch is [Peak] with solver diagnostics.
func PeakSearch(radius, emissivity, temp float64, opts ...Option) (PeakResult, error) {
	if err := validateBody(radius, emissivity); err != nil {
		return PeakResult{}, err
	}
	return PeakForScale(IntensityScale(radius, emissivity), temp, opts...)
}

// PeakForScale locates the radiance peak for an explicit intensity scale.
func PeakForScale(scale, temp float64, opts ...Option) (PeakResult, error) {
	if err := validateScale(scale); err != nil {
		return PeakResult{}, err
	}
	if err := validateTemperature(temp); err != nil {
		return PeakResult{}, err
	}
	cfg := applyOptions(opts)

	problem := optimize.Problem{
		Func: func(x []float64) float64 { return NegatedRadiance(x[0], scale, temp) },
	}
	settings := &optimize.Settings{
		Converger:       &optimize.FunctionConverge{Relative: 1e-10, Iterations: 50},
		MajorIterations: cfg.maxIterations,
		FuncEvaluations: 2 * cfg.maxIterations,
	}
	method := &optimize.NelderMead{SimplexSize: simplexStep * cfg.seed}

	out := PeakResult{Frequency: cfg.seed, Status: optimize.Failure.String()}
	res, err := optimize.Minimize(problem, []float64{cfg.seed}, settings, method)
	if res != nil && len(res.X) == 1 && !math.IsInf(res.F, 1) {
		out.Frequency = res.X[0]
		out.Status = res.Status.String()
		out.Iterations = res.MajorIterations
		out.Evaluations = res.FuncEvaluations
		out.Converged = err == nil && !res.Status.Early()
	}
	out.Radiance = Radiance(out.Frequency, scale, temp)

	return out, nil
}
