package sweep

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-blackbody/radiation/planck"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// Errors returned by sweep functions.
var (
	ErrInvalidConfig = errors.New("sweep: invalid config")
	ErrUnknownColumn = errors.New("sweep: unknown column")
)

// Column names accepted by [Result.Column].
const (
	ColumnTemperature   = "temperature"
	ColumnTrapezoid     = "trapezoid"
	ColumnSimpson       = "simpson"
	ColumnQuad          = "quad"
	ColumnPeakFrequency = "peak_frequency"
	ColumnPeakRadiance  = "peak_radiance"
)

// Config describes the temperature and frequency grids of a sweep.
type Config struct {
	TempMin   float64 // K
	TempMax   float64 // K
	TempSteps int

	Scale float64 // intensity scale, m²

	FreqMin float64 // Hz
	FreqMax float64 // Hz
	Points  int

	// Planck is passed to the band integration and the peak search.
	Planck []planck.Option
}

// DefaultConfig returns 8 temperatures from 3000 K to 10000 K with an
// intensity scale of 1e4 m², sampled at 501 log-spaced frequencies between
// 1e13 and 1e16 Hz.
func DefaultConfig() Config {
	return Config{
		TempMin:   3000,
		TempMax:   10000,
		TempSteps: 8,
		Scale:     1e4,
		FreqMin:   1e13,
		FreqMax:   1e16,
		Points:    501,
	}
}

// Validate checks the grids and the intensity scale.
func (c *Config) Validate() error {
	switch {
	case c.TempSteps < 1:
		return fmt.Errorf("%w: temperature steps must be >= 1: %d", ErrInvalidConfig, c.TempSteps)
	case !finite(c.TempMin) || !finite(c.TempMax) || c.TempMin <= 0:
		return fmt.Errorf("%w: temperatures must be finite and > 0: [%g, %g]", ErrInvalidConfig, c.TempMin, c.TempMax)
	case c.TempMax < c.TempMin || (c.TempSteps > 1 && c.TempMax == c.TempMin):
		return fmt.Errorf("%w: temperature range [%g, %g] is inverted or empty", ErrInvalidConfig, c.TempMin, c.TempMax)
	case !finite(c.Scale) || c.Scale < 0:
		return fmt.Errorf("%w: scale must be finite and >= 0: %g", ErrInvalidConfig, c.Scale)
	case c.Points < 3:
		return fmt.Errorf("%w: at least 3 frequency points required: %d", ErrInvalidConfig, c.Points)
	case !finite(c.FreqMin) || !finite(c.FreqMax) || c.FreqMin <= 0 || c.FreqMax <= c.FreqMin:
		return fmt.Errorf("%w: frequency range [%g, %g] must be positive and increasing", ErrInvalidConfig, c.FreqMin, c.FreqMax)
	}
	return nil
}

// Row holds the per-temperature results.
type Row struct {
	Temperature   float64 `json:"temperature" yaml:"temperature"`
	Trapezoid     float64 `json:"trapezoid" yaml:"trapezoid"`
	Simpson       float64 `json:"simpson" yaml:"simpson"`
	Quad          float64 `json:"quad" yaml:"quad"`
	QuadConverged bool    `json:"quad_converged" yaml:"quad_converged"`
	PeakFrequency float64 `json:"peak_frequency" yaml:"peak_frequency"`
	PeakRadiance  float64 `json:"peak_radiance" yaml:"peak_radiance"`
	PeakConverged bool    `json:"peak_converged" yaml:"peak_converged"`
}

// Result is the outcome of [Run].
type Result struct {
	Frequencies []float64   // Hz, ascending
	Wavelengths []float64   // nm, matching Frequencies
	Curves      [][]float64 // Curves[i] is the radiance at Rows[i].Temperature
	Rows        []Row
}

// Temperatures returns the temperature of every row.
func (r *Result) Temperatures() []float64 {
	out, _ := r.Column(ColumnTemperature)
	return out
}

// Column returns one field of every row by name.
func (r *Result) Column(name string) ([]float64, error) {
	var pick func(Row) float64
	switch name {
	case ColumnTemperature:
		pick = func(row Row) float64 { return row.Temperature }
	case ColumnTrapezoid:
		pick = func(row Row) float64 { return row.Trapezoid }
	case ColumnSimpson:
		pick = func(row Row) float64 { return row.Simpson }
	case ColumnQuad:
		pick = func(row Row) float64 { return row.Quad }
	case ColumnPeakFrequency:
		pick = func(row Row) float64 { return row.PeakFrequency }
	case ColumnPeakRadiance:
		pick = func(row Row) float64 { return row.PeakRadiance }
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}

	out := make([]float64, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = pick(row)
	}
	return out, nil
}

// Run samples, integrates and searches every temperature of cfg.
func Run(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	freqs := floats.LogSpan(make([]float64, cfg.Points), cfg.FreqMin, cfg.FreqMax)
	// Pin the ends; exp(log(x)) is not always x.
	freqs[0], freqs[len(freqs)-1] = cfg.FreqMin, cfg.FreqMax

	res := &Result{
		Frequencies: freqs,
		Wavelengths: Wavelengths(freqs),
		Curves:      make([][]float64, 0, cfg.TempSteps),
		Rows:        make([]Row, 0, cfg.TempSteps),
	}

	for _, temp := range temperatureGrid(cfg) {
		curve := planck.RadianceSlice(nil, freqs, cfg.Scale, temp)

		quad, err := planck.IntegrateRadiance(cfg.Scale, temp, cfg.Planck...)
		if err != nil {
			return nil, err
		}
		peak, err := planck.PeakForScale(cfg.Scale, temp, cfg.Planck...)
		if err != nil {
			return nil, err
		}

		res.Curves = append(res.Curves, curve)
		res.Rows = append(res.Rows, Row{
			Temperature:   temp,
			Trapezoid:     integrate.Trapezoidal(freqs, curve),
			Simpson:       integrate.Simpsons(freqs, curve),
			Quad:          quad.Power,
			QuadConverged: quad.Converged,
			PeakFrequency: peak.Frequency,
			PeakRadiance:  peak.Radiance,
			PeakConverged: peak.Converged,
		})
	}

	return res, nil
}

// Wavelengths converts frequencies in Hz to wavelengths in nm.
func Wavelengths(freqs []float64) []float64 {
	out := make([]float64, len(freqs))
	for i, f := range freqs {
		out[i] = planck.SpeedOfLight / f * 1e9
	}
	return out
}

func temperatureGrid(cfg Config) []float64 {
	if cfg.TempSteps == 1 {
		return []float64{cfg.TempMin}
	}
	return floats.Span(make([]float64, cfg.TempSteps), cfg.TempMin, cfg.TempMax)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
