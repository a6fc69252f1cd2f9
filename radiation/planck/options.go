package planck

// Option configures [TotalPower], [Peak] and their variants.
type Option func(*config)

type config struct {
	bandMin         float64
	bandMax         float64
	seed            float64
	absTol          float64
	relTol          float64
	maxSubintervals int
	maxIterations   int
}

func defaultConfig() config {
	return config{
		bandMin:         DefaultBandMin,
		bandMax:         DefaultBandMax,
		seed:            DefaultPeakSeed,
		absTol:          DefaultTolerance,
		relTol:          DefaultTolerance,
		maxSubintervals: DefaultMaxSubintervals,
		maxIterations:   DefaultMaxIterations,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithBand sets the integration band in Hz. The band is ignored unless
// 0 < lo < hi and both are finite.
func WithBand(lo, hi float64) Option {
	return func(cfg *config) {
		if isFinite(lo) && isFinite(hi) && lo > 0 && lo < hi {
			cfg.bandMin = lo
			cfg.bandMax = hi
		}
	}
}

// WithSeed sets the starting frequency of the peak search in Hz.
func WithSeed(freq float64) Option {
	return func(cfg *config) {
		if isFinite(freq) && freq > 0 {
			cfg.seed = freq
		}
	}
}

// WithTolerance sets the absolute and relative quadrature tolerances.
// Negative values are ignored.
func WithTolerance(abs, rel float64) Option {
	return func(cfg *config) {
		if abs >= 0 {
			cfg.absTol = abs
		}
		if rel >= 0 {
			cfg.relTol = rel
		}
	}
}

// WithMaxSubintervals caps the number of quadrature panels.
func WithMaxSubintervals(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxSubintervals = n
		}
	}
}

// WithMaxIterations caps the major iterations of the peak search. Function
// evaluations are capped at twice this value.
func WithMaxIterations(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxIterations = n
		}
	}
}
