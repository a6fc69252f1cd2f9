package planck

// Exact SI defining constants (CODATA 2018).
const (
	Planck       = 6.62607015e-34 // J·s
	Boltzmann    = 1.380649e-23   // J/K
	SpeedOfLight = 299792458.0    // m/s
)

const (
	// MaxExponent is the largest value of hν/kT passed to math.Exp.
	// exp(700) ≈ 1.01e304 is still finite in float64.
	MaxExponent = 700.0

	// DenominatorFloor replaces an exactly-zero exp(x)-1 term.
	DenominatorFloor = 1e-15
)

// Defaults for the integration band and the peak search.
const (
	DefaultBandMin   = 1e10 // Hz
	DefaultBandMax   = 1e18 // Hz
	DefaultPeakSeed  = 1e14 // Hz
	DefaultTolerance = 1.49e-8

	DefaultMaxSubintervals = 200
	DefaultMaxIterations   = 200
)
