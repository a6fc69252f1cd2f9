// Package planck evaluates Planck's law for the spectral radiance of a
// blackbody and derives the total radiated power and the frequency of peak
// emission.
//
// All functions are pure and reentrant. Frequencies are in Hz,
// temperatures in K, radii in m; the intensity scale is the product of the
// emitting area (m²) and the emissivity.
//
// # Numeric guards
//
// [Radiance] clamps the exponent hν/kT to [MaxExponent] before taking the
// exponential, and replaces an exactly-zero denominator with
// [DenominatorFloor]. Both thresholds are fixed so results stay comparable
// with reference tables computed the same way.
//
// # Usage
//
//	p, err := planck.TotalPower(1.0, 1.0, 5800)   // W
//	f, r, err := planck.Peak(1.0, 1.0, 5800)      // Hz, W/Hz
//
// Integration bounds, the peak-search seed and solver budgets can be tuned
// with [Option] values such as [WithBand] and [WithSeed].
package planck
