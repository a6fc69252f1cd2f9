package planck

import "math"

// Radiance returns the spectral radiance in W/Hz of a body with the given
// intensity scale (area × emissivity, m²) at temperature temp (K),
// evaluated at freq (Hz):
//
//	I(ν) = I₀ · 2hν³/c² · 1/(exp(hν/kT) − 1)
//
// The exponent is clamped to [MaxExponent] and an exactly-zero denominator
// is replaced by [DenominatorFloor]. Inputs are not validated; negative or
// zero arguments produce whatever the arithmetic yields.
func Radiance(freq, scale, temp float64) float64 {
	exponent := (Planck * freq) / (Boltzmann * temp)
	if exponent > MaxExponent {
		exponent = MaxExponent
	}

	denominator := math.Exp(exponent) - 1
	if denominator == 0 {
		denominator = DenominatorFloor
	}

	frac1 := 2 * Planck * (freq * freq * freq) / (SpeedOfLight * SpeedOfLight)
	frac2 := 1 / denominator

	return scale * frac1 * frac2
}

// NegatedRadiance returns -Radiance(freq, scale, temp). It turns the peak
// search into a minimisation.
func NegatedRadiance(freq, scale, temp float64) float64 {
	return -Radiance(freq, scale, temp)
}

// RadianceSlice evaluates [Radiance] for every frequency in freqs and
// stores the results in dst, which is reused when it has enough capacity.
// Each element is bit-identical to the scalar call.
func RadianceSlice(dst, freqs []float64, scale, temp float64) []float64 {
	if cap(dst) < len(freqs) {
		dst = make([]float64, len(freqs))
	}
	dst = dst[:len(freqs)]
	for i, f := range freqs {
		dst[i] = Radiance(f, scale, temp)
	}
	return dst
}

// IntensityScale returns the intensity scale of a sphere of the given
// radius (m) and emissivity: 4πr²·ε.
func IntensityScale(radius, emissivity float64) float64 {
	area := 4 * math.Pi * radius * radius
	return area * emissivity
}
