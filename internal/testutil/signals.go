package testutil

import "math"

// HarmonicTable builds a time column and one sine column per harmonic of
// f0, sampled at sampleRate. Harmonic k (1-based) has amplitude 1/k, the
// shape of a sawtooth's Fourier series.
func HarmonicTable(f0, sampleRate float64, length, harmonics int) (time []float64, columns [][]float64) {
	time = make([]float64, length)
	for i := range time {
		time[i] = float64(i) / sampleRate
	}
	columns = make([][]float64, harmonics)
	for k := range columns {
		columns[k] = DeterministicSine(float64(k+1)*f0, sampleRate, 1/float64(k+1), length)
	}
	return time, columns
}

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// LogGrid returns n points spaced evenly in log10 between lo and hi.
func LogGrid(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	a, b := math.Log10(lo), math.Log10(hi)
	for i := range out {
		out[i] = math.Pow(10, a+(b-a)*float64(i)/float64(n-1))
	}
	return out
}
