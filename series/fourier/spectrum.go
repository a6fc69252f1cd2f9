package fourier

import (
	algofft "github.com/cwbudde/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Errors returned by [Spectrum].
var (
	ErrEmptySignal       = errors.New("fourier: signal is empty")
	ErrInvalidSampleRate = errors.New("fourier: sample rate must be positive")
)

// MagnitudeSpectrum is a one-sided amplitude spectrum.
type MagnitudeSpectrum struct {
	SampleRate  float64
	FFTSize     int
	Frequencies []float64 // Hz, bins 0..FFTSize/2
	Magnitudes  []float64 // amplitude, so a bin-centred sine of amplitude A reads A
}

// Spectrum computes the one-sided magnitude spectrum of signal. The signal
// is zero-padded to the next power of two and no window is applied.
func Spectrum(signal []float64, sampleRate float64) (*MagnitudeSpectrum, error) {
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}
	if !(sampleRate > 0) {
		return nil, errors.Wrapf(ErrInvalidSampleRate, "got %g", sampleRate)
	}

	fftSize := nextPowerOf2(len(signal))
	inData := make([]complex128, fftSize)
	for i, v := range signal {
		inData[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if fftSize > 1 {
		plan, err := algofft.NewPlan64(fftSize)
		if err != nil {
			return nil, errors.Wrap(err, "fourier: fft plan")
		}
		if err := plan.Forward(out, inData); err != nil {
			return nil, errors.Wrap(err, "fourier: forward fft")
		}
	} else {
		copy(out, inData)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	// Interior bins carry half the energy of a real sinusoid.
	n := float64(len(signal))
	vecmath.ScaleBlockInPlace(mag, 2/n)
	mag[0] /= 2
	if fftSize > 1 {
		mag[bins-1] /= 2
	}

	freqs := make([]float64, bins)
	for k := range freqs {
		freqs[k] = float64(k) * sampleRate / float64(fftSize)
	}

	return &MagnitudeSpectrum{
		SampleRate:  sampleRate,
		FFTSize:     fftSize,
		Frequencies: freqs,
		Magnitudes:  mag,
	}, nil
}

// Peak returns the frequency and magnitude of the largest non-DC bin.
// A spectrum with only a DC bin returns zeros.
func (s *MagnitudeSpectrum) Peak() (freq, magnitude float64) {
	best := 0
	for k := 1; k < len(s.Magnitudes); k++ {
		if best == 0 || s.Magnitudes[k] > s.Magnitudes[best] {
			best = k
		}
	}
	if best == 0 {
		return 0, 0
	}
	return s.Frequencies[best], s.Magnitudes[best]
}

// Centroid returns the magnitude-weighted mean frequency and the spread of
// the spectrum around it. An all-zero spectrum returns zeros.
func (s *MagnitudeSpectrum) Centroid() (centroid, spread float64) {
	if floats.Sum(s.Magnitudes) == 0 {
		return 0, 0
	}
	return stat.PopMeanStdDev(s.Frequencies, s.Magnitudes)
}

// Normalized returns the magnitudes scaled so the largest is 1. An all-zero
// spectrum is returned unchanged.
func (s *MagnitudeSpectrum) Normalized() []float64 {
	out := make([]float64, len(s.Magnitudes))
	peak := vecmath.MaxAbs(s.Magnitudes)
	if peak == 0 {
		copy(out, s.Magnitudes)
		return out
	}
	vecmath.ScaleBlock(out, s.Magnitudes, 1/peak)
	return out
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
