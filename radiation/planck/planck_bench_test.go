package planck

import "testing"

func BenchmarkRadiance(b *testing.B) {
	freq := 3.4e14
	for range b.N {
		_ = Radiance(freq, 1, 5800)
	}
}

func BenchmarkRadianceSlice(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"64", 64},
		{"1K", 1024},
		{"16K", 16384},
	}

	for _, testCase := range sizes {
		b.Run(testCase.name, func(b *testing.B) {
			freqs := make([]float64, testCase.size)
			for i := range freqs {
				freqs[i] = 1e12 + float64(i)*1e11
			}
			dst := make([]float64, testCase.size)

			b.SetBytes(int64(testCase.size * 8))
			b.ResetTimer()

			for range b.N {
				dst = RadianceSlice(dst, freqs, 1, 5800)
			}
		})
	}
}

func BenchmarkTotalPower(b *testing.B) {
	for range b.N {
		_, _ = TotalPower(1, 1, 5800)
	}
}

func BenchmarkPeak(b *testing.B) {
	for range b.N {
		_, _, _ = Peak(1, 1, 5800)
	}
}
