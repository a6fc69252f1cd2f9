package planck

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-blackbody/internal/testutil"
)

func TestRadianceMatchesClosedForm(t *testing.T) {
	freq, scale, temp := 5e14, 1e4, 5800.0

	x := Planck * freq / (Boltzmann * temp)
	want := scale * 2 * Planck * math.Pow(freq, 3) / math.Pow(SpeedOfLight, 2) / math.Expm1(x)

	testutil.RequireRelNearlyEqual(t, Radiance(freq, scale, temp), want, 1e-9)
}

func TestRadianceNonNegative(t *testing.T) {
	freqs := append([]float64{0}, testutil.LogGrid(1, 1e22, 221)...)
	for _, temp := range []float64{1, 300, 5800, 1e5} {
		for _, scale := range []float64{0, 1, 4 * math.Pi} {
			out := RadianceSlice(nil, freqs, scale, temp)
			testutil.RequireFinite(t, out)
			testutil.RequireNonNegative(t, out)
		}
	}
}

func TestRadianceScalesLinearly(t *testing.T) {
	for _, freq := range testutil.LogGrid(1e10, 1e18, 33) {
		base := Radiance(freq, 1.5, 5800)
		doubled := Radiance(freq, 3, 5800)
		if doubled != 2*base {
			t.Fatalf("freq=%g: Radiance(2I)=%g want exactly %g", freq, doubled, 2*base)
		}
	}
}

func TestRadianceVanishesAtBothEnds(t *testing.T) {
	peak := Radiance(3.4e14, 1, 5800)

	low := Radiance(1e2, 1, 5800)
	if low <= 0 || low > peak*1e-20 {
		t.Fatalf("low-frequency radiance=%g, peak=%g", low, peak)
	}

	high := Radiance(1e17, 1, 5800)
	if high < 0 || high > peak*1e-100 {
		t.Fatalf("high-frequency radiance=%g, peak=%g", high, peak)
	}
}

func TestRadianceClampsExponent(t *testing.T) {
	// hν/kT ≈ 8e5 here, far beyond the clamp.
	freq, temp := 1e20, 5800.0

	got := Radiance(freq, 1, temp)
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("Radiance=%v, want finite", got)
	}

	want := 2 * Planck * (freq * freq * freq) / (SpeedOfLight * SpeedOfLight) * (1 / (math.Exp(MaxExponent) - 1))
	testutil.RequireRelNearlyEqual(t, got, want, 1e-15)
}

func TestRadianceDenominatorFloor(t *testing.T) {
	// hν/kT ≈ 8e-18, so exp(x)-1 rounds to exactly zero.
	freq, temp := 1e-3, 5800.0
	if math.Exp(Planck*freq/(Boltzmann*temp))-1 != 0 {
		t.Skip("denominator does not underflow on this platform")
	}

	got := Radiance(freq, 1, temp)
	want := 2 * Planck * (freq * freq * freq) / (SpeedOfLight * SpeedOfLight) * (1 / DenominatorFloor)
	testutil.RequireRelNearlyEqual(t, got, want, 1e-15)

	if zero := Radiance(0, 1, temp); zero != 0 {
		t.Fatalf("Radiance(0)=%g want 0", zero)
	}
}

func TestNegatedRadiance(t *testing.T) {
	for _, freq := range []float64{0, 1e12, 3.4e14, 1e16, 1e20} {
		r := Radiance(freq, 2, 6000)
		if n := NegatedRadiance(freq, 2, 6000); n != -r {
			t.Fatalf("freq=%g: NegatedRadiance=%g want %g", freq, n, -r)
		}
	}
}

func TestRadianceIsDeterministic(t *testing.T) {
	a := Radiance(4.2e14, 12.5, 4321)
	b := Radiance(4.2e14, 12.5, 4321)
	if math.Float64bits(a) != math.Float64bits(b) {
		t.Fatalf("repeated calls differ: %v vs %v", a, b)
	}
}

func TestRadianceSlice(t *testing.T) {
	freqs := testutil.LogGrid(1e12, 1e16, 17)

	got := RadianceSlice(nil, freqs, 3, 5800)
	if len(got) != len(freqs) {
		t.Fatalf("len=%d want=%d", len(got), len(freqs))
	}
	for i, f := range freqs {
		if got[i] != Radiance(f, 3, 5800) {
			t.Fatalf("index %d: slice=%g scalar=%g", i, got[i], Radiance(f, 3, 5800))
		}
	}

	buf := make([]float64, 0, 64)
	reused := RadianceSlice(buf, freqs, 3, 5800)
	if &reused[0] != &buf[:1][0] {
		t.Fatal("expected dst to be reused")
	}
	testutil.RequireSliceNearlyEqual(t, reused, got, 0)
}

func TestIntensityScale(t *testing.T) {
	testutil.RequireRelNearlyEqual(t, IntensityScale(1, 1), 4*math.Pi, 1e-15)
	testutil.RequireRelNearlyEqual(t, IntensityScale(2, 0.5), 8*math.Pi, 1e-15)

	if s := IntensityScale(1, 0); s != 0 {
		t.Fatalf("IntensityScale(1,0)=%g want 0", s)
	}
}
