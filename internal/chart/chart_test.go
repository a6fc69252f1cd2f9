package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-blackbody/internal/testutil"
	"github.com/cwbudde/algo-blackbody/radiation/sweep"
	"github.com/cwbudde/algo-blackbody/series/fourier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
)

var pngMagic = []byte("\x89PNG")

func smallSweep(t *testing.T) *sweep.Result {
	t.Helper()
	cfg := sweep.DefaultConfig()
	cfg.TempSteps = 2
	cfg.Points = 21
	res, err := sweep.Run(cfg)
	require.NoError(t, err)
	return res
}

func harmonicTable(t *testing.T) *fourier.Table {
	t.Helper()
	time, cols := testutil.HarmonicTable(2, 64, 64, 4)
	tbl, err := fourier.NewTable(time, cols)
	require.NoError(t, err)
	return tbl
}

func requirePNG(t *testing.T, p *plot.Plot) {
	t.Helper()
	data, err := Render(p, "png")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic), "not a PNG")
}

func TestSweepFigures(t *testing.T) {
	res := smallSweep(t)

	curves, err := RadianceCurves(res)
	require.NoError(t, err)
	assert.Equal(t, "Wavelength (nm)", curves.X.Label.Text)
	assert.InDelta(t, 0, curves.Y.Min, 0)
	requirePNG(t, curves)

	integrals, err := IntegralComparison(res)
	require.NoError(t, err)
	requirePNG(t, integrals)

	peaks, err := PeakFrequencies(res)
	require.NoError(t, err)
	assert.InDelta(t, 3000, peaks.X.Min, 1e-9)
	requirePNG(t, peaks)
}

func TestSweepFiguresRejectEmpty(t *testing.T) {
	_, err := RadianceCurves(nil)
	require.Error(t, err)
	_, err = IntegralComparison(&sweep.Result{})
	require.Error(t, err)
	_, err = PeakFrequencies(&sweep.Result{})
	require.Error(t, err)
}

func TestFourierFigures(t *testing.T) {
	tbl := harmonicTable(t)

	comps, err := FourierComponents(tbl, 10)
	require.NoError(t, err)
	assert.Equal(t, "First 4 Fourier components", comps.Title.Text)
	requirePNG(t, comps)

	sum, err := PartialSum(tbl, 3)
	require.NoError(t, err)
	requirePNG(t, sum)

	sig, err := tbl.PartialSum(4)
	require.NoError(t, err)
	spec, err := fourier.Spectrum(sig, 64)
	require.NoError(t, err)
	sp, err := Spectrum(spec)
	require.NoError(t, err)
	requirePNG(t, sp)

	_, err = FourierComponents(tbl, 0)
	require.Error(t, err)
	_, err = PartialSum(tbl, -1)
	require.ErrorIs(t, err, fourier.ErrNegativeTerms)
	_, err = Spectrum(nil)
	require.Error(t, err)
}

func TestRenderFormats(t *testing.T) {
	p, err := PartialSum(harmonicTable(t), 2)
	require.NoError(t, err)

	svg, err := Render(p, "svg")
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")

	_, err = Render(p, "bmp")
	require.Error(t, err)
}

func TestSave(t *testing.T) {
	p, err := PartialSum(harmonicTable(t), 2)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "sum.png")
	require.NoError(t, Save(p, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))

	require.Error(t, Save(p, filepath.Join(t.TempDir(), "missing", "sum.png")))
}
