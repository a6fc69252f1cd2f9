// Package chart draws the figures of the command line tool with gonum/plot.
package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/cwbudde/algo-blackbody/radiation/sweep"
	"github.com/cwbudde/algo-blackbody/series/fourier"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Figure size used by Render and Save.
var (
	Width  = vg.Points(800)
	Height = vg.Points(450)
)

// Visible band edges marked on radiance plots, in nm.
const (
	VisibleMinNM = 300.0
	VisibleMaxNM = 700.0
)

var (
	blue = color.RGBA{B: 255, A: 255}
	red  = color.RGBA{R: 255, A: 255}
)

// RadianceCurves plots radiance against wavelength on a log axis, one line
// per temperature of res, with dashed markers at the visible band edges.
func RadianceCurves(res *sweep.Result) (*plot.Plot, error) {
	if res == nil || len(res.Curves) == 0 {
		return nil, errors.New("chart: sweep has no curves")
	}

	p := plot.New()
	p.Title.Text = "Spectral radiance"
	p.X.Label.Text = "Wavelength (nm)"
	p.Y.Label.Text = "Intensity I(ν) (W/Hz)"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	ymax := 0.0
	for i, curve := range res.Curves {
		line, err := plotter.NewLine(xys(res.Wavelengths, curve))
		if err != nil {
			return nil, errors.Wrapf(err, "chart: curve %d", i)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("T=%gK", res.Rows[i].Temperature), line)

		for _, v := range curve {
			ymax = math.Max(ymax, v)
		}
	}

	for _, edge := range []struct {
		nm  float64
		col color.Color
	}{{VisibleMinNM, blue}, {VisibleMaxNM, red}} {
		marker, err := plotter.NewLine(plotter.XYs{{X: edge.nm, Y: 0}, {X: edge.nm, Y: ymax}})
		if err != nil {
			return nil, errors.Wrap(err, "chart: visible band marker")
		}
		marker.Color = edge.col
		marker.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
		p.Add(marker)
	}

	p.Y.Min = 0
	p.Legend.Top = true
	return p, nil
}

// IntegralComparison plots the trapezoid, Simpson and adaptive quadrature
// integrals against temperature.
func IntegralComparison(res *sweep.Result) (*plot.Plot, error) {
	if res == nil || len(res.Rows) == 0 {
		return nil, errors.New("chart: sweep has no rows")
	}

	p := plot.New()
	p.Title.Text = "Integrated intensity"
	p.X.Label.Text = "Temperature (K)"
	p.Y.Label.Text = "Intensity (W)"
	p.Add(plotter.NewGrid())

	temps := res.Temperatures()
	for i, col := range []struct{ name, label string }{
		{sweep.ColumnTrapezoid, "Trapezoid"},
		{sweep.ColumnSimpson, "Simpson"},
		{sweep.ColumnQuad, "Quad"},
	} {
		ys, err := res.Column(col.name)
		if err != nil {
			return nil, err
		}
		line, err := plotter.NewLine(xys(temps, ys))
		if err != nil {
			return nil, errors.Wrapf(err, "chart: %s", col.label)
		}
		line.Color = plotutil.Color(i)
		line.Dashes = plotutil.Dashes(i)
		p.Add(line)
		p.Legend.Add(col.label, line)
	}

	p.Legend.Top = true
	p.Legend.Left = true
	return p, nil
}

// PeakFrequencies plots the peak frequency of every temperature as crosses.
func PeakFrequencies(res *sweep.Result) (*plot.Plot, error) {
	if res == nil || len(res.Rows) == 0 {
		return nil, errors.New("chart: sweep has no rows")
	}
	peaks, err := res.Column(sweep.ColumnPeakFrequency)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = "Peak frequency at certain temperatures"
	p.X.Label.Text = "Temperature (K)"
	p.Y.Label.Text = "Frequency (Hz)"
	p.Add(plotter.NewGrid())

	sc, err := plotter.NewScatter(xys(res.Temperatures(), peaks))
	if err != nil {
		return nil, errors.Wrap(err, "chart: peaks")
	}
	sc.Shape = draw.CrossGlyph{}
	sc.Color = red
	sc.Radius = vg.Points(4)
	p.Add(sc)

	return p, nil
}

// FourierComponents plots the first n components of tbl against time.
func FourierComponents(tbl *fourier.Table, n int) (*plot.Plot, error) {
	if tbl == nil || tbl.Terms() == 0 {
		return nil, errors.New("chart: table has no components")
	}
	if n <= 0 {
		return nil, errors.Errorf("chart: component count must be > 0: %d", n)
	}
	n = min(n, tbl.Terms())

	p := plot.New()
	p.Title.Text = fmt.Sprintf("First %d Fourier components", n)
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Amplitude"
	p.Add(plotter.NewGrid())

	t := tbl.Time()
	for i := range n {
		comp, err := tbl.Component(i)
		if err != nil {
			return nil, err
		}
		line, err := plotter.NewLine(xys(t, comp))
		if err != nil {
			return nil, errors.Wrapf(err, "chart: component %d", i)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("Term %d", i+1), line)
	}

	return p, nil
}

// PartialSum plots the sum of the first terms components of tbl.
func PartialSum(tbl *fourier.Table, terms int) (*plot.Plot, error) {
	if tbl == nil {
		return nil, errors.New("chart: nil table")
	}
	sum, err := tbl.PartialSum(terms)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Sum of first %d Fourier components", terms)
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Amplitude"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(xys(tbl.Time(), sum))
	if err != nil {
		return nil, errors.Wrap(err, "chart: partial sum")
	}
	p.Add(line)
	p.Legend.Add(fmt.Sprintf("Sum of %d terms", terms), line)

	return p, nil
}

// Spectrum plots a magnitude spectrum.
func Spectrum(spec *fourier.MagnitudeSpectrum) (*plot.Plot, error) {
	if spec == nil || len(spec.Magnitudes) == 0 {
		return nil, errors.New("chart: empty spectrum")
	}

	p := plot.New()
	p.Title.Text = "Magnitude spectrum"
	p.X.Label.Text = "Frequency (Hz)"
	p.Y.Label.Text = "Amplitude"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(xys(spec.Frequencies, spec.Magnitudes))
	if err != nil {
		return nil, errors.Wrap(err, "chart: spectrum")
	}
	line.StepStyle = plotter.MidStep
	p.Add(line)

	return p, nil
}

// Render draws p in the given format (png, svg, pdf, ...) at the default
// figure size.
func Render(p *plot.Plot, format string) ([]byte, error) {
	writer, err := p.WriterTo(Width, Height, format)
	if err != nil {
		return nil, errors.Wrapf(err, "chart: render %s", format)
	}
	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, errors.Wrapf(err, "chart: render %s", format)
	}
	return buf.Bytes(), nil
}

// Save writes p to path; the extension selects the format.
func Save(p *plot.Plot, path string) error {
	if err := p.Save(Width, Height, path); err != nil {
		return errors.Wrapf(err, "chart: save %s", path)
	}
	return nil
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, min(len(x), len(y)))
	for i := range pts {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}
