package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-blackbody/internal/chart"
	"github.com/cwbudde/algo-blackbody/internal/report"
	"github.com/cwbudde/algo-blackbody/radiation/sweep"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
)

type sweepFigure struct {
	file  string
	title string
	build func(*sweep.Result) (*plot.Plot, error)
}

var sweepFigures = []sweepFigure{
	{"radiance.png", "Spectral radiance", chart.RadianceCurves},
	{"integrals.png", "Integrated intensity", chart.IntegralComparison},
	{"peaks.png", "Peak frequency", chart.PeakFrequencies},
}

func sweepCmd(a *app) *cobra.Command {
	var (
		format   string
		plotsDir string
		pdfPath  string
	)

	def := sweep.DefaultConfig()
	c := &cobra.Command{
		Use:   "sweep",
		Short: "Compare trapezoid, Simpson and adaptive integration over a temperature grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start := time.Now()
			res, err := sweep.Run(a.cfg.SweepConfig())
			if err != nil {
				return err
			}
			for _, row := range res.Rows {
				if !row.QuadConverged || !row.PeakConverged {
					a.log.Warn().Float64("temp", row.Temperature).
						Bool("quad_converged", row.QuadConverged).
						Bool("peak_converged", row.PeakConverged).
						Msg("solver stopped early")
				}
			}
			a.timed(start, "sweep finished")

			if plotsDir != "" || pdfPath != "" {
				if err := a.writeSweepArtifacts(res, plotsDir, pdfPath); err != nil {
					return err
				}
			}

			return writeOutput(cmd.OutOrStdout(), format, res.Rows, func(tw *tabwriter.Writer) error {
				if err := writeRows(tw, []any{"T [K]", "Trapezoid [W]", "Simpson [W]", "Quad [W]", "Peak [Hz]", "Peak [W/Hz]"}); err != nil {
					return err
				}
				for _, r := range res.Rows {
					err := writeRows(tw, []any{
						fmt.Sprintf("%.0f", r.Temperature),
						sci(r.Trapezoid), sci(r.Simpson), sci(r.Quad),
						sci(r.PeakFrequency), sci(r.PeakRadiance),
					})
					if err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	f := c.Flags()
	f.Float64("temp-min", def.TempMin, "lowest temperature in K")
	f.Float64("temp-max", def.TempMax, "highest temperature in K")
	f.Int("temp-steps", def.TempSteps, "number of temperatures")
	f.Float64("scale", def.Scale, "intensity scale in m²")
	f.Float64("freq-min", def.FreqMin, "lowest sampled frequency in Hz")
	f.Float64("freq-max", def.FreqMax, "highest sampled frequency in Hz")
	f.Int("points", def.Points, "number of log-spaced frequencies")
	f.StringVar(&format, "format", formatTable, "output format: table|json|yaml")
	f.StringVar(&plotsDir, "plots", "", "write PNG figures into this directory")
	f.StringVar(&pdfPath, "pdf", "", "write a PDF report to this file")
	return c
}

func (a *app) writeSweepArtifacts(res *sweep.Result, plotsDir, pdfPath string) error {
	if plotsDir != "" {
		if err := os.MkdirAll(plotsDir, 0o755); err != nil {
			return errors.Wrap(err, "create plots directory")
		}
	}

	figures := make([]report.Figure, 0, len(sweepFigures))
	for _, sf := range sweepFigures {
		p, err := sf.build(res)
		if err != nil {
			return err
		}
		png, err := chart.Render(p, "png")
		if err != nil {
			return err
		}
		figures = append(figures, report.Figure{Title: sf.title, PNG: png})

		if plotsDir != "" {
			path := filepath.Join(plotsDir, sf.file)
			if err := os.WriteFile(path, png, 0o644); err != nil {
				return errors.Wrapf(err, "write %s", path)
			}
			a.log.Info().Str("path", path).Msg("figure written")
		}
	}

	if pdfPath != "" {
		if err := report.WriteSweepFile(pdfPath, res, figures); err != nil {
			return err
		}
		a.log.Info().Str("path", pdfPath).Msg("report written")
	}
	return nil
}
