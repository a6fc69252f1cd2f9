package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/cwbudde/algo-blackbody/internal/chart"
	"github.com/cwbudde/algo-blackbody/series/fourier"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type partialSumOutput struct {
	Terms         int     `json:"terms" yaml:"terms"`
	PeakFrequency float64 `json:"peak_frequency_hz" yaml:"peak_frequency_hz"`
	PeakMagnitude float64 `json:"peak_magnitude" yaml:"peak_magnitude"`
	Centroid      float64 `json:"centroid_hz" yaml:"centroid_hz"`
	Spread        float64 `json:"spread_hz" yaml:"spread_hz"`
}

type fourierOutput struct {
	Samples    int                `json:"samples" yaml:"samples"`
	Components int                `json:"components" yaml:"components"`
	SampleRate float64            `json:"sample_rate_hz" yaml:"sample_rate_hz"`
	Sums       []partialSumOutput `json:"partial_sums" yaml:"partial_sums"`
}

func fourierCmd(a *app) *cobra.Command {
	var (
		terms      []int
		components int
		plotsDir   string
		format     string
	)

	c := &cobra.Command{
		Use:   "fourier FILE",
		Short: "Summarise a table of Fourier components and their partial sums",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := fourier.LoadFile(args[0])
			if err != nil {
				return err
			}
			fs, err := tbl.SampleRate()
			if err != nil {
				return err
			}
			a.log.Info().Str("file", args[0]).Int("samples", tbl.Len()).Int("components", tbl.Terms()).Msg("table loaded")

			var last *fourier.MagnitudeSpectrum
			out := fourierOutput{Samples: tbl.Len(), Components: tbl.Terms(), SampleRate: fs}
			for _, n := range terms {
				sum, err := tbl.PartialSum(n)
				if err != nil {
					return err
				}
				spec, err := fourier.Spectrum(sum, fs)
				if err != nil {
					return err
				}
				last = spec
				f, m := spec.Peak()
				c, sd := spec.Centroid()
				out.Sums = append(out.Sums, partialSumOutput{Terms: n, PeakFrequency: f, PeakMagnitude: m, Centroid: c, Spread: sd})
			}

			if plotsDir != "" {
				if err := a.writeFourierPlots(tbl, terms, components, last, plotsDir); err != nil {
					return err
				}
			}

			return writeOutput(cmd.OutOrStdout(), format, out, func(tw *tabwriter.Writer) error {
				err := writeRows(tw,
					[]any{"Samples", fmt.Sprint(out.Samples)},
					[]any{"Components", fmt.Sprint(out.Components)},
					[]any{"Sample rate [Hz]", fmt.Sprintf("%.6g", out.SampleRate)},
					[]any{"", ""},
					[]any{"Terms", "Peak [Hz]", "Magnitude", "Centroid [Hz]", "Spread [Hz]"},
				)
				if err != nil {
					return err
				}
				for _, s := range out.Sums {
					if err := writeRows(tw, []any{fmt.Sprint(s.Terms), fmt.Sprintf("%.6g", s.PeakFrequency), fmt.Sprintf("%.6g", s.PeakMagnitude), fmt.Sprintf("%.6g", s.Centroid), fmt.Sprintf("%.6g", s.Spread)}); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	c.Flags().IntSliceVar(&terms, "terms", []int{5, 10, 100}, "partial sum sizes")
	c.Flags().IntVar(&components, "components", 5, "number of components to plot")
	c.Flags().StringVar(&plotsDir, "plots", "", "write PNG figures into this directory")
	c.Flags().StringVar(&format, "format", formatTable, "output format: table|json|yaml")
	return c
}

func (a *app) writeFourierPlots(tbl *fourier.Table, terms []int, components int, spec *fourier.MagnitudeSpectrum, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create plots directory")
	}

	p, err := chart.FourierComponents(tbl, components)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, "components.png")
	if err := chart.Save(p, path); err != nil {
		return err
	}
	a.log.Info().Str("path", path).Msg("figure written")

	for _, n := range terms {
		p, err := chart.PartialSum(tbl, n)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, fmt.Sprintf("sum-%d.png", n))
		if err := chart.Save(p, path); err != nil {
			return err
		}
		a.log.Info().Str("path", path).Msg("figure written")
	}

	if spec == nil {
		return nil
	}
	p, err = chart.Spectrum(spec)
	if err != nil {
		return err
	}
	path = filepath.Join(dir, "spectrum.png")
	if err := chart.Save(p, path); err != nil {
		return err
	}
	a.log.Info().Str("path", path).Msg("figure written")
	return nil
}
