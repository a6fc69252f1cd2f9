package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-blackbody/radiation/planck"
	"github.com/cwbudde/algo-blackbody/radiation/sweep"
	"github.com/spf13/cobra"
)

type radianceRow struct {
	Frequency  float64 `json:"frequency_hz" yaml:"frequency_hz"`
	Wavelength float64 `json:"wavelength_nm" yaml:"wavelength_nm"`
	Radiance   float64 `json:"radiance_w_per_hz" yaml:"radiance_w_per_hz"`
}

func radianceCmd(a *app) *cobra.Command {
	var (
		freqs  []float64
		scale  float64
		temp   float64
		format string
	)

	c := &cobra.Command{
		Use:   "radiance",
		Short: "Evaluate spectral radiance at one or more frequencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(freqs) == 0 {
				return fmt.Errorf("at least one --freq is required")
			}

			values := planck.RadianceSlice(nil, freqs, scale, temp)
			a.log.Debug().Int("points", len(freqs)).Float64("temp", temp).Msg("radiance evaluated")
			wavelengths := sweep.Wavelengths(freqs)
			rows := make([]radianceRow, len(freqs))
			for i := range freqs {
				rows[i] = radianceRow{Frequency: freqs[i], Wavelength: wavelengths[i], Radiance: values[i]}
			}

			return writeOutput(cmd.OutOrStdout(), format, rows, func(tw *tabwriter.Writer) error {
				if err := writeRows(tw, []any{"Frequency [Hz]", "Wavelength [nm]", "Radiance [W/Hz]"}); err != nil {
					return err
				}
				for _, r := range rows {
					if err := writeRows(tw, []any{sci(r.Frequency), fmt.Sprintf("%.2f", r.Wavelength), sci(r.Radiance)}); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	c.Flags().Float64SliceVar(&freqs, "freq", nil, "frequency in Hz (repeat or comma-separate)")
	c.Flags().Float64Var(&scale, "scale", 1, "intensity scale: area times emissivity, m²")
	c.Flags().Float64Var(&temp, "temp", 0, "temperature in K")
	c.Flags().StringVar(&format, "format", formatTable, "output format: table|json|yaml")
	_ = c.MarkFlagRequired("temp")
	return c
}

type bodyFlags struct {
	radius     float64
	emissivity float64
	temp       float64
}

func (b *bodyFlags) register(c *cobra.Command) {
	c.Flags().Float64Var(&b.radius, "radius", 1, "radius of the sphere in m")
	c.Flags().Float64Var(&b.emissivity, "emissivity", 1, "emissivity in [0, 1]")
	c.Flags().Float64Var(&b.temp, "temp", 0, "temperature in K")
	_ = c.MarkFlagRequired("temp")
}

type powerOutput struct {
	Radius       float64 `json:"radius_m" yaml:"radius_m"`
	Emissivity   float64 `json:"emissivity" yaml:"emissivity"`
	Temperature  float64 `json:"temperature_k" yaml:"temperature_k"`
	Power        float64 `json:"power_w" yaml:"power_w"`
	AbsError     float64 `json:"abs_error_w" yaml:"abs_error_w"`
	Subintervals int     `json:"subintervals" yaml:"subintervals"`
	Converged    bool    `json:"converged" yaml:"converged"`
}

func powerCmd(a *app) *cobra.Command {
	var (
		body   bodyFlags
		format string
	)

	c := &cobra.Command{
		Use:   "power",
		Short: "Integrate the total power radiated by a sphere",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start := time.Now()
			est, err := planck.TotalPowerEstimate(body.radius, body.emissivity, body.temp, a.cfg.PlanckOptions()...)
			if err != nil {
				return err
			}
			if !est.Converged {
				a.log.Warn().Float64("abs_error", est.AbsError).Int("subintervals", est.Subintervals).
					Msg("quadrature stopped before reaching the tolerance")
			}
			a.log.Debug().Int("evaluations", est.Evaluations).Msg("quadrature diagnostics")
			a.timed(start, "power integrated")

			out := powerOutput{
				Radius:       body.radius,
				Emissivity:   body.emissivity,
				Temperature:  body.temp,
				Power:        est.Power,
				AbsError:     est.AbsError,
				Subintervals: est.Subintervals,
				Converged:    est.Converged,
			}
			return writeOutput(cmd.OutOrStdout(), format, out, func(tw *tabwriter.Writer) error {
				return writeRows(tw,
					[]any{"Power [W]", sci(out.Power)},
					[]any{"Abs error [W]", sci(out.AbsError)},
					[]any{"Subintervals", fmt.Sprint(out.Subintervals)},
					[]any{"Converged", fmt.Sprint(out.Converged)},
				)
			})
		},
	}

	body.register(c)
	c.Flags().StringVar(&format, "format", formatTable, "output format: table|json|yaml")
	return c
}

type peakOutput struct {
	Temperature float64 `json:"temperature_k" yaml:"temperature_k"`
	Frequency   float64 `json:"frequency_hz" yaml:"frequency_hz"`
	Wavelength  float64 `json:"wavelength_nm" yaml:"wavelength_nm"`
	Radiance    float64 `json:"radiance_w_per_hz" yaml:"radiance_w_per_hz"`
	Status      string  `json:"status" yaml:"status"`
	Iterations  int     `json:"iterations" yaml:"iterations"`
	Converged   bool    `json:"converged" yaml:"converged"`
}

func peakCmd(a *app) *cobra.Command {
	var (
		body   bodyFlags
		format string
	)

	c := &cobra.Command{
		Use:   "peak",
		Short: "Locate the frequency of peak emission",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start := time.Now()
			res, err := planck.PeakSearch(body.radius, body.emissivity, body.temp, a.cfg.PlanckOptions()...)
			if err != nil {
				return err
			}
			if !res.Converged {
				a.log.Warn().Str("status", res.Status).Int("iterations", res.Iterations).
					Msg("peak search stopped early; returning the best point found")
			}
			a.timed(start, "peak located")

			out := peakOutput{
				Temperature: body.temp,
				Frequency:   res.Frequency,
				Wavelength:  sweep.Wavelengths([]float64{res.Frequency})[0],
				Radiance:    res.Radiance,
				Status:      res.Status,
				Iterations:  res.Iterations,
				Converged:   res.Converged,
			}
			return writeOutput(cmd.OutOrStdout(), format, out, func(tw *tabwriter.Writer) error {
				return writeRows(tw,
					[]any{"Peak frequency [Hz]", sci(out.Frequency)},
					[]any{"Wavelength [nm]", fmt.Sprintf("%.2f", out.Wavelength)},
					[]any{"Radiance [W/Hz]", sci(out.Radiance)},
					[]any{"Status", out.Status},
					[]any{"Iterations", fmt.Sprint(out.Iterations)},
				)
			})
		},
	}

	body.register(c)
	c.Flags().StringVar(&format, "format", formatTable, "output format: table|json|yaml")
	return c
}

func sci(v float64) string {
	return fmt.Sprintf("%.6e", v)
}
