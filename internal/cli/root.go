// Package cli implements the blackbody command line tool.
package cli

import (
	"io"
	"os"
	"time"

	"github.com/cwbudde/algo-blackbody/internal/buildinfo"
	"github.com/cwbudde/algo-blackbody/internal/config"
	"github.com/cwbudde/algo-blackbody/internal/logging"
	"github.com/cwbudde/algo-blackbody/radiation/planck"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// globalKeys maps config keys to persistent root flags.
var globalKeys = map[string]string{
	"planck.band_min":         "band-min",
	"planck.band_max":         "band-max",
	"planck.seed":             "seed",
	"planck.abs_tol":          "abs-tol",
	"planck.rel_tol":          "rel-tol",
	"planck.max_subintervals": "max-subintervals",
	"planck.max_iterations":   "max-iterations",
	"log.level":               "log-level",
	"log.format":              "log-format",
	"log.file":                "log-file",
}

// commandKeys maps config keys to local flags of individual commands.
var commandKeys = map[string]map[string]string{
	"sweep": {
		"sweep.temp_min":   "temp-min",
		"sweep.temp_max":   "temp-max",
		"sweep.temp_steps": "temp-steps",
		"sweep.scale":      "scale",
		"sweep.freq_min":   "freq-min",
		"sweep.freq_max":   "freq-max",
		"sweep.points":     "points",
	},
}

// app is the state shared by all commands of one invocation.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        *config.Config
	log        zerolog.Logger
	closeLog   func() error
}

// Execute runs the tool with the process arguments and exits non-zero on
// failure.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	a := &app{log: zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true})}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		a.log.Error().Err(err).Msg("command failed")
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "blackbody",
		Short:         "Blackbody radiation: radiance, total power and peak emission",
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.closeLog != nil {
				return a.closeLog()
			}
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (yaml, toml or json)")
	pf.String("log-level", "info", "log level: trace|debug|info|warn|error")
	pf.String("log-format", logging.FormatConsole, "log format: console|json")
	pf.String("log-file", "", "also write JSON logs to this rotated file")
	pf.Float64("band-min", planck.DefaultBandMin, "lower integration bound in Hz")
	pf.Float64("band-max", planck.DefaultBandMax, "upper integration bound in Hz")
	pf.Float64("seed", planck.DefaultPeakSeed, "starting frequency of the peak search in Hz")
	pf.Float64("abs-tol", planck.DefaultTolerance, "absolute quadrature tolerance")
	pf.Float64("rel-tol", planck.DefaultTolerance, "relative quadrature tolerance")
	pf.Int("max-subintervals", planck.DefaultMaxSubintervals, "quadrature panel budget")
	pf.Int("max-iterations", planck.DefaultMaxIterations, "peak search iteration budget")

	cmd.AddCommand(
		radianceCmd(a),
		powerCmd(a),
		peakCmd(a),
		sweepCmd(a),
		fourierCmd(a),
		wordsCmd(a),
		versionCmd(),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.v == nil {
		a.v = config.New()
	}
	if err := config.BindFlags(a.v, cmd.Flags(), globalKeys); err != nil {
		return err
	}
	if keys, ok := commandKeys[cmd.Name()]; ok {
		if err := config.BindFlags(a.v, cmd.Flags(), keys); err != nil {
			return err
		}
	}

	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, closeLog, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
		Out:    cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.log = logger.With().Str("cmd", cmd.Name()).Logger()
	a.closeLog = closeLog

	a.log.Debug().
		Str("config", a.configFile).
		Float64("band_min", cfg.Planck.BandMin).
		Float64("band_max", cfg.Planck.BandMax).
		Float64("seed", cfg.Planck.Seed).
		Msg("configuration loaded")
	return nil
}

// timed logs the duration of a finished step.
func (a *app) timed(start time.Time, msg string) {
	a.log.Info().Dur("elapsed", time.Since(start)).Msg(msg)
}
