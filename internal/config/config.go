// Package config loads command line settings from defaults, an optional
// config file, BLACKBODY_* environment variables and flags, in increasing
// order of precedence.
package config

import (
	"strings"

	"github.com/cwbudde/algo-blackbody/radiation/planck"
	"github.com/cwbudde/algo-blackbody/radiation/sweep"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable.
const EnvPrefix = "BLACKBODY"

// Config holds all settings of the command line tool.
type Config struct {
	Planck PlanckConfig `mapstructure:"planck"`
	Sweep  SweepConfig  `mapstructure:"sweep"`
	Log    LogConfig    `mapstructure:"log"`
}

// PlanckConfig holds the integration band and solver budgets.
type PlanckConfig struct {
	BandMin         float64 `mapstructure:"band_min"`
	BandMax         float64 `mapstructure:"band_max"`
	Seed            float64 `mapstructure:"seed"`
	AbsTol          float64 `mapstructure:"abs_tol"`
	RelTol          float64 `mapstructure:"rel_tol"`
	MaxSubintervals int     `mapstructure:"max_subintervals"`
	MaxIterations   int     `mapstructure:"max_iterations"`
}

// SweepConfig holds the grids of the temperature sweep.
type SweepConfig struct {
	TempMin   float64 `mapstructure:"temp_min"`
	TempMax   float64 `mapstructure:"temp_max"`
	TempSteps int     `mapstructure:"temp_steps"`
	Scale     float64 `mapstructure:"scale"`
	FreqMin   float64 `mapstructure:"freq_min"`
	FreqMax   float64 `mapstructure:"freq_max"`
	Points    int     `mapstructure:"points"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// New returns a viper instance with every default registered and
// environment lookup enabled.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("planck.band_min", planck.DefaultBandMin)
	v.SetDefault("planck.band_max", planck.DefaultBandMax)
	v.SetDefault("planck.seed", planck.DefaultPeakSeed)
	v.SetDefault("planck.abs_tol", planck.DefaultTolerance)
	v.SetDefault("planck.rel_tol", planck.DefaultTolerance)
	v.SetDefault("planck.max_subintervals", planck.DefaultMaxSubintervals)
	v.SetDefault("planck.max_iterations", planck.DefaultMaxIterations)

	def := sweep.DefaultConfig()
	v.SetDefault("sweep.temp_min", def.TempMin)
	v.SetDefault("sweep.temp_max", def.TempMax)
	v.SetDefault("sweep.temp_steps", def.TempSteps)
	v.SetDefault("sweep.scale", def.Scale)
	v.SetDefault("sweep.freq_min", def.FreqMin)
	v.SetDefault("sweep.freq_max", def.FreqMax)
	v.SetDefault("sweep.points", def.Points)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// BindFlags binds config keys to flags by name. Flags missing from fs are
// skipped so commands can bind a shared table.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return errors.Wrapf(err, "config: bind --%s", name)
		}
	}
	return nil
}

// Load reads the optional config file at path and decodes v into a Config.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "config: read %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "config: decode")
	}
	return &cfg, nil
}

// PlanckOptions converts the planck settings into options. Values the
// planck package considers invalid are ignored there.
func (c *Config) PlanckOptions() []planck.Option {
	p := c.Planck
	return []planck.Option{
		planck.WithBand(p.BandMin, p.BandMax),
		planck.WithSeed(p.Seed),
		planck.WithTolerance(p.AbsTol, p.RelTol),
		planck.WithMaxSubintervals(p.MaxSubintervals),
		planck.WithMaxIterations(p.MaxIterations),
	}
}

// SweepConfig returns the sweep grids with the planck options attached.
func (c *Config) SweepConfig() sweep.Config {
	s := c.Sweep
	return sweep.Config{
		TempMin:   s.TempMin,
		TempMax:   s.TempMax,
		TempSteps: s.TempSteps,
		Scale:     s.Scale,
		FreqMin:   s.FreqMin,
		FreqMax:   s.FreqMax,
		Points:    s.Points,
		Planck:    c.PlanckOptions(),
	}
}
