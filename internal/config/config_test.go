package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-blackbody/radiation/planck"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.InDelta(t, planck.DefaultBandMin, cfg.Planck.BandMin, 0)
	assert.InDelta(t, planck.DefaultBandMax, cfg.Planck.BandMax, 0)
	assert.InDelta(t, planck.DefaultPeakSeed, cfg.Planck.Seed, 0)
	assert.Equal(t, planck.DefaultMaxIterations, cfg.Planck.MaxIterations)
	assert.Equal(t, 8, cfg.Sweep.TempSteps)
	assert.Equal(t, 501, cfg.Sweep.Points)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blackbody.yaml")
	content := []byte("planck:\n  seed: 2.0e14\nsweep:\n  temp_steps: 3\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.InDelta(t, 2e14, cfg.Planck.Seed, 0)
	assert.Equal(t, 3, cfg.Sweep.TempSteps)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.InDelta(t, planck.DefaultBandMax, cfg.Planck.BandMax, 0)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blackbody.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sweep:\n  points: 101\n"), 0o600))
	t.Setenv("BLACKBODY_SWEEP_POINTS", "33")
	t.Setenv("BLACKBODY_LOG_FORMAT", "json")

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, 33, cfg.Sweep.Points)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestBindFlagsOverrideEnv(t *testing.T) {
	t.Setenv("BLACKBODY_LOG_LEVEL", "warn")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("log-level", "info", "")
	require.NoError(t, fs.Parse([]string{"--log-level", "error"}))

	v := New()
	require.NoError(t, BindFlags(v, fs, map[string]string{
		"log.level":   "log-level",
		"planck.seed": "seed",
	}))

	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.InDelta(t, planck.DefaultPeakSeed, cfg.Planck.Seed, 0)
}

func TestSweepConfigCarriesPlanckOptions(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	sc := cfg.SweepConfig()
	require.NoError(t, sc.Validate())
	assert.Len(t, sc.Planck, 5)

	cfg.Planck.BandMin, cfg.Planck.BandMax = 4e14, 7.5e14
	narrow, err := planck.TotalPower(1, 1, 5800, cfg.PlanckOptions()...)
	require.NoError(t, err)
	full, err := planck.TotalPower(1, 1, 5800)
	require.NoError(t, err)
	assert.Less(t, narrow, full)
}
