package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gotitration/config"
)

func parseFlags(t *testing.T, args ...string) (*flag.FlagSet, *cliFlags) {
	t.Helper()
	fs := flag.NewFlagSet("titrate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := defineFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs, f
}

func TestApplyFlagsOverridesConfig(t *testing.T) {
	fs, f := parseFlags(t,
		"-config", "titrate.yaml",
		"-input", "run1.txt",
		"-output", "run1_out.txt",
		"-peaks", "2",
		"-plot-dir", "figs",
		"-plot-format", "svg",
		"-show",
		"-summary", "run1.json",
		"-debug",
	)

	cfg := config.Default()
	applyFlags(cfg, fs)

	assert.Equal(t, "run1.txt", cfg.Input)
	assert.Equal(t, "run1_out.txt", cfg.Output)
	assert.Equal(t, 2, cfg.PeakCount)
	assert.Equal(t, "figs", cfg.Plots.Dir)
	assert.Equal(t, "svg", cfg.Plots.Format)
	assert.True(t, cfg.Plots.Show)
	assert.True(t, cfg.Plots.Enabled)
	assert.Equal(t, "run1.json", cfg.Summary)

	assert.Equal(t, "titrate.yaml", *f.config)
	assert.True(t, *f.debug)
	assert.False(t, *f.version)
}

func TestApplyFlagsKeepsUnsetValues(t *testing.T) {
	cfg, err := config.Parse([]byte("output: from_yaml.txt\npeak_count: 4\nplots:\n  show: true\n"))
	require.NoError(t, err)

	fs, _ := parseFlags(t, "-input", "cli.txt")
	applyFlags(cfg, fs)

	assert.Equal(t, "cli.txt", cfg.Input)
	assert.Equal(t, "from_yaml.txt", cfg.Output)
	assert.Equal(t, 4, cfg.PeakCount)
	assert.True(t, cfg.Plots.Show, "unset -show must not clear the yaml value")
}

func TestApplyFlagsNoPlots(t *testing.T) {
	fs, _ := parseFlags(t, "-no-plots")

	cfg := config.Default()
	applyFlags(cfg, fs)
	assert.False(t, cfg.Plots.Enabled)

	fs, _ = parseFlags(t, "-no-plots=false")
	applyFlags(cfg, fs)
	assert.True(t, cfg.Plots.Enabled)
}

func TestApplyFlagsInvalidPeakCount(t *testing.T) {
	fs, _ := parseFlags(t, "-peaks", "0")

	cfg := config.Default()
	applyFlags(cfg, fs)
	assert.Error(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	path := filepath.Join(t.TempDir(), "titrate.yaml")
	require.NoError(t, os.WriteFile(path, []byte("titrant: KOH\n"), 0644))
	cfg, err = loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "KOH", cfg.Titrant)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
