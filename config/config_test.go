package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gotitration/analysis"
	"github.com/sartorproj/gotitration/peaks"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "ph_data.txt", cfg.Input)
	assert.Equal(t, "titration_data.txt", cfg.Output)
	assert.Equal(t, '\t', cfg.DelimiterRune())
	assert.Equal(t, 3, cfg.PeakCount)
	assert.True(t, cfg.Plots.Enabled)
	assert.False(t, cfg.Plots.Show)
	assert.Equal(t, 5.0, cfg.Plots.WidthIn)

	opts, err := cfg.AnalysisOptions()
	require.NoError(t, err)
	assert.Equal(t, &analysis.Options{PeakCount: 3, Edges: peaks.EdgeOpen, Spacing: analysis.SpacingUnit}, opts)
}

func TestParseOverlaysDefaults(t *testing.T) {
	data := []byte(`
input: runs/h3po4.txt
peak_count: 2
edges: closed
titrant: KOH
plots:
  format: svg
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "runs/h3po4.txt", cfg.Input)
	assert.Equal(t, "titration_data.txt", cfg.Output)
	assert.Equal(t, 2, cfg.PeakCount)
	assert.Equal(t, "KOH", cfg.Titrant)
	assert.Equal(t, "svg", cfg.Plots.Format)
	assert.True(t, cfg.Plots.Enabled, "unset nested keys keep their defaults")
	assert.Equal(t, ".", cfg.Plots.Dir)

	opts, err := cfg.AnalysisOptions()
	require.NoError(t, err)
	assert.Equal(t, peaks.EdgeClosed, opts.Edges)
}

func TestParseDelimiter(t *testing.T) {
	cfg, err := Parse([]byte(`delimiter: ","`))
	require.NoError(t, err)
	assert.Equal(t, ',', cfg.DelimiterRune())

	cfg, err = Parse([]byte(`delimiter: "\t"`))
	require.NoError(t, err)
	assert.Equal(t, '\t', cfg.DelimiterRune())
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"unknown key":  "peaks: 3",
		"bad yaml":     "input: [",
		"zero peaks":   "peak_count: 0",
		"edge policy":  "edges: wrapped",
		"spacing":      "spacing: log",
		"delimiter":    "delimiter: ab",
		"plot format":  "plots:\n  format: bmp",
		"plot size":    "plots:\n  width_in: 0",
		"empty output": "output: \"\"",
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestPlotSettingsIgnoredWhenDisabled(t *testing.T) {
	_, err := Parse([]byte("plots:\n  enabled: false\n  format: bmp"))
	assert.NoError(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "titrate.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: out.tsv\nsummary: out.json\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "out.tsv", cfg.Output)
	assert.Equal(t, "out.json", cfg.Summary)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExampleFileMatchesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "titrate.example.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
