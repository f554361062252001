package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/sartorproj/gotitration/analysis"
	"github.com/sartorproj/gotitration/peaks"
)

// Config holds every setting of a titrate run.
type Config struct {
	Input     string `yaml:"input"`      // Delimited input file (default: ph_data.txt)
	Output    string `yaml:"output"`     // Augmented table (default: titration_data.txt)
	Delimiter string `yaml:"delimiter"`  // Input field delimiter (default: tab)
	PeakCount int    `yaml:"peak_count"` // End points to report (default: 3)
	Edges     string `yaml:"edges"`      // "open" or "closed" (default: open)
	Spacing   string `yaml:"spacing"`    // "unit" or "volume" (default: unit)
	Titrant   string `yaml:"titrant"`    // default: NaOH
	Analyte   string `yaml:"analyte"`    // default: Phosphoric Acid
	Summary   string `yaml:"summary"`    // JSON end-point summary, empty to skip
	Plots     Plots  `yaml:"plots"`
}

// Plots holds figure output settings.
type Plots struct {
	Enabled  bool    `yaml:"enabled"`   // Render figures (default: true)
	Show     bool    `yaml:"show"`      // Display each figure in a window (default: false)
	Dir      string  `yaml:"dir"`       // Output directory (default: ".")
	Format   string  `yaml:"format"`    // File extension (default: png)
	WidthIn  float64 `yaml:"width_in"`  // default: 5
	HeightIn float64 `yaml:"height_in"` // default: 5
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Input:     "ph_data.txt",
		Output:    "titration_data.txt",
		Delimiter: "\t",
		PeakCount: peaks.DefaultCount,
		Edges:     peaks.EdgeOpen.String(),
		Spacing:   string(analysis.SpacingUnit),
		Titrant:   "NaOH",
		Analyte:   "Phosphoric Acid",
		Plots: Plots{
			Enabled:  true,
			Dir:      ".",
			Format:   "png",
			WidthIn:  5,
			HeightIn: 5,
		},
	}
}

// Load reads filename and overlays it on Default.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML data over Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validFormats = []string{"png", "svg", "pdf", "eps", "jpg", "jpeg", "tif", "tiff"}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Input == "" {
		return errors.New("input file must be set")
	}
	if c.Output == "" {
		return errors.New("output file must be set")
	}
	if len([]rune(c.Delimiter)) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	if c.PeakCount < 1 {
		return fmt.Errorf("peak_count must be positive, got %d", c.PeakCount)
	}
	if _, err := peaks.ParseEdgePolicy(c.Edges); err != nil {
		return err
	}
	switch analysis.Spacing(c.Spacing) {
	case analysis.SpacingUnit, analysis.SpacingVolume:
	default:
		return fmt.Errorf("unknown spacing %q (want \"unit\" or \"volume\")", c.Spacing)
	}
	if c.Plots.Enabled {
		if !slices.Contains(validFormats, strings.ToLower(c.Plots.Format)) {
			return fmt.Errorf("unsupported plot format %q", c.Plots.Format)
		}
		if c.Plots.WidthIn <= 0 || c.Plots.HeightIn <= 0 {
			return errors.New("plot size must be positive")
		}
	}
	return nil
}

// DelimiterRune returns the input delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r := []rune(c.Delimiter)
	if len(r) == 0 {
		return '\t'
	}
	return r[0]
}

// AnalysisOptions converts the configuration to analysis options.
func (c *Config) AnalysisOptions() (*analysis.Options, error) {
	edges, err := peaks.ParseEdgePolicy(c.Edges)
	if err != nil {
		return nil, err
	}
	return &analysis.Options{
		PeakCount: c.PeakCount,
		Edges:     edges,
		Spacing:   analysis.Spacing(c.Spacing),
	}, nil
}
