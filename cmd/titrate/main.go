// Command titrate locates the end points of a titration curve, renders the
// curve with its derivatives and writes the augmented dataset.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"

	"github.com/sartorproj/gotitration/chart/viewer"
	"github.com/sartorproj/gotitration/config"
	"github.com/sartorproj/gotitration/internal/app"
	"github.com/sartorproj/gotitration/internal/log"
)

const version = "1.0-" + runtime.GOOS + "/" + runtime.GOARCH

// cliFlags holds the flags that are not configuration overrides.
type cliFlags struct {
	config  *string
	debug   *bool
	version *bool
}

// defineFlags registers every titrate flag on fs.
func defineFlags(fs *flag.FlagSet) *cliFlags {
	f := &cliFlags{
		config:  fs.String("config", "", "Path to YAML configuration (optional)"),
		debug:   fs.Bool("debug", false, "Turn on debugging output"),
		version: fs.Bool("version", false, "Show version and exit"),
	}
	fs.String("input", "", "Tab-delimited input file: volume and pH columns (default ph_data.txt)")
	fs.String("output", "", "Output table (default titration_data.txt)")
	fs.Int("peaks", 0, "Number of end points to report (default 3)")
	fs.String("plot-dir", "", "Directory for figure files (default .)")
	fs.String("plot-format", "", "Figure format: png, svg, pdf, ... (default png)")
	fs.Bool("no-plots", false, "Skip figure rendering")
	fs.Bool("show", false, "Display the figures in a window; Ctrl-C closes it and aborts without writing output")
	fs.String("summary", "", "Write a JSON end-point summary to this file")
	return f
}

// applyFlags copies the flags set on the command line over cfg. Flags left
// unset keep the value from the configuration file.
func applyFlags(cfg *config.Config, fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		v := f.Value.(flag.Getter).Get()
		switch f.Name {
		case "input":
			cfg.Input = v.(string)
		case "output":
			cfg.Output = v.(string)
		case "peaks":
			cfg.PeakCount = v.(int)
		case "plot-dir":
			cfg.Plots.Dir = v.(string)
		case "plot-format":
			cfg.Plots.Format = v.(string)
		case "no-plots":
			cfg.Plots.Enabled = !v.(bool)
		case "show":
			cfg.Plots.Show = v.(bool)
		case "summary":
			cfg.Summary = v.(string)
		}
	})
}

func main() {
	flags := defineFlags(flag.CommandLine)
	flag.Parse()

	if *flags.version {
		fmt.Printf("titrate %s\n", version)
		os.Exit(0)
	}

	if err := log.Init(*flags.debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := loadConfig(*flags.config)
	if err != nil {
		log.Errorf("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	applyFlags(cfg, flag.CommandLine)
	if err := cfg.Validate(); err != nil {
		log.Errorf("Invalid configuration: %v", err)
		os.Exit(1)
	}

	// SIGINT also closes an open figure window.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	application := app.New(cfg, log.GetSugaredLogger(), viewer.Show)
	if _, err := application.Run(ctx); err != nil {
		log.Errorf("Titration analysis failed: %v", err)
		stop()
		log.Sync()
		os.Exit(1)
	}
}

func loadConfig(cfgFile string) (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}

	filename, _ := filepath.Abs(cfgFile)
	cfg, err := config.Load(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", filename, err)
	}
	return cfg, nil
}
