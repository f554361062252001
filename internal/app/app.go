// Package app runs one titration analysis from input file to output table.
package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/sartorproj/gotitration/analysis"
	"github.com/sartorproj/gotitration/chart"
	"github.com/sartorproj/gotitration/config"
	"github.com/sartorproj/gotitration/curve"
	"github.com/sartorproj/gotitration/report"
)

// Renderer presents an analysis result, typically as figures.
type Renderer interface {
	Render(ctx context.Context, res *analysis.Result) error
}

// DisplayFunc shows rendered figures in order and returns once the last one
// is dismissed or ctx is cancelled.
type DisplayFunc func(ctx context.Context, pages []chart.Page) error

// App wires loading, analysis, rendering and persistence together.
type App struct {
	cfg      *config.Config
	logger   *zap.SugaredLogger
	renderer Renderer
}

// New creates an App. Figures are rendered according to cfg.Plots and passed
// to display when cfg.Plots.Show is set.
func New(cfg *config.Config, logger *zap.SugaredLogger, display DisplayFunc) *App {
	a := &App{
		cfg:    cfg,
		logger: logger,
	}
	if cfg.Plots.Enabled {
		a.renderer = &ChartRenderer{cfg: cfg, logger: logger, display: display}
	}
	return a
}

// WithRenderer replaces the renderer; nil disables rendering.
func (a *App) WithRenderer(r Renderer) *App {
	a.renderer = r
	return a
}

// Run loads the input, analyzes it, renders it and writes the output files.
// Nothing is written if loading or analysis fails.
func (a *App) Run(ctx context.Context) (*analysis.Result, error) {
	opts := curve.DefaultTSVOptions()
	opts.Delimiter = a.cfg.DelimiterRune()

	c, err := curve.LoadTSV(a.cfg.Input, opts)
	if err != nil {
		return nil, fmt.Errorf("error loading titration data: %w", err)
	}
	lo, hi := c.VolumeRange()
	a.logger.Infow("loaded titration curve",
		"file", a.cfg.Input,
		"samples", c.Len(),
		"volume_min", lo,
		"volume_max", hi,
		"mean_ph", c.MeanPH(),
	)

	analysisOpts, err := a.cfg.AnalysisOptions()
	if err != nil {
		return nil, err
	}
	res, err := analysis.Analyze(c, analysisOpts)
	if err != nil {
		return nil, fmt.Errorf("error analyzing %s: %w", a.cfg.Input, err)
	}
	for i, p := range res.Peaks {
		a.logger.Infow("end point",
			"rank", i+1,
			"index", p.Index,
			"volume", p.Volume,
			"ph", p.PH,
			"slope", p.Slope,
		)
	}
	if len(res.Peaks) == 0 {
		a.logger.Warnw("no end point found", "file", a.cfg.Input)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if a.renderer != nil {
		if err := a.renderer.Render(ctx, res); err != nil {
			return nil, fmt.Errorf("error rendering figures: %w", err)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := report.SaveTable(a.cfg.Output, res, a.cfg.Titrant); err != nil {
		return nil, fmt.Errorf("error writing %s: %w", a.cfg.Output, err)
	}
	a.logger.Infow("wrote titration table", "file", a.cfg.Output, "rows", c.Len())

	if a.cfg.Summary != "" {
		if err := report.SaveSummary(a.cfg.Summary, res, a.cfg.Titrant); err != nil {
			return nil, fmt.Errorf("error writing %s: %w", a.cfg.Summary, err)
		}
		a.logger.Infow("wrote end-point summary", "file", a.cfg.Summary)
	}

	return res, nil
}

// ChartRenderer saves the three titration figures and optionally displays them.
type ChartRenderer struct {
	cfg     *config.Config
	logger  *zap.SugaredLogger
	display DisplayFunc
}

// Render implements Renderer.
func (r *ChartRenderer) Render(ctx context.Context, res *analysis.Result) error {
	style := &chart.Style{
		Analyte: r.cfg.Analyte,
		Titrant: r.cfg.Titrant,
		Width:   vg.Length(r.cfg.Plots.WidthIn) * vg.Inch,
		Height:  vg.Length(r.cfg.Plots.HeightIn) * vg.Inch,
	}

	figs, err := chart.Figures(res, style)
	if err != nil {
		return err
	}

	paths, err := chart.SaveAll(r.cfg.Plots.Dir, strings.ToLower(r.cfg.Plots.Format), figs, style)
	if err != nil {
		return err
	}
	r.logger.Infow("saved figures", "files", paths)

	if !r.cfg.Plots.Show || r.display == nil {
		return nil
	}
	r.logger.Debugw("displaying figures", "count", len(figs))
	if err := r.display(ctx, chart.Pages(figs, style)); err != nil {
		return fmt.Errorf("displaying figures: %w", err)
	}
	return nil
}
