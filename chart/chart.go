package chart

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/sartorproj/gotitration/analysis"
)

// Style holds the labels and size shared by all figures.
type Style struct {
	Analyte string    // Titrated substance (default: "Phosphoric Acid")
	Titrant string    // Titrant (default: "NaOH")
	Width   vg.Length // Figure width (default: 5in)
	Height  vg.Length // Figure height (default: 5in)
}

// DefaultStyle returns the default figure style.
func DefaultStyle() *Style {
	return &Style{
		Analyte: "Phosphoric Acid",
		Titrant: "NaOH",
		Width:   5 * vg.Inch,
		Height:  5 * vg.Inch,
	}
}

// Figure is a plot and the base file name it is saved under.
type Figure struct {
	Name string
	Plot *plot.Plot
}

var peakColor = color.RGBA{R: 200, A: 255}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Figures builds the pH, first-derivative and second-derivative figures.
// End points are annotated on the first two.
func Figures(res *analysis.Result, style *Style) ([]Figure, error) {
	if style == nil {
		style = DefaultStyle()
	}
	c := res.Curve
	title := fmt.Sprintf("Titration of %s with %s", style.Analyte, style.Titrant)
	xLabel := fmt.Sprintf("Volume of %s (ml)", style.Titrant)

	phPlot, err := newCurvePlot(title, xLabel, "pH", c.Volume, c.PH)
	if err != nil {
		return nil, err
	}
	phLabels := make([]string, len(res.Peaks))
	for i, p := range res.Peaks {
		phLabels[i] = fmt.Sprintf("End Point: pH %s \n Vol. of %s: %s",
			formatValue(p.PH), style.Titrant, formatValue(p.Volume))
	}
	if err := annotate(phPlot, c.Volume, c.PH, res.PeakIndices(), phLabels,
		vg.Point{X: vg.Points(40), Y: vg.Points(-30)}); err != nil {
		return nil, err
	}

	d1Plot, err := newCurvePlot("First Derivative of "+title, xLabel, "First derivative of pH", c.Volume, res.Deriv1)
	if err != nil {
		return nil, err
	}
	d1Labels := make([]string, len(res.Peaks))
	for i, p := range res.Peaks {
		d1Labels[i] = fmt.Sprintf("Peak : pH %s ", formatValue(p.PH))
	}
	if err := annotate(d1Plot, c.Volume, res.Deriv1, res.PeakIndices(), d1Labels,
		vg.Point{X: vg.Points(15), Y: vg.Points(5)}); err != nil {
		return nil, err
	}

	d2Plot, err := newCurvePlot("Second Derivative of "+title, xLabel, "Second derivative of pH", c.Volume, res.Deriv2)
	if err != nil {
		return nil, err
	}

	return []Figure{
		{Name: "ph", Plot: phPlot},
		{Name: "deriv1", Plot: d1Plot},
		{Name: "deriv2", Plot: d2Plot},
	}, nil
}

// newCurvePlot draws y against x as a line with circle markers.
func newCurvePlot(title, xLabel, yLabel string, x, y []float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	line, points, err := plotter.NewLinePoints(toXYs(x, y, nil))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", yLabel, err)
	}
	points.Shape = draw.CircleGlyph{}
	points.Radius = vg.Points(2.5)
	p.Add(line, points)

	return p, nil
}

// annotate marks the samples at idx and places a text label next to each.
func annotate(p *plot.Plot, x, y []float64, idx []int, labels []string, offset vg.Point) error {
	if len(idx) == 0 {
		return nil
	}
	xys := toXYs(x, y, idx)

	marks, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	marks.Shape = draw.RingGlyph{}
	marks.Radius = vg.Points(6)
	marks.Color = peakColor

	text, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return err
	}
	text.Offset = offset

	p.Add(marks, text)
	return nil
}

// toXYs pairs x and y, restricted to idx when it is non-nil.
func toXYs(x, y []float64, idx []int) plotter.XYs {
	if idx == nil {
		xys := make(plotter.XYs, len(y))
		for i := range y {
			xys[i].X = x[i]
			xys[i].Y = y[i]
		}
		return xys
	}
	xys := make(plotter.XYs, len(idx))
	for k, i := range idx {
		xys[k].X = x[i]
		xys[k].Y = y[i]
	}
	return xys
}

// SaveAll writes every figure to dir as <name>.<format> and returns the paths.
// format is any extension gonum/plot can encode, such as "png", "svg" or "pdf".
func SaveAll(dir, format string, figs []Figure, style *Style) ([]string, error) {
	if style == nil {
		style = DefaultStyle()
	}
	if format == "" {
		format = "png"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(figs))
	for _, f := range figs {
		path := filepath.Join(dir, f.Name+"."+format)
		if err := f.Plot.Save(style.Width, style.Height, path); err != nil {
			return paths, fmt.Errorf("saving %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Image rasterizes a figure at the given size.
func Image(p *plot.Plot, width, height vg.Length) image.Image {
	c := vgimg.New(width, height)
	p.Draw(draw.New(c))
	return c.Image()
}

// Page is a rasterized figure ready for display.
type Page struct {
	Title string
	Image image.Image
}

// Pages rasterizes every figure in order.
func Pages(figs []Figure, style *Style) []Page {
	if style == nil {
		style = DefaultStyle()
	}
	pages := make([]Page, len(figs))
	for i, f := range figs {
		pages[i] = Page{
			Title: f.Plot.Title.Text,
			Image: Image(f.Plot, style.Width, style.Height),
		}
	}
	return pages
}
