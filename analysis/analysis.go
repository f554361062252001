package analysis

import (
	"fmt"

	"github.com/sartorproj/gotitration/curve"
	"github.com/sartorproj/gotitration/deriv"
	"github.com/sartorproj/gotitration/peaks"
)

// Spacing selects the abscissa used for differentiation.
type Spacing string

const (
	// SpacingUnit differentiates with respect to the sample index.
	SpacingUnit Spacing = "unit"
	// SpacingVolume differentiates with respect to titrant volume.
	SpacingVolume Spacing = "volume"
)

// Options holds configuration for Analyze.
type Options struct {
	PeakCount int              // Number of end points to report (default: 3)
	Edges     peaks.EdgePolicy // Whether boundary samples may be end points
	Spacing   Spacing          // Differentiation abscissa (default: unit)
}

// DefaultOptions returns the default analysis options.
func DefaultOptions() *Options {
	return &Options{
		PeakCount: peaks.DefaultCount,
		Edges:     peaks.EdgeOpen,
		Spacing:   SpacingUnit,
	}
}

// Result is the outcome of analysing one curve.
type Result struct {
	Curve  *curve.Curve
	Deriv1 []float64 // First derivative of pH
	Deriv2 []float64 // Second derivative of pH
	Peaks  []peaks.Peak
}

// Analyze computes both derivatives of the pH readings and ranks the
// local maxima of the first derivative.
func Analyze(c *curve.Curve, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var d1, d2 []float64
	switch opts.Spacing {
	case "", SpacingUnit:
		d := deriv.GradientN(c.PH, 2)
		d1, d2 = d[0], d[1]
	case SpacingVolume:
		var err error
		if d1, err = deriv.GradientWith(c.Volume, c.PH); err != nil {
			return nil, fmt.Errorf("first derivative: %w", err)
		}
		if d2, err = deriv.GradientWith(c.Volume, d1); err != nil {
			return nil, fmt.Errorf("second derivative: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown spacing %q", opts.Spacing)
	}

	detector := &peaks.Detector{Count: opts.PeakCount, Edges: opts.Edges}

	return &Result{
		Curve:  c,
		Deriv1: d1,
		Deriv2: d2,
		Peaks:  detector.Locate(c, d1),
	}, nil
}

// PeakIndices returns the curve indices of the detected end points in rank order.
func (r *Result) PeakIndices() []int {
	idx := make([]int, len(r.Peaks))
	for i, p := range r.Peaks {
		idx[i] = p.Index
	}
	return idx
}
