package peaks

import (
	"fmt"
	"sort"

	"github.com/sartorproj/gotitration/curve"
)

// DefaultCount is the number of peaks kept when Detector.Count is not set.
const DefaultCount = 3

// EdgePolicy decides whether the first and last samples may be peaks.
type EdgePolicy int

const (
	// EdgeOpen treats the missing neighbour of a boundary sample as lower,
	// so a boundary is a candidate when it exceeds its single neighbour.
	EdgeOpen EdgePolicy = iota
	// EdgeClosed never reports a boundary sample.
	EdgeClosed
)

// String returns the configuration name of the policy.
func (e EdgePolicy) String() string {
	switch e {
	case EdgeOpen:
		return "open"
	case EdgeClosed:
		return "closed"
	default:
		return fmt.Sprintf("EdgePolicy(%d)", int(e))
	}
}

// ParseEdgePolicy parses "open" or "closed". The empty string is EdgeOpen.
func ParseEdgePolicy(s string) (EdgePolicy, error) {
	switch s {
	case "", "open":
		return EdgeOpen, nil
	case "closed":
		return EdgeClosed, nil
	default:
		return EdgeOpen, fmt.Errorf("unknown edge policy %q (want \"open\" or \"closed\")", s)
	}
}

// Peak is a detected end point.
type Peak struct {
	Index  int     // Index into the curve
	Volume float64 // Titrant volume at the peak
	PH     float64 // pH at the peak
	Slope  float64 // First derivative of pH at the peak
}

// Detector selects and ranks local maxima of a derivative series.
type Detector struct {
	Count int        // Peaks to keep (default: 3)
	Edges EdgePolicy // Boundary handling (default: EdgeOpen)
}

// NewDetector creates a detector with default settings.
func NewDetector() *Detector {
	return &Detector{Count: DefaultCount, Edges: EdgeOpen}
}

func (d *Detector) count() int {
	if d.Count <= 0 {
		return DefaultCount
	}
	return d.Count
}

// IsLocalMax reports whether d[i] is strictly greater than each of its
// neighbours. Missing neighbours at the boundaries are handled by edges.
func IsLocalMax(d []float64, i int, edges EdgePolicy) bool {
	n := len(d)
	if i < 0 || i >= n {
		return false
	}
	if edges == EdgeClosed && (i == 0 || i == n-1) {
		return false
	}
	left := i == 0 || d[i] > d[i-1]
	right := i == n-1 || d[i] > d[i+1]
	return left && right
}

// Candidates returns every index of d that is a local maximum, in index order.
func (d *Detector) Candidates(deriv []float64) []int {
	var out []int
	for i := range deriv {
		if IsLocalMax(deriv, i, d.Edges) {
			out = append(out, i)
		}
	}
	return out
}

// Find returns up to Count local maxima of deriv, largest value first.
// Equal values keep index order.
func (d *Detector) Find(deriv []float64) []int {
	idx := d.Candidates(deriv)
	sort.SliceStable(idx, func(a, b int) bool {
		return deriv[idx[a]] > deriv[idx[b]]
	})
	if k := d.count(); len(idx) > k {
		idx = idx[:k]
	}
	return idx
}

// Locate runs Find over the first derivative d1 of c and returns the peaks
// with their coordinates on the curve.
func (d *Detector) Locate(c *curve.Curve, d1 []float64) []Peak {
	idx := d.Find(d1)
	out := make([]Peak, len(idx))
	for k, i := range idx {
		out[k] = Peak{
			Index:  i,
			Volume: c.Volume[i],
			PH:     c.PH[i],
			Slope:  d1[i],
		}
	}
	return out
}
