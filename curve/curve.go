package curve

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MinSamples is the smallest curve the analysis accepts.
const MinSamples = 3

var (
	// ErrLengthMismatch is returned when the volume and pH columns differ in length.
	ErrLengthMismatch = errors.New("volume and pH must have the same length")
	// ErrNoData is returned when an input contains no samples.
	ErrNoData = errors.New("no valid data found")
	// ErrTooShort is returned when a curve has fewer than MinSamples samples.
	ErrTooShort = errors.New("titration curve needs at least 3 samples")
)

// Curve is a titration curve: pH measured after each addition of titrant.
// Volume and PH are index-aligned.
type Curve struct {
	Volume []float64
	PH     []float64
	Name   string
}

// New creates a curve from index-aligned volume and pH readings.
func New(volume, ph []float64) (*Curve, error) {
	if len(volume) != len(ph) {
		return nil, ErrLengthMismatch
	}
	return &Curve{
		Volume: volume,
		PH:     ph,
	}, nil
}

// Len returns the number of samples.
func (c *Curve) Len() int {
	return len(c.PH)
}

// Validate checks the invariants the analysis relies on.
func (c *Curve) Validate() error {
	if len(c.Volume) != len(c.PH) {
		return ErrLengthMismatch
	}
	if len(c.PH) < MinSamples {
		return ErrTooShort
	}
	return nil
}

// VolumeRange returns the smallest and largest titrant volume.
func (c *Curve) VolumeRange() (lo, hi float64) {
	if len(c.Volume) == 0 {
		return math.NaN(), math.NaN()
	}
	return floats.Min(c.Volume), floats.Max(c.Volume)
}

// PHRange returns the smallest and largest pH reading.
func (c *Curve) PHRange() (lo, hi float64) {
	if len(c.PH) == 0 {
		return math.NaN(), math.NaN()
	}
	return floats.Min(c.PH), floats.Max(c.PH)
}

// MeanPH returns the arithmetic mean of the pH readings.
func (c *Curve) MeanPH() float64 {
	if len(c.PH) == 0 {
		return math.NaN()
	}
	return stat.Mean(c.PH, nil)
}

// Slice returns the samples from start to end (exclusive).
func (c *Curve) Slice(start, end int) *Curve {
	if start < 0 {
		start = 0
	}
	if end > len(c.PH) {
		end = len(c.PH)
	}
	if start >= end {
		return &Curve{Volume: []float64{}, PH: []float64{}, Name: c.Name}
	}

	volume := make([]float64, end-start)
	copy(volume, c.Volume[start:end])
	ph := make([]float64, end-start)
	copy(ph, c.PH[start:end])

	return &Curve{
		Volume: volume,
		PH:     ph,
		Name:   c.Name,
	}
}

// Copy creates a deep copy of the curve.
func (c *Curve) Copy() *Curve {
	return c.Slice(0, len(c.PH))
}
