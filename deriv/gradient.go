package deriv

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

// ErrZeroSpacing is returned when two consecutive coordinates are equal.
var ErrZeroSpacing = errors.New("consecutive coordinates must differ")

// Gradient returns the derivative of y assuming unit spacing between samples.
//
// Interior points use central differences, (y[i+1]-y[i-1])/2, and the two
// boundaries use one-sided differences. The result has the same length as y.
// A single sample has zero slope.
func Gradient(y []float64) []float64 {
	n := len(y)
	out := make([]float64, n)
	if n < 2 {
		return out
	}

	if n > 2 {
		floats.SubTo(out[1:n-1], y[2:], y[:n-2])
		floats.Scale(0.5, out[1:n-1])
	}
	out[0] = y[1] - y[0]
	out[n-1] = y[n-1] - y[n-2]

	return out
}

// GradientN applies Gradient order times and returns every intermediate
// derivative, first derivative first.
func GradientN(y []float64, order int) [][]float64 {
	if order <= 0 {
		return nil
	}

	out := make([][]float64, order)
	current := y
	for k := 0; k < order; k++ {
		current = Gradient(current)
		out[k] = current
	}
	return out
}

// GradientWith returns the derivative of y with respect to the coordinates x,
// which need not be uniformly spaced.
//
// Interior points use the second-order accurate three-point formula for
// uneven spacing; boundaries use one-sided first differences.
func GradientWith(x, y []float64) ([]float64, error) {
	n := len(y)
	if len(x) != n {
		return nil, errors.New("x and y must have the same length")
	}
	if n < 2 {
		return nil, errors.New("at least 2 samples are required")
	}

	h := make([]float64, n-1)
	floats.SubTo(h, x[1:], x[:n-1])
	for _, v := range h {
		if v == 0 {
			return nil, ErrZeroSpacing
		}
	}

	out := make([]float64, n)
	for i := 1; i < n-1; i++ {
		hl, hr := h[i-1], h[i]
		out[i] = (hl*hl*y[i+1] - hr*hr*y[i-1] + (hr*hr-hl*hl)*y[i]) / (hl * hr * (hl + hr))
	}
	out[0] = (y[1] - y[0]) / h[0]
	out[n-1] = (y[n-1] - y[n-2]) / h[n-2]

	return out, nil
}
