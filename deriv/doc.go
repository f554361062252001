// Package deriv computes numerical derivatives of sampled curves.
//
// Gradient assumes unit spacing between samples and uses central differences
// inside the series and one-sided differences at both ends:
//
//	d1 := deriv.Gradient(ph)
//	d2 := deriv.Gradient(d1)
//
// GradientWith differentiates against explicit coordinates, which need not be
// evenly spaced:
//
//	d1, err := deriv.GradientWith(volume, ph)
package deriv
