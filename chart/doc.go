// Package chart renders a titration analysis as three figures: the pH curve,
// its first derivative and its second derivative.
package chart
