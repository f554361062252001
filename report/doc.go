// Package report writes the augmented titration dataset and end-point summary.
//
// The dataset is tab-separated with one header line and four columns: volume,
// pH, first derivative and second derivative. Values are written in their
// shortest exact form so ReadTable gives back the same numbers.
package report
