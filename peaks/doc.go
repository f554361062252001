// Package peaks locates the equivalence points of a titration curve as the
// strongest local maxima of its first derivative.
//
// # Local Maxima
//
// Index i of a derivative series d is a candidate when
//
//	(i == 0 || d[i] > d[i-1]) && (i == n-1 || d[i] > d[i+1])
//
// Comparisons are strict, so a plateau yields no candidate. With EdgeOpen
// (the default) a boundary sample only has to exceed its single neighbour;
// EdgeClosed never reports a boundary.
//
// # Ranking
//
// Candidates are sorted by descending derivative value, ties in index order,
// and truncated to Detector.Count (3 by default):
//
//	d1 := deriv.Gradient(c.PH)
//	idx := peaks.NewDetector().Find(d1)
//
//	// With coordinates on the curve
//	found := peaks.NewDetector().Locate(c, d1)
package peaks
