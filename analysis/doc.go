// Package analysis differentiates a titration curve and locates its end points.
//
//	res, err := analysis.Analyze(c, nil)
//	for _, p := range res.Peaks {
//	    fmt.Printf("end point at %v ml, pH %v\n", p.Volume, p.PH)
//	}
package analysis
