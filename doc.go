// Package gotitration analyzes acid-base titration curves.
//
// A titration curve is a series of pH readings taken after successive
// additions of titrant. Its equivalence points are where the pH rises
// fastest, that is, at the strongest local maxima of the first derivative.
//
// # Quick Start
//
// Load a curve, analyze it and write the augmented table:
//
//	c, err := curve.LoadTSV("ph_data.txt", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := analysis.Analyze(c, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range res.Peaks {
//	    fmt.Printf("end point at %.2f ml, pH %.2f\n", p.Volume, p.PH)
//	}
//	err = report.SaveTable("titration_data.txt", res, "NaOH")
//
// # Packages
//
//   - curve: titration curve type and delimited input loading
//   - deriv: numerical gradients
//   - peaks: local-maximum selection and ranking
//   - analysis: derivatives and end points of one curve
//   - report: output table and JSON summary
//   - chart: pH and derivative figures
//   - config: YAML settings for the titrate command
//
// The titrate command in cmd/titrate runs the whole pipeline.
package gotitration
