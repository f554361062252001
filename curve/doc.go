// Package curve provides the titration curve data structure and loaders.
//
// # Creating a Curve
//
// Create a curve from index-aligned volume and pH readings:
//
//	c, err := curve.New(
//	    []float64{0, 1, 2, 3},         // ml of titrant
//	    []float64{2.1, 2.4, 3.9, 7.2}, // pH
//	)
//
// # Loading Delimited Files
//
// The default input is tab-delimited with volume in the first column and
// pH in the second, no header, and '#' comment lines:
//
//	c, err := curve.LoadTSV("ph_data.txt", nil)
//
// Other layouts:
//
//	opts := curve.DefaultTSVOptions()
//	opts.Delimiter = ','
//	opts.HasHeader = true
//	opts.PHColumn = 2
//	c, err := curve.LoadTSVFromReader(reader, opts)
//
// Unlike a lenient CSV import, a non-numeric field or a row with a different
// number of columns is an error.
package curve
