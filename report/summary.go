package report

import (
	"encoding/json"
	"os"

	"github.com/sartorproj/gotitration/analysis"
)

// EndPoint is one ranked end point in the summary document.
type EndPoint struct {
	Rank   int     `json:"rank"`
	Index  int     `json:"index"`
	Volume float64 `json:"volume_ml"`
	PH     float64 `json:"ph"`
	Slope  float64 `json:"first_derivative"`
}

// Summary describes the end points found in one curve.
type Summary struct {
	Source    string     `json:"source,omitempty"`
	Titrant   string     `json:"titrant"`
	NObs      int        `json:"n_obs"`
	EndPoints []EndPoint `json:"end_points"`
}

// NewSummary builds the summary of res.
func NewSummary(res *analysis.Result, titrant string) *Summary {
	if titrant == "" {
		titrant = DefaultTitrant
	}
	s := &Summary{
		Source:    res.Curve.Name,
		Titrant:   titrant,
		NObs:      res.Curve.Len(),
		EndPoints: make([]EndPoint, len(res.Peaks)),
	}
	for i, p := range res.Peaks {
		s.EndPoints[i] = EndPoint{
			Rank:   i + 1,
			Index:  p.Index,
			Volume: p.Volume,
			PH:     p.PH,
			Slope:  p.Slope,
		}
	}
	return s
}

// SaveSummary writes the JSON summary of res to filename.
func SaveSummary(filename string, res *analysis.Result, titrant string) error {
	data, err := json.MarshalIndent(NewSummary(res, titrant), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, append(data, '\n'), 0644)
}
