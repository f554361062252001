package report

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sartorproj/gotitration/analysis"
)

// DefaultTitrant names the titrant in the volume column header.
const DefaultTitrant = "NaOH"

// Table holds the four columns of an output file.
type Table struct {
	Volume []float64
	PH     []float64
	Deriv1 []float64
	Deriv2 []float64
}

// Header returns the column names for the given titrant.
func Header(titrant string) []string {
	if titrant == "" {
		titrant = DefaultTitrant
	}
	return []string{
		fmt.Sprintf("Volume of %s (ml)", titrant),
		"pH",
		"First derivative of pH",
		"Second derivative of pH",
	}
}

// FormatValue renders a value with the fewest digits that parse back exactly.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteTable writes res as a tab-separated table with a header line.
func WriteTable(w io.Writer, res *analysis.Result, titrant string) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(strings.Join(Header(titrant), "\t"))
	bw.WriteString("\n")

	c := res.Curve
	for i := 0; i < c.Len(); i++ {
		bw.WriteString(FormatValue(c.Volume[i]))
		bw.WriteString("\t")
		bw.WriteString(FormatValue(c.PH[i]))
		bw.WriteString("\t")
		bw.WriteString(FormatValue(res.Deriv1[i]))
		bw.WriteString("\t")
		bw.WriteString(FormatValue(res.Deriv2[i]))
		bw.WriteString("\n")
	}

	return bw.Flush()
}

// SaveTable writes res to filename, replacing any existing file.
func SaveTable(filename string, res *analysis.Result, titrant string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}

	if err := WriteTable(file, res, titrant); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// ReadTable parses a table produced by WriteTable.
func ReadTable(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = 4

	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, errors.New("missing header line")
		}
		return nil, err
	}

	t := &Table{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		var row [4]float64
		for j, field := range record {
			row[j], err = strconv.ParseFloat(field, 64)
			if err != nil {
				line, _ := reader.FieldPos(j)
				return nil, fmt.Errorf("line %d, column %d: %w", line, j+1, err)
			}
		}
		t.Volume = append(t.Volume, row[0])
		t.PH = append(t.PH, row[1])
		t.Deriv1 = append(t.Deriv1, row[2])
		t.Deriv2 = append(t.Deriv2, row[3])
	}

	return t, nil
}

// LoadTable reads a table from filename.
func LoadTable(filename string) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadTable(file)
}
