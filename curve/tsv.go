package curve

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// TSVOptions holds options for delimited input loading.
type TSVOptions struct {
	Delimiter    rune // Field delimiter (default: '\t')
	Comment      rune // Lines starting with this rune are ignored (default: '#', 0 disables)
	HasHeader    bool // Whether the first row is a header (default: false)
	SkipRows     int  // Number of rows to skip at start
	VolumeColumn int  // Zero-based column holding titrant volume (default: 0)
	PHColumn     int  // Zero-based column holding pH (default: 1)
}

// DefaultTSVOptions returns default options for tab-delimited loading.
func DefaultTSVOptions() *TSVOptions {
	return &TSVOptions{
		Delimiter:    '\t',
		Comment:      '#',
		VolumeColumn: 0,
		PHColumn:     1,
	}
}

// LoadTSV loads a titration curve from a delimited text file.
func LoadTSV(filename string, opts *TSVOptions) (*Curve, error) {
	if opts == nil {
		opts = DefaultTSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	c, err := LoadTSVFromReader(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	c.Name = filename
	return c, nil
}

// LoadTSVFromReader loads a titration curve from an io.Reader.
// Every data row must carry the same number of fields and every field used
// must parse as a float.
func LoadTSVFromReader(r io.Reader, opts *TSVOptions) (*Curve, error) {
	if opts == nil {
		opts = DefaultTSVOptions()
	}
	if opts.VolumeColumn < 0 || opts.PHColumn < 0 {
		return nil, errors.New("column indices must be non-negative")
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.Comment = opts.Comment
	// Leading rows may be ragged; the data rows are checked below.
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			if err == io.EOF {
				return nil, ErrNoData
			}
			return nil, err
		}
	}

	if opts.HasHeader {
		if _, err := reader.Read(); err != nil {
			if err == io.EOF {
				return nil, ErrNoData
			}
			return nil, err
		}
	}
	reader.FieldsPerRecord = 0

	need := max(opts.VolumeColumn, opts.PHColumn) + 1

	var volume, ph []float64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		line, _ := reader.FieldPos(0)
		if len(record) < need {
			return nil, fmt.Errorf("line %d: expected at least %d columns, got %d", line, need, len(record))
		}

		v, err := parseField(record[opts.VolumeColumn])
		if err != nil {
			return nil, fmt.Errorf("line %d, column %d: %w", line, opts.VolumeColumn+1, err)
		}
		p, err := parseField(record[opts.PHColumn])
		if err != nil {
			return nil, fmt.Errorf("line %d, column %d: %w", line, opts.PHColumn+1, err)
		}

		volume = append(volume, v)
		ph = append(ph, p)
	}

	if len(ph) == 0 {
		return nil, ErrNoData
	}

	return &Curve{
		Volume: volume,
		PH:     ph,
	}, nil
}

func parseField(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
