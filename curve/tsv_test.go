package curve

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTSVFromReader(t *testing.T) {
	data := "0\t2.12\n" +
		"1\t2.25\n" +
		"2\t2.41\n" +
		"3\t2.63\n"

	c, err := LoadTSVFromReader(strings.NewReader(data), nil)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 1, 2, 3}, c.Volume)
	assert.Equal(t, []float64{2.12, 2.25, 2.41, 2.63}, c.PH)
}

func TestLoadTSVSkipsCommentsAndBlankLines(t *testing.T) {
	data := "# volume\tpH\n" +
		"0.5\t3.1\n" +
		"\n" +
		"1.0\t3.4\n" +
		"1.5\t 3.9\n"

	c, err := LoadTSVFromReader(strings.NewReader(data), DefaultTSVOptions())
	require.NoError(t, err)

	assert.Equal(t, []float64{0.5, 1.0, 1.5}, c.Volume)
	assert.Equal(t, []float64{3.1, 3.4, 3.9}, c.PH)
}

func TestLoadTSVWithHeaderAndColumns(t *testing.T) {
	data := "run\tpH\tvolume\n" +
		"a\t2.0\t0\n" +
		"a\t2.2\t1\n" +
		"a\t2.6\t2\n"

	opts := DefaultTSVOptions()
	opts.HasHeader = true
	opts.VolumeColumn = 2
	opts.PHColumn = 1

	c, err := LoadTSVFromReader(strings.NewReader(data), opts)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 1, 2}, c.Volume)
	assert.Equal(t, []float64{2.0, 2.2, 2.6}, c.PH)
}

func TestLoadTSVCommaDelimited(t *testing.T) {
	opts := DefaultTSVOptions()
	opts.Delimiter = ','

	c, err := LoadTSVFromReader(strings.NewReader("0,7\n1,8\n"), opts)
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 8}, c.PH)
}

func TestLoadTSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		check func(t *testing.T, err error)
	}{
		{
			name: "non-numeric field",
			data: "0\t2.0\n1\tabc\n",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, strconv.ErrSyntax)
				assert.Contains(t, err.Error(), "line 2")
			},
		},
		{
			name: "mismatched column count",
			data: "0\t2.0\n1\t2.1\t9\n",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, csv.ErrFieldCount)
			},
		},
		{
			name: "row with extra delimiter",
			data: "0\t2.0\n1\t\t2.1\n2\t2.6\n",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, csv.ErrFieldCount)
			},
		},
		{
			name: "empty field between delimiters",
			data: "0\t\t2.0\n1\t\t2.1\n2\t\t2.6\n",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, strconv.ErrSyntax)
				assert.Contains(t, err.Error(), "line 1, column 2")
			},
		},
		{
			name: "leading delimiter",
			data: "\t0\t2.0\n\t1\t2.1\n\t2\t2.6\n",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, strconv.ErrSyntax)
				assert.Contains(t, err.Error(), "line 1, column 1")
			},
		},
		{
			name: "single column",
			data: "0\n1\n",
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "expected at least 2 columns")
			},
		},
		{
			name: "empty input",
			data: "",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrNoData)
			},
		},
		{
			name: "only comments",
			data: "# nothing here\n",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrNoData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTSVFromReader(strings.NewReader(tt.data), nil)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestLoadTSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ph_data.txt")
	require.NoError(t, os.WriteFile(path, []byte("0\t1.9\n2\t2.3\n4\t3.5\n"), 0644))

	c, err := LoadTSV(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, path, c.Name)

	_, err = LoadTSV(filepath.Join(t.TempDir(), "missing.txt"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadTSVErrorNamesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("0\tx\n"), 0644))

	_, err := LoadTSV(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
