package fourier

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/pkg/errors"
)

// Errors returned by table functions.
var (
	ErrEmptyTable      = errors.New("fourier: table has no rows")
	ErrTooFewColumns   = errors.New("fourier: a row needs a time column and at least one component")
	ErrRaggedRow       = errors.New("fourier: rows differ in width")
	ErrComponentRange  = errors.New("fourier: component index out of range")
	ErrNegativeTerms   = errors.New("fourier: term count must be >= 0")
	ErrTooFewSamples   = errors.New("fourier: at least two samples required")
	ErrNonMonotoneTime = errors.New("fourier: time must be strictly increasing")
)

// Table is a time column plus one column per Fourier component.
type Table struct {
	time       []float64
	components [][]float64
}

// NewTable builds a table from a time column and component columns. The
// slices are copied.
func NewTable(time []float64, components [][]float64) (*Table, error) {
	if len(time) == 0 {
		return nil, ErrEmptyTable
	}
	if len(components) == 0 {
		return nil, ErrTooFewColumns
	}
	tbl := &Table{
		time:       append([]float64(nil), time...),
		components: make([][]float64, len(components)),
	}
	for i, col := range components {
		if len(col) != len(time) {
			return nil, errors.Wrapf(ErrRaggedRow, "component %d has %d samples, time has %d", i, len(col), len(time))
		}
		tbl.components[i] = append([]float64(nil), col...)
	}
	return tbl, nil
}

// Load reads a table from r. Blank lines are skipped.
func Load(r io.Reader) (*Table, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	tbl := &Table{}
	width := 0
	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "fourier: could not read rows")
		}

		if width == 0 {
			width = len(record)
			if width < 2 {
				return nil, errors.Wrapf(ErrTooFewColumns, "row %d", row)
			}
			tbl.components = make([][]float64, width-1)
		}
		if len(record) != width {
			return nil, errors.Wrapf(ErrRaggedRow, "row %d has %d fields, want %d", row, len(record), width)
		}

		for col, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "fourier: could not parse row %d column %d", row, col+1)
			}
			if col == 0 {
				tbl.time = append(tbl.time, v)
			} else {
				tbl.components[col-1] = append(tbl.components[col-1], v)
			}
		}
	}

	if len(tbl.time) == 0 {
		return nil, ErrEmptyTable
	}
	return tbl, nil
}

// LoadFile reads a table from the named file.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "fourier: could not open table")
	}
	defer f.Close()

	tbl, err := Load(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return tbl, nil
}

// Len returns the number of samples.
func (t *Table) Len() int { return len(t.time) }

// Terms returns the number of component columns.
func (t *Table) Terms() int { return len(t.components) }

// Time returns a copy of the time column.
func (t *Table) Time() []float64 {
	return append([]float64(nil), t.time...)
}

// Component returns a copy of component i (0-based).
func (t *Table) Component(i int) ([]float64, error) {
	if i < 0 || i >= len(t.components) {
		return nil, errors.Wrapf(ErrComponentRange, "index %d, have %d components", i, len(t.components))
	}
	return append([]float64(nil), t.components[i]...), nil
}

// PartialSum returns the sample-wise sum of the first terms components.
// A count above [Table.Terms] sums every component; zero gives a zero
// signal.
func (t *Table) PartialSum(terms int) ([]float64, error) {
	if terms < 0 {
		return nil, errors.Wrapf(ErrNegativeTerms, "got %d", terms)
	}
	terms = min(terms, len(t.components))

	out := make([]float64, len(t.time))
	for _, col := range t.components[:terms] {
		vecmath.AddBlockInPlace(out, col)
	}
	return out, nil
}

// SampleRate returns the reciprocal of the mean time step.
func (t *Table) SampleRate() (float64, error) {
	n := len(t.time)
	if n < 2 {
		return 0, ErrTooFewSamples
	}
	for i := 1; i < n; i++ {
		if !(t.time[i] > t.time[i-1]) {
			return 0, errors.Wrapf(ErrNonMonotoneTime, "sample %d: %g after %g", i, t.time[i], t.time[i-1])
		}
	}
	return float64(n-1) / (t.time[n-1] - t.time[0]), nil
}
