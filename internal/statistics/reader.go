package statistics

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// DataReader is a forward-only cursor over rows of cells.
type DataReader interface {
	// Read advances to the next row and reports whether one exists.
	Read() bool
	// IsNull reports whether the cell in column col of the current row is absent.
	IsNull(col int) bool
	// Value returns the cell in column col of the current row.
	Value(col int) (interface{}, error)
	// Err returns the first error encountered while advancing, if any.
	Err() error
}

// CSVReader reads comma-separated rows. Empty cells and cells past the end
// of a short row are null.
type CSVReader struct {
	r      *csv.Reader
	header []string
	row    []string
	err    error
}

// NewCSVReader wraps r. When hasHeader is set the first record is consumed
// as column names.
func NewCSVReader(r io.Reader, hasHeader bool) (*CSVReader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	reader := &CSVReader{r: cr}
	if hasHeader {
		header, err := cr.Read()
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read header: %w", err)
		}
		reader.header = header
	}
	return reader, nil
}

// Columns returns the header names, or nil without a header.
func (c *CSVReader) Columns() []string {
	return c.header
}

// ColumnIndex returns the index of the named header column.
func (c *CSVReader) ColumnIndex(name string) (int, bool) {
	for i, h := range c.header {
		if strings.TrimSpace(h) == name {
			return i, true
		}
	}
	return -1, false
}

// Read advances to the next record.
func (c *CSVReader) Read() bool {
	if c.err != nil {
		return false
	}
	row, err := c.r.Read()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			c.err = err
		}
		c.row = nil
		return false
	}
	c.row = row
	return true
}

// IsNull reports whether the cell is missing or blank.
func (c *CSVReader) IsNull(col int) bool {
	if col < 0 || col >= len(c.row) {
		return true
	}
	return strings.TrimSpace(c.row[col]) == ""
}

// Value returns the raw cell text.
func (c *CSVReader) Value(col int) (interface{}, error) {
	if c.row == nil {
		return nil, errors.New("no current row")
	}
	if col < 0 || col >= len(c.row) {
		return nil, fmt.Errorf("column %d out of range [0, %d)", col, len(c.row))
	}
	return strings.TrimSpace(c.row[col]), nil
}

// Err returns the first parse error.
func (c *CSVReader) Err() error {
	return c.err
}

// ToFloat converts a cell value to float64. Strings are parsed with the
// invariant (dot decimal) format.
func ToFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return math.NaN(), fmt.Errorf("cannot convert %q to number: %w", n, err)
		}
		return f, nil
	case fmt.Stringer:
		return ToFloat(n.String())
	default:
		return math.NaN(), fmt.Errorf("cannot convert %T to number", v)
	}
}

// readFloat reads and converts a single cell.
func readFloat(reader DataReader, col int) (float64, error) {
	v, err := reader.Value(col)
	if err != nil {
		return 0, err
	}
	return ToFloat(v)
}
