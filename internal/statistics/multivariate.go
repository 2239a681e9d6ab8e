package statistics

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/GriffinCanCode/numerics/internal/numerics"
)

// MultivariateSample holds rows of a fixed dimension.
type MultivariateSample struct {
	dimension int
	rows      []float64 // row-major, len = Count() * dimension
	readOnly  bool
}

// NewMultivariateSample creates a sample of the given dimension. It panics
// if dimension is less than 1.
func NewMultivariateSample(dimension int) *MultivariateSample {
	if dimension < 1 {
		panic("statistics: dimension must be positive")
	}
	return &MultivariateSample{dimension: dimension}
}

// Dimension returns the width of each row.
func (m *MultivariateSample) Dimension() int {
	return m.dimension
}

// Count returns the number of rows.
func (m *MultivariateSample) Count() int {
	return len(m.rows) / m.dimension
}

// Add appends one row.
func (m *MultivariateSample) Add(entry ...float64) error {
	if len(entry) != m.dimension {
		return &numerics.DimensionMismatchError{Want: m.dimension, Got: len(entry)}
	}
	if m.readOnly {
		return ErrReadOnly
	}
	m.rows = append(m.rows, entry...)
	return nil
}

// Load appends rows built from cols, one column per dimension. Rows with a
// null in any of the columns are skipped.
func (m *MultivariateSample) Load(reader DataReader, cols ...int) error {
	if reader == nil {
		return errNilReader
	}
	if len(cols) != m.dimension {
		return &numerics.DimensionMismatchError{Want: m.dimension, Got: len(cols)}
	}
	if m.readOnly {
		return ErrReadOnly
	}

	// reused for every row
	entry := make([]float64, m.dimension)
	for reader.Read() {
		ok, err := readRow(reader, cols, entry)
		if err != nil {
			return err
		}
		if ok {
			m.rows = append(m.rows, entry...)
		}
	}
	return reader.Err()
}

func readRow(reader DataReader, cols []int, entry []float64) (bool, error) {
	for c, col := range cols {
		if reader.IsNull(col) {
			return false, nil
		}
		v, err := readFloat(reader, col)
		if err != nil {
			return false, fmt.Errorf("column %d: %w", col, err)
		}
		entry[c] = v
	}
	return true, nil
}

// Freeze makes the sample read-only.
func (m *MultivariateSample) Freeze() {
	m.readOnly = true
}

// Column returns a read-only copy of column c.
func (m *MultivariateSample) Column(c int) *Sample {
	n := m.Count()
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = m.rows[i*m.dimension+c]
	}
	s := NewSample(values...)
	s.Freeze()
	return s
}

// Means returns the mean of every column.
func (m *MultivariateSample) Means() ([]float64, error) {
	if err := needAtLeast(1, m.Count()); err != nil {
		return nil, err
	}
	means := make([]float64, m.dimension)
	for c := range means {
		means[c] = stat.Mean(m.Column(c).values, nil)
	}
	return means, nil
}

// CovarianceMatrix returns the dimension × dimension sample covariance.
func (m *MultivariateSample) CovarianceMatrix() (*mat.SymDense, error) {
	n := m.Count()
	if err := needAtLeast(2, n); err != nil {
		return nil, err
	}
	data := make([]float64, len(m.rows))
	copy(data, m.rows)
	x := mat.NewDense(n, m.dimension, data)

	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, x, nil)
	return &cov, nil
}
