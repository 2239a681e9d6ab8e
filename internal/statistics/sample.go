package statistics

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrInsufficientData is returned when a statistic needs more values
	// than the sample holds.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrReadOnly is returned when modifying a frozen sample.
	ErrReadOnly = errors.New("sample is read-only")

	errNilReader = errors.New("reader is nil")
)

func needAtLeast(n, have int) error {
	if have < n {
		return fmt.Errorf("%w: need %d values, have %d", ErrInsufficientData, n, have)
	}
	return nil
}

// Sample is a univariate collection of values. It is not safe for
// concurrent modification.
type Sample struct {
	values   []float64
	readOnly bool
}

// NewSample creates a sample holding values.
func NewSample(values ...float64) *Sample {
	s := &Sample{}
	s.values = append(s.values, values...)
	return s
}

// Add appends values.
func (s *Sample) Add(values ...float64) error {
	if s.readOnly {
		return ErrReadOnly
	}
	s.values = append(s.values, values...)
	return nil
}

// Load appends the non-null cells of column col from every remaining row.
func (s *Sample) Load(reader DataReader, col int) error {
	if reader == nil {
		return errNilReader
	}
	if s.readOnly {
		return ErrReadOnly
	}
	for reader.Read() {
		if reader.IsNull(col) {
			continue
		}
		v, err := readFloat(reader, col)
		if err != nil {
			return fmt.Errorf("column %d: %w", col, err)
		}
		s.values = append(s.values, v)
	}
	return reader.Err()
}

// Freeze makes the sample read-only.
func (s *Sample) Freeze() {
	s.readOnly = true
}

// Count returns the number of values.
func (s *Sample) Count() int {
	return len(s.values)
}

// Values returns a copy of the values in insertion order.
func (s *Sample) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// Mean returns the arithmetic mean.
func (s *Sample) Mean() (float64, error) {
	if err := needAtLeast(1, len(s.values)); err != nil {
		return 0, err
	}
	return stat.Mean(s.values, nil), nil
}

// Variance returns the unbiased sample variance.
func (s *Sample) Variance() (float64, error) {
	if err := needAtLeast(2, len(s.values)); err != nil {
		return 0, err
	}
	return stat.Variance(s.values, nil), nil
}

// StandardDeviation returns the square root of Variance.
func (s *Sample) StandardDeviation() (float64, error) {
	if err := needAtLeast(2, len(s.values)); err != nil {
		return 0, err
	}
	return stat.StdDev(s.values, nil), nil
}

// Median returns the middle value, averaging the two central values of an
// even-sized sample.
func (s *Sample) Median() (float64, error) {
	n := len(s.values)
	if err := needAtLeast(1, n); err != nil {
		return 0, err
	}
	sorted := s.Values()
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2], nil
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2, nil
}

// Quantile returns the empirical p-quantile, p in [0, 1].
func (s *Sample) Quantile(p float64) (float64, error) {
	if err := needAtLeast(1, len(s.values)); err != nil {
		return 0, err
	}
	if p < 0 || p > 1 {
		return 0, fmt.Errorf("quantile %v outside [0, 1]", p)
	}
	sorted := s.Values()
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil), nil
}

// Min returns the smallest value.
func (s *Sample) Min() (float64, error) {
	if err := needAtLeast(1, len(s.values)); err != nil {
		return 0, err
	}
	return floats.Min(s.values), nil
}

// Max returns the largest value.
func (s *Sample) Max() (float64, error) {
	if err := needAtLeast(1, len(s.values)); err != nil {
		return 0, err
	}
	return floats.Max(s.values), nil
}
