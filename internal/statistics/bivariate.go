package statistics

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// BivariateSample holds paired observations.
type BivariateSample struct {
	xs       []float64
	ys       []float64
	readOnly bool
}

// NewBivariateSample creates an empty bivariate sample.
func NewBivariateSample() *BivariateSample {
	return &BivariateSample{}
}

// Add appends the pair (x, y).
func (b *BivariateSample) Add(x, y float64) error {
	if b.readOnly {
		return ErrReadOnly
	}
	b.xs = append(b.xs, x)
	b.ys = append(b.ys, y)
	return nil
}

// Load appends (xCol, yCol) pairs, skipping rows where either cell is null.
func (b *BivariateSample) Load(reader DataReader, xCol, yCol int) error {
	if reader == nil {
		return errNilReader
	}
	if b.readOnly {
		return ErrReadOnly
	}
	for reader.Read() {
		if reader.IsNull(xCol) || reader.IsNull(yCol) {
			continue
		}
		x, err := readFloat(reader, xCol)
		if err != nil {
			return fmt.Errorf("column %d: %w", xCol, err)
		}
		y, err := readFloat(reader, yCol)
		if err != nil {
			return fmt.Errorf("column %d: %w", yCol, err)
		}
		b.xs = append(b.xs, x)
		b.ys = append(b.ys, y)
	}
	return reader.Err()
}

// Freeze makes the sample read-only.
func (b *BivariateSample) Freeze() {
	b.readOnly = true
}

// Count returns the number of pairs.
func (b *BivariateSample) Count() int {
	return len(b.xs)
}

// X returns a read-only copy of the first components.
func (b *BivariateSample) X() *Sample {
	s := NewSample(b.xs...)
	s.Freeze()
	return s
}

// Y returns a read-only copy of the second components.
func (b *BivariateSample) Y() *Sample {
	s := NewSample(b.ys...)
	s.Freeze()
	return s
}

// Covariance returns the unbiased sample covariance.
func (b *BivariateSample) Covariance() (float64, error) {
	if err := needAtLeast(2, len(b.xs)); err != nil {
		return 0, err
	}
	return stat.Covariance(b.xs, b.ys, nil), nil
}

// Correlation returns the Pearson correlation coefficient.
func (b *BivariateSample) Correlation() (float64, error) {
	if err := needAtLeast(2, len(b.xs)); err != nil {
		return 0, err
	}
	return stat.Correlation(b.xs, b.ys, nil), nil
}
