package cmath

import (
	stdmath "math"

	"github.com/GriffinCanCode/numerics/internal/numerics"
	"github.com/GriffinCanCode/numerics/internal/numerics/complexnum"
	"github.com/GriffinCanCode/numerics/internal/numerics/scalar"
)

// DefaultSeriesMax bounds the number of terms a series may sum before it is
// declared non-convergent.
const DefaultSeriesMax = 250

// Below this ratio |im|/|re| the direct square root formula cancels.
const sqrtSeriesRatio = 0.25

// Options configures an Engine.
type Options struct {
	// SeriesMax caps series expansions. Values below 1 select DefaultSeriesMax.
	SeriesMax int
}

// Engine carries the read-only configuration used by iterative methods.
// The zero value is not usable; construct one with New.
type Engine struct {
	seriesMax int
}

var defaultEngine = New(Options{})

// New creates an engine. The configuration is fixed for the engine's lifetime.
func New(opts Options) *Engine {
	limit := opts.SeriesMax
	if limit < 1 {
		limit = DefaultSeriesMax
	}
	return &Engine{seriesMax: limit}
}

// Default returns the engine used by the package-level functions.
func Default() *Engine {
	return defaultEngine
}

// SeriesMax returns the series term cap.
func (e *Engine) SeriesMax() int {
	return e.seriesMax
}

// Sqrt returns the principal square root of z using the default engine.
func Sqrt(z complexnum.Complex) (complexnum.Complex, error) {
	return defaultEngine.Sqrt(z)
}

// Sqrt returns the principal square root of z.
//
// For z = a + ib the root x + iy satisfies x² - y² = a and 2xy = b, giving
//
//	x = sqrt((|z| + a) / 2)    y = ±sqrt((|z| - a) / 2)
//
// When |b| << |a| one of |z| ± a cancels, so that quantity is computed from
// a binomial series for sqrt(1 + (b/a)²) - 1 instead.
func (e *Engine) Sqrt(z complexnum.Complex) (complexnum.Complex, error) {
	re, im := z.Re(), z.Im()

	if im == 0 {
		if re < 0 {
			return complexnum.New(0, stdmath.Sqrt(-re)), nil
		}
		return complexnum.New(stdmath.Sqrt(re), 0), nil
	}

	var p, q float64
	if stdmath.Abs(im) < sqrtSeriesRatio*stdmath.Abs(re) {
		s, err := e.sqrtOnePlusMinusOne(scalar.Sqr(im / re))
		if err != nil {
			return complexnum.Complex{}, err
		}
		if re < 0 {
			p = -re * s
			q = -2*re + p
		} else {
			q = re * s
			p = 2*re + q
		}
	} else {
		m := Abs(z)
		p = m + re
		q = m - re
	}

	x := stdmath.Sqrt(p / 2)
	y := stdmath.Sqrt(q / 2)
	if im < 0 {
		y = -y
	}
	return complexnum.New(x, y), nil
}

// sqrtOnePlusMinusOne sums sqrt(1 + x2) - 1 term by term until two partial
// sums agree.
func (e *Engine) sqrtOnePlusMinusOne(x2 float64) (float64, error) {
	t := x2 / 2
	s := t
	for k := 2; ; k++ {
		if k > e.seriesMax {
			return 0, &numerics.NonconvergenceError{Limit: e.seriesMax}
		}
		prev := s
		t *= (1.5/float64(k) - 1) * x2
		s += t
		if s == prev {
			return s, nil
		}
	}
}
