package scalar

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHypotAvoidsOverflow(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want float64
	}{
		{"pythagorean", 3, 4, 5},
		{"huge components", 3e300, 4e300, 5e300},
		{"tiny components", 3e-300, 4e-300, 5e-300},
		{"one zero", 0, -7, 7},
		{"both zero", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hypot(tt.x, tt.y)
			assert.False(t, stdmath.IsInf(got, 0))
			assert.InEpsilon(t, tt.want+1e-310, got+1e-310, 1e-15)
		})
	}
}

func TestHypotSpecialValues(t *testing.T) {
	assert.True(t, stdmath.IsInf(Hypot(stdmath.Inf(-1), 1), 1))
	assert.True(t, stdmath.IsNaN(Hypot(stdmath.NaN(), 1)))
}

func TestTrig(t *testing.T) {
	assert.Equal(t, 0.0, Sin(0))
	assert.Equal(t, 1.0, Cos(0))
	assert.InDelta(t, 1.0, Sin(stdmath.Pi/2), 1e-15)
	assert.InDelta(t, -1.0, Cos(stdmath.Pi), 1e-15)
	assert.Equal(t, 6.25, Sqr(-2.5))
}
