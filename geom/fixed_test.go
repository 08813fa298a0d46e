package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedFromFloat(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"Zero", 0, 0},
		{"Integer", 42, 42},
		{"Negative", -7.5, -7.5},
		{"Fraction", 0.25, 0.25},
		{"NaN", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FixedFromFloat(tt.in).Float())
		})
	}

	t.Run("Saturates", func(t *testing.T) {
		assert.Equal(t, Fixed(math.MaxInt64), FixedFromFloat(1e30))
		assert.Equal(t, Fixed(math.MinInt64), FixedFromFloat(-1e30))
		assert.Equal(t, Fixed(math.MaxInt64), FixedFromFloat(math.Inf(1)))
	})
}

func TestToGrid(t *testing.T) {
	assert.Equal(t, 3.0, ToGrid(3.4, 0).Float())
	assert.Equal(t, 4.0, ToGrid(3.6, 0).Float())
	assert.Equal(t, 3.5, ToGrid(3.4, 1).Float())
	assert.Equal(t, 3.375, ToGrid(3.4, 3).Float())
	assert.Equal(t, 4.0, ToGrid(3.4, -2).Float())
	assert.Equal(t, -3.0, ToGrid(-3.4, 0).Float())
}

func TestQuantize(t *testing.T) {
	t.Run("AbsorbsNoise", func(t *testing.T) {
		a := Quantize(Pt(0.1+0.2, 1), 8)
		b := Quantize(Pt(0.3, 1), 8)
		assert.Equal(t, a, b)
	})

	t.Run("DistinguishesAboveResolution", func(t *testing.T) {
		a := Quantize(Pt(0.5, 0), 4)
		b := Quantize(Pt(0.5+1.0/16, 0), 4)
		assert.NotEqual(t, a, b)
	})

	t.Run("Idempotent", func(t *testing.T) {
		points := []Point{
			Pt(0, 0), Pt(1.2345, -9.87), Pt(1e6+0.1, -1e6-0.7), Pt(math.Pi, math.E), Pt(-0.49999, 0.5),
		}
		for _, gp := range []int{-3, 0, 1, 8, 16, 32, 40} {
			for _, p := range points {
				q := Quantize(p, gp)
				assert.Equal(t, q, Quantize(q.Point(), gp), "grid power %d point %v", gp, p)
			}
		}
	})
}
