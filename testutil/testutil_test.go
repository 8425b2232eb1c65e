package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	for i := 0; i < 32; i++ {
		assert.Equal(t, a.Magnitude(), b.Magnitude())
		assert.Equal(t, a.Dimension(), b.Dimension())
	}
}

func TestRNGReset(t *testing.T) {
	r := NewRNG(7)
	assert.Equal(t, int64(7), r.Seed())

	first := r.Float64()
	r.Float64()
	r.Reset()
	assert.Equal(t, first, r.Float64())
}

func TestMagnitudeRange(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 256; i++ {
		v := r.Magnitude()
		assert.GreaterOrEqual(t, v, -1000.0)
		assert.Less(t, v, 1000.0)
		assert.Greater(t, math.Abs(v), 1e-3)
	}
}

func TestDimensionExponentRange(t *testing.T) {
	r := NewRNG(3)
	for i := 0; i < 64; i++ {
		d := r.Dimension()
		for _, e := range d {
			assert.GreaterOrEqual(t, e.Num, -3)
			assert.LessOrEqual(t, e.Num, 3)
			assert.Equal(t, 1, e.Den)
		}
	}
}

func TestQuantityAndAngle(t *testing.T) {
	r := NewRNG(9)

	d := r.Dimension()
	q := r.Quantity(d)
	assert.Equal(t, d, q.Dimension())

	a := r.Angle()
	assert.GreaterOrEqual(t, a.Internal(), -2*math.Pi)
	assert.Less(t, a.Internal(), 2*math.Pi)
}
