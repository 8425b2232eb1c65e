package unitgo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/unitgo"
	"github.com/hupe1980/unitgo/testutil"
)

const propertyRounds = 200

func TestMulDivInverseProperty(t *testing.T) {
	rng := testutil.NewRNG(42)

	for i := 0; i < propertyRounds; i++ {
		a := rng.Quantity(rng.Dimension())
		b := rng.Quantity(rng.Dimension())

		back := a.Mul(b).Div(b)
		assert.Equal(t, a.Dimension(), back.Dimension())
		assert.InEpsilon(t, a.Internal(), back.Internal(), 1e-9)
	}
}

func TestAddSubInverseProperty(t *testing.T) {
	rng := testutil.NewRNG(7)

	for i := 0; i < propertyRounds; i++ {
		d := rng.Dimension()
		a := rng.Quantity(d)
		b := rng.Quantity(d)

		back := a.Add(b).Sub(b)
		assert.Equal(t, a.Dimension(), back.Dimension())
		assert.InDelta(t, a.Internal(), back.Internal(), 1e-6)
	}
}

func TestDimensionAlgebraGroupProperty(t *testing.T) {
	rng := testutil.NewRNG(11)

	for i := 0; i < propertyRounds; i++ {
		d := rng.Dimension()
		e := rng.Dimension()

		// Mul and Div are exact inverses on exponent vectors.
		assert.Equal(t, d, d.Mul(e).Div(e))
		assert.Equal(t, unitgo.Dimensionless, d.Div(d))
		assert.Equal(t, d.Mul(e), e.Mul(d))
	}
}

func TestConstrain360RangeProperty(t *testing.T) {
	rng := testutil.NewRNG(23)

	for i := 0; i < propertyRounds; i++ {
		a := unitgo.Constrain360(rng.Angle())
		assert.GreaterOrEqual(t, unitgo.ToRadians(a), 0.0)
		assert.Less(t, unitgo.ToDegrees(a), 360.0)
	}
}

func TestCompassStandardRoundTripProperty(t *testing.T) {
	rng := testutil.NewRNG(31)

	for i := 0; i < propertyRounds; i++ {
		a := rng.Angle()
		back := unitgo.BearingOf(a).Standard()
		assert.InDelta(t, unitgo.ToRadians(a), unitgo.ToRadians(back), 1e-9)
	}
}

func TestUnitRoundTripProperty(t *testing.T) {
	rng := testutil.NewRNG(47)
	units := []unitgo.Unit{
		unitgo.Kilometer, unitgo.Inch, unitgo.Mile, unitgo.Tile,
		unitgo.Minute, unitgo.MilePerHour, unitgo.Degree, unitgo.RotationPerMinute,
	}

	for i := 0; i < propertyRounds; i++ {
		u := units[rng.Intn(len(units))]
		v := rng.Magnitude()
		assert.InEpsilon(t, v, u.From(u.Of(v)), 1e-12)
	}
}
