package unitgo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAngleDeclarations(t *testing.T) {
	assert.InDelta(t, math.Pi, ToRadians(Degrees(180)), 1e-12)
	assert.InDelta(t, 2*math.Pi, ToRadians(Rotations(1)), 1e-12)
	assert.InDelta(t, 180, ToDegrees(Radians(math.Pi)), 1e-12)
	assert.InDelta(t, 0.5, ToRotations(Degrees(180)), 1e-12)

	// Angles declared in different units share one stored magnitude, so
	// they compare directly.
	assert.True(t, Degrees(180).LessEq(Radians(math.Pi)))
	assert.True(t, Degrees(90).Less(Radians(math.Pi)))
	assert.True(t, Rotations(1).Greater(Degrees(180)))
}

func TestAngularRates(t *testing.T) {
	assert.InDelta(t, 2*math.Pi/60, RPM(1).Internal(), 1e-12)
	assert.InDelta(t, math.Pi/180, DegreesPerSecond(1).Internal(), 1e-12)
	assert.Equal(t, RadianPerSecond.Dimension(), RPM(1).Dimension())

	// Angle over time composes to the declared rate dimension.
	assert.Equal(t, RadianPerSecond.Dimension(), Radians(1).Div(Seconds(1)).Dimension())
	assert.Equal(t, RadianPerSecondSq.Dimension(), RadiansPerSecond(1).Div(Seconds(1)).Dimension())
}

func TestRotationPerMinuteDerivatives(t *testing.T) {
	// Each derivative divides the previous one by a minute.
	assert.InDelta(t, 2*math.Pi/60/60, RotationPerMinuteSq.One().Internal(), 1e-15)
	assert.InDelta(t, 2*math.Pi/60/60/60, RotationPerMinuteCb.One().Internal(), 1e-18)

	assert.Equal(t, RadianPerSecondSq.Dimension(), RotationPerMinuteSq.Dimension())
	assert.Equal(t, RadianPerSecondCb.Dimension(), RotationPerMinuteCb.Dimension())
	assert.Equal(t, "rpm3", RotationPerMinuteCb.Symbol())
}

func TestTrig(t *testing.T) {
	assert.InDelta(t, 1, Sin(Degrees(90)), 1e-12)
	assert.InDelta(t, -1, Cos(Degrees(180)), 1e-12)
	assert.InDelta(t, 1, Tan(Degrees(45)), 1e-12)

	assert.Panics(t, func() { Sin(Meters(1)) })

	assert.InDelta(t, 90, ToDegrees(Asin(1)), 1e-12)
	assert.InDelta(t, 0, ToDegrees(Acos(1)), 1e-12)
	assert.InDelta(t, 45, ToDegrees(Atan(1)), 1e-12)
}

func TestAtan2(t *testing.T) {
	a := Atan2(Meters(1), Meters(1))
	assert.InDelta(t, 45, ToDegrees(a), 1e-12)

	// Quadrant handling via operand signs.
	assert.InDelta(t, 135, ToDegrees(Atan2(Meters(1), Meters(-1))), 1e-12)
	assert.InDelta(t, -90, ToDegrees(Atan2(Meters(-1), Meters(0))), 1e-12)

	assert.Panics(t, func() { Atan2(Meters(1), Seconds(1)) })
}

func TestConstrain360(t *testing.T) {
	tests := []struct {
		name string
		in   float64 // degrees
		want float64 // degrees
	}{
		{name: "identity", in: 45, want: 45},
		{name: "wraps down", in: 405, want: 45},
		{name: "negative wraps up", in: -15, want: 345},
		{name: "far negative", in: -725, want: 355},
		{name: "zero", in: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Constrain360(Degrees(tt.in))
			assert.InDelta(t, tt.want, ToDegrees(got), 1e-9)
			assert.True(t, got.GreaterEq(Degrees(0)))
			assert.True(t, got.Less(Degrees(360)))
		})
	}

	// A full turn collapses to zero.
	assert.InDelta(t, 0, ToRadians(Constrain360(Radians(2*math.Pi))), 1e-12)

	assert.Panics(t, func() { Constrain360(Meters(1)) })
}

func TestConstrain180(t *testing.T) {
	tests := []struct {
		name string
		in   float64 // degrees
		want float64 // degrees
	}{
		{name: "identity", in: 45, want: 45},
		{name: "wraps down", in: 270, want: -90},
		{name: "negative identity", in: -90, want: -90},
		{name: "far positive", in: 450, want: 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Constrain180(Degrees(tt.in))
			assert.InDelta(t, tt.want, ToDegrees(got), 1e-9)
			assert.True(t, got.Greater(Degrees(-180)))
			assert.True(t, got.LessEq(Degrees(180)))
		})
	}

	// The range is half-open on the negative side: both ±π map to +π.
	assert.InDelta(t, math.Pi, ToRadians(Constrain180(Radians(math.Pi))), 1e-12)
	assert.InDelta(t, math.Pi, ToRadians(Constrain180(Radians(-math.Pi))), 1e-12)
}

func TestCompassBearings(t *testing.T) {
	// Compass 15° is standard 75°; negating the compass value lands at
	// standard 105°.
	b := CompassDegrees(15)
	assert.InDelta(t, 75, ToDegrees(b.Standard()), 1e-12)
	assert.InDelta(t, 105, ToDegrees(b.Neg().Standard()), 1e-12)

	assert.InDelta(t, 15, b.Degrees(), 1e-12)
	assert.InDelta(t, 15*math.Pi/180, b.Radians(), 1e-12)
	assert.InDelta(t, 15.0/360, b.Rotations(), 1e-12)
}

func TestCompassCardinalPoints(t *testing.T) {
	tests := []struct {
		name     string
		compass  float64 // degrees
		standard float64 // degrees
	}{
		{name: "north", compass: 0, standard: 90},
		{name: "east", compass: 90, standard: 0},
		{name: "south", compass: 180, standard: -90},
		{name: "west", compass: 270, standard: -180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompassDegrees(tt.compass).Standard()
			assert.InDelta(t, tt.standard, ToDegrees(got), 1e-9)
		})
	}
}

func TestBearingRoundTrip(t *testing.T) {
	standard := Degrees(30)
	b := BearingOf(standard)
	assert.InDelta(t, 60, b.Degrees(), 1e-12)
	assert.InDelta(t, 30, ToDegrees(b.Standard()), 1e-12)

	assert.InDelta(t, 60, ToCompassDegrees(standard), 1e-12)
	assert.InDelta(t, math.Pi/3, ToCompassRadians(standard), 1e-12)

	assert.Panics(t, func() { BearingOf(Meters(1)) })
}

func TestCompassRotations(t *testing.T) {
	b := CompassRotations(0.25)
	assert.InDelta(t, 90, b.Degrees(), 1e-12)
	assert.InDelta(t, 0, ToDegrees(b.Standard()), 1e-9)
}
