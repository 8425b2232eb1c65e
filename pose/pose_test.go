package pose

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/unitgo"
	"github.com/hupe1980/unitgo/vec"
)

func TestNewValidatesDimensions(t *testing.T) {
	p := New(unitgo.Meters(1), unitgo.Feet(2), unitgo.Degrees(90))
	assert.Equal(t, unitgo.Radian.Dimension(), p.Orientation.Dimension())

	assert.Panics(t, func() { New(unitgo.Meters(1), unitgo.Meters(2), unitgo.Meters(3)) })
	assert.Panics(t, func() { New(unitgo.Seconds(1), unitgo.Meters(2), unitgo.Degrees(0)) })
}

func TestTranslateAndRotate(t *testing.T) {
	p := New(unitgo.Meters(1), unitgo.Meters(1), unitgo.Degrees(0))

	moved := p.Translate(vec.NewPosition(unitgo.Meters(2), unitgo.Meters(-1)))
	assert.InDelta(t, 3, unitgo.ToMeters(moved.Position.X), 1e-12)
	assert.InDelta(t, 0, unitgo.ToMeters(moved.Position.Y), 1e-12)
	assert.InDelta(t, 0, unitgo.ToDegrees(moved.Orientation), 1e-12)

	turned := p.RotateBy(unitgo.Degrees(45))
	assert.InDelta(t, 45, unitgo.ToDegrees(turned.Orientation), 1e-12)
	assert.InDelta(t, 1, unitgo.ToMeters(turned.Position.X), 1e-12)
}

func TestRelativeQueries(t *testing.T) {
	a := New(unitgo.Meters(0), unitgo.Meters(0), unitgo.Degrees(0))
	b := New(unitgo.Meters(3), unitgo.Meters(4), unitgo.Degrees(180))

	assert.InDelta(t, 5, unitgo.ToMeters(a.DistanceTo(b)), 1e-12)
	assert.InDelta(t, math.Atan2(4, 3), unitgo.ToRadians(a.AngleTo(b)), 1e-12)
}

func TestVelocityPose(t *testing.T) {
	v := NewVelocity(unitgo.MetersPerSecond(3), unitgo.MetersPerSecond(4), unitgo.RadiansPerSecond(1))
	assert.InDelta(t, 5, unitgo.ToMetersPerSecond(v.Speed()), 1e-12)

	assert.Panics(t, func() {
		NewVelocity(unitgo.Meters(1), unitgo.Meters(1), unitgo.RadiansPerSecond(1))
	})
	assert.Panics(t, func() {
		NewVelocity(unitgo.MetersPerSecond(1), unitgo.MetersPerSecond(1), unitgo.Radians(1))
	})
}

func TestAccelerationPose(t *testing.T) {
	a := NewAcceleration(unitgo.MetersPerSecondSq(1), unitgo.MetersPerSecondSq(0), unitgo.RadianPerSecondSq.Of(0.5))
	assert.Equal(t, unitgo.RadianPerSecondSq.Dimension(), a.AngularAcceleration.Dimension())

	assert.Panics(t, func() {
		NewAcceleration(unitgo.MetersPerSecond(1), unitgo.MetersPerSecond(1), unitgo.RadianPerSecondSq.Of(1))
	})
}

func TestAdvanceIntegratesVelocity(t *testing.T) {
	p := New(unitgo.Meters(0), unitgo.Meters(0), unitgo.Degrees(0))
	v := NewVelocity(unitgo.MetersPerSecond(1), unitgo.MetersPerSecond(2), unitgo.DegreesPerSecond(30))

	next := p.Advance(v, unitgo.Seconds(2))
	assert.InDelta(t, 2, unitgo.ToMeters(next.Position.X), 1e-12)
	assert.InDelta(t, 4, unitgo.ToMeters(next.Position.Y), 1e-12)
	assert.InDelta(t, 60, unitgo.ToDegrees(next.Orientation), 1e-9)

	assert.Panics(t, func() { p.Advance(v, unitgo.Meters(1)) })
}

func TestAdvanceIntegratesAcceleration(t *testing.T) {
	v := NewVelocity(unitgo.MetersPerSecond(0), unitgo.MetersPerSecond(0), unitgo.RadiansPerSecond(0))
	a := NewAcceleration(unitgo.MetersPerSecondSq(2), unitgo.MetersPerSecondSq(0), unitgo.RadianPerSecondSq.Of(1))

	next := v.Advance(a, unitgo.Seconds(3))
	assert.InDelta(t, 6, unitgo.ToMetersPerSecond(next.Velocity.X), 1e-12)
	assert.InDelta(t, 3, unitgo.ToRadians(next.AngularVelocity.Mul(unitgo.Seconds(1))), 1e-12)
}

func TestPoseString(t *testing.T) {
	p := New(unitgo.Meters(1), unitgo.Meters(2), unitgo.Radians(0.5))
	assert.Equal(t, "(1 m, 2 m) @ 0.5 rad", p.String())
}
