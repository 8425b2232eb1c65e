package pose

import (
	"fmt"

	"github.com/hupe1980/unitgo"
	"github.com/hupe1980/unitgo/vec"
)

// Pose is a position and heading in the plane. The heading is a
// standard-orientation Angle, counterclockwise from the x axis.
type Pose struct {
	Position    vec.Vector2
	Orientation unitgo.Quantity
}

// New returns the pose at (x, y) facing orientation. x and y must be
// Lengths and orientation an Angle.
func New(x, y, orientation unitgo.Quantity) Pose {
	mustDim("pose", orientation, unitgo.Radian.Dimension())
	return Pose{Position: vec.NewPosition(x, y), Orientation: orientation}
}

// At returns the pose at position p facing orientation.
func At(p vec.Vector2, orientation unitgo.Quantity) Pose {
	return New(p.X, p.Y, orientation)
}

// Translate returns the pose moved by delta (a Length vector); the heading
// is unchanged.
func (p Pose) Translate(delta vec.Vector2) Pose {
	return At(p.Position.Add(delta), p.Orientation)
}

// RotateBy returns the pose with the heading turned by angle; the position
// is unchanged.
func (p Pose) RotateBy(angle unitgo.Quantity) Pose {
	return At(p.Position, p.Orientation.Add(angle))
}

// DistanceTo returns the euclidean distance between two pose positions.
func (p Pose) DistanceTo(o Pose) unitgo.Quantity {
	return p.Position.DistanceTo(o.Position)
}

// AngleTo returns the field-relative direction from p's position to o's.
func (p Pose) AngleTo(o Pose) unitgo.Quantity {
	return p.Position.AngleTo(o.Position)
}

// Advance integrates a velocity over dt and returns the resulting pose:
// position plus v·dt, heading plus ω·dt. First-order integration; callers
// that need arc-exact odometry keep dt small.
func (p Pose) Advance(v VelocityPose, dt unitgo.Quantity) Pose {
	mustDim("advance", dt, unitgo.Second.Dimension())
	return At(
		p.Position.Add(v.Velocity.Mul(dt)),
		p.Orientation.Add(v.AngularVelocity.Mul(dt)),
	)
}

// String renders the pose as "(x, y) @ <heading>".
func (p Pose) String() string {
	return fmt.Sprintf("%s @ %s", p.Position, p.Orientation)
}

// VelocityPose is the first derivative of a Pose: a linear velocity vector
// and an angular velocity.
type VelocityPose struct {
	Velocity        vec.Vector2
	AngularVelocity unitgo.Quantity
}

// NewVelocity returns the velocity pose (x, y, ω). x and y must be
// LinearVelocities and ω an AngularVelocity.
func NewVelocity(x, y, angular unitgo.Quantity) VelocityPose {
	mustDim("velocity pose", angular, unitgo.RadianPerSecond.Dimension())
	return VelocityPose{Velocity: vec.NewVelocity(x, y), AngularVelocity: angular}
}

// Advance integrates an acceleration over dt and returns the resulting
// velocity pose.
func (v VelocityPose) Advance(a AccelerationPose, dt unitgo.Quantity) VelocityPose {
	mustDim("advance", dt, unitgo.Second.Dimension())
	next := v.Velocity.Add(a.Acceleration.Mul(dt))
	return NewVelocity(next.X, next.Y, v.AngularVelocity.Add(a.AngularAcceleration.Mul(dt)))
}

// Speed returns the magnitude of the linear velocity.
func (v VelocityPose) Speed() unitgo.Quantity {
	return v.Velocity.Magnitude()
}

func (v VelocityPose) String() string {
	return fmt.Sprintf("%s @ %s", v.Velocity, v.AngularVelocity)
}

// AccelerationPose is the second derivative of a Pose: a linear acceleration
// vector and an angular acceleration.
type AccelerationPose struct {
	Acceleration        vec.Vector2
	AngularAcceleration unitgo.Quantity
}

// NewAcceleration returns the acceleration pose (x, y, α). x and y must be
// LinearAccelerations and α an AngularAcceleration.
func NewAcceleration(x, y, angular unitgo.Quantity) AccelerationPose {
	mustDim("acceleration pose", angular, unitgo.RadianPerSecondSq.Dimension())
	return AccelerationPose{Acceleration: vec.NewAcceleration(x, y), AngularAcceleration: angular}
}

func (a AccelerationPose) String() string {
	return fmt.Sprintf("%s @ %s", a.Acceleration, a.AngularAcceleration)
}

func mustDim(op string, q unitgo.Quantity, d unitgo.Dimension) {
	if q.Dimension() != d {
		panic(&unitgo.DimensionMismatchError{Op: op, Left: q.Dimension(), Right: d})
	}
}
