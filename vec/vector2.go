package vec

import (
	"fmt"

	"github.com/hupe1980/unitgo"
)

// Vector2 is a two-dimensional vector with dimensioned components. Both
// components always share one exponent vector; every constructor enforces
// that, so methods can assume it.
//
// Vector2 has value semantics, like Quantity.
type Vector2 struct {
	X, Y unitgo.Quantity
}

// New returns the vector (x, y). The components must be isomorphic; mixed
// dimensions panic with *unitgo.DimensionMismatchError.
func New(x, y unitgo.Quantity) Vector2 {
	if !unitgo.Compatible(x, y) {
		panic(&unitgo.DimensionMismatchError{Op: "vec2", Left: x.Dimension(), Right: y.Dimension()})
	}
	return Vector2{X: x, Y: y}
}

// FromPolar returns the vector of the given magnitude pointing along theta
// (a standard-orientation Angle). The magnitude's absolute value is used and
// the direction is normalized into [0, 2π), so a negative magnitude keeps
// pointing along theta rather than flipping.
func FromPolar(magnitude, theta unitgo.Quantity) Vector2 {
	magnitude = unitgo.Abs(magnitude)
	theta = unitgo.Constrain360(theta)
	return Vector2{
		X: magnitude.Scale(unitgo.Cos(theta)),
		Y: magnitude.Scale(unitgo.Sin(theta)),
	}
}

// UnitVector returns the dimensionless direction vector along theta.
func UnitVector(theta unitgo.Quantity) Vector2 {
	return Vector2{
		X: unitgo.Scalar(unitgo.Cos(theta)),
		Y: unitgo.Scalar(unitgo.Sin(theta)),
	}
}

// Add returns v + o componentwise. The vectors must be isomorphic.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X.Add(o.X), Y: v.Y.Add(o.Y)}
}

// Sub returns v - o componentwise. The vectors must be isomorphic.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X.Sub(o.X), Y: v.Y.Sub(o.Y)}
}

// Neg returns -v.
func (v Vector2) Neg() Vector2 {
	return Vector2{X: v.X.Neg(), Y: v.Y.Neg()}
}

// Scale returns v scaled by a plain scalar; the dimension is unchanged.
func (v Vector2) Scale(k float64) Vector2 {
	return Vector2{X: v.X.Scale(k), Y: v.Y.Scale(k)}
}

// Mul returns v scaled by a dimensioned quantity. The component dimension
// composes, e.g. a velocity vector times a Time is a position delta.
func (v Vector2) Mul(q unitgo.Quantity) Vector2 {
	return Vector2{X: v.X.Mul(q), Y: v.Y.Mul(q)}
}

// Div returns v divided by a dimensioned quantity. The component dimension
// composes, e.g. a position delta over a Time is a velocity vector.
func (v Vector2) Div(q unitgo.Quantity) Vector2 {
	return Vector2{X: v.X.Div(q), Y: v.Y.Div(q)}
}

// Dot returns the dot product v · o. The result's dimension is the product
// of the operand dimensions; the operands themselves may differ.
func (v Vector2) Dot(o Vector2) unitgo.Quantity {
	return v.X.Mul(o.X).Add(v.Y.Mul(o.Y))
}

// Cross returns the scalar z component of the cross product v × o.
func (v Vector2) Cross(o Vector2) unitgo.Quantity {
	return v.X.Mul(o.Y).Sub(v.Y.Mul(o.X))
}

// Theta returns the direction of v as a standard-orientation Angle in
// (-π, π].
func (v Vector2) Theta() unitgo.Quantity {
	return unitgo.Atan2(v.Y, v.X)
}

// Magnitude returns the euclidean length of v, keeping the component
// dimension.
func (v Vector2) Magnitude() unitgo.Quantity {
	return unitgo.Hypot(v.X, v.Y)
}

// VectorTo returns the vector from v to o.
func (v Vector2) VectorTo(o Vector2) Vector2 {
	return o.Sub(v)
}

// AngleTo returns the direction from v to o as a standard-orientation Angle.
func (v Vector2) AngleTo(o Vector2) unitgo.Quantity {
	return v.VectorTo(o).Theta()
}

// DistanceTo returns the euclidean distance from v to o.
func (v Vector2) DistanceTo(o Vector2) unitgo.Quantity {
	return v.VectorTo(o).Magnitude()
}

// Normalize returns the dimensionless unit vector pointing along v.
// The zero vector normalizes to NaN components, per IEEE division.
func (v Vector2) Normalize() Vector2 {
	m := v.Magnitude()
	return Vector2{X: v.X.Div(m), Y: v.Y.Div(m)}
}

// RotatedBy returns v rotated counterclockwise by the given Angle.
func (v Vector2) RotatedBy(angle unitgo.Quantity) Vector2 {
	sin, cos := unitgo.Sin(angle), unitgo.Cos(angle)
	return Vector2{
		X: v.X.Scale(cos).Sub(v.Y.Scale(sin)),
		Y: v.X.Scale(sin).Add(v.Y.Scale(cos)),
	}
}

// RotatedTo returns the vector with v's magnitude pointing along the given
// Angle.
func (v Vector2) RotatedTo(angle unitgo.Quantity) Vector2 {
	return FromPolar(v.Magnitude(), angle)
}

// String renders the vector as "(x, y)" with each component rendered the
// way Quantity renders.
func (v Vector2) String() string {
	return fmt.Sprintf("(%s, %s)", v.X, v.Y)
}

func mustComponent(op string, q unitgo.Quantity, d unitgo.Dimension) {
	if q.Dimension() != d {
		panic(&unitgo.DimensionMismatchError{Op: op, Left: q.Dimension(), Right: d})
	}
}

// NewPosition returns the position vector (x, y). Both components must be
// Lengths.
func NewPosition(x, y unitgo.Quantity) Vector2 {
	mustComponent("position", x, unitgo.Meter.Dimension())
	mustComponent("position", y, unitgo.Meter.Dimension())
	return Vector2{X: x, Y: y}
}

// NewVelocity returns the velocity vector (x, y). Both components must be
// LinearVelocities.
func NewVelocity(x, y unitgo.Quantity) Vector2 {
	mustComponent("velocity", x, unitgo.MeterPerSecond.Dimension())
	mustComponent("velocity", y, unitgo.MeterPerSecond.Dimension())
	return Vector2{X: x, Y: y}
}

// NewAcceleration returns the acceleration vector (x, y). Both components
// must be LinearAccelerations.
func NewAcceleration(x, y unitgo.Quantity) Vector2 {
	mustComponent("acceleration", x, unitgo.MeterPerSecondSq.Dimension())
	mustComponent("acceleration", y, unitgo.MeterPerSecondSq.Dimension())
	return Vector2{X: x, Y: y}
}

// NewForce returns the force vector (x, y). Both components must be Forces.
func NewForce(x, y unitgo.Quantity) Vector2 {
	mustComponent("force", x, unitgo.Newton.Dimension())
	mustComponent("force", y, unitgo.Newton.Dimension())
	return Vector2{X: x, Y: y}
}
