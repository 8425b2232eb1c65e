package vec

import (
	"fmt"

	"github.com/hupe1980/unitgo"
)

// Vector3 is a three-dimensional vector with dimensioned components, used
// where planar math is not enough (raw accelerometer readings, gravity
// compensation). All three components share one exponent vector.
type Vector3 struct {
	X, Y, Z unitgo.Quantity
}

// New3 returns the vector (x, y, z). The components must be isomorphic.
func New3(x, y, z unitgo.Quantity) Vector3 {
	if !unitgo.Compatible(x, y) || !unitgo.Compatible(x, z) {
		panic(&unitgo.DimensionMismatchError{Op: "vec3", Left: x.Dimension(), Right: y.Dimension()})
	}
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns v + o componentwise. The vectors must be isomorphic.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{X: v.X.Add(o.X), Y: v.Y.Add(o.Y), Z: v.Z.Add(o.Z)}
}

// Sub returns v - o componentwise. The vectors must be isomorphic.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{X: v.X.Sub(o.X), Y: v.Y.Sub(o.Y), Z: v.Z.Sub(o.Z)}
}

// Neg returns -v.
func (v Vector3) Neg() Vector3 {
	return Vector3{X: v.X.Neg(), Y: v.Y.Neg(), Z: v.Z.Neg()}
}

// Scale returns v scaled by a plain scalar.
func (v Vector3) Scale(k float64) Vector3 {
	return Vector3{X: v.X.Scale(k), Y: v.Y.Scale(k), Z: v.Z.Scale(k)}
}

// Mul returns v scaled by a dimensioned quantity; the component dimension
// composes.
func (v Vector3) Mul(q unitgo.Quantity) Vector3 {
	return Vector3{X: v.X.Mul(q), Y: v.Y.Mul(q), Z: v.Z.Mul(q)}
}

// Div returns v divided by a dimensioned quantity; the component dimension
// composes.
func (v Vector3) Div(q unitgo.Quantity) Vector3 {
	return Vector3{X: v.X.Div(q), Y: v.Y.Div(q), Z: v.Z.Div(q)}
}

// Dot returns the dot product v · o.
func (v Vector3) Dot(o Vector3) unitgo.Quantity {
	return v.X.Mul(o.X).Add(v.Y.Mul(o.Y)).Add(v.Z.Mul(o.Z))
}

// Cross returns the cross product v × o. The component dimension of the
// result is the product of the operand dimensions.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y.Mul(o.Z).Sub(v.Z.Mul(o.Y)),
		Y: v.Z.Mul(o.X).Sub(v.X.Mul(o.Z)),
		Z: v.X.Mul(o.Y).Sub(v.Y.Mul(o.X)),
	}
}

// Magnitude returns the euclidean length of v, keeping the component
// dimension.
func (v Vector3) Magnitude() unitgo.Quantity {
	return unitgo.Hypot(unitgo.Hypot(v.X, v.Y), v.Z)
}

// Normalize returns the dimensionless unit vector pointing along v.
func (v Vector3) Normalize() Vector3 {
	m := v.Magnitude()
	return Vector3{X: v.X.Div(m), Y: v.Y.Div(m), Z: v.Z.Div(m)}
}

// XY projects v onto the horizontal plane as a Vector2.
func (v Vector3) XY() Vector2 {
	return Vector2{X: v.X, Y: v.Y}
}

// String renders the vector as "(x, y, z)".
func (v Vector3) String() string {
	return fmt.Sprintf("(%s, %s, %s)", v.X, v.Y, v.Z)
}
