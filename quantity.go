package unitgo

import (
	"fmt"
	"math"
)

// Quantity is a physical quantity: a float64 magnitude stored in canonical
// base units (meter, second, radian, kelvin, ...) tagged with its rational
// exponent vector. The magnitude never carries a hidden scale factor; all
// scaling happens in unit constructors before the Quantity exists.
//
// Quantity has value semantics. It is small, stack-resident and never shared,
// so there are no concurrency concerns.
//
// Operations that require isomorphic operands (Add, Sub, comparisons,
// Convert) panic with *DimensionMismatchError on incompatible dimensions.
// This is the runtime stand-in for what the type system cannot express;
// see the package documentation.
type Quantity struct {
	v float64
	d Dimension
}

// New returns a Quantity with the given magnitude, interpreted in the
// canonical base units of dimension d.
func New(v float64, d Dimension) Quantity {
	return Quantity{v: v, d: d}
}

// Scalar returns a dimensionless Quantity.
func Scalar(v float64) Quantity {
	return Quantity{v: v, d: Dimensionless}
}

// Internal returns the raw magnitude in canonical base units.
func (q Quantity) Internal() float64 {
	return q.v
}

// Dimension returns the exponent vector of q.
func (q Quantity) Dimension() Dimension {
	return q.d
}

// Compatible reports whether a and b are isomorphic: their exponent vectors
// are component-wise equal after reduction, so they interconvert freely
// without rescaling.
func Compatible(a, b Quantity) bool {
	return a.d == b.d
}

// Check returns a *DimensionMismatchError if a and b are not isomorphic,
// nil otherwise. Use it to pre-validate before calling panicking operations.
func Check(a, b Quantity) error {
	if a.d != b.d {
		return &DimensionMismatchError{Op: "check", Left: a.d, Right: b.d}
	}
	return nil
}

func (q Quantity) mustMatch(op string, o Quantity) {
	if q.d != o.d {
		panic(&DimensionMismatchError{Op: op, Left: q.d, Right: o.d})
	}
}

// Convert returns how many ref units q represents: Internal()/ref.Internal().
// ref must be isomorphic to q. A zero-magnitude ref yields IEEE Inf or NaN;
// that is accepted float semantics, not guarded.
func (q Quantity) Convert(ref Quantity) float64 {
	q.mustMatch("convert", ref)
	return q.v / ref.v
}

// In returns the magnitude of q expressed in unit u.
// u must have the same dimension as q.
func (q Quantity) In(u Unit) float64 {
	return q.Convert(u.One())
}

// Add returns q + o. The operands must be isomorphic; the result keeps the
// left operand's dimension.
func (q Quantity) Add(o Quantity) Quantity {
	q.mustMatch("add", o)
	return Quantity{v: q.v + o.v, d: q.d}
}

// Sub returns q - o. The operands must be isomorphic.
func (q Quantity) Sub(o Quantity) Quantity {
	q.mustMatch("sub", o)
	return Quantity{v: q.v - o.v, d: q.d}
}

// Neg returns -q.
func (q Quantity) Neg() Quantity {
	return Quantity{v: -q.v, d: q.d}
}

// Mul returns the product q * o. The result's exponent vector is the
// elementwise sum of the operand vectors; any operand dimensions are allowed.
func (q Quantity) Mul(o Quantity) Quantity {
	return Quantity{v: q.v * o.v, d: q.d.Mul(o.d)}
}

// Div returns the quotient q / o. The result's exponent vector is the
// elementwise difference of the operand vectors.
func (q Quantity) Div(o Quantity) Quantity {
	return Quantity{v: q.v / o.v, d: q.d.Div(o.d)}
}

// Scale returns q scaled by a plain scalar; the dimension is unchanged.
func (q Quantity) Scale(k float64) Quantity {
	return Quantity{v: q.v * k, d: q.d}
}

// DivScalar returns q divided by a plain scalar; the dimension is unchanged.
func (q Quantity) DivScalar(k float64) Quantity {
	return Quantity{v: q.v / k, d: q.d}
}

// SetScalar assigns a bare scalar to q. Permitted only for dimensionless
// quantities; assigning to a dimensioned quantity panics with
// *InvalidAssignmentError.
func (q *Quantity) SetScalar(v float64) {
	if !q.d.IsDimensionless() {
		panic(&InvalidAssignmentError{Dimension: q.d})
	}
	q.v = v
}

// Float returns the magnitude of a dimensionless quantity as a plain
// float64. It panics with *DimensionMismatchError if q carries a dimension.
func (q Quantity) Float() float64 {
	if !q.d.IsDimensionless() {
		panic(&DimensionMismatchError{Op: "float", Left: q.d, Right: Dimensionless})
	}
	return q.v
}

// Equal reports q == o with IEEE float equality. Operands must be isomorphic.
func (q Quantity) Equal(o Quantity) bool {
	q.mustMatch("equal", o)
	return q.v == o.v
}

// Less reports q < o. Operands must be isomorphic.
func (q Quantity) Less(o Quantity) bool {
	q.mustMatch("less", o)
	return q.v < o.v
}

// LessEq reports q <= o. Operands must be isomorphic.
func (q Quantity) LessEq(o Quantity) bool {
	q.mustMatch("lesseq", o)
	return q.v <= o.v
}

// Greater reports q > o. Operands must be isomorphic.
func (q Quantity) Greater(o Quantity) bool {
	q.mustMatch("greater", o)
	return q.v > o.v
}

// GreaterEq reports q >= o. Operands must be isomorphic.
func (q Quantity) GreaterEq(o Quantity) bool {
	q.mustMatch("greatereq", o)
	return q.v >= o.v
}

// Cmp returns -1 if q < o, +1 if q > o and 0 otherwise (NaN operands fall
// through to 0, per IEEE ordering). Operands must be isomorphic.
func (q Quantity) Cmp(o Quantity) int {
	q.mustMatch("cmp", o)
	switch {
	case q.v < o.v:
		return -1
	case q.v > o.v:
		return 1
	default:
		return 0
	}
}

// IsNaN reports whether the magnitude is NaN.
func (q Quantity) IsNaN() bool {
	return math.IsNaN(q.v)
}

// Cast reinterprets the raw magnitude of q as dimension d without any
// rescaling. It is the explicit, unchecked escape hatch: no validation is
// performed and the caller takes full responsibility for semantic
// correctness. Do not confuse it with Convert, which never changes dimension.
func Cast(q Quantity, d Dimension) Quantity {
	return Quantity{v: q.v, d: d}
}

// String renders q for humans. When the registry has a named unit for q's
// exponent vector the magnitude is rescaled to that unit and rendered as
// "<magnitude> <symbol>"; otherwise the raw magnitude is followed by the
// dimension string, e.g. "1.5_m_s^-1". Dimensionless quantities render as
// the bare magnitude.
func (q Quantity) String() string {
	if u, ok := LookupName(q.d); ok {
		if u.symbol == "" {
			return fmt.Sprintf("%g", q.v/u.scale)
		}
		return fmt.Sprintf("%g %s", q.v/u.scale, u.symbol)
	}
	if q.d.IsDimensionless() {
		return fmt.Sprintf("%g", q.v)
	}
	return fmt.Sprintf("%g%s", q.v, q.d)
}
