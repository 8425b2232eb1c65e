package unitgo

import "math"

// Math helpers over quantities. Helpers that combine two quantities require
// isomorphic operands and keep the left operand's dimension; Pow and Root
// compose exponent vectors through the dimensional algebra.

// Abs returns the absolute value of q.
func Abs(q Quantity) Quantity {
	return Quantity{v: math.Abs(q.v), d: q.d}
}

// Min returns the smaller of two isomorphic quantities.
func Min(a, b Quantity) Quantity {
	if a.Less(b) {
		return a
	}
	return b
}

// Max returns the larger of two isomorphic quantities.
func Max(a, b Quantity) Quantity {
	if a.Greater(b) {
		return a
	}
	return b
}

// Sgn returns the sign of q as -1, 0 or +1.
func Sgn(q Quantity) float64 {
	switch {
	case q.v > 0:
		return 1
	case q.v < 0:
		return -1
	default:
		return 0
	}
}

// Pow returns q raised to the integer power n. The exponent vector is
// multiplied by n elementwise.
func Pow(q Quantity, n int) Quantity {
	return Quantity{v: math.Pow(q.v, float64(n)), d: q.d.Pow(R(n))}
}

// Square returns q².
func Square(q Quantity) Quantity { return Pow(q, 2) }

// Cube returns q³.
func Cube(q Quantity) Quantity { return Pow(q, 3) }

// Root returns the n-th root of q. The exponent vector is divided by n
// elementwise, which may produce fractional exponents, e.g. Root(Length, 2)
// yields length^(1/2).
func Root(q Quantity, n int) Quantity {
	return Quantity{v: math.Pow(q.v, 1/float64(n)), d: q.d.Root(R(n))}
}

// Sqrt returns the square root of q.
func Sqrt(q Quantity) Quantity { return Root(q, 2) }

// Cbrt returns the cube root of q.
func Cbrt(q Quantity) Quantity { return Root(q, 3) }

// Hypot returns sqrt(a² + b²) without composing dimensions: the operands
// must be isomorphic and the result keeps their dimension.
func Hypot(a, b Quantity) Quantity {
	a.mustMatch("hypot", b)
	return Quantity{v: math.Hypot(a.v, b.v), d: a.d}
}

// Mod returns the floating-point remainder of a/b with the sign of a.
// The operands must be isomorphic.
func Mod(a, b Quantity) Quantity {
	a.mustMatch("mod", b)
	return Quantity{v: math.Mod(a.v, b.v), d: a.d}
}

// Rem returns the IEEE 754 remainder of a/b. The operands must be
// isomorphic.
func Rem(a, b Quantity) Quantity {
	a.mustMatch("rem", b)
	return Quantity{v: math.Remainder(a.v, b.v), d: a.d}
}

// Copysign returns a with the sign of b. The operands may differ in
// dimension; only b's sign is consulted.
func Copysign(a, b Quantity) Quantity {
	return Quantity{v: math.Copysign(a.v, b.v), d: a.d}
}

// Signbit reports whether q is negative or negative zero.
func Signbit(q Quantity) bool {
	return math.Signbit(q.v)
}

// Clamp limits q to the closed range [lo, hi]. All three quantities must be
// isomorphic.
func Clamp(q, lo, hi Quantity) Quantity {
	q.mustMatch("clamp", lo)
	q.mustMatch("clamp", hi)
	return Quantity{v: math.Min(math.Max(q.v, lo.v), hi.v), d: q.d}
}

// CeilTo rounds q up to the nearest multiple of step. The operands must be
// isomorphic.
func CeilTo(q, step Quantity) Quantity {
	q.mustMatch("ceil", step)
	return Quantity{v: math.Ceil(q.v/step.v) * step.v, d: q.d}
}

// FloorTo rounds q down to the nearest multiple of step. The operands must
// be isomorphic.
func FloorTo(q, step Quantity) Quantity {
	q.mustMatch("floor", step)
	return Quantity{v: math.Floor(q.v/step.v) * step.v, d: q.d}
}

// TruncTo rounds q toward zero to the nearest multiple of step. The
// operands must be isomorphic.
func TruncTo(q, step Quantity) Quantity {
	q.mustMatch("trunc", step)
	return Quantity{v: math.Trunc(q.v/step.v) * step.v, d: q.d}
}

// RoundTo rounds q half away from zero to the nearest multiple of step.
// The operands must be isomorphic.
func RoundTo(q, step Quantity) Quantity {
	q.mustMatch("round", step)
	return Quantity{v: math.Round(q.v/step.v) * step.v, d: q.d}
}
