package unitgo

import "strings"

// Base dimension slots, in the fixed order used everywhere in this package.
const (
	SlotMass = iota
	SlotLength
	SlotTime
	SlotCurrent
	SlotAngle
	SlotTemperature
	SlotLuminosity
	SlotAmount

	numSlots
)

// baseSymbols are the canonical base-unit symbols per slot, used when
// rendering a dimension that has no registered name.
var baseSymbols = [numSlots]string{"kg", "m", "s", "A", "rad", "K", "cd", "mol"}

// Dimension is the rational exponent vector of a quantity: one exponent per
// base dimension in the order mass, length, time, current, angle,
// temperature, luminosity, amount.
//
// A Dimension built through this package is always canonical (every slot
// reduced), so Dimension values are comparable with == and usable as map
// keys. Use NewDimension to canonicalize a hand-built vector.
type Dimension [numSlots]Ratio

// NewDimension canonicalizes every slot of v and returns it as a Dimension.
func NewDimension(v [numSlots]Ratio) Dimension {
	var d Dimension
	for i, r := range v {
		d[i] = r.reduce()
	}
	return d
}

// Dim returns the Dimension with the given integer exponents, in the order
// mass, length, time, current, angle, temperature, luminosity, amount.
func Dim(mass, length, time, current, angle, temperature, luminosity, amount int) Dimension {
	return NewDimension([numSlots]Ratio{
		R(mass), R(length), R(time), R(current),
		R(angle), R(temperature), R(luminosity), R(amount),
	})
}

// Dimensionless is the all-zero exponent vector.
var Dimensionless = Dim(0, 0, 0, 0, 0, 0, 0, 0)

// IsDimensionless reports whether every exponent is zero.
func (d Dimension) IsDimensionless() bool {
	return d == Dimensionless
}

// Mul returns the exponent vector of a product: the elementwise sum.
func (d Dimension) Mul(o Dimension) Dimension {
	var out Dimension
	for i := range d {
		out[i] = d[i].Add(o[i])
	}
	return out
}

// Div returns the exponent vector of a quotient: the elementwise difference.
func (d Dimension) Div(o Dimension) Dimension {
	var out Dimension
	for i := range d {
		out[i] = d[i].Sub(o[i])
	}
	return out
}

// Pow returns the exponent vector of d raised to the rational power r:
// every exponent multiplied by r. Fractional powers are supported, e.g.
// Pow(RQ(1, 2)) yields length^(1/2) from length^1.
func (d Dimension) Pow(r Ratio) Dimension {
	var out Dimension
	for i := range d {
		out[i] = d[i].Mul(r)
	}
	return out
}

// Root returns the exponent vector of the r-th root of d: every exponent
// divided by r. Equivalent to Pow(1/r).
func (d Dimension) Root(r Ratio) Dimension {
	var out Dimension
	for i := range d {
		out[i] = d[i].Div(r)
	}
	return out
}

// String renders the nonzero slots in fixed order as
// "_<symbol>[^num[/den]]", e.g. length^1*time^-1 renders as "_m_s^-1".
func (d Dimension) String() string {
	var sb strings.Builder
	for i, r := range d {
		r = r.reduce()
		if r.IsZero() {
			continue
		}
		sb.WriteByte('_')
		sb.WriteString(baseSymbols[i])
		if r.Num != 1 || r.Den != 1 {
			sb.WriteByte('^')
			sb.WriteString(r.String())
		}
	}
	return sb.String()
}
