package unitgo

// Unit is a declared, named unit of measure: a name, a display symbol, an
// exponent vector and the scale of one unit expressed in canonical base
// units. Units are plain values created once at startup; they are never
// mutated afterwards.
//
// Exactly one unit per distinct dimension is primary (registered in the name
// resolution registry); every other unit of that dimension is a pure linear
// rescaling of the primary one and carries only its conversion factor.
// Temperature's affine Celsius/Fahrenheit conversions deliberately do not fit
// this model and live in temperature.go instead.
type Unit struct {
	name   string
	symbol string
	dim    Dimension
	scale  float64
}

// Name returns the declared type name, e.g. "LinearVelocity".
func (u Unit) Name() string { return u.name }

// Symbol returns the display suffix, e.g. "mps".
func (u Unit) Symbol() string { return u.symbol }

// Dimension returns the unit's exponent vector.
func (u Unit) Dimension() Dimension { return u.dim }

// One returns the canonical constant "one of this unit" as a Quantity.
func (u Unit) One() Quantity {
	return Quantity{v: u.scale, d: u.dim}
}

// Of constructs a Quantity of v units, the Go stand-in for the literal
// suffix: Meter.Of(5) is the original's 5_m.
func (u Unit) Of(v float64) Quantity {
	return Quantity{v: v * u.scale, d: u.dim}
}

// From returns the magnitude of q expressed in this unit. q must be
// isomorphic to the unit's dimension.
func (u Unit) From(q Quantity) float64 {
	return q.Convert(u.One())
}

// String renders the unit as its symbol.
func (u Unit) String() string { return u.symbol }

// NewUnit declares a primary unit: a new named type for the given exponent
// vector with scale 1.0, registered as the canonical name for that
// dimension. Registering a dimension twice returns *DuplicateUnitError.
func NewUnit(name, symbol string, d Dimension) (Unit, error) {
	u := Unit{name: name, symbol: symbol, dim: d, scale: 1.0}
	if err := defaultRegistry.register(u); err != nil {
		return Unit{}, err
	}
	return u, nil
}

// MustNewUnit is like NewUnit but panics on duplicate registration.
// The built-in catalog is declared with it.
func MustNewUnit(name, symbol string, d Dimension) Unit {
	u, err := NewUnit(name, symbol, d)
	if err != nil {
		panic(err)
	}
	return u
}

// ScaledUnit declares a derived unit as a named multiple of already-declared
// units, e.g. kilometer as Meter.Of(1000). It creates no registry entry:
// the dimension's canonical name stays with the primary unit, and the scaled
// sibling only captures its conversion factor.
func ScaledUnit(name, symbol string, multiple Quantity) Unit {
	return Unit{name: name, symbol: symbol, dim: multiple.d, scale: multiple.v}
}

// Prefix is a metric prefix applied to a base unit.
type Prefix struct {
	Name   string
	Symbol string
	Factor float64
}

// The standard SI prefix set generated for prefixed unit families.
var (
	Tera  = Prefix{Name: "Tera", Symbol: "T", Factor: 1e12}
	Giga  = Prefix{Name: "Giga", Symbol: "G", Factor: 1e9}
	Mega  = Prefix{Name: "Mega", Symbol: "M", Factor: 1e6}
	Kilo  = Prefix{Name: "Kilo", Symbol: "k", Factor: 1e3}
	Centi = Prefix{Name: "Centi", Symbol: "c", Factor: 1e-2}
	Milli = Prefix{Name: "Milli", Symbol: "m", Factor: 1e-3}
	Micro = Prefix{Name: "Micro", Symbol: "u", Factor: 1e-6}
	Nano  = Prefix{Name: "Nano", Symbol: "n", Factor: 1e-9}

	metricPrefixes = []Prefix{Tera, Giga, Mega, Kilo, Centi, Milli, Micro, Nano}
)

// Prefixed declares the scaled unit p applied to base with symbol
// p.Symbol+base.Symbol, e.g. Prefixed(Kilo, Second) has symbol "ksec" and
// scale 1000 s. The generated name is mechanical (prefix name + base name):
// since primary units are named after their dimension, Prefixed(Kilo, Second)
// is named "Kilotime" and Prefixed(Kilo, MeterPerSecond) "KilolinearVelocity".
// The symbol is the stable identity; catalog units that deserve a household
// name (Kilometer, Millisecond, Millivolt, ...) declare it with ScaledUnit.
func Prefixed(p Prefix, base Unit) Unit {
	return ScaledUnit(p.Name+lowerFirst(base.name), p.Symbol+base.symbol, base.One().Scale(p.Factor))
}

// MetricPrefixes declares the full SI prefix family of base, in the fixed
// order tera, giga, mega, kilo, centi, milli, micro, nano.
func MetricPrefixes(base Unit) []Unit {
	out := make([]Unit, 0, len(metricPrefixes))
	for _, p := range metricPrefixes {
		out = append(out, Prefixed(p, base))
	}
	return out
}

// MetricPrefixSquares declares the squared SI prefix family of a linear
// base: each entry is the prefixed base multiplied by itself, so the kilo
// entry of the meter family has symbol "km2" and scale 1e6. Same fixed
// order as MetricPrefixes.
func MetricPrefixSquares(base Unit) []Unit {
	out := make([]Unit, 0, len(metricPrefixes))
	for _, p := range metricPrefixes {
		u := Prefixed(p, base)
		out = append(out, ScaledUnit("Square"+u.name, u.symbol+"2", u.One().Mul(u.One())))
	}
	return out
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
