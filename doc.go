// Package unitgo provides dimensional analysis for motion-control code.
//
// A Quantity is a float64 magnitude stored in canonical SI base units and
// tagged with a rational exponent vector over eight base dimensions (mass,
// length, time, current, angle, temperature, luminosity, amount). Arithmetic
// composes exponent vectors automatically, so multiplying a Length by an
// inverse Time yields a LinearVelocity without any manual bookkeeping, and
// adding meters to seconds is impossible without an immediate, typed failure.
//
// # Quick Start
//
//	x := unitgo.Meters(2)
//	y := unitgo.Feet(3)
//	sum := x.Add(y)                  // ≈ 2.9144 m, still a Length
//	v := sum.Div(unitgo.Seconds(2))  // LinearVelocity
//	fmt.Println(v)                   // "1.4572 mps"
//
//	unitgo.Meters(1).Add(unitgo.Seconds(1)) // panics: *DimensionMismatchError
//
// # Safety Model
//
// The original design enforces dimensional consistency at compile time with
// value-parameterized types. Go cannot express rational type parameters, so
// this package carries the exponent vector at runtime (one comparable array
// alongside the magnitude) and fails fast instead: operations that require
// isomorphic operands (Add, Sub, comparisons, Convert) panic with a typed
// *DimensionMismatchError at the offending call site, the same convention
// gonum uses for shape mismatches. Compatible and Check pre-validate when a
// recoverable error is preferred. Mul and Div never fail; they compose any
// two dimensions.
//
// # Units
//
// A Unit binds a name, a display symbol, an exponent vector and a scale.
// One primary unit per dimension is registered for name resolution; scaled
// siblings (kilometer, inch, rpm, ...) are declared as multiples and share
// the primary's registration:
//
//	Furlong := unitgo.ScaledUnit("Furlong", "fur", unitgo.Meters(201.168))
//	d := Furlong.Of(3)         // Length, 603.504 m internally
//	f := Furlong.From(d)       // 3
//
// Declaring a second primary unit for an already-claimed dimension is
// rejected with *DuplicateUnitError: the first declaration wins, always.
//
// Since Go has no user-defined literal suffixes, every common unit also has
// a named constructor (Meters, Inches, Degrees, MetersPerSecond, ...) and an
// extractor (ToMeters, ToDegrees, ...).
//
// # Rendering
//
// Quantities print as "<magnitude> <symbol>" when their exponent vector has
// a registered name, and as the raw magnitude followed by a dimension string
// ("1.5_m_s^-1") otherwise.
//
// # Subpackages
//
//   - vec:       2D/3D vectors with Quantity components
//   - pose:      position/velocity/acceleration poses for planar robots
//   - sensor:    TinyGo driver adapters producing typed quantities
//   - telemetry: line-oriented rendering of quantities to serial ports
//   - testutil:  seeded random dimensions and quantities for tests
package unitgo
