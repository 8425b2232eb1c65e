package unitgo

import "math"

// Angle units. The radian is the canonical angle; degree and rotation are
// linear multiples. Angular rates are declared per derivative the same way
// the linear rates are.
var (
	Radian   = MustNewUnit("Angle", "rad", Dim(0, 0, 0, 0, 1, 0, 0, 0))
	Degree   = ScaledUnit("Degree", "deg", Radian.Of(math.Pi/180))
	Rotation = ScaledUnit("Rotation", "rot", Radian.Of(2*math.Pi))

	RadianPerSecond   = MustNewUnit("AngularVelocity", "radps", Dim(0, 0, -1, 0, 1, 0, 0, 0))
	DegreePerSecond   = ScaledUnit("DegreePerSecond", "degps", Degree.One().Div(Second.One()))
	RotationPerSecond = ScaledUnit("RotationPerSecond", "rps", Rotation.One().Div(Second.One()))
	RotationPerMinute = ScaledUnit("RotationPerMinute", "rpm", Rotation.One().Div(Minute.One()))

	RadianPerSecondSq   = MustNewUnit("AngularAcceleration", "radps2", Dim(0, 0, -2, 0, 1, 0, 0, 0))
	DegreePerSecondSq   = ScaledUnit("DegreePerSecondSq", "degps2", DegreePerSecond.One().Div(Second.One()))
	RotationPerSecondSq = ScaledUnit("RotationPerSecondSq", "rps2", RotationPerSecond.One().Div(Second.One()))
	RotationPerMinuteSq = ScaledUnit("RotationPerMinuteSq", "rpm2", RotationPerMinute.One().Div(Minute.One()))

	RadianPerSecondCb   = MustNewUnit("AngularJerk", "radps3", Dim(0, 0, -3, 0, 1, 0, 0, 0))
	DegreePerSecondCb   = ScaledUnit("DegreePerSecondCb", "degps3", DegreePerSecondSq.One().Div(Second.One()))
	RotationPerSecondCb = ScaledUnit("RotationPerSecondCb", "rps3", RotationPerSecondSq.One().Div(Second.One()))
	RotationPerMinuteCb = ScaledUnit("RotationPerMinuteCb", "rpm3", RotationPerMinuteSq.One().Div(Minute.One()))
)

// Radians returns v rad as an Angle quantity (standard orientation,
// counterclockwise from the x axis).
func Radians(v float64) Quantity { return Radian.Of(v) }

// Degrees returns v° as an Angle quantity (standard orientation).
func Degrees(v float64) Quantity { return Degree.Of(v) }

// Rotations returns v full turns as an Angle quantity.
func Rotations(v float64) Quantity { return Rotation.Of(v) }

// RadiansPerSecond returns v rad/s as an AngularVelocity quantity.
func RadiansPerSecond(v float64) Quantity { return RadianPerSecond.Of(v) }

// DegreesPerSecond returns v °/s as an AngularVelocity quantity.
func DegreesPerSecond(v float64) Quantity { return DegreePerSecond.Of(v) }

// RPM returns v rotations per minute as an AngularVelocity quantity.
func RPM(v float64) Quantity { return RotationPerMinute.Of(v) }

// ToRadians returns q expressed in radians.
func ToRadians(q Quantity) float64 { return Radian.From(q) }

// ToDegrees returns q expressed in degrees.
func ToDegrees(q Quantity) float64 { return Degree.From(q) }

// ToRotations returns q expressed in full turns.
func ToRotations(q Quantity) float64 { return Rotation.From(q) }

func mustAngle(op string, q Quantity) {
	if q.d != Radian.dim {
		panic(&DimensionMismatchError{Op: op, Left: q.d, Right: Radian.dim})
	}
}

// Sin returns the sine of an Angle quantity.
func Sin(q Quantity) float64 {
	mustAngle("sin", q)
	return math.Sin(q.v)
}

// Cos returns the cosine of an Angle quantity.
func Cos(q Quantity) float64 {
	mustAngle("cos", q)
	return math.Cos(q.v)
}

// Tan returns the tangent of an Angle quantity.
func Tan(q Quantity) float64 {
	mustAngle("tan", q)
	return math.Tan(q.v)
}

// Asin returns the arc sine of v as an Angle quantity.
func Asin(v float64) Quantity { return Radians(math.Asin(v)) }

// Acos returns the arc cosine of v as an Angle quantity.
func Acos(v float64) Quantity { return Radians(math.Acos(v)) }

// Atan returns the arc tangent of v as an Angle quantity.
func Atan(v float64) Quantity { return Radians(math.Atan(v)) }

// Atan2 returns the arc tangent of y/x as an Angle quantity, using the
// operand signs to pick the quadrant. y and x must be isomorphic (any
// dimension; the ratio is what matters).
func Atan2(y, x Quantity) Quantity {
	y.mustMatch("atan2", x)
	return Radians(math.Atan2(y.v, x.v))
}

// pmod returns the positive remainder of x mod y for y > 0, in [0, y).
func pmod(x, y float64) float64 {
	r := math.Mod(x, y)
	if r < 0 {
		r += y
	}
	return r
}

// Constrain360 normalizes an Angle into [0, 2π): -15° becomes 345°.
func Constrain360(q Quantity) Quantity {
	mustAngle("constrain360", q)
	return Radians(pmod(q.v, 2*math.Pi))
}

// Constrain180 normalizes an Angle into (-180°, 180°], applying a
// half-rotation shift on both sides of the modulo to recenter the range.
func Constrain180(q Quantity) Quantity {
	mustAngle("constrain180", q)
	r := pmod(q.v+math.Pi, 2*math.Pi)
	if r == 0 {
		r = 2 * math.Pi
	}
	return Radians(r - math.Pi)
}

// Bearing is a compass bearing: an angle measured clockwise from north.
// It is a restricted type, producible only through the Compass* constructors
// (and Neg), so a bearing can never silently slip into standard-orientation
// arithmetic. Standard converts it through the fixed identity
// standard = 90° - compass.
type Bearing struct {
	rad float64 // compass radians, clockwise from north
}

// CompassRadians returns the bearing of v compass radians.
func CompassRadians(v float64) Bearing { return Bearing{rad: v} }

// CompassDegrees returns the bearing of v compass degrees.
func CompassDegrees(v float64) Bearing { return Bearing{rad: v * math.Pi / 180} }

// CompassRotations returns the bearing of v compass turns.
func CompassRotations(v float64) Bearing { return Bearing{rad: v * 2 * math.Pi} }

// BearingOf returns the bearing equivalent to a standard-orientation Angle.
func BearingOf(standard Quantity) Bearing {
	mustAngle("bearing", standard)
	return Bearing{rad: math.Pi/2 - standard.v}
}

// Neg negates the compass value: Neg of 15° compass is -15° compass,
// which is 105° in standard orientation.
func (b Bearing) Neg() Bearing { return Bearing{rad: -b.rad} }

// Standard returns the bearing as a standard-orientation Angle quantity
// (counterclockwise from the x axis): 90° - compass.
func (b Bearing) Standard() Quantity {
	return Radians(math.Pi/2 - b.rad)
}

// Radians returns the compass value in radians.
func (b Bearing) Radians() float64 { return b.rad }

// Degrees returns the compass value in degrees.
func (b Bearing) Degrees() float64 { return b.rad * 180 / math.Pi }

// Rotations returns the compass value in full turns.
func (b Bearing) Rotations() float64 { return b.rad / (2 * math.Pi) }

// ToCompassDegrees returns a standard-orientation Angle expressed in compass
// degrees.
func ToCompassDegrees(standard Quantity) float64 {
	return BearingOf(standard).Degrees()
}

// ToCompassRadians returns a standard-orientation Angle expressed in compass
// radians.
func ToCompassRadians(standard Quantity) float64 {
	return BearingOf(standard).Radians()
}
