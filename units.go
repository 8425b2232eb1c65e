package unitgo

// The built-in catalog. Exactly one primary unit per physical dimension is
// registered for name resolution; every sibling is a ScaledUnit over the
// primary one. All declarations run during package init, before any user
// code touches the registry.
var (
	// Number is the dimensionless quantity. It renders as the bare
	// magnitude and is the only dimension that accepts SetScalar.
	Number  = MustNewUnit("Number", "", Dimensionless)
	Percent = ScaledUnit("Percent", "%", Number.Of(0.01))

	Kilogram = MustNewUnit("Mass", "kg", Dim(1, 0, 0, 0, 0, 0, 0, 0))
	Gram     = ScaledUnit("Gram", "g", Kilogram.Of(1e-3))
	Pound    = ScaledUnit("Pound", "lb", Gram.Of(453.6))

	Second      = MustNewUnit("Time", "sec", Dim(0, 0, 1, 0, 0, 0, 0, 0))
	Millisecond = ScaledUnit("Millisecond", "msec", Second.Of(1e-3))
	Microsecond = ScaledUnit("Microsecond", "usec", Second.Of(1e-6))
	Nanosecond  = ScaledUnit("Nanosecond", "nsec", Second.Of(1e-9))
	Minute      = ScaledUnit("Minute", "min", Second.Of(60))
	Hour        = ScaledUnit("Hour", "hr", Minute.Of(60))
	Day         = ScaledUnit("Day", "day", Hour.Of(24))

	Meter      = MustNewUnit("Length", "m", Dim(0, 1, 0, 0, 0, 0, 0, 0))
	Kilometer  = ScaledUnit("Kilometer", "km", Meter.Of(1e3))
	Centimeter = ScaledUnit("Centimeter", "cm", Meter.Of(1e-2))
	Millimeter = ScaledUnit("Millimeter", "mm", Meter.Of(1e-3))
	Micrometer = ScaledUnit("Micrometer", "um", Meter.Of(1e-6))
	Nanometer  = ScaledUnit("Nanometer", "nm", Meter.Of(1e-9))
	Inch       = ScaledUnit("Inch", "in", Centimeter.Of(2.54))
	Foot       = ScaledUnit("Foot", "ft", Inch.Of(12))
	Yard       = ScaledUnit("Yard", "yd", Foot.Of(3))
	Mile       = ScaledUnit("Mile", "mi", Foot.Of(5280))
	// Tile is one field tile of the original competition robot, 600 mm.
	Tile = ScaledUnit("Tile", "tile", Millimeter.Of(600))

	SquareMeter      = MustNewUnit("Area", "m2", Dim(0, 2, 0, 0, 0, 0, 0, 0))
	SquareKilometer  = ScaledUnit("SquareKilometer", "km2", Kilometer.One().Mul(Kilometer.One()))
	SquareCentimeter = ScaledUnit("SquareCentimeter", "cm2", Centimeter.One().Mul(Centimeter.One()))
	SquareMillimeter = ScaledUnit("SquareMillimeter", "mm2", Millimeter.One().Mul(Millimeter.One()))
	SquareInch       = ScaledUnit("SquareInch", "in2", Inch.One().Mul(Inch.One()))

	MeterPerSecond = MustNewUnit("LinearVelocity", "mps", Dim(0, 1, -1, 0, 0, 0, 0, 0))
	MeterPerHour   = ScaledUnit("MeterPerHour", "mph", Meter.One().Div(Hour.One()))
	InchPerSecond  = ScaledUnit("InchPerSecond", "inps", Inch.One().Div(Second.One()))
	MilePerHour    = ScaledUnit("MilePerHour", "miph", Mile.One().Div(Hour.One()))

	MeterPerSecondSq = MustNewUnit("LinearAcceleration", "mps2", Dim(0, 1, -2, 0, 0, 0, 0, 0))
	MeterPerHourSq   = ScaledUnit("MeterPerHourSq", "mph2", MeterPerHour.One().Div(Hour.One()))
	InchPerSecondSq  = ScaledUnit("InchPerSecondSq", "inps2", InchPerSecond.One().Div(Second.One()))
	MilePerHourSq    = ScaledUnit("MilePerHourSq", "miph2", MilePerHour.One().Div(Hour.One()))

	MeterPerSecondCb = MustNewUnit("LinearJerk", "mps3", Dim(0, 1, -3, 0, 0, 0, 0, 0))
	MeterPerHourCb   = ScaledUnit("MeterPerHourCb", "mph3", MeterPerHourSq.One().Div(Hour.One()))
	InchPerSecondCb  = ScaledUnit("InchPerSecondCb", "inps3", InchPerSecondSq.One().Div(Second.One()))
	MilePerHourCb    = ScaledUnit("MilePerHourCb", "miph3", MilePerHourSq.One().Div(Hour.One()))

	// Curvature keeps the original exponent vector: pure inverse length.
	Curvature = MustNewUnit("Curvature", "radpm", Dim(0, -1, 0, 0, 0, 0, 0, 0))

	KilogramSquareMeter = MustNewUnit("Inertia", "kgm2", Dim(1, 2, 0, 0, 0, 0, 0, 0))

	Newton = MustNewUnit("Force", "N", Dim(1, 1, -2, 0, 0, 0, 0, 0))

	NewtonMeter = MustNewUnit("Torque", "Nm", Dim(1, 2, -2, 0, 0, 0, 0, 0))

	Watt = MustNewUnit("Power", "watt", Dim(1, 2, -3, 0, 0, 0, 0, 0))

	Ampere = MustNewUnit("Current", "amp", Dim(0, 0, 0, 1, 0, 0, 0, 0))

	Coulomb = MustNewUnit("Charge", "coulomb", Dim(0, 0, 1, 1, 0, 0, 0, 0))

	Volt      = MustNewUnit("Voltage", "volt", Dim(1, 2, -3, -1, 0, 0, 0, 0))
	Millivolt = ScaledUnit("Millivolt", "mvolt", Volt.Of(1e-3))

	Ohm     = MustNewUnit("Resistance", "ohm", Dim(1, 2, -3, -2, 0, 0, 0, 0))
	Kiloohm = ScaledUnit("Kiloohm", "kohm", Ohm.Of(1e3))

	Siemens = MustNewUnit("Conductance", "siemen", Dim(-1, -2, 3, 2, 0, 0, 0, 0))

	Candela = MustNewUnit("Luminosity", "candela", Dim(0, 0, 0, 0, 0, 0, 1, 0))

	Mole = MustNewUnit("Moles", "mol", Dim(0, 0, 0, 0, 0, 0, 0, 1))
)

// Full SI prefix families, one per family the original catalog generates.
// Symbols compose mechanically ("ksec", "umps", "Gohm"); the Area family
// squares the prefixed meter, so its kilo entry is 1e6 m². The handful of
// prefixed units with household names (Kilometer, Millisecond, Millivolt,
// Kiloohm, ...) are also declared individually above.
var (
	SecondPrefixes           = MetricPrefixes(Second)
	MeterPrefixes            = MetricPrefixes(Meter)
	SquareMeterPrefixes      = MetricPrefixSquares(Meter)
	MeterPerSecondPrefixes   = MetricPrefixes(MeterPerSecond)
	MeterPerHourPrefixes     = MetricPrefixes(MeterPerHour)
	MeterPerSecondSqPrefixes = MetricPrefixes(MeterPerSecondSq)
	MeterPerSecondCbPrefixes = MetricPrefixes(MeterPerSecondCb)
	VoltPrefixes             = MetricPrefixes(Volt)
	OhmPrefixes              = MetricPrefixes(Ohm)
	SiemensPrefixes          = MetricPrefixes(Siemens)
)

// Named constructors, the stand-in for literal suffixes (Go has none).
// Every other declared unit is reachable through Unit.Of and Unit.From.

// Kilograms returns v kg as a Mass quantity.
func Kilograms(v float64) Quantity { return Kilogram.Of(v) }

// Grams returns v g as a Mass quantity.
func Grams(v float64) Quantity { return Gram.Of(v) }

// Pounds returns v lb as a Mass quantity.
func Pounds(v float64) Quantity { return Pound.Of(v) }

// Seconds returns v s as a Time quantity.
func Seconds(v float64) Quantity { return Second.Of(v) }

// Milliseconds returns v ms as a Time quantity.
func Milliseconds(v float64) Quantity { return Millisecond.Of(v) }

// Minutes returns v min as a Time quantity.
func Minutes(v float64) Quantity { return Minute.Of(v) }

// Hours returns v hr as a Time quantity.
func Hours(v float64) Quantity { return Hour.Of(v) }

// Meters returns v m as a Length quantity.
func Meters(v float64) Quantity { return Meter.Of(v) }

// Kilometers returns v km as a Length quantity.
func Kilometers(v float64) Quantity { return Kilometer.Of(v) }

// Centimeters returns v cm as a Length quantity.
func Centimeters(v float64) Quantity { return Centimeter.Of(v) }

// Millimeters returns v mm as a Length quantity.
func Millimeters(v float64) Quantity { return Millimeter.Of(v) }

// Inches returns v in as a Length quantity.
func Inches(v float64) Quantity { return Inch.Of(v) }

// Feet returns v ft as a Length quantity.
func Feet(v float64) Quantity { return Foot.Of(v) }

// Miles returns v mi as a Length quantity.
func Miles(v float64) Quantity { return Mile.Of(v) }

// MetersPerSecond returns v m/s as a LinearVelocity quantity.
func MetersPerSecond(v float64) Quantity { return MeterPerSecond.Of(v) }

// InchesPerSecond returns v in/s as a LinearVelocity quantity.
func InchesPerSecond(v float64) Quantity { return InchPerSecond.Of(v) }

// MilesPerHour returns v mi/h as a LinearVelocity quantity.
func MilesPerHour(v float64) Quantity { return MilePerHour.Of(v) }

// MetersPerSecondSq returns v m/s² as a LinearAcceleration quantity.
func MetersPerSecondSq(v float64) Quantity { return MeterPerSecondSq.Of(v) }

// Newtons returns v N as a Force quantity.
func Newtons(v float64) Quantity { return Newton.Of(v) }

// NewtonMeters returns v N·m as a Torque quantity.
func NewtonMeters(v float64) Quantity { return NewtonMeter.Of(v) }

// Watts returns v W as a Power quantity.
func Watts(v float64) Quantity { return Watt.Of(v) }

// Amperes returns v A as a Current quantity.
func Amperes(v float64) Quantity { return Ampere.Of(v) }

// Volts returns v V as a Voltage quantity.
func Volts(v float64) Quantity { return Volt.Of(v) }

// ToMeters returns q expressed in meters.
func ToMeters(q Quantity) float64 { return Meter.From(q) }

// ToMillimeters returns q expressed in millimeters.
func ToMillimeters(q Quantity) float64 { return Millimeter.From(q) }

// ToInches returns q expressed in inches.
func ToInches(q Quantity) float64 { return Inch.From(q) }

// ToFeet returns q expressed in feet.
func ToFeet(q Quantity) float64 { return Foot.From(q) }

// ToSeconds returns q expressed in seconds.
func ToSeconds(q Quantity) float64 { return Second.From(q) }

// ToMetersPerSecond returns q expressed in m/s.
func ToMetersPerSecond(q Quantity) float64 { return MeterPerSecond.From(q) }
