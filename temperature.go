package unitgo

// Temperature is the one affine corner of the catalog. The stored magnitude
// is always pure kelvin; Celsius and Fahrenheit are affine (not linear)
// transforms of it, so they must not be modeled as ScaledUnit multiples.
// They get dedicated conversion pairs that carry the additive offset.
//
// The Fahrenheit formula is K = (F-32)*5/9 + 273.15. Earlier revisions of
// the original code used a 273.5 offset in one of the two conversion
// directions; that was a bug, not a behavior to preserve.
var Kelvin = MustNewUnit("Temperature", "K", Dim(0, 0, 0, 0, 0, 1, 0, 0))

const (
	kelvinOffset     = 273.15
	fahrenheitScale  = 5.0 / 9.0
	fahrenheitOffset = 32.0
)

// Kelvins returns v K as a Temperature quantity.
func Kelvins(v float64) Quantity { return Kelvin.Of(v) }

// ToKelvins returns q expressed in kelvin.
func ToKelvins(q Quantity) float64 { return Kelvin.From(q) }

// FromCelsius returns v °C as a Temperature quantity.
func FromCelsius(v float64) Quantity { return Kelvin.Of(v + kelvinOffset) }

// ToCelsius returns q expressed in degrees Celsius.
func ToCelsius(q Quantity) float64 { return Kelvin.From(q) - kelvinOffset }

// FromFahrenheit returns v °F as a Temperature quantity.
func FromFahrenheit(v float64) Quantity {
	return Kelvin.Of((v-fahrenheitOffset)*fahrenheitScale + kelvinOffset)
}

// ToFahrenheit returns q expressed in degrees Fahrenheit.
func ToFahrenheit(q Quantity) float64 {
	return (Kelvin.From(q)-kelvinOffset)/fahrenheitScale + fahrenheitOffset
}
