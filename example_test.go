package unitgo_test

import (
	"fmt"

	"github.com/hupe1980/unitgo"
)

func Example() {
	x := unitgo.Meters(2).Add(unitgo.Feet(3))
	v := x.Div(unitgo.Seconds(2))

	fmt.Printf("%.4f m\n", unitgo.ToMeters(x))
	fmt.Printf("%.4f mps\n", unitgo.ToMetersPerSecond(v))
	// Output:
	// 2.9144 m
	// 1.4572 mps
}

func ExampleScaledUnit() {
	furlong := unitgo.ScaledUnit("Furlong", "fur", unitgo.Meters(201.168))

	d := furlong.Of(3)
	fmt.Printf("%.3f m\n", unitgo.ToMeters(d))
	fmt.Printf("%.0f fur\n", furlong.From(d))
	// Output:
	// 603.504 m
	// 3 fur
}

func ExampleConstrain360() {
	a := unitgo.Constrain360(unitgo.Degrees(-15))

	fmt.Printf("%.0f deg\n", unitgo.ToDegrees(a))
	// Output:
	// 345 deg
}

func ExampleCompassDegrees() {
	b := unitgo.CompassDegrees(15)

	fmt.Printf("compass %.0f deg is standard %.0f deg\n", b.Degrees(), unitgo.ToDegrees(b.Standard()))
	// Output:
	// compass 15 deg is standard 75 deg
}
