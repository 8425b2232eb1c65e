package unitgo

// Cross-domain helpers between angular quantities and their linear
// analogues. Both directions scale by the radius (half the given diameter)
// and then swap the angle and length exponent slots, so e.g. an
// AngularVelocity becomes a LinearVelocity.

func swapAngleLength(d Dimension) Dimension {
	d[SlotAngle], d[SlotLength] = d[SlotLength], d[SlotAngle]
	return d
}

func mustLength(op string, q Quantity) {
	if q.d != Meter.dim {
		panic(&DimensionMismatchError{Op: op, Left: q.d, Right: Meter.dim})
	}
}

// ToLinear converts an angular quantity to its linear analogue around a
// circle of the given diameter: linear = angular * (diameter / 2), with the
// angle and length exponent slots swapped in the result.
func ToLinear(angular, diameter Quantity) Quantity {
	mustLength("tolinear", diameter)
	return Cast(angular.Scale(diameter.v/2), swapAngleLength(angular.d))
}

// ToAngular converts a linear quantity to its angular analogue around a
// circle of the given diameter: angular = linear / (diameter / 2), with the
// angle and length exponent slots swapped in the result.
func ToAngular(linear, diameter Quantity) Quantity {
	mustLength("toangular", diameter)
	return Cast(linear.DivScalar(diameter.v/2), swapAngleLength(linear.d))
}
