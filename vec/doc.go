// Package vec provides 2D and 3D vectors whose components are dimensioned
// quantities.
//
// A vector's components are always isomorphic to each other, so vector
// algebra inherits the same dimensional guarantees scalar quantities have:
// adding a position vector to a velocity vector panics, dotting a force
// vector with a position vector yields a torque-dimensioned scalar, and
// normalizing any vector yields a dimensionless direction.
//
//	p := vec.NewPosition(unitgo.Meters(3), unitgo.Meters(4))
//	p.Magnitude()             // 5 m
//	p.Theta()                 // atan2(4, 3) as an Angle
//	p.Normalize()             // dimensionless (0.6, 0.8)
//
// The Position, Velocity, Acceleration and Force constructors additionally
// pin the component dimension, mirroring the named vector aliases of the
// original motion-control code.
package vec
