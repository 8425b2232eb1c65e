// Package sensor adapts raw hardware readings into dimensioned quantities.
//
// Devices speak in counts and millimeters; everything downstream of this
// package speaks in quantities. The I2C-backed types build on the TinyGo
// driver bus interface (tinygo.org/x/drivers), so the same code runs against
// real hardware under TinyGo and against fakes in tests. The conversion
// math is exposed as pure functions for callers that bring their own bus
// handling.
package sensor
