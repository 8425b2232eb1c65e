// Package telemetry streams dimensioned quantities over a serial link as
// human-readable lines, one labeled reading per line.
//
// The Port abstraction decouples the line format from the transport: Open
// returns a native serial port (github.com/tarm/serial), tests substitute
// an in-memory buffer, and a dashboard on the other end of the wire only
// ever sees text like "x: 1.5 m".
package telemetry
