package sensor

import (
	"fmt"

	"tinygo.org/x/drivers"

	"github.com/hupe1980/unitgo"
)

// VL53L1X time-of-flight constants. The sensor reports distance as a uint16
// millimeter count and saturates at 8190 for out-of-range targets.
const (
	rangeFinderAddr  = 0x29
	rangeResultIndex = 0x0096 // final crosstalk-corrected range, mm
	rangeSaturation  = 8190
)

// DistanceFromMillimeters converts a raw millimeter count into a Length.
// The second result reports whether the reading was in range: saturated
// readings are capped at the sensor maximum and flagged out of range.
func DistanceFromMillimeters(raw uint16) (unitgo.Quantity, bool) {
	if raw >= rangeSaturation {
		return unitgo.Millimeters(rangeSaturation), false
	}
	return unitgo.Millimeters(float64(raw)), true
}

// Ranger reads one raw distance sample in millimeters.
type Ranger interface {
	ReadMillimeters() (uint16, error)
}

// VL53L1XRanger reads range results from a VL53L1X over I2C. The sensor must
// already be ranging continuously; this type only fetches the latest result
// register. It uses 16-bit register indexes, which go through Tx rather than
// the 8-bit register helpers.
type VL53L1XRanger struct {
	bus  drivers.I2C
	addr uint16
}

// NewVL53L1XRanger returns a ranger on the default VL53L1X address.
func NewVL53L1XRanger(bus drivers.I2C) *VL53L1XRanger {
	return &VL53L1XRanger{bus: bus, addr: rangeFinderAddr}
}

// ReadMillimeters fetches the latest range result in millimeters.
func (r *VL53L1XRanger) ReadMillimeters() (uint16, error) {
	var buf [2]byte
	index := [2]byte{byte(rangeResultIndex >> 8), byte(rangeResultIndex)}
	if err := r.bus.Tx(r.addr, index[:], buf[:]); err != nil {
		return 0, fmt.Errorf("sensor: range read: %w", err)
	}
	return uint16(buf[0])<<8 | uint16(buf[1]), nil
}

// RangeFinder turns raw Ranger samples into Lengths.
type RangeFinder struct {
	ranger Ranger
	logger *unitgo.Logger
}

// RangeFinderOption configures a RangeFinder.
type RangeFinderOption func(*RangeFinder)

// WithRangeLogger sets the logger for out-of-range readings. Pass nil to
// disable logging.
func WithRangeLogger(l *unitgo.Logger) RangeFinderOption {
	return func(f *RangeFinder) {
		if l == nil {
			l = unitgo.NoopLogger()
		}
		f.logger = l
	}
}

// NewRangeFinder returns a RangeFinder over the given Ranger.
func NewRangeFinder(r Ranger, optFns ...RangeFinderOption) *RangeFinder {
	f := &RangeFinder{
		ranger: r,
		logger: unitgo.NoopLogger(),
	}
	for _, fn := range optFns {
		fn(f)
	}
	return f
}

// Distance reads one sample. The second result is false when the target was
// out of range; the returned Length is then the sensor maximum.
func (f *RangeFinder) Distance() (unitgo.Quantity, bool, error) {
	raw, err := f.ranger.ReadMillimeters()
	if err != nil {
		return unitgo.Quantity{}, false, err
	}
	d, ok := DistanceFromMillimeters(raw)
	if !ok {
		f.logger.Debug("range reading saturated", "raw_mm", raw)
	}
	return d, ok, nil
}
