package sensor

import (
	"encoding/binary"
	"fmt"

	"tinygo.org/x/drivers"

	"github.com/hupe1980/unitgo"
	"github.com/hupe1980/unitgo/vec"
)

// ADXL345 register map (the subset this package touches).
const (
	adxl345Addr       = 0x53
	regDeviceID       = 0x00
	regPowerControl   = 0x2D
	regDataFormat     = 0x31
	regDataX0         = 0x32
	adxl345DeviceID   = 0xE5
	powerCtlMeasure   = 0x08
	dataFormatFullRes = 0x08
)

// Gravity is standard gravity, used to convert g-referenced sensor counts
// into accelerations.
var Gravity = unitgo.MetersPerSecondSq(9.80665)

// DefaultCountsPerG is the ADXL345 sensitivity in full-resolution mode:
// 256 counts per g on every range setting.
const DefaultCountsPerG = 256.0

// AccelerationFromCounts converts raw axis counts into a LinearAcceleration
// vector, given the sensor sensitivity in counts per g.
func AccelerationFromCounts(x, y, z int16, countsPerG float64) vec.Vector3 {
	scale := func(c int16) unitgo.Quantity {
		return Gravity.Scale(float64(c) / countsPerG)
	}
	return vec.New3(scale(x), scale(y), scale(z))
}

// Accelerometer reads an ADXL345 over I2C and produces LinearAcceleration
// vectors.
type Accelerometer struct {
	bus        drivers.I2C
	addr       uint8
	countsPerG float64
	logger     *unitgo.Logger
}

// AccelerometerOption configures an Accelerometer.
type AccelerometerOption func(*Accelerometer)

// WithCountsPerG overrides the sensor sensitivity, for parts not running in
// full-resolution mode.
func WithCountsPerG(counts float64) AccelerometerOption {
	return func(a *Accelerometer) {
		a.countsPerG = counts
	}
}

// WithAddress overrides the I2C address, for parts with the SDO pin high.
func WithAddress(addr uint8) AccelerometerOption {
	return func(a *Accelerometer) {
		a.addr = addr
	}
}

// WithAccelLogger sets the logger. Pass nil to disable logging.
func WithAccelLogger(l *unitgo.Logger) AccelerometerOption {
	return func(a *Accelerometer) {
		if l == nil {
			l = unitgo.NoopLogger()
		}
		a.logger = l
	}
}

// NewAccelerometer probes the device ID, switches the part into
// full-resolution measurement mode and returns the ready accelerometer.
func NewAccelerometer(bus drivers.I2C, optFns ...AccelerometerOption) (*Accelerometer, error) {
	a := &Accelerometer{
		bus:        bus,
		addr:       adxl345Addr,
		countsPerG: DefaultCountsPerG,
		logger:     unitgo.NoopLogger(),
	}
	for _, fn := range optFns {
		fn(a)
	}

	var id [1]byte
	if err := bus.ReadRegister(a.addr, regDeviceID, id[:]); err != nil {
		return nil, fmt.Errorf("sensor: accelerometer probe: %w", err)
	}
	if id[0] != adxl345DeviceID {
		return nil, fmt.Errorf("sensor: unexpected accelerometer device id 0x%02X", id[0])
	}

	if err := bus.WriteRegister(a.addr, regDataFormat, []byte{dataFormatFullRes}); err != nil {
		return nil, fmt.Errorf("sensor: accelerometer configure: %w", err)
	}
	if err := bus.WriteRegister(a.addr, regPowerControl, []byte{powerCtlMeasure}); err != nil {
		return nil, fmt.Errorf("sensor: accelerometer power up: %w", err)
	}

	a.logger.Debug("accelerometer configured",
		"addr", a.addr,
		"counts_per_g", a.countsPerG,
	)
	return a, nil
}

// ReadRaw reads one sample of raw axis counts. The part reports each axis
// as a little-endian int16 starting at the X0 register.
func (a *Accelerometer) ReadRaw() (x, y, z int16, err error) {
	var buf [6]byte
	if err := a.bus.ReadRegister(a.addr, regDataX0, buf[:]); err != nil {
		return 0, 0, 0, fmt.Errorf("sensor: accelerometer read: %w", err)
	}
	x = int16(binary.LittleEndian.Uint16(buf[0:2]))
	y = int16(binary.LittleEndian.Uint16(buf[2:4]))
	z = int16(binary.LittleEndian.Uint16(buf[4:6]))
	return x, y, z, nil
}

// Read reads one sample as a LinearAcceleration vector.
func (a *Accelerometer) Read() (vec.Vector3, error) {
	x, y, z, err := a.ReadRaw()
	if err != nil {
		return vec.Vector3{}, err
	}
	return AccelerationFromCounts(x, y, z, a.countsPerG), nil
}

// Standby puts the part back into standby mode.
func (a *Accelerometer) Standby() error {
	if err := a.bus.WriteRegister(a.addr, regPowerControl, []byte{0}); err != nil {
		return fmt.Errorf("sensor: accelerometer standby: %w", err)
	}
	return nil
}
