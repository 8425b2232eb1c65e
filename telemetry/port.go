package telemetry

import (
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"
)

// Port is a serial transport. Implementations include the native serial
// port returned by Open and in-memory fakes for tests.
type Port interface {
	io.ReadWriteCloser

	// Flush pushes any buffered data out the wire.
	Flush() error
}

// Config holds serial port configuration.
type Config struct {
	// Device path, e.g. "/dev/ttyACM0" or "COM3".
	Device string

	// Baud rate. USB CDC links ignore it.
	Baud int

	// ReadTimeout for reads; zero blocks.
	ReadTimeout time.Duration
}

// DefaultConfig returns the configuration used by the competition dashboard
// link: 115200 baud with a 100ms read timeout.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 100 * time.Millisecond,
	}
}

// nativePort wraps the tarm/serial implementation.
type nativePort struct {
	port *serial.Port
}

// Open opens a native serial port.
func Open(cfg *Config) (Port, error) {
	if cfg == nil {
		return nil, fmt.Errorf("telemetry: config cannot be nil")
	}

	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("telemetry: open %s: %w", cfg.Device, err)
	}
	return &nativePort{port: port}, nil
}

func (p *nativePort) Read(b []byte) (int, error) {
	return p.port.Read(b)
}

func (p *nativePort) Write(b []byte) (int, error) {
	return p.port.Write(b)
}

func (p *nativePort) Close() error {
	return p.port.Close()
}

// Flush drains the driver's input buffer; writes are unbuffered.
func (p *nativePort) Flush() error {
	return p.port.Flush()
}
