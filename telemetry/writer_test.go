package telemetry

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/unitgo"
	"github.com/hupe1980/unitgo/pose"
	"github.com/hupe1980/unitgo/vec"
)

// bufferPort is an in-memory Port for tests.
type bufferPort struct {
	bytes.Buffer
	flushed int
	closed  bool
}

func (p *bufferPort) Flush() error {
	p.flushed++
	return nil
}

func (p *bufferPort) Close() error {
	p.closed = true
	return nil
}

func TestWriteQuantity(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteQuantity("x", unitgo.Meters(1.5)))
	require.NoError(t, w.WriteQuantity("battery", unitgo.Volts(12.1)))

	assert.Equal(t, "x: 1.5 m\nbattery: 12.1 volt\n", buf.String())
}

func TestWriteVectorAndPose(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	v := vec.NewPosition(unitgo.Meters(1), unitgo.Meters(2))
	require.NoError(t, w.WriteVector("pos", v))

	p := pose.New(unitgo.Meters(1), unitgo.Meters(2), unitgo.Radians(0.5))
	require.NoError(t, w.WritePose("odom", p))

	assert.Equal(t, "pos: (1 m, 2 m)\nodom: (1 m, 2 m) @ 0.5 rad\n", buf.String())
}

func TestWriterFlush(t *testing.T) {
	port := &bufferPort{}
	w := NewWriter(port)

	require.NoError(t, w.WriteQuantity("x", unitgo.Meters(1)))
	require.NoError(t, w.Flush())
	assert.Equal(t, 1, port.flushed)

	// Plain writers without Flush are fine too.
	var buf bytes.Buffer
	assert.NoError(t, NewWriter(&buf).Flush())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("wire down")
}

func TestWriterError(t *testing.T) {
	w := NewWriter(failingWriter{}, WithWriteLogger(nil))

	err := w.WriteQuantity("x", unitgo.Meters(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wire down")
}

func TestWriterConcurrentLinesStayWhole(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			return w.WriteQuantity("d", unitgo.Meters(2))
		})
	}
	require.NoError(t, g.Wait())

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	require.Len(t, lines, 16)
	for _, line := range lines {
		assert.Equal(t, "d: 2 m", string(line))
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/dev/ttyACM0")
	assert.Equal(t, "/dev/ttyACM0", cfg.Device)
	assert.Equal(t, 115200, cfg.Baud)
}

func TestOpenRejectsNilConfig(t *testing.T) {
	_, err := Open(nil)
	assert.Error(t, err)
}
