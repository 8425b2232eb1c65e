package telemetry

import (
	"fmt"
	"io"
	"sync"

	"github.com/hupe1980/unitgo"
	"github.com/hupe1980/unitgo/pose"
	"github.com/hupe1980/unitgo/vec"
)

// Writer renders labeled readings as text lines on an underlying transport.
// It is safe for concurrent use: each line is written atomically.
type Writer struct {
	mu     sync.Mutex
	w      io.Writer
	logger *unitgo.Logger
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithWriteLogger sets the logger for write failures. Pass nil to disable
// logging.
func WithWriteLogger(l *unitgo.Logger) WriterOption {
	return func(w *Writer) {
		if l == nil {
			l = unitgo.NoopLogger()
		}
		w.logger = l
	}
}

// NewWriter returns a Writer over w, typically a Port.
func NewWriter(w io.Writer, optFns ...WriterOption) *Writer {
	tw := &Writer{
		w:      w,
		logger: unitgo.NoopLogger(),
	}
	for _, fn := range optFns {
		fn(tw)
	}
	return tw
}

func (t *Writer) writeLine(label string, value fmt.Stringer) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := fmt.Fprintf(t.w, "%s: %s\n", label, value); err != nil {
		t.logger.Error("telemetry write failed", "label", label, "error", err)
		return fmt.Errorf("telemetry: write %s: %w", label, err)
	}
	return nil
}

// WriteQuantity writes one labeled quantity line, rendered the way Quantity
// renders: rescaled to the dimension's named unit when one is registered.
func (t *Writer) WriteQuantity(label string, q unitgo.Quantity) error {
	return t.writeLine(label, q)
}

// WriteVector writes one labeled 2D vector line.
func (t *Writer) WriteVector(label string, v vec.Vector2) error {
	return t.writeLine(label, v)
}

// WritePose writes one labeled pose line.
func (t *Writer) WritePose(label string, p pose.Pose) error {
	return t.writeLine(label, p)
}

// Flush flushes the underlying transport when it supports flushing and is a
// no-op otherwise.
func (t *Writer) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if f, ok := t.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}
