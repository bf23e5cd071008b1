package writer

import (
	"context"
	"io"

	"github.com/signadot/xml-format/go-xml/events"
)

// Writer serializes events to an io.Writer, blocking on each underlying
// write. The writer owns its destination for its lifetime; nothing else
// may write to it concurrently.
type Writer struct {
	w      io.Writer
	indent *indentation
}

// New creates a compact writer: no indentation or line breaks are ever
// emitted.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// NewWithIndent creates a pretty-printing writer. Each level of element
// nesting is indented by width copies of fill.
func NewWithIndent(w io.Writer, fill byte, width int) *Writer {
	return &Writer{w: w, indent: newIndentation(fill, width)}
}

// Inner returns the underlying io.Writer.
func (wr *Writer) Inner() io.Writer { return wr.w }

// WriteEvent writes one event. A sink failure is returned unchanged; bytes
// already written for the failed event remain in the sink, and the writer
// stays usable for subsequent events.
func (wr *Writer) WriteEvent(ev events.Event) error {
	return writeEvent(context.Background(), ioSink{wr.w}, wr.indent, ev)
}

// WriteIndent writes a newline and the indentation for the current depth,
// for callers injecting raw bytes between events. It does nothing on a
// writer constructed with New.
func (wr *Writer) WriteIndent() error {
	if wr.indent == nil {
		return nil
	}
	return writeIndent(context.Background(), ioSink{wr.w}, wr.indent)
}

type ioSink struct {
	w io.Writer
}

func (s ioSink) put(_ context.Context, p []byte) error {
	_, err := s.w.Write(p)
	return err
}
