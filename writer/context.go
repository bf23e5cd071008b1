package writer

import (
	"context"
	"io"

	"github.com/signadot/xml-format/go-xml/events"
)

// Sink accepts byte slices on behalf of a ContextWriter. A Sink may block
// until the bytes are accepted, or suspend on the provided context and
// complete later. It reports the number of bytes consumed; a short write
// is resumed by the caller with the remaining bytes, so a suspending sink
// picks up exactly where it left off. Failures surface as ordinary errors.
type Sink interface {
	WriteContext(ctx context.Context, p []byte) (int, error)
}

// ContextWriter serializes events to a Sink, passing the caller's context
// through to every sink write. For the same event sequence and indent
// configuration its output is byte-identical to Writer's.
//
// A ContextWriter must not be driven by two concurrent calls at once;
// sequencing is the caller's responsibility.
type ContextWriter struct {
	s      Sink
	indent *indentation
}

// NewContext creates a compact context writer.
func NewContext(s Sink) *ContextWriter {
	return &ContextWriter{s: s}
}

// NewContextWithIndent creates a pretty-printing context writer. Each
// level of element nesting is indented by width copies of fill.
func NewContextWithIndent(s Sink, fill byte, width int) *ContextWriter {
	return &ContextWriter{s: s, indent: newIndentation(fill, width)}
}

// Inner returns the underlying Sink.
func (cw *ContextWriter) Inner() Sink { return cw.s }

// WriteEvent writes one event. If ctx is cancelled mid-event the sink may
// contain a partially written event; no rollback is performed.
func (cw *ContextWriter) WriteEvent(ctx context.Context, ev events.Event) error {
	return writeEvent(ctx, ctxSink{cw.s}, cw.indent, ev)
}

// WriteIndent writes a newline and the indentation for the current depth.
// It does nothing on a writer constructed with NewContext.
func (cw *ContextWriter) WriteIndent(ctx context.Context) error {
	if cw.indent == nil {
		return nil
	}
	return writeIndent(ctx, ctxSink{cw.s}, cw.indent)
}

type ctxSink struct {
	s Sink
}

func (s ctxSink) put(ctx context.Context, p []byte) error {
	for len(p) > 0 {
		n, err := s.s.WriteContext(ctx, p)
		if err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}

// IOSink lifts an io.Writer into a Sink that checks the context before
// each write.
func IOSink(w io.Writer) Sink {
	return ioWriterSink{w: w}
}

type ioWriterSink struct {
	w io.Writer
}

func (s ioWriterSink) WriteContext(ctx context.Context, p []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.w.Write(p)
}
