package writer

import (
	"context"
	"fmt"

	"github.com/signadot/xml-format/go-xml/events"
)

// sink is the single write capability the event dispatch is written
// against. Writer and ContextWriter supply their own implementations, so
// both variants run one dispatch table and emit identical bytes for
// identical event sequences.
type sink interface {
	put(ctx context.Context, p []byte) error
}

var (
	nl           = []byte("\n")
	openStart    = []byte("<")
	openEnd      = []byte("</")
	closeTag     = []byte(">")
	closeEmpty   = []byte("/>")
	openComment  = []byte("<!--")
	closeComment = []byte("-->")
	openCData    = []byte("<![CDATA[")
	closeCData   = []byte("]]>")
	openPI       = []byte("<?")
	closePI      = []byte("?>")
	openDocType  = []byte("<!DOCTYPE ")
)

// writeEvent maps one event to its byte sequence. Start grows the indent
// depth after writing, End shrinks it before writing. Text and CData leave
// shouldLineBreak false so following events stay inline with mixed
// content; every other event sets it.
func writeEvent(ctx context.Context, s sink, ind *indentation, ev events.Event) error {
	nextShouldLineBreak := true
	var err error
	switch e := ev.(type) {
	case *events.Start:
		err = writeWrapped(ctx, s, ind, openStart, e.Bytes(), closeTag)
		if ind != nil {
			ind.grow()
		}
	case *events.End:
		if ind != nil {
			ind.shrink()
		}
		err = writeWrapped(ctx, s, ind, openEnd, e.Name(), closeTag)
	case *events.Empty:
		err = writeWrapped(ctx, s, ind, openStart, e.Bytes(), closeEmpty)
	case *events.Text:
		nextShouldLineBreak = false
		err = s.put(ctx, e.Bytes())
	case *events.Comment:
		err = writeWrapped(ctx, s, ind, openComment, e.Bytes(), closeComment)
	case *events.CData:
		nextShouldLineBreak = false
		err = writeCData(ctx, s, e.Bytes())
	case *events.Decl:
		err = writeWrapped(ctx, s, ind, openPI, e.Bytes(), closePI)
	case *events.PI:
		err = writeWrapped(ctx, s, ind, openPI, e.Bytes(), closePI)
	case *events.DocType:
		err = writeWrapped(ctx, s, ind, openDocType, e.Bytes(), closeTag)
	case events.EOF:
		// end of stream carries no bytes
	default:
		err = &Error{Msg: fmt.Sprintf("unknown event type %T", ev)}
	}
	if ind != nil {
		ind.shouldLineBreak = nextShouldLineBreak
	}
	return err
}

// writeWrapped writes before+value+after, preceded by a newline and the
// current indent when the tracker asks for a line break.
func writeWrapped(ctx context.Context, s sink, ind *indentation, before, value, after []byte) error {
	if ind != nil && ind.shouldLineBreak {
		if err := writeIndent(ctx, s, ind); err != nil {
			return err
		}
	}
	if err := s.put(ctx, before); err != nil {
		return err
	}
	if err := s.put(ctx, value); err != nil {
		return err
	}
	return s.put(ctx, after)
}

func writeCData(ctx context.Context, s sink, value []byte) error {
	if err := s.put(ctx, openCData); err != nil {
		return err
	}
	if err := s.put(ctx, value); err != nil {
		return err
	}
	return s.put(ctx, closeCData)
}

func writeIndent(ctx context.Context, s sink, ind *indentation) error {
	if err := s.put(ctx, nl); err != nil {
		return err
	}
	return s.put(ctx, ind.current())
}
