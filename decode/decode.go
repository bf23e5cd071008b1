package decode

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/xml-format/go-xml/events"
)

// EventReader yields events from a source.
type EventReader interface {
	ReadEvent() (events.Event, error)
}

// ReadOption configures Reader behavior.
type ReadOption func(*readOpts)

type readOpts struct {
	dropSpace bool // skip whitespace-only character data
	selfClose bool // collapse empty start/end pairs into Empty events
}

// WithDropSpace skips character data consisting only of whitespace, which
// is what a re-indenting formatter wants: the writer inserts its own line
// breaks, and whitespace-only text would otherwise force inline output.
func WithDropSpace() ReadOption {
	return func(opts *readOpts) {
		opts.dropSpace = true
	}
}

// WithSelfClose collapses an element with no content into a single Empty
// event. The standard decoder reports <tag/> and <tag></tag> identically,
// so both forms come out self-closed.
func WithSelfClose() ReadOption {
	return func(opts *readOpts) {
		opts.selfClose = true
	}
}

// Reader adapts an encoding/xml token stream to events.
type Reader struct {
	d       *xml.Decoder
	opts    *readOpts
	pending []events.Event
	done    bool
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader, opts ...ReadOption) *Reader {
	readOpts := &readOpts{}
	for _, opt := range opts {
		opt(readOpts)
	}
	d := xml.NewDecoder(r)
	d.Strict = false
	return &Reader{d: d, opts: readOpts}
}

// ReadEvent returns the next event. At the end of input it returns
// events.EOF{} with a nil error, and keeps doing so on subsequent calls.
func (r *Reader) ReadEvent() (events.Event, error) {
	if len(r.pending) > 0 {
		ev := r.pending[0]
		r.pending = r.pending[1:]
		return ev, nil
	}
	if r.done {
		return events.EOF{}, nil
	}
	for {
		tok, err := r.next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return events.EOF{}, nil
		}
		ev, err := r.event(tok)
		if err != nil {
			return nil, err
		}
		if ev == nil {
			continue
		}
		return ev, nil
	}
}

// next returns the next raw token, or nil at the end of input.
func (r *Reader) next() (xml.Token, error) {
	tok, err := r.d.Token()
	if err == io.EOF {
		r.done = true
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return tok, nil
}

// event converts one token, returning nil for tokens that produce no
// event under the configured options.
func (r *Reader) event(tok xml.Token) (events.Event, error) {
	switch t := tok.(type) {
	case xml.StartElement:
		return r.startEvent(t)
	case xml.EndElement:
		return events.NewEnd(name(t.Name)), nil
	case xml.CharData:
		if r.opts.dropSpace && len(bytes.TrimSpace(t)) == 0 {
			return nil, nil
		}
		return events.NewText(string(t)), nil
	case xml.Comment:
		return events.NewComment(string(t)), nil
	case xml.ProcInst:
		if t.Target == "xml" {
			return events.DeclFromContent(append([]byte("xml "), t.Inst...)), nil
		}
		return events.NewPI(t.Target + " " + string(t.Inst)), nil
	case xml.Directive:
		if d, ok := strings.CutPrefix(string(t), "DOCTYPE "); ok {
			return events.NewDocType(d), nil
		}
		// other directives (<!ENTITY ...> etc.) have no event mapping
		return nil, nil
	default:
		return nil, nil
	}
}

// startEvent converts a start element, collapsing an immediately
// following end element into a self-closed event when configured.
func (r *Reader) startEvent(t xml.StartElement) (events.Event, error) {
	start := events.NewStart(name(t.Name))
	for _, a := range t.Attr {
		start.PushAttr(events.Attr{Key: name(a.Name), Value: a.Value})
	}
	if !r.opts.selfClose {
		return start, nil
	}
	next, err := r.next()
	if err != nil {
		return nil, err
	}
	if next == nil {
		return start, nil
	}
	if end, ok := next.(xml.EndElement); ok && name(end.Name) == name(t.Name) {
		return events.EmptyFromContent(start.Bytes(), len(start.Name())), nil
	}
	// converting next may recurse and queue its own lookahead; the event
	// for next must come before those
	mark := len(r.pending)
	ev, err := r.event(next)
	if err != nil {
		return nil, err
	}
	if ev != nil {
		rest := append([]events.Event{ev}, r.pending[mark:]...)
		r.pending = append(r.pending[:mark], rest...)
	}
	return start, nil
}

func name(n xml.Name) string {
	if n.Space != "" {
		return n.Space + ":" + n.Local
	}
	return n.Local
}
