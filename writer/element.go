package writer

import "github.com/signadot/xml-format/go-xml/events"

// ElementWriter writes one element and its content as a unit.
type ElementWriter struct {
	w     *Writer
	start *events.Start
}

// Element begins a fluent write of a single element.
//
//	w.Element("user").
//		WithAttrs(events.Attr{Key: "id", Value: "7"}).
//		Text("alice")
func (wr *Writer) Element(name string) *ElementWriter {
	return &ElementWriter{w: wr, start: events.NewStart(name)}
}

// WithAttrs renders the given attributes onto the element in order.
func (ew *ElementWriter) WithAttrs(attrs ...events.Attr) *ElementWriter {
	ew.start.WithAttrs(attrs...)
	return ew
}

// Empty writes the element self-closed.
func (ew *ElementWriter) Empty() error {
	return ew.w.WriteEvent(events.EmptyFromContent(ew.start.Bytes(), len(ew.start.Name())))
}

// Text writes the element with escaped character data as content.
func (ew *ElementWriter) Text(text string) error {
	return ew.Content(func(w *Writer) error {
		return w.WriteEvent(events.NewText(text))
	})
}

// CData writes the element with a character-data block as content.
func (ew *ElementWriter) CData(data string) error {
	return ew.Content(func(w *Writer) error {
		return w.WriteEvent(events.NewCData(data))
	})
}

// Content writes the start tag, invokes fn to write the element's
// children, then writes the matching end tag.
func (ew *ElementWriter) Content(fn func(*Writer) error) error {
	end := ew.start.ToEnd()
	if err := ew.w.WriteEvent(ew.start); err != nil {
		return err
	}
	if err := fn(ew.w); err != nil {
		return err
	}
	return ew.w.WriteEvent(end)
}
