package events

// Attr is a single name="value" attribute on a Start or Empty event. Value
// holds the unescaped text; it is escaped when the attribute is pushed onto
// an event.
type Attr struct {
	Key   string
	Value string
}

// Start opens an element. Its content is a single buffer holding the tag
// name followed by the rendered attributes, with escaping already applied;
// a writer wraps it in "<" and ">".
type Start struct {
	buf     []byte
	nameLen int
}

func (*Start) isEvent() {}

// NewStart creates a start event for the named element. The name is not
// validated; supplying a legal XML name is the caller's contract.
func NewStart(name string) *Start {
	return &Start{buf: []byte(name), nameLen: len(name)}
}

// StartFromContent wraps pre-rendered content: the tag name followed by
// attribute text, already escaped. nameLen is the byte length of the name
// prefix.
func StartFromContent(content []byte, nameLen int) *Start {
	return &Start{buf: content, nameLen: nameLen}
}

// Name returns the tag name portion of the content.
func (e *Start) Name() []byte { return e.buf[:e.nameLen] }

// Bytes returns the full content: name plus rendered attributes.
func (e *Start) Bytes() []byte { return e.buf }

// PushAttr renders one attribute onto the event, escaping its value.
func (e *Start) PushAttr(a Attr) *Start {
	e.buf = append(e.buf, ' ')
	e.buf = append(e.buf, a.Key...)
	e.buf = append(e.buf, '=', '"')
	e.buf = append(e.buf, EscapeAttrValue(a.Value)...)
	e.buf = append(e.buf, '"')
	return e
}

// WithAttrs renders the given attributes onto the event in order.
func (e *Start) WithAttrs(attrs ...Attr) *Start {
	for _, a := range attrs {
		e.PushAttr(a)
	}
	return e
}

// ToEnd derives the matching end event. The name is copied, so the end
// event stays valid if the start event is mutated afterwards.
func (e *Start) ToEnd() *End {
	return &End{name: append([]byte(nil), e.Name()...)}
}

// Empty is a self-closing element. It renders like Start with a "/>"
// close.
type Empty struct {
	Start
}

// NewEmpty creates a self-closing element event.
func NewEmpty(name string) *Empty {
	return &Empty{Start{buf: []byte(name), nameLen: len(name)}}
}

// EmptyFromContent wraps pre-rendered self-closing element content; see
// StartFromContent.
func EmptyFromContent(content []byte, nameLen int) *Empty {
	return &Empty{Start{buf: content, nameLen: nameLen}}
}

// WithAttrs renders the given attributes onto the event in order.
func (e *Empty) WithAttrs(attrs ...Attr) *Empty {
	e.Start.WithAttrs(attrs...)
	return e
}

// End closes an element. A writer wraps its name in "</" and ">".
type End struct {
	name []byte
}

func (*End) isEvent() {}

// NewEnd creates an end event for the named element.
func NewEnd(name string) *End {
	return &End{name: []byte(name)}
}

// Name returns the tag name.
func (e *End) Name() []byte { return e.name }
