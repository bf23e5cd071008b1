package events

// Text is raw character data. A writer emits its bytes with no wrapper.
type Text struct {
	raw []byte
}

func (*Text) isEvent() {}

// NewText escapes s for use as character data.
func NewText(s string) *Text {
	return &Text{raw: EscapeText(s)}
}

// TextFromEscaped wraps character data that is already escaped.
func TextFromEscaped(d []byte) *Text {
	return &Text{raw: d}
}

// Bytes returns the escaped content.
func (e *Text) Bytes() []byte { return e.raw }

// Comment is a comment. A writer wraps it in "<!--" and "-->". The content
// must not contain "--"; that is the caller's contract.
type Comment struct {
	raw []byte
}

func (*Comment) isEvent() {}

// NewComment creates a comment event with verbatim content.
func NewComment(s string) *Comment {
	return &Comment{raw: []byte(s)}
}

// Bytes returns the content.
func (e *Comment) Bytes() []byte { return e.raw }

// CData is a character-data block. A writer wraps it in "<![CDATA[" and
// "]]>". The content must not contain "]]>"; that is the caller's
// contract.
type CData struct {
	raw []byte
}

func (*CData) isEvent() {}

// NewCData creates a character-data block event with verbatim content.
func NewCData(s string) *CData {
	return &CData{raw: []byte(s)}
}

// Bytes returns the content.
func (e *CData) Bytes() []byte { return e.raw }

// PI is a processing instruction. A writer wraps it in "<?" and "?>".
type PI struct {
	raw []byte
}

func (*PI) isEvent() {}

// NewPI creates a processing instruction event with verbatim content,
// target included.
func NewPI(s string) *PI {
	return &PI{raw: []byte(s)}
}

// Bytes returns the content.
func (e *PI) Bytes() []byte { return e.raw }

// DocType is a document type declaration. A writer wraps it in
// "<!DOCTYPE " and ">".
type DocType struct {
	raw []byte
}

func (*DocType) isEvent() {}

// NewDocType creates a doctype event with verbatim content, root name
// included.
func NewDocType(s string) *DocType {
	return &DocType{raw: []byte(s)}
}

// Bytes returns the content.
func (e *DocType) Bytes() []byte { return e.raw }
