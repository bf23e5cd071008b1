package events

// Decl is the xml declaration. A writer wraps it in "<?" and "?>".
type Decl struct {
	raw []byte
}

func (*Decl) isEvent() {}

// NewDecl builds an xml declaration from its pseudo-attributes. encoding
// and standalone are omitted when empty.
func NewDecl(version, encoding, standalone string) *Decl {
	buf := append([]byte(`xml version="`), version...)
	buf = append(buf, '"')
	if encoding != "" {
		buf = append(buf, ` encoding="`...)
		buf = append(buf, encoding...)
		buf = append(buf, '"')
	}
	if standalone != "" {
		buf = append(buf, ` standalone="`...)
		buf = append(buf, standalone...)
		buf = append(buf, '"')
	}
	return &Decl{raw: buf}
}

// DeclFromContent wraps pre-rendered declaration content, "xml" target
// included.
func DeclFromContent(d []byte) *Decl {
	return &Decl{raw: d}
}

// Bytes returns the content.
func (e *Decl) Bytes() []byte { return e.raw }
