package main

import (
	"strings"

	"github.com/signadot/xml-format/go-xml/events"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	TagColor ColorAttr = iota
	AttrColor
	TextColor
	CommentColor
	CDataColor
	PIColor
	DocTypeColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	colors.Map[TagColor] = color.RGB(74, 92, 138).SprintfFunc()
	colors.Map[AttrColor] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[TextColor] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[CommentColor] = color.BlueString
	colors.Map[CDataColor] = color.RGB(198, 198, 46).SprintfFunc()
	colors.Map[PIColor] = color.RGB(168, 0, 196).SprintfFunc()
	colors.Map[DocTypeColor] = color.CyanString
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}

// Event returns ev with its content wrapped in ANSI color. Content is
// opaque bytes to the writer, so a recolored event serializes like the
// original with color codes inside the delimiters.
func (c *Colors) Event(ev events.Event) events.Event {
	switch e := ev.(type) {
	case *events.Start:
		content, nameLen := c.element(e)
		return events.StartFromContent(content, nameLen)
	case *events.Empty:
		content, nameLen := c.element(&e.Start)
		return events.EmptyFromContent(content, nameLen)
	case *events.End:
		return events.NewEnd(c.Get(TagColor)(string(e.Name())))
	case *events.Text:
		return events.TextFromEscaped([]byte(c.Get(TextColor)(string(e.Bytes()))))
	case *events.Comment:
		return events.NewComment(c.Get(CommentColor)(string(e.Bytes())))
	case *events.CData:
		return events.NewCData(c.Get(CDataColor)(string(e.Bytes())))
	case *events.Decl:
		return events.DeclFromContent([]byte(c.Get(PIColor)(string(e.Bytes()))))
	case *events.PI:
		return events.NewPI(c.Get(PIColor)(string(e.Bytes())))
	case *events.DocType:
		return events.NewDocType(c.Get(DocTypeColor)(string(e.Bytes())))
	default:
		return ev
	}
}

func (c *Colors) element(e *events.Start) ([]byte, int) {
	name := c.Get(TagColor)(string(e.Name()))
	rest := string(e.Bytes()[len(e.Name()):])
	if rest != "" {
		rest = c.Get(AttrColor)(rest)
	}
	return []byte(name + rest), len(name)
}
