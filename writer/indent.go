package writer

import "bytes"

// indentation tracks a writer's pretty-printing state: the nesting depth
// of open elements and whether the next write should be preceded by a line
// break. It belongs to exactly one writer and is mutated on every event.
type indentation struct {
	shouldLineBreak bool
	unit            []byte
	buf             []byte
	depth           int
}

func newIndentation(fill byte, width int) *indentation {
	return &indentation{unit: bytes.Repeat([]byte{fill}, width)}
}

// grow records one more open element.
func (i *indentation) grow() {
	i.depth++
	i.buf = append(i.buf, i.unit...)
}

// shrink records a closed element, saturating at depth zero. An end event
// below depth zero is a caller contract violation; saturating keeps the
// indent width from wrapping around.
func (i *indentation) shrink() {
	if i.depth == 0 {
		return
	}
	i.depth--
	i.buf = i.buf[:len(i.buf)-len(i.unit)]
}

// current returns the indent bytes for the present depth.
func (i *indentation) current() []byte { return i.buf }
