package events

// Event is one discrete unit of markup handed to a writer. The concrete
// types are Start, End, Empty, Text, Comment, CData, Decl, PI, DocType and
// EOF.
type Event interface {
	isEvent()
}

// EOF signals the end of an event stream. It carries no content and a
// writer emits nothing for it.
type EOF struct{}

func (EOF) isEvent() {}

// Kind returns the name of an event's kind, for diagnostics.
func Kind(ev Event) string {
	switch ev.(type) {
	case *Start:
		return "Start"
	case *End:
		return "End"
	case *Empty:
		return "Empty"
	case *Text:
		return "Text"
	case *Comment:
		return "Comment"
	case *CData:
		return "CData"
	case *Decl:
		return "Decl"
	case *PI:
		return "PI"
	case *DocType:
		return "DocType"
	case EOF:
		return "Eof"
	default:
		return "Unknown"
	}
}
