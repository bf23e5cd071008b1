// Package writer serializes markup events to a byte sink, one event at a
// time, optionally pretty-printing with newline and indent between
// markup-only events.
//
// Two writer variants share one dispatch table: Writer blocks on an
// io.Writer, ContextWriter passes a context through to a Sink on every
// write. For the same event sequence and indent configuration the two
// produce byte-identical output.
//
// The writer trusts the caller's event sequence: it does not check that
// start and end tags balance, and it never buffers or reorders events. A
// failed sink write aborts the in-flight event and may leave a truncated
// fragment in the sink; the writer itself remains usable.
//
// # Example
//
//	w := writer.NewWithIndent(&buf, ' ', 4)
//	start := events.NewStart("user").WithAttrs(events.Attr{Key: "id", Value: "7"})
//	w.WriteEvent(start)
//	w.WriteEvent(events.NewText("alice"))
//	w.WriteEvent(start.ToEnd())
//
// # Related Packages
//
//   - github.com/signadot/xml-format/go-xml/events - the event model
//   - github.com/signadot/xml-format/go-xml/decode - produce events from documents
package writer
