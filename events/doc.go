// Package events defines the event model consumed by the writer package.
//
// An event is one discrete unit of markup: an element boundary, character
// data, or a document-level construct. Events hold their content
// pre-escaped; a writer adds only the surrounding delimiters.
//
// # Example
//
//	start := events.NewStart("user").WithAttrs(events.Attr{Key: "id", Value: "7"})
//	end := start.ToEnd()
//	// feed start, events.NewText("alice"), end to a writer
//
// # Related Packages
//
//   - github.com/signadot/xml-format/go-xml/writer - serialize events to a sink
//   - github.com/signadot/xml-format/go-xml/decode - produce events from documents
package events
