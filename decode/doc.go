// Package decode adapts the standard encoding/xml token stream to the
// event model, so existing documents can be fed back through a writer.
//
// It is a bridge to the standard decoder, not a parser of its own: the
// standard decoder's namespace handling applies, so prefixed names are
// emitted in resolved form.
//
// # Example
//
//	rd := decode.NewReader(f, decode.WithDropSpace())
//	w := writer.NewWithIndent(out, ' ', 2)
//	for {
//	    ev, err := rd.ReadEvent()
//	    if err != nil {
//	        return err
//	    }
//	    if _, ok := ev.(events.EOF); ok {
//	        break
//	    }
//	    if err := w.WriteEvent(ev); err != nil {
//	        return err
//	    }
//	}
package decode
