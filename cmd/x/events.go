package main

import (
	"fmt"
	"io"

	"github.com/signadot/xml-format/go-xml/decode"
	"github.com/signadot/xml-format/go-xml/events"

	"github.com/scott-cotton/cli"
)

func xevents(cfg *EventsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Events.Parse(cc, args)
	if err != nil {
		return err
	}
	run := func(w io.Writer, r io.Reader) error {
		return dumpEvents(w, decode.NewReader(r))
	}
	if len(args) == 0 {
		return run(cc.Out, cc.In)
	}
	return eachFile(cc.Out, args, run)
}

func dumpEvents(w io.Writer, rd decode.EventReader) error {
	for {
		ev, err := rd.ReadEvent()
		if err != nil {
			return err
		}
		if _, ok := ev.(events.EOF); ok {
			fmt.Fprintln(w, "Eof")
			return nil
		}
		fmt.Fprintf(w, "%s %q\n", events.Kind(ev), eventContent(ev))
	}
}

func eventContent(ev events.Event) string {
	switch e := ev.(type) {
	case *events.Start:
		return string(e.Bytes())
	case *events.Empty:
		return string(e.Bytes())
	case *events.End:
		return string(e.Name())
	case *events.Text:
		return string(e.Bytes())
	case *events.Comment:
		return string(e.Bytes())
	case *events.CData:
		return string(e.Bytes())
	case *events.Decl:
		return string(e.Bytes())
	case *events.PI:
		return string(e.Bytes())
	case *events.DocType:
		return string(e.Bytes())
	default:
		return ""
	}
}
