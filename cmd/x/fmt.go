package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/signadot/xml-format/go-xml/debug"
	"github.com/signadot/xml-format/go-xml/decode"
	"github.com/signadot/xml-format/go-xml/events"
	"github.com/signadot/xml-format/go-xml/writer"

	"github.com/scott-cotton/cli"
)

func xfmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	var colors *Colors
	if cfg.useColor(cc) {
		colors = NewColors()
	}
	fill, width := cfg.fillWidth()
	run := func(w io.Writer, r io.Reader) error {
		wr := writer.NewWithIndent(w, fill, width)
		rd := decode.NewReader(r, decode.WithDropSpace(), decode.WithSelfClose())
		return pump(wr, rd, colors)
	}
	if len(args) == 0 {
		return run(cc.Out, cc.In)
	}
	return eachFile(cc.Out, args, run)
}

// pump drains rd into wr, colorizing event content when colors is
// non-nil, and finishes the output with a newline.
func pump(wr *writer.Writer, rd decode.EventReader, colors *Colors) error {
	start := time.Now()
	n := 0
	for {
		ev, err := rd.ReadEvent()
		if err != nil {
			return err
		}
		if debug.Events() {
			debug.Logf("event %s\n", events.Kind(ev))
		}
		if _, ok := ev.(events.EOF); ok {
			break
		}
		n++
		if colors != nil {
			ev = colors.Event(ev)
		}
		if err := wr.WriteEvent(ev); err != nil {
			return err
		}
	}
	if debug.Timing() {
		debug.Logf("wrote %d events in %s\n", n, time.Since(start))
	}
	_, err := wr.Inner().Write([]byte("\n"))
	return err
}

// eachFile runs fn for each named file, with "-" meaning stdin.
func eachFile(w io.Writer, files []string, fn func(io.Writer, io.Reader) error) error {
	for _, file := range files {
		if err := oneFile(w, file, fn); err != nil {
			return err
		}
	}
	return nil
}

func oneFile(w io.Writer, file string, fn func(io.Writer, io.Reader) error) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := fn(w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}
