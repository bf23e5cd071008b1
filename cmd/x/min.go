package main

import (
	"io"

	"github.com/signadot/xml-format/go-xml/decode"
	"github.com/signadot/xml-format/go-xml/writer"

	"github.com/scott-cotton/cli"
)

func xmin(cfg *MinConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Min.Parse(cc, args)
	if err != nil {
		return err
	}
	run := func(w io.Writer, r io.Reader) error {
		rdOpts := []decode.ReadOption{decode.WithSelfClose()}
		if !cfg.KeepSpace {
			rdOpts = append(rdOpts, decode.WithDropSpace())
		}
		return pump(writer.New(w), decode.NewReader(r, rdOpts...), nil)
	}
	if len(args) == 0 {
		return run(cc.Out, cc.In)
	}
	return eachFile(cc.Out, args, run)
}
