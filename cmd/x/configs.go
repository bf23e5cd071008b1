package main

import (
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Indent  int  `cli:"name=indent aliases=i desc='indent width in spaces (default 2)'"`
	Tabs    bool `cli:"name=tabs desc='indent with tabs instead of spaces'"`
	Color   bool `cli:"name=color desc='force color output'"`
	NoColor bool `cli:"name=no-color desc='disable color output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// useColor resolves the color flags: explicit flags win, otherwise color
// is on when writing to a terminal.
func (cfg *MainConfig) useColor(cc *cli.Context) bool {
	if cfg.NoColor {
		return false
	}
	if cfg.Color {
		return true
	}
	f, ok := cc.Out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) fillWidth() (byte, int) {
	if cfg.Tabs {
		return '\t', 1
	}
	w := cfg.Indent
	if w <= 0 {
		w = 2
	}
	return ' ', w
}

type FmtConfig struct {
	*MainConfig
	Fmt *cli.Command
}

type MinConfig struct {
	*MainConfig

	KeepSpace bool `cli:"name=keep-space aliases=s desc='keep whitespace-only text'"`

	Min *cli.Command
}

type EventsConfig struct {
	*MainConfig
	Events *cli.Command
}
