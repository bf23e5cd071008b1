package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "x").
		WithSynopsis("x [opts] command [opts] [files]").
		WithDescription("x is a tool for working with xml documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return xMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			MinCommand(cfg),
			EventsCommand(cfg))
}

func xMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("fmt").
		WithAliases("f").
		WithSynopsis("fmt [files]").
		WithDescription("pretty-print xml documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return xfmt(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

func MinCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MinConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Min, "min").
		WithAliases("m").
		WithSynopsis("min [files]").
		WithDescription("minify xml documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return xmin(cfg, cc, args)
		})
}

func EventsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EventsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Events, "events").
		WithAliases("e", "ev").
		WithSynopsis("events [files]").
		WithDescription("dump the decoded event stream, one event per line").
		WithRun(func(cc *cli.Context, args []string) error {
			return xevents(cfg, cc, args)
		})
}
