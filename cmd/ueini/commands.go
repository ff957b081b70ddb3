package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout); gets the -O suffix if it has no extension",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: ini/i, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "nl",
			Description: "line ending for lines without one: unix, windows, mac, none, auto",
			Type:        cli.NamedFuncOpt(cfg.nlOpt, "(ending)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "ueini").
		WithSynopsis("ueini [opts] command [opts]").
		WithDescription("ueini is a tool for working with Unreal Engine style ini files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ueiniMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			CheckCommand(cfg),
			SectionsCommand(cfg),
			GetCommand(cfg),
			QueryCommand(cfg),
			DumpCommand(cfg),
			DiffCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("view ini files, in color on a terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithOpts(opts...).
		WithSynopsis("check [files]").
		WithDescription("check that files survive a parse and write unchanged").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func SectionsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SectionsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("sections").
		WithAliases("s", "ls").
		WithSynopsis("sections [files]").
		WithDescription("list the sections of ini files").
		WithRun(func(cc *cli.Context, args []string) error {
			return sections(cfg, cc, args)
		})
	cfg.Sections = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <section>[:key] [files]").
		WithDescription("get a section, or the instructions for one key of it").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("query").
		WithAliases("q").
		WithOpts(opts...).
		WithSynopsis("query <expr> [files]").
		WithDescription("select instructions with an expression over Section, Op, Prefix, Key, Value, HasValue, Index").
		WithRun(func(cc *cli.Context, args []string) error {
			return queryFiles(cfg, cc, args)
		})
	cfg.Query = cmd
	return cmd
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("dump").
		WithAliases("d").
		WithSynopsis("dump [files]").
		WithDescription("dump the instructions of ini files as json (or -O yaml)").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
	cfg.Dump = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("di").
		WithOpts(opts...).
		WithSynopsis("diff a b").
		WithDescription("diff ini files").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
