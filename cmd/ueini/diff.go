package main

import (
	"fmt"

	"github.com/signadot/ueini/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getConfigFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return err
	}
	b, err := getConfigFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return err
	}
	switch {
	case cfg.Sem:
		same, err := libdiff.Equivalent(a, b)
		if err != nil {
			return err
		}
		if !same {
			theLog.Info("instructions differ", "a", args[0], "b", args[1])
			return cli.ExitCodeErr(1)
		}
		return nil
	case cfg.Patch:
		p, err := libdiff.MergePatch(a, b)
		if err != nil {
			return err
		}
		if _, err := cc.Out.Write(append(p, '\n')); err != nil {
			return err
		}
		return nil
	}
	lines, err := libdiff.Diff(a, b, cfg.NL)
	if err != nil {
		return err
	}
	if err := libdiff.Format(cc.Out, lines, cfg.All, cfg.colored(cc.Out)); err != nil {
		return err
	}
	if libdiff.Changed(lines) {
		return cli.ExitCodeErr(1)
	}
	return nil
}
