package main

import (
	"fmt"

	"github.com/signadot/ueini/query"
	"github.com/signadot/ueini/token"

	"github.com/scott-cotton/cli"
)

func queryFiles(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	for _, file := range inputs(args[1:]) {
		doc, err := getConfigFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		entries, err := query.Select(doc, q)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", file, err)
		}
		for _, e := range entries {
			if cfg.Section {
				if _, err := fmt.Fprintf(cc.Out, "[%s]\t", e.Section); err != nil {
					return err
				}
			}
			it := e.Token().Clone()
			token.Terminate(it, cfg.NL)
			if err := it.Write(cc.Out, cfg.NL); err != nil {
				return err
			}
		}
	}
	return nil
}
