package main

import (
	"fmt"

	"github.com/signadot/ueini/encode"
	"github.com/signadot/ueini/format"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out, format.JSONFormat)
	for _, file := range inputs(args) {
		doc, err := getConfigFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		if err := encode.Encode(doc, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
