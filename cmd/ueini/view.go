package main

import (
	"fmt"

	"github.com/signadot/ueini/encode"
	"github.com/signadot/ueini/format"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := append(cfg.encOpts(cc.Out, format.INIFormat), encode.EncodeMerge(cfg.Merge))
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
