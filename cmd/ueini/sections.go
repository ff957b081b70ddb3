package main

import (
	"fmt"
	"strconv"

	"github.com/scott-cotton/cli"
)

func sections(cfg *SectionsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sections.Parse(cc, args)
	if err != nil {
		return err
	}
	files := inputs(args)
	for _, file := range files {
		doc, err := getConfigFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		for _, s := range doc.Sections {
			name := "[" + s.SectionName() + "]"
			if !s.HasName() {
				name = "(preamble)"
			}
			if len(files) > 1 {
				name = file + ":" + name
			}
			n := strconv.Itoa(len(s.Instructions("")))
			if _, err := fmt.Fprintf(cc.Out, "%s\t%s\n", name, n); err != nil {
				return err
			}
		}
	}
	return nil
}
