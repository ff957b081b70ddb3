package main

import (
	"fmt"
	"strings"

	"github.com/signadot/ueini/encode"
	"github.com/signadot/ueini/format"
	"github.com/signadot/ueini/ini"
	"github.com/signadot/ueini/token"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a section argument", cli.ErrUsage)
	}
	name, key, _ := strings.Cut(args[0], ":")
	opts := cfg.encOpts(cc.Out, format.INIFormat)
	found := 0
	for _, file := range inputs(args[1:]) {
		doc, err := getConfigFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		res, n := getSections(doc, name, key, cfg.NL)
		found += n
		if err := encode.Encode(res, cc.Out, opts...); err != nil {
			return err
		}
	}
	if found == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// getSections copies the sections called name, or only their instructions
// for key if it is set, ending every last line so outputs can be joined.
func getSections(doc *ini.Config, name, key string, nl token.LineEnding) (*ini.Config, int) {
	res := ini.New()
	found := 0
	for _, s := range doc.Find(name) {
		if key == "" {
			res.Sections = append(res.Sections, s.Clone())
			found++
			continue
		}
		sub := ini.NewUnnamedSection()
		for _, it := range s.Instructions(key) {
			sub.Tokens = append(sub.Tokens, it.Clone())
		}
		found += len(sub.Tokens)
		res.Sections = append(res.Sections, sub)
	}
	for _, s := range res.Sections {
		s.Terminate(nl)
	}
	return res, found
}
