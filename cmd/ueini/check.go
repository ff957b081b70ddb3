package main

import (
	"bytes"
	"fmt"

	"github.com/signadot/ueini/encode"
	"github.com/signadot/ueini/libdiff"
	"github.com/signadot/ueini/parse"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	failed := 0
	for _, file := range inputs(args) {
		ok, err := checkFile(cfg, cc, file)
		if err != nil {
			return err
		}
		if !ok {
			failed++
		}
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkFile(cfg *CheckConfig, cc *cli.Context, file string) (bool, error) {
	d, err := readInput(cc, file)
	if err != nil {
		return false, err
	}
	doc, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return false, fmt.Errorf("error parsing %s: %w", file, err)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, buf, encode.EncodeLineEnding(cfg.NL)); err != nil {
		return false, fmt.Errorf("error encoding %s: %w", file, err)
	}
	if bytes.Equal(buf.Bytes(), d) {
		if !cfg.Quiet {
			theLog.Info("round trip ok", "file", file, "sections", len(doc.Sections), "bytes", len(d))
		}
		return true, nil
	}
	theLog.Warn("round trip mismatch", "file", file)
	lines := libdiff.Lines(string(d), buf.String())
	if err := libdiff.Format(cc.Out, lines, false, cfg.colored(cc.Out)); err != nil {
		return false, err
	}
	return false, nil
}
