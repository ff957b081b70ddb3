package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/ueini/ini"
	"github.com/signadot/ueini/parse"

	"github.com/scott-cotton/cli"
)

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getConfigFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ini.Config, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	cfg, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return cfg, nil
}

// inputs returns the files named in args, or stdin if there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
