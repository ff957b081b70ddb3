package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/signadot/ueini/format"

	"github.com/scott-cotton/cli"
)

func ueiniMain(cfg *MainConfig, cc *cli.Context, args []string) error {
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
	if err := cfg.openOut(cc); err != nil {
		return err
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

func (cfg *MainConfig) outOpt(_ *cli.Context, a string) (any, error) {
	cfg.Out = a
	return a, nil
}

// openOut redirects output to the -o file, once all options are known.
func (cfg *MainConfig) openOut(cc *cli.Context) error {
	if cfg.Out == "" || cfg.Out == "-" {
		return nil
	}
	f, err := os.OpenFile(outPath(cfg.Out, cfg.OutFormat), os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil
}

// outPath adds the suffix of an explicit output format to a path without
// an extension.
func outPath(p string, f *format.Format) string {
	if f == nil || filepath.Ext(p) != "" {
		return p
	}
	return p + f.Suffix()
}
