package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/ueini/encode"
	"github.com/signadot/ueini/format"
	"github.com/signadot/ueini/parse"
	"github.com/signadot/ueini/token"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool   `cli:"name=color desc='encode with color'"`
	Strict   bool   `cli:"name=strict desc='reject lines that are not headers, instructions, comments or blank'"`
	Comments string `cli:"name=comments desc='comment marker characters, default ;'"`
	WireOut  bool   `cli:"name=wire desc='compact json output'"`

	OutFormat *format.Format
	NL        token.LineEnding

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		var f format.Format
		if err := f.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) nlOpt(_ *cli.Context, v string) (any, error) {
	le, err := token.ParseLineEnding(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.NL = le
	return le, nil
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{parse.ParseStrict(cfg.Strict)}
	if cfg.Comments != "" {
		ps := make([]string, 0, len(cfg.Comments))
		for _, r := range cfg.Comments {
			ps = append(ps, string(r))
		}
		res = append(res, parse.ParseCommentPrefixes(ps...))
	}
	return res
}

func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return def
}

func (cfg *MainConfig) encOpts(w io.Writer, def format.Format) []encode.EncodeOption {
	fmat := cfg.outFormat(def)
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.EncodeLineEnding(cfg.NL),
		encode.EncodeWire(cfg.WireOut),
	}
	if !fmat.IsLossless() {
		return res
	}
	if cfg.colored(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colored reports whether output to w should use color: either -color was
// given or w is a terminal and -color was not explicitly turned off.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig
	Merge bool `cli:"name=m desc='merge adjacent blank and comment lines before printing'"`

	View *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only report mismatches'"`

	Check *cli.Command
}

type SectionsConfig struct {
	*MainConfig

	Sections *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Section bool `cli:"name=s desc='prefix each result with its section'"`

	Query *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type DiffConfig struct {
	*MainConfig
	All   bool `cli:"name=a desc='show unchanged lines too'"`
	Patch bool `cli:"name=patch desc='output a json merge patch between outlines'"`
	Sem   bool `cli:"name=sem desc='compare instructions only'"`

	Diff *cli.Command
}
