package parse

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/ueini/debug"
	"github.com/signadot/ueini/ini"
	"github.com/signadot/ueini/token"
)

func Parse(d []byte, opts ...ParseOption) (*ini.Config, error) {
	pOpts := &parseOpts{merge: true}
	for _, f := range opts {
		f(pOpts)
	}
	cfg := ini.New()
	if rest, ok := bytes.CutPrefix(d, []byte(ini.BOM)); ok {
		cfg.BOM = true
		d = rest
	}
	toks, err := token.Tokenize(nil, d, pOpts.TokenizeOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	for _, t := range toks {
		cfg.Append(t)
	}
	if pOpts.merge {
		cfg.MergeConsecutiveTokens()
	}
	if debug.Parse() {
		debug.Logf("parsed %d tokens into %d sections\n", len(toks), len(cfg.Sections))
	}
	return cfg, nil
}

func ParseString(s string, opts ...ParseOption) (*ini.Config, error) {
	return Parse([]byte(s), opts...)
}

func ParseReader(r io.Reader, opts ...ParseOption) (*ini.Config, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(d, opts...)
}
