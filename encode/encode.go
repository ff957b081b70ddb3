package encode

import (
	"fmt"
	"io"

	"github.com/signadot/ueini/debug"
	"github.com/signadot/ueini/format"
	"github.com/signadot/ueini/ini"
	"github.com/signadot/ueini/token"
)

type EncState struct {
	format format.Format
	nl     token.LineEnding
	merge  bool
	wire   bool

	Color func(ColorAttr, string) string
}

func Encode(cfg *ini.Config, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if es.merge {
		cfg = cfg.Clone()
		cfg.MergeConsecutiveTokens()
	}
	if debug.Encode() {
		debug.Logf("encode %d sections as %s\n", len(cfg.Sections), es.format)
	}
	switch es.format {
	case format.INIFormat:
	case format.JSONFormat:
		return encodeJSON(cfg, w, es)
	case format.YAMLFormat:
		return encodeYAML(cfg, w)
	default:
		return fmt.Errorf("%w: unknown format %s", ErrEncoding, es.format)
	}
	if es.Color == nil {
		return cfg.Write(w, es.nl)
	}
	return encodeColored(cfg, w, es)
}

// encodeColored writes the same text as cfg.Write with color escapes
// around the parts of each line.
func encodeColored(cfg *ini.Config, w io.Writer, es *EncState) error {
	if cfg.BOM {
		if err := writeString(w, ini.BOM); err != nil {
			return err
		}
	}
	for _, s := range cfg.Sections {
		if s.HasName() {
			line := es.Color(WasteColor, s.LineWastePrefix) +
				es.Color(HeaderColor, "["+s.SectionName()+"]") +
				es.Color(WasteColor, s.LineWasteSuffix)
			if err := writeLine(w, line, s.LineEnding, es); err != nil {
				return err
			}
		}
		for _, t := range s.Tokens {
			if err := encodeToken(t, w, es); err != nil {
				return err
			}
		}
	}
	return nil
}

func encodeToken(t token.Token, w io.Writer, es *EncState) error {
	switch x := t.(type) {
	case *token.InstructionToken:
		line := es.Color(OpColor, x.Type.Prefix()) + es.Color(KeyColor, x.Key)
		if x.HasValue() {
			line += es.Color(SepColor, "=") + es.Color(ValueColor, *x.Value)
		}
		return writeLine(w, line, x.LineEnding, es)
	case *token.CommentToken:
		for i, ln := range x.Lines {
			if err := writeLine(w, es.Color(CommentColor, ln), x.LineEnding(i), es); err != nil {
				return err
			}
		}
		return nil
	case *token.TextToken:
		return writeLine(w, es.Color(TextColor, x.Text), x.LineEnding, es)
	default:
		return t.Write(w, es.nl)
	}
}

func writeLine(w io.Writer, s string, le token.LineEnding, es *EncState) error {
	if err := writeString(w, s); err != nil {
		return err
	}
	return le.Write(w, es.nl)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
