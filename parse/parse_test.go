package parse

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/signadot/ueini/ini"
	"github.com/signadot/ueini/token"

	"github.com/google/go-cmp/cmp"
)

var roundTrips = []string{
	``,
	"\n",
	"\r\n\r\n",
	"\r\r",
	"[A]",
	"[A]\n",
	"k=v",
	"; only a comment",
	"[/Script/Engine.PlayerInput]\r\n" +
		"+AxisMappings=(AxisName=\"MoveForward\",Scale=1.000000,Key=W)\r\n" +
		"-AxisMappings=(AxisName=\"MoveForward\",Scale=1.000000,Key=Up)\r\n" +
		"!ActionMappings=ClearArray\r\n" +
		".Paths=../../../Game/Content\r\n" +
		"bEnableMouseSmoothing=True\r\n",
	"; preamble\n\n[Core.System]\nPaths=../../../Engine/Content\n\n\n[Core.System]\nPaths=again\n",
	"  [Padded]\t\nkey=value\n",
	"[A]\nk=v\r\n; c1\r; c2\n\t\n  \nx=\n",
	"[A]\n   indented = not an instruction\nbFlag\n=nokey\n",
	"[Mixed]\n[]\n[[Brackets]]\n",
	"[A]\nk=v with = signs=\n",
	ini.BOM + "[A]\nk=v\n",
	"[A]\n;a\n;b\n\n\n;c\n",
	"k=\xff\xfe\n",
}

func TestParseRoundTrip(t *testing.T) {
	for _, in := range roundTrips {
		for _, merge := range []bool{true, false} {
			cfg, err := ParseString(in, ParseMerge(merge))
			if err != nil {
				t.Errorf("%q: %v", in, err)
				continue
			}
			for _, nl := range []token.LineEnding{token.Unknown, token.Unix, token.Windows, token.Mac, token.None} {
				buf := bytes.NewBuffer(nil)
				if err := cfg.Write(buf, nl); err != nil {
					t.Fatal(err)
				}
				if buf.String() != in {
					t.Errorf("merge=%t nl=%s: got %q want %q", merge, nl, buf.String(), in)
				}
			}
		}
	}
}

func TestParseSections(t *testing.T) {
	cfg, err := ParseString("; top\n[A]\nk=1\n+k=2\n[B]\n[A]\nj\n")
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, s := range cfg.Sections {
		if !s.HasName() {
			names = append(names, "<preamble>")
			continue
		}
		names = append(names, s.SectionName())
	}
	if diff := cmp.Diff([]string{"<preamble>", "A", "B", "A"}, names); diff != "" {
		t.Errorf("sections (-want +got):\n%s", diff)
	}
	a := cfg.Find("A")[0]
	ks := a.Instructions("k")
	if len(ks) != 2 {
		t.Fatalf("got %d instructions", len(ks))
	}
	if ks[0].Type != token.InstructionSet || ks[0].ValueString() != "1" {
		t.Errorf("first: %s", token.Info(ks[0]))
	}
	if ks[1].Type != token.InstructionAdd || ks[1].ValueString() != "2" {
		t.Errorf("second: %s", token.Info(ks[1]))
	}
	if j := cfg.Find("A")[1].Instructions("j"); len(j) != 1 || j[0].HasValue() {
		t.Errorf("j: %v", j)
	}
}

func TestParseMerge(t *testing.T) {
	in := "[A]\n;a\n;b\n\n\n;c\nk=v\n\n"
	for _, c := range []struct {
		merge bool
		n     int
	}{
		{true, 5},
		{false, 7},
	} {
		cfg, err := ParseString(in, ParseMerge(c.merge))
		if err != nil {
			t.Fatal(err)
		}
		if got := len(cfg.Sections[0].Tokens); got != c.n {
			t.Errorf("merge=%t: got %d tokens want %d", c.merge, got, c.n)
		}
	}
}

func TestParseBOM(t *testing.T) {
	cfg, err := ParseString(ini.BOM + "; c\n")
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.BOM {
		t.Error("BOM not recorded")
	}
	c := cfg.Preamble().Tokens[0].(*token.CommentToken)
	if c.Lines[0] != "; c" {
		t.Errorf("got %q", c.Lines[0])
	}
}

func TestParseCommentPrefixes(t *testing.T) {
	cfg, err := ParseString("# hash\n; semi\n", ParseCommentPrefixes("#", ";"), ParseMerge(false))
	if err != nil {
		t.Fatal(err)
	}
	for _, tok := range cfg.Preamble().Tokens {
		if tok.Kind() != token.KindComment {
			t.Errorf("got %s", token.Info(tok))
		}
	}
}

func TestParseStrict(t *testing.T) {
	for _, c := range []struct {
		in string
		e  error
	}{
		{"[A]\n  stray text\n", token.ErrUnclassified},
		{"[A]\n=v\n", token.ErrEmptyKey},
		{"[A]\nk=\xff\n", token.ErrBadUTF8},
	} {
		_, err := ParseString(c.in, ParseStrict(true))
		if !errors.Is(err, ErrParse) || !errors.Is(err, c.e) {
			t.Errorf("%q: got %v want %v", c.in, err, c.e)
		}
		var te *token.TokenizeErr
		if !errors.As(err, &te) || te.Pos.Line != 2 {
			t.Errorf("%q: position %v", c.in, err)
		}
		if _, err := ParseString(c.in); err != nil {
			t.Errorf("%q lenient: %v", c.in, err)
		}
	}
}

func TestParseReader(t *testing.T) {
	in := "[A]\r\nk=v\r\n"
	cfg, err := ParseReader(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := cfg.Write(buf, token.Unix); err != nil {
		t.Fatal(err)
	}
	if buf.String() != in {
		t.Errorf("got %q", buf.String())
	}
}
