package token

import (
	"bytes"
	"errors"
	"testing"
)

func TestTokenizeKinds(t *testing.T) {
	in := "; comment\n" +
		"\n" +
		" [/Script/Engine.Engine] \r\n" +
		"+ActiveGameNameRedirects=(OldGameName=\"A\")\n" +
		"bFlag\n" +
		"  indented=1\n" +
		"\t\n" +
		"=orphan\n" +
		"-Key="
	want := []Kind{
		KindComment,
		KindWhitespace,
		KindHeader,
		KindInstruction,
		KindInstruction,
		KindText,
		KindWhitespace,
		KindText,
		KindInstruction,
	}
	toks, err := Tokenize(nil, []byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens want %d", len(toks), len(want))
	}
	for i, tok := range toks {
		if tok.Kind() != want[i] {
			t.Errorf("token %d: got %s want %s", i, tok.Kind(), want[i])
		}
	}

	h := toks[2].(*HeaderToken)
	if h.SectionName() != "/Script/Engine.Engine" || h.WastePrefix != " " || h.WasteSuffix != " " || h.LineEnding != Windows {
		t.Errorf("header: %+v", h)
	}
	it := toks[3].(*InstructionToken)
	if it.Type != InstructionAdd || it.Key != "ActiveGameNameRedirects" || it.ValueString() != `(OldGameName="A")` {
		t.Errorf("instruction: %+v", it)
	}
	if flag := toks[4].(*InstructionToken); flag.HasValue() {
		t.Errorf("bFlag has value %q", flag.ValueString())
	}
	last := toks[8].(*InstructionToken)
	if last.Type != InstructionRemove || !last.HasValue() || last.ValueString() != "" || last.LineEnding != None {
		t.Errorf("last: %+v", last)
	}
}

func TestTokenizeRoundTrip(t *testing.T) {
	ins := []string{
		"",
		"\n",
		"\r\n\r\n",
		"\r\r",
		"[A]",
		"[A]\nk=v\n",
		"[A]\r\nk=v\r\n\r\n; c\r\n",
		"[A]\rk=v\r",
		"; mixed\n;endings\r\n\r[B]\nx",
		"  [ Spaced ]\t\n\t\n",
		"garbage line\n  indented\nKey With Spaces = Value With Spaces \n",
		"[]\n[[nested]]\n",
	}
	for _, in := range ins {
		toks, err := Tokenize(nil, []byte(in))
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		buf := bytes.NewBuffer(nil)
		for _, tok := range toks {
			if err := tok.Write(buf, Unknown); err != nil {
				t.Fatal(err)
			}
		}
		if buf.String() != in {
			t.Errorf("got %q want %q", buf.String(), in)
		}
	}
}

func TestTokenizeCommentPrefixes(t *testing.T) {
	toks, err := Tokenize(nil, []byte("# hash\n; semi\n"), TokenCommentPrefixes("#"))
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Kind() != KindComment {
		t.Errorf("# line: got %s", toks[0].Kind())
	}
	if toks[1].Kind() != KindInstruction {
		t.Errorf("; line: got %s", toks[1].Kind())
	}
}

func TestTokenizeStrict(t *testing.T) {
	tests := []struct {
		in   string
		err  error
		line int
	}{
		{in: "[A]\n  indented=1\n", err: ErrUnclassified, line: 2},
		{in: "k=v\n=v\n", err: ErrEmptyKey, line: 2},
		{in: "k=\xff\n", err: ErrBadUTF8, line: 1},
	}
	for _, tt := range tests {
		_, err := Tokenize(nil, []byte(tt.in), TokenStrict())
		if !errors.Is(err, tt.err) {
			t.Errorf("%q: got %v want %v", tt.in, err, tt.err)
			continue
		}
		var terr *TokenizeErr
		if !errors.As(err, &terr) {
			t.Errorf("%q: not a *TokenizeErr: %T", tt.in, err)
			continue
		}
		if terr.Pos.Line != tt.line {
			t.Errorf("%q: got line %d want %d", tt.in, terr.Pos.Line, tt.line)
		}
	}
	if _, err := Tokenize(nil, []byte("k=\xff\n")); err != nil {
		t.Errorf("lenient mode rejected bad utf8: %v", err)
	}
}
