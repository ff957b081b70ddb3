package token

import (
	"bytes"
	"errors"
	"testing"
)

func TestLineEndingWrite(t *testing.T) {
	host := string(Host().Bytes())
	tests := []struct {
		le, nl LineEnding
		out    string
	}{
		{le: None, nl: Unix, out: ""},
		{le: Unix, nl: Windows, out: "\n"},
		{le: Windows, nl: Unix, out: "\r\n"},
		{le: Mac, nl: Unix, out: "\r"},
		{le: Unknown, nl: Mac, out: "\r"},
		{le: Unknown, nl: None, out: ""},
		{le: Unknown, nl: Unknown, out: host},
	}
	for _, tt := range tests {
		buf := bytes.NewBuffer(nil)
		if err := tt.le.Write(buf, tt.nl); err != nil {
			t.Fatal(err)
		}
		if buf.String() != tt.out {
			t.Errorf("%s with default %s: got %q want %q", tt.le, tt.nl, buf.String(), tt.out)
		}
	}
}

func TestLineEndingWriteTo(t *testing.T) {
	for le, out := range map[LineEnding]string{
		Unknown: string(Host().Bytes()),
		None:    "",
		Unix:    "\n",
		Windows: "\r\n",
		Mac:     "\r",
	} {
		buf := bytes.NewBuffer(nil)
		n, err := le.WriteTo(buf)
		if err != nil {
			t.Fatal(err)
		}
		if buf.String() != out || int(n) != len(out) {
			t.Errorf("%s: got %q (%d) want %q", le, buf.String(), n, out)
		}
	}
}

func TestHostIsResolved(t *testing.T) {
	h := Host()
	if h != Unix && h != Windows {
		t.Errorf("host line ending %s", h)
	}
	if Unknown.Resolve(Unknown) != h {
		t.Errorf("Unknown did not resolve to host")
	}
}

type failWriter struct{}

var errFail = errors.New("fail")

func (failWriter) Write([]byte) (int, error) { return 0, errFail }

func TestLineEndingWriteError(t *testing.T) {
	if err := Unix.Write(failWriter{}, Unknown); !errors.Is(err, errFail) {
		t.Errorf("got %v want %v", err, errFail)
	}
	if err := None.Write(failWriter{}, Unknown); err != nil {
		t.Errorf("None wrote: %v", err)
	}
}

func TestParseLineEnding(t *testing.T) {
	for in, want := range map[string]LineEnding{
		"unix": Unix, "LF": Unix, "crlf": Windows, "windows": Windows,
		"cr": Mac, "none": None, "auto": Unknown, "": Unknown,
	} {
		got, err := ParseLineEnding(in)
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("%q: got %s want %s", in, got, want)
		}
	}
	if _, err := ParseLineEnding("dos2"); !errors.Is(err, ErrLineEnding) {
		t.Errorf("got %v want %v", err, ErrLineEnding)
	}
}

func TestTerminate(t *testing.T) {
	ws := NewWhitespace()
	ws.AddLine("", Unix)
	ws.AddLine(" ", None)
	plain := NewComment(";a")
	tests := []struct {
		tok Token
		out string
	}{
		{NewInstruction(InstructionAdd, "k").WithValue("v").WithLineEnding(None), "+k=v\r\n"},
		{NewInstruction(InstructionSet, "k").WithLineEnding(Mac), "k\r"},
		{NewText("x", None), "x\r\n"},
		{NewHeader("A", None), "[A]\r\n"},
		{ws, "\n \r\n"},
		{plain, ";a\n"},
		{NewComment(), ""},
	}
	for _, tt := range tests {
		Terminate(tt.tok, Windows)
		buf := bytes.NewBuffer(nil)
		if err := tt.tok.Write(buf, Unix); err != nil {
			t.Fatal(err)
		}
		if buf.String() != tt.out {
			t.Errorf("%s: got %q want %q", Info(tt.tok), buf.String(), tt.out)
		}
	}
}
