package token

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/signadot/ueini/debug"
)

// Tokenize appends to dst one token per physical line of src, in source
// order. Adjacent blank or comment lines are left as separate tokens;
// compacting them is up to the caller.
func Tokenize(dst []Token, src []byte, opts ...TokenOpt) ([]Token, error) {
	opt := &tokenOpts{commentPrefixes: DefaultCommentPrefixes}
	for _, o := range opts {
		o(opt)
	}
	i, n, ln := 0, len(src), 1
	for i < n {
		end, next, le := scanLine(src, i)
		line := string(src[i:end])
		tok, err := tokenizeLine(line, le, &Pos{Line: ln, Offset: i, Text: line}, opt)
		if err != nil {
			return nil, err
		}
		dst = append(dst, tok)
		i = next
		ln++
	}
	if debug.Tokenize() {
		PrintTokens(debug.Out, dst, "tokenize")
	}
	return dst, nil
}

// scanLine finds the line starting at i. end is the end of its content,
// next the start of the following line.
func scanLine(d []byte, i int) (end, next int, le LineEnding) {
	j := bytes.IndexAny(d[i:], "\r\n")
	if j < 0 {
		return len(d), len(d), None
	}
	end = i + j
	if d[end] == '\n' {
		return end, end + 1, Unix
	}
	if end+1 < len(d) && d[end+1] == '\n' {
		return end, end + 2, Windows
	}
	return end, end + 1, Mac
}

func tokenizeLine(line string, le LineEnding, pos *Pos, opt *tokenOpts) (Token, error) {
	if opt.strict && !utf8.ValidString(line) {
		return nil, NewTokenizeErr(ErrBadUTF8, pos)
	}
	trimmed := strings.TrimLeft(line, blanks)
	if trimmed == "" {
		t := NewWhitespace()
		t.AddLine(line, le)
		return t, nil
	}
	if opt.isComment(trimmed) {
		t := NewComment()
		t.AddLine(line, le)
		return t, nil
	}
	if h := headerLine(line, le); h != nil {
		return h, nil
	}
	if len(trimmed) == len(line) {
		if it := instructionLine(line, le); it != nil {
			return it, nil
		}
		if opt.strict {
			return nil, NewTokenizeErr(ErrEmptyKey, pos)
		}
	}
	if opt.strict {
		return nil, NewTokenizeErr(ErrUnclassified, pos)
	}
	return NewText(line, le), nil
}

const blanks = " \t"

func headerLine(line string, le LineEnding) *HeaderToken {
	inner := strings.Trim(line, blanks)
	if len(inner) < 2 || inner[0] != '[' || inner[len(inner)-1] != ']' {
		return nil
	}
	h := NewHeader(inner[1:len(inner)-1], le)
	h.WastePrefix = line[:len(line)-len(strings.TrimLeft(line, blanks))]
	h.WasteSuffix = line[len(strings.TrimRight(line, blanks)):]
	return h
}

func instructionLine(line string, le LineEnding) *InstructionToken {
	typ, isOp := InstructionTypeOf(line[0])
	rest := line
	if isOp {
		rest = line[1:]
	}
	key, value, hasValue := strings.Cut(rest, "=")
	if key == "" {
		return nil
	}
	it := NewInstruction(typ, key).WithLineEnding(le)
	if hasValue {
		it.WithValue(value)
	}
	return it
}
