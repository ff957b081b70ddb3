package token

import (
	"fmt"
	"io"
)

type Kind int

const (
	KindText Kind = iota
	KindInstruction
	KindHeader
	KindWhitespace
	KindComment
)

func (k Kind) String() string {
	return map[Kind]string{
		KindText:        "Text",
		KindInstruction: "Instruction",
		KindHeader:      "Header",
		KindWhitespace:  "Whitespace",
		KindComment:     "Comment",
	}[k]
}

// Token is the lossless unit of a configuration file. The set of
// implementations is closed: *TextToken, *InstructionToken, *HeaderToken,
// *WhitespaceToken and *CommentToken.
//
// Write emits the exact text of the token including its own terminator(s).
// nl is used wherever the token carries an Unknown line ending.
type Token interface {
	Kind() Kind
	Clone() Token
	Write(w io.Writer, nl LineEnding) error

	token()
}

// Multiline is implemented by tokens made of a run of raw lines.
type Multiline interface {
	Token
	Multiline() *MultilineToken
}

// Mergeable reports whether b can be folded into a: both must be multiline
// tokens of the same kind.
func Mergeable(a, b Token) bool {
	if a == nil || b == nil || a.Kind() != b.Kind() {
		return false
	}
	_, aok := a.(Multiline)
	_, bok := b.(Multiline)
	return aok && bok
}

// Info gives a short description of a token for diagnostics.
func Info(t Token) string {
	switch x := t.(type) {
	case *InstructionToken:
		return fmt.Sprintf("%s %s%s %s", x.Kind(), x.Type.Prefix(), x.Key, x.LineEnding)
	case *HeaderToken:
		return fmt.Sprintf("%s [%s] %s", x.Kind(), x.SectionName(), x.LineEnding)
	case *TextToken:
		return fmt.Sprintf("%s %q %s", x.Kind(), x.Text, x.LineEnding)
	case Multiline:
		return fmt.Sprintf("%s lines=%d", t.Kind(), len(x.Multiline().Lines))
	default:
		return fmt.Sprintf("%T", t)
	}
}

func writeString(w io.Writer, s string) error {
	if s == "" {
		return nil
	}
	_, err := io.WriteString(w, s)
	return err
}
