package token

import "io"

// LineToken is embedded by every token that stands for exactly one
// physical line.
type LineToken struct {
	LineEnding LineEnding
}

func (LineToken) token() {}

// TextToken is a line the tokenizer could not classify. It is written back
// verbatim.
type TextToken struct {
	LineToken
	Text string
}

func NewText(text string, le LineEnding) *TextToken {
	return &TextToken{LineToken: LineToken{LineEnding: le}, Text: text}
}

func (t *TextToken) Kind() Kind { return KindText }

func (t *TextToken) Clone() Token {
	c := *t
	return &c
}

func (t *TextToken) Write(w io.Writer, nl LineEnding) error {
	if err := writeString(w, t.Text); err != nil {
		return err
	}
	return t.LineEnding.Write(w, nl)
}
