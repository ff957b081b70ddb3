package token

import (
	"io"
	"slices"
)

// MultilineToken is a run of adjacent raw lines of the same kind. Lines do
// not include their terminators. LineEndings runs parallel to Lines; a
// missing or Unknown entry is written with the ambient line ending.
type MultilineToken struct {
	Lines       []string
	LineEndings []LineEnding
}

func newMultiline(lines []string) MultilineToken {
	if lines == nil {
		return MultilineToken{Lines: []string{}}
	}
	return MultilineToken{Lines: slices.Clone(lines)}
}

func (MultilineToken) token() {}

func (m *MultilineToken) Multiline() *MultilineToken { return m }

// LineEnding returns the ending recorded for line i.
func (m *MultilineToken) LineEnding(i int) LineEnding {
	if i < len(m.LineEndings) {
		return m.LineEndings[i]
	}
	return Unknown
}

// AddLine appends one line with its terminator.
func (m *MultilineToken) AddLine(line string, le LineEnding) {
	if le != Unknown || len(m.LineEndings) > 0 {
		m.LineEndings = m.paddedEndings()
		m.LineEndings = append(m.LineEndings, le)
	}
	m.Lines = append(m.Lines, line)
}

// Append moves every line of o, in order, to the end of m.
func (m *MultilineToken) Append(o *MultilineToken) {
	if len(o.LineEndings) > 0 || len(m.LineEndings) > 0 {
		m.LineEndings = append(m.paddedEndings(), o.paddedEndings()...)
	}
	m.Lines = append(m.Lines, o.Lines...)
}

func (m *MultilineToken) paddedEndings() []LineEnding {
	res := m.LineEndings
	for len(res) < len(m.Lines) {
		res = append(res, Unknown)
	}
	return res
}

func (m *MultilineToken) clone() MultilineToken {
	c := MultilineToken{Lines: slices.Clone(m.Lines)}
	if c.Lines == nil {
		c.Lines = []string{}
	}
	if m.LineEndings != nil {
		c.LineEndings = slices.Clone(m.LineEndings)
	}
	return c
}

func (m *MultilineToken) Write(w io.Writer, nl LineEnding) error {
	for i, line := range m.Lines {
		if err := writeString(w, line); err != nil {
			return err
		}
		if err := m.LineEnding(i).Write(w, nl); err != nil {
			return err
		}
	}
	return nil
}

// WhitespaceToken holds lines made only of blanks, including empty lines.
type WhitespaceToken struct {
	MultilineToken
}

func NewWhitespace(lines ...string) *WhitespaceToken {
	return &WhitespaceToken{MultilineToken: newMultiline(lines)}
}

func (t *WhitespaceToken) Kind() Kind { return KindWhitespace }

func (t *WhitespaceToken) Clone() Token {
	return &WhitespaceToken{MultilineToken: t.clone()}
}

// CommentToken holds comment lines, each including its comment marker and
// any leading blanks.
type CommentToken struct {
	MultilineToken
}

func NewComment(lines ...string) *CommentToken {
	return &CommentToken{MultilineToken: newMultiline(lines)}
}

func (t *CommentToken) Kind() Kind { return KindComment }

func (t *CommentToken) Clone() Token {
	return &CommentToken{MultilineToken: t.clone()}
}
