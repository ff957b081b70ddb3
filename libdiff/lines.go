package libdiff

import (
	"bytes"
	"io"
	"strings"

	"github.com/signadot/ueini/encode"
	"github.com/signadot/ueini/ini"
	"github.com/signadot/ueini/token"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op rune

const (
	Equal  Op = ' '
	Insert Op = '+'
	Delete Op = '-'
)

// Line is one line of a diff. Text keeps its terminator.
type Line struct {
	Op   Op
	Text string
}

// Lines diffs two texts line by line. A line ends after "\n", "\r\n" or a
// lone "\r" and keeps its terminator, so a change of line ending is a
// changed line.
func Lines(from, to string) []Line {
	lm := &lineMap{index: map[string]rune{}}
	a, b := lm.runes(from), lm.runes(to)
	var res []Line
	for _, d := range diffpatch.New().DiffMainRunes(a, b, false) {
		op := Equal
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, r := range d.Text {
			res = append(res, Line{Op: op, Text: lm.lines[lm.pos(r)]})
		}
	}
	return res
}

// lineMap numbers distinct lines so the diff runs over one rune per line.
// Runes skip the surrogate range, which does not survive a string.
type lineMap struct {
	index map[string]rune
	lines []string
}

const surrogates = 0xd800

func (m *lineMap) lineRune(i int) rune {
	r := rune(i)
	if r >= surrogates {
		r += 0x800
	}
	return r
}

func (m *lineMap) pos(r rune) int {
	if r >= surrogates+0x800 {
		r -= 0x800
	}
	return int(r)
}

func (m *lineMap) runes(text string) []rune {
	var res []rune
	for _, ln := range splitLines(text) {
		r, ok := m.index[ln]
		if !ok {
			r = m.lineRune(len(m.lines))
			m.index[ln] = r
			m.lines = append(m.lines, ln)
		}
		res = append(res, r)
	}
	return res
}

func splitLines(text string) []string {
	var res []string
	for text != "" {
		i := strings.IndexAny(text, "\r\n")
		if i < 0 {
			res = append(res, text)
			break
		}
		n := i + 1
		if text[i] == '\r' && n < len(text) && text[n] == '\n' {
			n++
		}
		res = append(res, text[:n])
		text = text[n:]
	}
	return res
}

// Diff encodes both documents losslessly and diffs the text. nl is used
// for anything without a recorded line ending.
func Diff(from, to *ini.Config, nl token.LineEnding) ([]Line, error) {
	a, b := bytes.NewBuffer(nil), bytes.NewBuffer(nil)
	if err := encode.Encode(from, a, encode.EncodeLineEnding(nl)); err != nil {
		return nil, err
	}
	if err := encode.Encode(to, b, encode.EncodeLineEnding(nl)); err != nil {
		return nil, err
	}
	return Lines(a.String(), b.String()), nil
}

// Changed reports whether any line was inserted or deleted.
func Changed(lines []Line) bool {
	for _, ln := range lines {
		if ln.Op != Equal {
			return true
		}
	}
	return false
}

// Format writes the diff with a one character prefix per line. Equal
// lines are skipped unless all is set.
func Format(w io.Writer, lines []Line, all, colored bool) error {
	for _, ln := range lines {
		if ln.Op == Equal && !all {
			continue
		}
		text := strings.TrimRight(ln.Text, "\r\n") + "\n"
		s := string(ln.Op) + text
		if colored {
			switch ln.Op {
			case Insert:
				s = color.GreenString("%s", s)
			case Delete:
				s = color.RedString("%s", s)
			}
		}
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	return nil
}
