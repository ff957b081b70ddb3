package ini

import (
	"io"

	"github.com/signadot/ueini/debug"
	"github.com/signadot/ueini/token"
)

// Section is one [Name] block of a file, or the unnamed preamble before
// the first header when Name is nil. The section owns its tokens.
type Section struct {
	Name   *string
	Tokens []token.Token

	// LineWastePrefix and LineWasteSuffix are the blanks written before
	// and after the bracketed header.
	LineWastePrefix string
	LineWasteSuffix string
	// LineEnding terminates the header line.
	LineEnding token.LineEnding
}

func NewSection(name string, toks ...token.Token) *Section {
	s := NewUnnamedSection(toks...)
	s.Name = &name
	return s
}

func NewUnnamedSection(toks ...token.Token) *Section {
	s := &Section{Tokens: make([]token.Token, 0, len(toks))}
	for _, t := range toks {
		if t != nil {
			s.Tokens = append(s.Tokens, t)
		}
	}
	return s
}

// sectionFromHeader opens a section for a header read by the tokenizer.
func sectionFromHeader(h *token.HeaderToken) *Section {
	s := NewUnnamedSection()
	if h.Name != nil {
		name := *h.Name
		s.Name = &name
	}
	s.LineWastePrefix = h.WastePrefix
	s.LineWasteSuffix = h.WasteSuffix
	s.LineEnding = h.LineEnding
	return s
}

func (s *Section) HasName() bool { return s.Name != nil }

// SectionName returns the name, or "" for the unnamed section.
func (s *Section) SectionName() string {
	if s.Name == nil {
		return ""
	}
	return *s.Name
}

// Header returns the header line as a token.
func (s *Section) Header() *token.HeaderToken {
	return &token.HeaderToken{
		LineToken:   token.LineToken{LineEnding: s.LineEnding},
		Name:        s.Name,
		WastePrefix: s.LineWastePrefix,
		WasteSuffix: s.LineWasteSuffix,
	}
}

// WriteHeader writes the header line regardless of the tokens. An unnamed
// section writes just its line waste and terminator. nl stands in for an
// Unknown LineEnding.
func (s *Section) WriteHeader(w io.Writer, nl token.LineEnding) error {
	return s.Header().Write(w, nl)
}

// Write writes the header, if the section is named, followed by every
// token in order.
func (s *Section) Write(w io.Writer, nl token.LineEnding) error {
	if s.Name != nil {
		if err := s.WriteHeader(w, nl); err != nil {
			return err
		}
	}
	for _, t := range s.Tokens {
		if err := t.Write(w, nl); err != nil {
			return err
		}
	}
	return nil
}

// MergeConsecutiveTokens folds every run of adjacent multiline tokens of
// the same kind into the first token of the run. The first token keeps its
// identity and receives the lines of the others, in order; the others are
// removed. Every other token is left as is.
func (s *Section) MergeConsecutiveTokens() {
	if len(s.Tokens) < 2 {
		return
	}
	out := s.Tokens[:1]
	for _, t := range s.Tokens[1:] {
		last := out[len(out)-1]
		if !token.Mergeable(last, t) {
			out = append(out, t)
			continue
		}
		if debug.Merge() {
			debug.Logf("merge %s into %s in [%s]\n", token.Info(t), token.Info(last), s.SectionName())
		}
		last.(token.Multiline).Multiline().Append(t.(token.Multiline).Multiline())
	}
	clear(s.Tokens[len(out):])
	s.Tokens = out
}

// Terminate gives the last line of s the ending nl if it has none, the
// header line if s has no tokens.
func (s *Section) Terminate(nl token.LineEnding) {
	if len(s.Tokens) != 0 {
		token.Terminate(s.Tokens[len(s.Tokens)-1], nl)
		return
	}
	if s.Name != nil && s.LineEnding == token.None {
		s.LineEnding = nl
	}
}

// Instructions returns the instructions for key in order. An empty key
// returns all instructions.
func (s *Section) Instructions(key string) []*token.InstructionToken {
	var res []*token.InstructionToken
	for _, t := range s.Tokens {
		it, ok := t.(*token.InstructionToken)
		if !ok {
			continue
		}
		if key == "" || it.Key == key {
			res = append(res, it)
		}
	}
	return res
}

// Clone returns a deep copy of s.
func (s *Section) Clone() *Section {
	c := *s
	if s.Name != nil {
		name := *s.Name
		c.Name = &name
	}
	c.Tokens = make([]token.Token, len(s.Tokens))
	for i, t := range s.Tokens {
		c.Tokens[i] = t.Clone()
	}
	return &c
}
