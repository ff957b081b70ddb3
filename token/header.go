package token

import "io"

// HeaderToken is a section header line. WastePrefix and WasteSuffix are
// the blanks around the bracketed name. A nil Name writes only the waste
// and the terminator.
type HeaderToken struct {
	LineToken
	Name        *string
	WastePrefix string
	WasteSuffix string
}

func NewHeader(name string, le LineEnding) *HeaderToken {
	return &HeaderToken{LineToken: LineToken{LineEnding: le}, Name: &name}
}

func (h *HeaderToken) SectionName() string {
	if h.Name == nil {
		return ""
	}
	return *h.Name
}

func (h *HeaderToken) Kind() Kind { return KindHeader }

func (h *HeaderToken) Clone() Token {
	c := *h
	if h.Name != nil {
		n := *h.Name
		c.Name = &n
	}
	return &c
}

func (h *HeaderToken) Write(w io.Writer, nl LineEnding) error {
	line := h.WastePrefix
	if h.Name != nil {
		line += "[" + *h.Name + "]"
	}
	line += h.WasteSuffix
	if err := writeString(w, line); err != nil {
		return err
	}
	return h.LineEnding.Write(w, nl)
}
