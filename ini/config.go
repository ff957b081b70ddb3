package ini

import (
	"io"

	"github.com/signadot/ueini/token"
)

// BOM is the UTF-8 byte order mark.
const BOM = "\ufeff"

// Config is a whole file: its sections in source order.
type Config struct {
	Sections []*Section
	// BOM records a leading UTF-8 byte order mark.
	BOM bool
}

func New(sections ...*Section) *Config {
	c := &Config{Sections: make([]*Section, 0, len(sections))}
	for _, s := range sections {
		if s != nil {
			c.Sections = append(c.Sections, s)
		}
	}
	return c
}

// Append adds a token in source order. A header token opens a new
// section; any other token goes to the last section, opening an unnamed
// one if there is none yet.
func (c *Config) Append(t token.Token) {
	if h, ok := t.(*token.HeaderToken); ok {
		c.Sections = append(c.Sections, sectionFromHeader(h))
		return
	}
	if len(c.Sections) == 0 {
		c.Sections = append(c.Sections, NewUnnamedSection())
	}
	last := c.Sections[len(c.Sections)-1]
	last.Tokens = append(last.Tokens, t)
}

// Find returns every section called name. Files may repeat a section.
func (c *Config) Find(name string) []*Section {
	var res []*Section
	for _, s := range c.Sections {
		if s.Name != nil && *s.Name == name {
			res = append(res, s)
		}
	}
	return res
}

// FindOrAdd returns the last section called name, adding an empty one
// at the end if there is none.
func (c *Config) FindOrAdd(name string) *Section {
	found := c.Find(name)
	if len(found) != 0 {
		return found[len(found)-1]
	}
	s := NewSection(name)
	c.Sections = append(c.Sections, s)
	return s
}

// Preamble returns the unnamed section holding the content before the
// first header, or nil.
func (c *Config) Preamble() *Section {
	if len(c.Sections) == 0 || c.Sections[0].Name != nil {
		return nil
	}
	return c.Sections[0]
}

func (c *Config) MergeConsecutiveTokens() {
	for _, s := range c.Sections {
		s.MergeConsecutiveTokens()
	}
}

// Write writes the file. Headers are only written for named sections, so
// an unnamed preamble contributes just its tokens.
func (c *Config) Write(w io.Writer, nl token.LineEnding) error {
	if c.BOM {
		if _, err := io.WriteString(w, BOM); err != nil {
			return err
		}
	}
	for _, s := range c.Sections {
		if err := s.Write(w, nl); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) Clone() *Config {
	res := &Config{BOM: c.BOM, Sections: make([]*Section, len(c.Sections))}
	for i, s := range c.Sections {
		res.Sections[i] = s.Clone()
	}
	return res
}
