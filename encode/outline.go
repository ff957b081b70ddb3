package encode

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/signadot/ueini/ini"
	"github.com/signadot/ueini/token"

	"github.com/goccy/go-yaml"
)

// Entry is one instruction in an outline.
type Entry struct {
	Op    string  `json:"op" yaml:"op"`
	Key   string  `json:"key" yaml:"key"`
	Value *string `json:"value,omitempty" yaml:"value,omitempty"`
}

// SectionOutline lists the instructions of every section with one name.
type SectionOutline struct {
	Name    string
	Entries []Entry
}

// Outline is the structured view of a document used for JSON and YAML
// output. It drops blanks, comments, unclassified lines and line endings.
// Sections sharing a name are folded together at the position of the
// first one; the unnamed preamble has the name "" and is left out when it
// holds no instructions.
type Outline []SectionOutline

func NewOutline(cfg *ini.Config) Outline {
	var res Outline
	index := map[string]int{}
	for _, s := range cfg.Sections {
		name := s.SectionName()
		if !s.HasName() && len(s.Instructions("")) == 0 {
			continue
		}
		i, ok := index[name]
		if !ok {
			i = len(res)
			index[name] = i
			res = append(res, SectionOutline{Name: name, Entries: []Entry{}})
		}
		for _, it := range s.Instructions("") {
			res[i].Entries = append(res[i].Entries, entryOf(it))
		}
	}
	return res
}

func entryOf(it *token.InstructionToken) Entry {
	e := Entry{Op: it.Type.String(), Key: it.Key}
	if it.Value != nil {
		v := *it.Value
		e.Value = &v
	}
	return e
}

// MarshalJSON encodes o as an object keyed by section name, keeping
// section order.
func (o Outline) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	buf.WriteByte('{')
	for i, s := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(s.Name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(s.Entries)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o Outline) MapSlice() yaml.MapSlice {
	res := make(yaml.MapSlice, len(o))
	for i, s := range o {
		res[i] = yaml.MapItem{Key: s.Name, Value: s.Entries}
	}
	return res
}

// MarshalJSON returns the compact JSON outline of cfg.
func MarshalJSON(cfg *ini.Config) ([]byte, error) {
	return json.Marshal(NewOutline(cfg))
}

func encodeJSON(cfg *ini.Config, w io.Writer, es *EncState) error {
	var (
		d   []byte
		err error
	)
	if es.wire {
		d, err = json.Marshal(NewOutline(cfg))
	} else {
		d, err = json.MarshalIndent(NewOutline(cfg), "", "  ")
	}
	if err != nil {
		return err
	}
	return writeString(w, string(d)+"\n")
}

func encodeYAML(cfg *ini.Config, w io.Writer) error {
	d, err := yaml.Marshal(NewOutline(cfg).MapSlice())
	if err != nil {
		return err
	}
	return writeString(w, string(d))
}
