package format

import (
	"errors"
	"fmt"
	"strings"
)

// Format is an output form of a document. Only INIFormat keeps every byte;
// the others render the instruction outline.
type Format int

const (
	INIFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

var formats = []struct {
	f      Format
	names  []string
	suffix string
}{
	{INIFormat, []string{"ini", "i"}, ".ini"},
	{YAMLFormat, []string{"yaml", "y", "yml"}, ".yaml"},
	{JSONFormat, []string{"json", "j"}, ".json"},
}

// ParseFormat accepts a format name or its one letter abbreviation, in any
// case.
func ParseFormat(v string) (Format, error) {
	lv := strings.ToLower(v)
	for _, d := range formats {
		for _, n := range d.names {
			if n == lv {
				return d.f, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	if f < 0 || int(f) >= len(formats) {
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
	return []byte(formats[f].names[0]), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// Suffix returns the file extension for f, ".ini" if f is not a format.
func (f Format) Suffix() string {
	if f < 0 || int(f) >= len(formats) {
		return formats[INIFormat].suffix
	}
	return formats[f].suffix
}

func (f Format) IsLossless() bool { return f == INIFormat }
