package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, tt := range []struct {
		in string
		f  Format
	}{
		{"ini", INIFormat},
		{"i", INIFormat},
		{"INI", INIFormat},
		{"yaml", YAMLFormat},
		{"yml", YAMLFormat},
		{"y", YAMLFormat},
		{"json", JSONFormat},
		{"J", JSONFormat},
	} {
		f, err := ParseFormat(tt.in)
		if err != nil {
			t.Fatalf("%q: %v", tt.in, err)
		}
		if f != tt.f {
			t.Errorf("%q: got %s want %s", tt.in, f, tt.f)
		}
	}
	for _, in := range []string{"", "tony", "xml"} {
		if _, err := ParseFormat(in); !errors.Is(err, ErrBadFormat) {
			t.Errorf("%q: got %v", in, err)
		}
	}
}

func TestFormatText(t *testing.T) {
	for _, tt := range []struct {
		f      Format
		name   string
		suffix string
	}{
		{INIFormat, "ini", ".ini"},
		{YAMLFormat, "yaml", ".yaml"},
		{JSONFormat, "json", ".json"},
	} {
		if got := tt.f.String(); got != tt.name {
			t.Errorf("got %q want %q", got, tt.name)
		}
		if got := tt.f.Suffix(); got != tt.suffix {
			t.Errorf("%s: got suffix %q want %q", tt.f, got, tt.suffix)
		}
		var back Format
		if err := back.UnmarshalText([]byte(tt.f.String())); err != nil {
			t.Fatal(err)
		}
		if back != tt.f {
			t.Errorf("got %s want %s", back, tt.f)
		}
	}
	bad := Format(7)
	if _, err := bad.MarshalText(); err == nil {
		t.Error("no error for bad format")
	}
	if bad.Suffix() != ".ini" {
		t.Errorf("got suffix %q", bad.Suffix())
	}
	var f Format
	if err := f.UnmarshalText([]byte("csv")); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
}

func TestIsLossless(t *testing.T) {
	if !INIFormat.IsLossless() || YAMLFormat.IsLossless() || JSONFormat.IsLossless() {
		t.Error("only ini is lossless")
	}
}
