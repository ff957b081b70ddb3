package token

import (
	"fmt"
	"io"
	"runtime"
	"strings"
)

// LineEnding is the terminator written after a physical line.
type LineEnding int

const (
	// Unknown resolves to a caller supplied default, or the host
	// convention, at write time.
	Unknown LineEnding = iota
	None
	Unix
	Windows
	Mac
)

// Host returns the conventional line ending of the running platform.
func Host() LineEnding {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return Unix
}

func ParseLineEnding(v string) (LineEnding, error) {
	le, ok := map[string]LineEnding{
		"":        Unknown,
		"unknown": Unknown,
		"auto":    Unknown,
		"none":    None,
		"unix":    Unix,
		"lf":      Unix,
		"windows": Windows,
		"crlf":    Windows,
		"mac":     Mac,
		"cr":      Mac,
	}[strings.ToLower(v)]
	if ok {
		return le, nil
	}
	return Unknown, fmt.Errorf("%w: %q", ErrLineEnding, v)
}

func (le LineEnding) String() string {
	switch le {
	case Unknown:
		return "Unknown"
	case None:
		return "None"
	case Unix:
		return "Unix"
	case Windows:
		return "Windows"
	case Mac:
		return "Mac"
	default:
		return fmt.Sprintf("LineEnding(%d)", int(le))
	}
}

// Resolve replaces Unknown with nl, and nl with the host convention if it
// is Unknown as well.
func (le LineEnding) Resolve(nl LineEnding) LineEnding {
	if le != Unknown {
		return le
	}
	if nl != Unknown {
		return nl
	}
	return Host()
}

// Bytes returns the terminator bytes. Unknown yields the host convention.
func (le LineEnding) Bytes() []byte {
	switch le.Resolve(Unknown) {
	case Unix:
		return []byte{'\n'}
	case Windows:
		return []byte{'\r', '\n'}
	case Mac:
		return []byte{'\r'}
	default:
		return nil
	}
}

// Write emits the terminator, resolving Unknown against nl.
func (le LineEnding) Write(w io.Writer, nl LineEnding) error {
	d := le.Resolve(nl).Bytes()
	if len(d) == 0 {
		return nil
	}
	_, err := w.Write(d)
	return err
}

// WriteTo implements io.WriterTo using the host convention for Unknown.
func (le LineEnding) WriteTo(w io.Writer) (int64, error) {
	d := le.Bytes()
	if len(d) == 0 {
		return 0, nil
	}
	n, err := w.Write(d)
	return int64(n), err
}

// Terminate replaces a None ending on the last line of t with nl, so that
// text written after t starts on a new line.
func Terminate(t Token, nl LineEnding) {
	switch x := t.(type) {
	case *InstructionToken:
		x.LineEnding = x.LineEnding.orElse(nl)
	case *TextToken:
		x.LineEnding = x.LineEnding.orElse(nl)
	case *HeaderToken:
		x.LineEnding = x.LineEnding.orElse(nl)
	case Multiline:
		m := x.Multiline()
		if i := len(m.Lines) - 1; i >= 0 && m.LineEnding(i) == None {
			m.LineEndings[i] = nl
		}
	}
}

func (le LineEnding) orElse(nl LineEnding) LineEnding {
	if le == None {
		return nl
	}
	return le
}
