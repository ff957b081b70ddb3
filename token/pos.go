package token

import (
	"fmt"
	"strconv"
)

// Pos locates a physical line in the input. Line is 1-based; Offset is the
// byte offset of the first byte of the line.
type Pos struct {
	Line   int
	Offset int
	Text   string
}

func (p Pos) String() string {
	sample := p.Text
	if len(sample) > 24 {
		sample = sample[:24] + "..."
	}
	sample = strconv.Quote(sample)
	return fmt.Sprintf("line %d (offset %d): %s", p.Line, p.Offset, sample)
}
