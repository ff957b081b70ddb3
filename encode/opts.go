package encode

import (
	"github.com/signadot/ueini/format"
	"github.com/signadot/ueini/token"
)

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// EncodeLineEnding sets the line ending used wherever a token or header
// has none recorded. Unknown means the host convention.
func EncodeLineEnding(le token.LineEnding) EncodeOption {
	return func(es *EncState) { es.nl = le }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
func EncodeMerge(v bool) EncodeOption {
	return func(es *EncState) { es.merge = v }
}
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}
