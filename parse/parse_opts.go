package parse

import "github.com/signadot/ueini/token"

type parseOpts struct {
	merge           bool
	strict          bool
	commentPrefixes []string
}

func (o *parseOpts) TokenizeOpts() []token.TokenOpt {
	var res []token.TokenOpt
	if o.strict {
		res = append(res, token.TokenStrict())
	}
	if o.commentPrefixes != nil {
		res = append(res, token.TokenCommentPrefixes(o.commentPrefixes...))
	}
	return res
}

type ParseOption func(*parseOpts)

// ParseMerge controls whether adjacent blank and comment lines are
// compacted after parsing. It defaults to true.
func ParseMerge(v bool) ParseOption {
	return func(o *parseOpts) { o.merge = v }
}

// ParseStrict rejects lines that are neither headers, instructions,
// comments nor blank.
func ParseStrict(v bool) ParseOption {
	return func(o *parseOpts) { o.strict = v }
}

// ParseCommentPrefixes replaces the comment markers, ";" by default.
func ParseCommentPrefixes(ps ...string) ParseOption {
	return func(o *parseOpts) { o.commentPrefixes = ps }
}
