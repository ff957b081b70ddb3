package token

import "strings"

type tokenOpts struct {
	commentPrefixes []string
	strict          bool
}

type TokenOpt func(*tokenOpts)

// DefaultCommentPrefixes are the markers recognized when no
// TokenCommentPrefixes option is given.
var DefaultCommentPrefixes = []string{";"}

// TokenCommentPrefixes replaces the set of comment markers.
func TokenCommentPrefixes(ps ...string) TokenOpt {
	return func(o *tokenOpts) { o.commentPrefixes = ps }
}

// TokenStrict rejects lines which would otherwise become TextTokens, as
// well as invalid UTF-8.
func TokenStrict() TokenOpt {
	return func(o *tokenOpts) { o.strict = true }
}

func (o *tokenOpts) isComment(trimmed string) bool {
	for _, p := range o.commentPrefixes {
		if p != "" && strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}
