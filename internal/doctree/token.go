package doctree

import "doclint/internal/source"

// Token represents a single semantic unit with its location and leading
// fragments. Missing marks tokens synthesized by error recovery; rules must
// never check them.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Missing bool
	Leading []Fragment
}

// LastLeading returns the final leading fragment, the one immediately before
// the token itself.
func (t *Token) LastLeading() (Fragment, bool) {
	if len(t.Leading) == 0 {
		return Fragment{}, false
	}
	return t.Leading[len(t.Leading)-1], true
}
