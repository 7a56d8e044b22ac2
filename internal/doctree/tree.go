package doctree

import "doclint/internal/source"

// Tree is the immutable parsed representation of one source file. Tokens are
// ordered by source position; the final token is always EOF.
type Tree struct {
	File   source.FileID
	Tokens []Token
}

// FragmentVisitor is invoked for every fragment during a walk, together with
// the token that owns it. Returning false stops the walk.
type FragmentVisitor func(owner *Token, frag *Fragment) bool

// WalkFragments visits every leading fragment of every token in source
// position order. When descend is true the walk recurses into the Structure of
// structured fragments, so fragments nested inside documentation content are
// visited too. The tree is never mutated.
func (t *Tree) WalkFragments(descend bool, visit FragmentVisitor) {
	walkTokens(t.Tokens, descend, visit)
}

func walkTokens(tokens []Token, descend bool, visit FragmentVisitor) bool {
	for i := range tokens {
		tok := &tokens[i]
		for j := range tok.Leading {
			frag := &tok.Leading[j]
			if !visit(tok, frag) {
				return false
			}
			if descend && frag.Structure != nil {
				if !walkTokens(frag.Structure, descend, visit) {
					return false
				}
			}
		}
	}
	return true
}
