package doctree

import "doclint/internal/source"

// FragmentKind represents the category of a formatting fragment.
type FragmentKind uint8

const (
	// FragmentSpace is a run of spaces and tabs.
	FragmentSpace FragmentKind = iota
	// FragmentNewline is a run of line breaks outside documentation content.
	FragmentNewline
	// FragmentLineComment is a plain '//' comment.
	FragmentLineComment
	// FragmentBlockComment is a plain '/* */' comment.
	FragmentBlockComment
	// FragmentDoc is a documentation comment; Structure holds its parsed
	// content tokens.
	FragmentDoc
	// FragmentDocMarker is the per-line continuation marker ('///' or '*').
	// Block-form markers absorb the whitespace run that follows them.
	FragmentDocMarker
	// FragmentXMLComment is a '<!-- -->' comment nested inside documentation
	// content; Structure holds its parsed content tokens.
	FragmentXMLComment
)

func (k FragmentKind) String() string {
	switch k {
	case FragmentSpace:
		return "Space"
	case FragmentNewline:
		return "Newline"
	case FragmentLineComment:
		return "LineComment"
	case FragmentBlockComment:
		return "BlockComment"
	case FragmentDoc:
		return "Doc"
	case FragmentDocMarker:
		return "DocMarker"
	case FragmentXMLComment:
		return "XMLComment"
	}
	return "Unknown"
}

// Fragment is a non-semantic span of source text attached to the token it
// precedes. Structured kinds carry their own parsed token sequence.
type Fragment struct {
	Kind      FragmentKind
	Span      source.Span
	Text      string
	Structure []Token
}
