package doctree

// Kind represents the category of a token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Code represents a run of non-documentation source text.
	Code

	// Text represents literal text inside a documentation comment.
	Text
	// Newline represents a line break inside a documentation comment.
	Newline
	// EndOfComment terminates a documentation comment block.
	EndOfComment
	// Ident represents an XML element or attribute name.
	Ident
	// LessThan represents '<'.
	LessThan // <
	// LessThanSlash represents '</'.
	LessThanSlash // </
	// GreaterThan represents '>'.
	GreaterThan // >
	// SlashGreaterThan represents '/>'.
	SlashGreaterThan // />
	// Equals represents '='.
	Equals // =
	// DoubleQuote represents '"'.
	DoubleQuote // "
	// SingleQuote represents '\''.
	SingleQuote // '
	// CDataStart represents '<![CDATA['.
	CDataStart // <![CDATA[
	// CDataEnd represents ']]>'.
	CDataEnd // ]]>
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Code:
		return "Code"
	case Text:
		return "Text"
	case Newline:
		return "Newline"
	case EndOfComment:
		return "EndOfComment"
	case Ident:
		return "Ident"
	case LessThan:
		return "LessThan"
	case LessThanSlash:
		return "LessThanSlash"
	case GreaterThan:
		return "GreaterThan"
	case SlashGreaterThan:
		return "SlashGreaterThan"
	case Equals:
		return "Equals"
	case DoubleQuote:
		return "DoubleQuote"
	case SingleQuote:
		return "SingleQuote"
	case CDataStart:
		return "CDataStart"
	case CDataEnd:
		return "CDataEnd"
	}
	return "Unknown"
}

// IsDocStructural reports whether the token carries syntactic meaning within
// documentation markup.
func (k Kind) IsDocStructural() bool {
	switch k {
	case Ident, LessThan, LessThanSlash, GreaterThan, SlashGreaterThan,
		Equals, DoubleQuote, SingleQuote, CDataStart, CDataEnd:
		return true
	default:
		return false
	}
}
