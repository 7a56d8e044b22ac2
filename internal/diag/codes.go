package diag

import (
	"fmt"
)

// Code is a compact numeric identifier with a stable string form.
type Code uint16

const (
	// UnknownCode is the fallback for unrecognized diagnostics.
	UnknownCode Code = 0

	// Parser diagnostics.
	ParseInfo                     Code = 1000
	ParseUnterminatedDocComment   Code = 1001
	ParseUnterminatedCData        Code = 1002
	ParseUnterminatedXMLComment   Code = 1003
	ParseExpectTagName            Code = 1004
	ParseUnterminatedAttrValue    Code = 1005
	ParseUnterminatedBlockComment Code = 1006

	// Style rules.
	StyleInfo               Code = 4000
	StyleDocLineSingleSpace Code = 4004
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown diagnostic",

	ParseInfo:                     "parser information",
	ParseUnterminatedDocComment:   "unterminated documentation comment",
	ParseUnterminatedCData:        "unterminated CDATA section",
	ParseUnterminatedXMLComment:   "unterminated XML comment",
	ParseExpectTagName:            "expected element name",
	ParseUnterminatedAttrValue:    "unterminated attribute value",
	ParseUnterminatedBlockComment: "unterminated block comment",

	StyleInfo:               "style information",
	StyleDocLineSingleSpace: "documentation line spacing",
}

// ID returns the stable external identifier, e.g. "STY4004".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("PARSE%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("STY%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
