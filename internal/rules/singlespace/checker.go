package singlespace

import (
	"strings"

	"doclint/internal/doctree"
)

// checkLine decides whether one documentation line satisfies the single-space
// rule. tok is the token that owns the line's marker fragment; marker is that
// fragment. Returns true when the line violates the rule.
//
// The decision is deliberately conservative: tokens synthesized by error
// recovery, blank lines, comment terminators, and any combination the rule
// does not recognize all count as compliant. The pass condition only requires
// that a space exists directly after the marker, not that there is exactly
// one: "///   <x>" passes while "///<x>" and "///\t<x>" fail.
func checkLine(tok *doctree.Token, marker doctree.Fragment) bool {
	if tok.Missing {
		return false
	}

	switch tok.Kind {
	case doctree.Newline, doctree.EndOfComment:
		// Blank marker lines and terminators carry no content.
		return false

	case doctree.Text:
		// Plain continuation text: the parser keeps the leading space inside
		// the token text for line markers, or merged into the marker for
		// javadoc-style block markers.
		if strings.HasPrefix(tok.Text, " ") {
			return false
		}
		return !endsWithSpace(marker)
	}

	if !tok.Kind.IsDocStructural() {
		// Unrecognized token kind: never flag what we do not understand.
		return false
	}

	last, ok := tok.LastLeading()
	if !ok {
		// No fragment where a space was expected.
		return true
	}
	switch classify(last) {
	case classSpace:
		return !startsWithSpace(last)
	case classMarker:
		return !endsWithSpace(last)
	default:
		return true
	}
}
