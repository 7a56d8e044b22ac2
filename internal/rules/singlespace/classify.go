package singlespace

import (
	"strings"

	"doclint/internal/doctree"
)

// class is the rule's view of a fragment: only space runs and line markers
// matter for the prefix decision, everything else is opaque.
type class uint8

const (
	classOther class = iota
	classSpace
	classMarker
)

// classify is total over every fragment kind the parser can produce;
// unrecognized kinds fall through to classOther and are ignored.
func classify(f doctree.Fragment) class {
	switch f.Kind {
	case doctree.FragmentSpace:
		return classSpace
	case doctree.FragmentDocMarker:
		return classMarker
	default:
		return classOther
	}
}

// startsWithSpace reports whether the fragment text begins with a plain space
// character. A tab does not qualify.
func startsWithSpace(f doctree.Fragment) bool {
	return strings.HasPrefix(f.Text, " ")
}

// endsWithSpace reports whether the fragment text ends with a plain space
// character. This is the pass condition for markers that absorbed their
// trailing whitespace.
func endsWithSpace(f doctree.Fragment) bool {
	return strings.HasSuffix(f.Text, " ")
}
