// Package singlespace implements the doc-line-single-space rule: every
// documentation line's content must begin with exactly one space after the
// per-line comment marker.
package singlespace

import (
	"context"

	"doclint/internal/diag"
	"doclint/internal/doctree"
	"doclint/internal/rules"
)

var descriptor = rules.Descriptor{
	Code:     diag.StyleDocLineSingleSpace,
	Name:     "doc-line-single-space",
	Title:    "Documentation line spacing",
	Message:  "Documentation line must begin with a space.",
	Category: "style.spacing",
	Description: "A documentation comment line should separate its content " +
		"from the comment marker with a single leading space.",
	HelpURI:         "docs/rules/STY4004.md",
	DefaultSeverity: diag.SevWarning,
	// Ships off by default pending broader test coverage on real codebases.
	EnabledByDefault: false,
}

type rule struct{}

func init() {
	rules.Register(rule{})
}

func (rule) Descriptor() rules.Descriptor {
	return descriptor
}

// Check walks every fragment in the tree, nested documentation structure
// included, and reports one violation per offending line, anchored at the
// line's first content token. Traversal is source order, so the output order
// is deterministic.
func (rule) Check(ctx context.Context, tree *doctree.Tree, rep diag.Reporter, sev diag.Severity) {
	tree.WalkFragments(true, func(owner *doctree.Token, frag *doctree.Fragment) bool {
		if ctx.Err() != nil {
			return false
		}
		if classify(*frag) != classMarker {
			return true
		}
		if checkLine(owner, *frag) {
			rep.Report(descriptor.Code, sev, owner.Span, descriptor.Message, nil)
		}
		return true
	})
}
