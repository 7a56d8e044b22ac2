// Package rules defines the style-rule contract and the process-wide rule
// registry. A rule is a pure function over one parsed tree: same tree, same
// ordered diagnostics. Severity and suppression policy belong to the caller.
package rules

import (
	"context"

	"doclint/internal/diag"
	"doclint/internal/doctree"
)

// Descriptor is the immutable metadata a rule declares up front. The driver
// uses it for configuration and suppression before the rule ever runs.
type Descriptor struct {
	// Code is the stable diagnostic code, e.g. diag.StyleDocLineSingleSpace.
	Code diag.Code
	// Name is the configuration key, e.g. "doc-line-single-space".
	Name string
	// Title is a short human-readable summary.
	Title string
	// Message is the fixed text attached to every violation.
	Message string
	// Category groups related rules, e.g. "style.spacing".
	Category string
	// Description explains the rule in one or two sentences.
	Description string
	// HelpURI points at the rule documentation page.
	HelpURI string
	// DefaultSeverity applies when configuration does not override it.
	DefaultSeverity diag.Severity
	// EnabledByDefault controls whether the rule runs without explicit
	// configuration.
	EnabledByDefault bool
}

// Rule checks one parsed tree and reports violations through rep at the given
// severity. Implementations must hold no state across invocations, must not
// mutate the tree, and must stop early when ctx is cancelled.
type Rule interface {
	Descriptor() Descriptor
	Check(ctx context.Context, tree *doctree.Tree, rep diag.Reporter, sev diag.Severity)
}
