package diag

import "doclint/internal/source"

// Reporter is the minimal contract for receiving diagnostics from producers.
// Implementations: BagReporter (collects into a Bag), DedupReporter,
// SeverityReporter.
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string, notes []Note)
}

// BagReporter writes every reported diagnostic into a Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity: sev, Code: code, Message: msg,
		Primary: primary, Notes: notes,
	})
}

// SeverityReporter rewrites the severity of selected codes before forwarding.
// Diagnostics remapped to SevOff are dropped. The host uses this to apply
// per-rule configuration without the rules knowing about it.
type SeverityReporter struct {
	next     Reporter
	override map[Code]Severity
}

// NewSeverityReporter returns a Reporter applying the given overrides on top
// of next.
func NewSeverityReporter(next Reporter, override map[Code]Severity) *SeverityReporter {
	return &SeverityReporter{next: next, override: override}
}

func (r *SeverityReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	if r == nil || r.next == nil {
		return
	}
	if mapped, ok := r.override[code]; ok {
		sev = mapped
	}
	if sev == SevOff {
		return
	}
	r.next.Report(code, sev, primary, msg, notes)
}
