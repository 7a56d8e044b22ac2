package docparse

import (
	"doclint/internal/diag"
	"doclint/internal/source"
)

// Options configures a Parser. Reporter may be nil: recovery still happens,
// the diagnostics are just dropped.
type Options struct {
	Reporter diag.Reporter
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
