package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"doclint/internal/diag"
	"doclint/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	lineColor = color.New(color.Faint)
)

// Pretty renders diagnostics in human-readable form, one block per entry:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	  <source line>
//	  ^~~~ underline covering the span
//
// The bag is expected to be sorted already.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	path := file.FormatPath(opts.PathMode, fs.BaseDir())

	sev := d.Severity.String()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, start.Line, start.Col, sev, d.Code.ID(), d.Message)

	printSourceLine(w, file, start, end, opts)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			ns, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", path, ns.Line, ns.Col, n.Msg)
		}
	}
}

func printSourceLine(w io.Writer, file *source.File, start, end source.LineCol, opts PrettyOpts) {
	line := file.GetLine(start.Line)
	if line == "" && start.Col == 1 {
		return
	}

	rendered := strings.ReplaceAll(line, "\t", "    ")
	if opts.Color {
		rendered = lineColor.Sprint(rendered)
	}
	fmt.Fprintf(w, "  %s\n", rendered)

	// Underline width follows display columns, not bytes, so wide runes and
	// expanded tabs stay aligned.
	prefix := line[:clamp(int(start.Col)-1, len(line))]
	pad := runewidth.StringWidth(strings.ReplaceAll(prefix, "\t", "    "))

	spanLen := 1
	if end.Line == start.Line && end.Col > start.Col {
		spanText := line[clamp(int(start.Col)-1, len(line)):clamp(int(end.Col)-1, len(line))]
		if width := runewidth.StringWidth(spanText); width > 0 {
			spanLen = width
		}
	}

	underline := "^" + strings.Repeat("~", spanLen-1)
	if opts.Color {
		underline = warnColor.Sprint(underline)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), underline)
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}

func clamp(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}
