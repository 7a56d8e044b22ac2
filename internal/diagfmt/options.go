package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color bool
	// PathMode is one of "auto", "absolute", "relative", "basename".
	PathMode string
	// ShowNotes includes secondary notes under each diagnostic.
	ShowNotes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	// IncludePositions adds resolved line/col next to byte offsets.
	IncludePositions bool
	PathMode         string
	// Max truncates the output, not the Bag.
	Max int
}

// SarifRunMeta provides metadata for SARIF output.
type SarifRunMeta struct {
	ToolName    string
	ToolVersion string
	// InformationURI points at the tool's documentation.
	InformationURI string
}
