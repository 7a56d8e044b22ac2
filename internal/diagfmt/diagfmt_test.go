package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"doclint/internal/diag"
	"doclint/internal/diagfmt"
	"doclint/internal/source"

	_ "doclint/internal/rules/singlespace"
)

func sampleBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("sample.cs", []byte("///bad\nint x;\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.StyleDocLineSingleSpace,
		Message:  "Documentation line must begin with a space.",
		Primary:  source.Span{File: id, Start: 3, End: 6},
	})
	return bag, fs
}

func TestPretty(t *testing.T) {
	bag, fs := sampleBag(t)

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{PathMode: "basename"})
	out := buf.String()

	if !strings.Contains(out, "sample.cs:1:4: WARNING STY4004:") {
		t.Fatalf("missing header, got:\n%s", out)
	}
	if !strings.Contains(out, "///bad") {
		t.Fatalf("missing source line, got:\n%s", out)
	}
	if !strings.Contains(out, "   ^~~") {
		t.Fatalf("misaligned underline, got:\n%s", out)
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("sample.cs", []byte("///bad\nint x;\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.StyleDocLineSingleSpace,
		Message:  "Documentation line must begin with a space.",
		Primary:  source.Span{File: id, Start: 3, End: 6},
		Notes: []diag.Note{{
			Span: source.Span{File: id, Start: 0, End: 3},
			Msg:  "comment starts here",
		}},
	})

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{PathMode: "basename", ShowNotes: true})
	if !strings.Contains(buf.String(), "note: sample.cs:1:1: comment starts here") {
		t.Fatalf("missing note, got:\n%s", buf.String())
	}
}

func TestJSON(t *testing.T) {
	bag, fs := sampleBag(t)

	var buf bytes.Buffer
	err := diagfmt.JSON(&buf, bag, fs, diagfmt.JSONOpts{IncludePositions: true, PathMode: "basename"})
	if err != nil {
		t.Fatal(err)
	}

	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out.Diagnostics) != 1 {
		t.Fatalf("diagnostics = %d, want 1", len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Code != "STY4004" || d.Severity != "WARNING" {
		t.Fatalf("diagnostic = %+v", d)
	}
	if d.Location.File != "sample.cs" || d.Location.StartLine != 1 || d.Location.StartCol != 4 {
		t.Fatalf("location = %+v", d.Location)
	}
	if out.Summary.Warnings != 1 || out.Summary.Errors != 0 {
		t.Fatalf("summary = %+v", out.Summary)
	}
}

func TestJSONTruncates(t *testing.T) {
	bag, fs := sampleBag(t)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.StyleDocLineSingleSpace,
		Message:  "Documentation line must begin with a space.",
		Primary:  source.Span{File: 0, Start: 0, End: 1},
	})

	var buf bytes.Buffer
	if err := diagfmt.JSON(&buf, bag, fs, diagfmt.JSONOpts{Max: 1}); err != nil {
		t.Fatal(err)
	}

	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out.Diagnostics) != 1 || !out.Truncated {
		t.Fatalf("diagnostics = %d truncated = %v, want 1 true", len(out.Diagnostics), out.Truncated)
	}
	// The summary still counts everything.
	if out.Summary.Warnings != 2 {
		t.Fatalf("summary = %+v", out.Summary)
	}
}

func TestSarif(t *testing.T) {
	bag, fs := sampleBag(t)

	var buf bytes.Buffer
	err := diagfmt.Sarif(&buf, bag, fs, diagfmt.SarifRunMeta{
		ToolName:    "doclint",
		ToolVersion: "0.0.1",
	})
	if err != nil {
		t.Fatal(err)
	}

	var log struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name  string `json:"name"`
					Rules []struct {
						ID string `json:"id"`
					} `json:"rules"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID  string `json:"ruleId"`
				Level   string `json:"level"`
				Message struct {
					Text string `json:"text"`
				} `json:"message"`
			} `json:"results"`
		} `json:"runs"`
	}
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatal(err)
	}

	if log.Version != "2.1.0" || len(log.Runs) != 1 {
		t.Fatalf("log = version %q runs %d", log.Version, len(log.Runs))
	}
	run := log.Runs[0]
	if run.Tool.Driver.Name != "doclint" {
		t.Fatalf("driver name = %q", run.Tool.Driver.Name)
	}

	// The registered rule is declared even when it produced no result.
	found := false
	for _, r := range run.Tool.Driver.Rules {
		if r.ID == "STY4004" {
			found = true
		}
	}
	if !found {
		t.Fatal("STY4004 missing from driver rules")
	}

	if len(run.Results) != 1 || run.Results[0].RuleID != "STY4004" || run.Results[0].Level != "warning" {
		t.Fatalf("results = %+v", run.Results)
	}
}
