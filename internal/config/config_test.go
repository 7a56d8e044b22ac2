package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"doclint/internal/config"
	"doclint/internal/diag"
	"doclint/internal/rules"

	_ "doclint/internal/rules/singlespace"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
extensions = [".cs", ".csx"]
jobs = 4
max_diagnostics = 50

[rules.doc-line-single-space]
enabled = true
severity = "error"
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Extensions) != 2 || cfg.Extensions[1] != ".csx" {
		t.Fatalf("extensions = %v", cfg.Extensions)
	}
	if cfg.Jobs != 4 {
		t.Fatalf("jobs = %d, want 4", cfg.Jobs)
	}
	if cfg.MaxDiagnostics != 50 {
		t.Fatalf("max_diagnostics = %d, want 50", cfg.MaxDiagnostics)
	}

	r, _ := rules.Get("doc-line-single-space")
	desc := r.Descriptor()
	if !cfg.Enabled(desc) {
		t.Fatal("rule not enabled by configuration")
	}
	if got := cfg.SeverityFor(desc); got != diag.SevError {
		t.Fatalf("severity = %v, want error", got)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `jobs = 2`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Extensions) != 1 || cfg.Extensions[0] != ".cs" {
		t.Fatalf("extensions = %v, want default [.cs]", cfg.Extensions)
	}
	if !cfg.Cache {
		t.Fatal("cache default lost")
	}
}

func TestLoadRejectsUnknownRule(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[rules.no-such-rule]
enabled = true
`)
	if _, err := config.Load(path); err == nil {
		t.Fatal("unknown rule accepted")
	}
}

func TestLoadRejectsBadSeverity(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[rules.doc-line-single-space]
severity = "loud"
`)
	if _, err := config.Load(path); err == nil {
		t.Fatal("invalid severity accepted")
	}
}

func TestDefaultsWhenRuleUnconfigured(t *testing.T) {
	cfg := config.Default()
	r, _ := rules.Get("doc-line-single-space")
	desc := r.Descriptor()

	if cfg.Enabled(desc) != desc.EnabledByDefault {
		t.Fatal("Enabled ignored the descriptor default")
	}
	if cfg.SeverityFor(desc) != desc.DefaultSeverity {
		t.Fatal("SeverityFor ignored the descriptor default")
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `jobs = 1`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	found, ok, err := config.Find(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("manifest not found from nested directory")
	}
	if filepath.Base(found) != config.FileName {
		t.Fatalf("found = %q", found)
	}
}

func TestFindMissing(t *testing.T) {
	_, ok, err := config.Find(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("manifest reported in empty directory tree")
	}
}

func TestMatchesExtension(t *testing.T) {
	cfg := config.Default()
	if !cfg.MatchesExtension("a/b/Program.cs") {
		t.Fatal(".cs not matched")
	}
	if cfg.MatchesExtension("a/b/main.go") {
		t.Fatal(".go matched")
	}
}

func TestFingerprintChangesWithRules(t *testing.T) {
	a := config.Default()
	b := config.Default()
	on := true
	b.Rules["doc-line-single-space"] = config.RuleConfig{Enabled: &on}

	if a.Fingerprint() == b.Fingerprint() {
		t.Fatal("fingerprints equal despite different rule settings")
	}
}

func TestValidateRejectsZeroMaxDiagnostics(t *testing.T) {
	cfg := config.Default()
	cfg.MaxDiagnostics = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("zero max_diagnostics accepted")
	}
}
