// Package config loads the doclint.toml project configuration: which files to
// scan and how each rule is enabled and weighted. The driver applies the
// result before any rule runs; rules themselves never see configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"doclint/internal/diag"
	"doclint/internal/rules"
)

// FileName is the manifest looked up from the working directory upwards.
const FileName = "doclint.toml"

// Config is the decoded doclint.toml.
type Config struct {
	// Extensions lists the file suffixes to scan, e.g. [".cs"].
	Extensions []string `toml:"extensions"`
	// Jobs bounds the number of files analyzed concurrently; 0 means one per
	// CPU.
	Jobs int `toml:"jobs"`
	// MaxDiagnostics caps the diagnostics kept per run.
	MaxDiagnostics int `toml:"max_diagnostics"`
	// Cache toggles the on-disk result cache.
	Cache bool `toml:"cache"`
	// Rules holds per-rule overrides keyed by rule name.
	Rules map[string]RuleConfig `toml:"rules"`
}

// RuleConfig overrides one rule's defaults. Nil fields keep the descriptor's
// values.
type RuleConfig struct {
	Enabled  *bool  `toml:"enabled"`
	Severity string `toml:"severity"`
}

// Default returns the configuration used when no doclint.toml exists.
func Default() *Config {
	return &Config{
		Extensions:     []string{".cs"},
		Jobs:           0,
		MaxDiagnostics: 100,
		Cache:          true,
		Rules:          map[string]RuleConfig{},
	}
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Find walks from startDir upwards looking for doclint.toml. The second
// result is false when no manifest exists; that is not an error.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, err
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Validate rejects unknown rule names and malformed severities.
func (c *Config) Validate() error {
	for name, rc := range c.Rules {
		if _, ok := rules.Get(name); !ok {
			return fmt.Errorf("unknown rule %q in configuration", name)
		}
		if rc.Severity != "" {
			if _, ok := diag.ParseSeverity(rc.Severity); !ok {
				return fmt.Errorf("rule %q: invalid severity %q", name, rc.Severity)
			}
		}
	}
	if c.MaxDiagnostics <= 0 {
		return fmt.Errorf("max_diagnostics must be positive, got %d", c.MaxDiagnostics)
	}
	return nil
}

// Enabled resolves whether a rule runs, combining the descriptor default with
// the configuration override.
func (c *Config) Enabled(desc rules.Descriptor) bool {
	if rc, ok := c.Rules[desc.Name]; ok && rc.Enabled != nil {
		return *rc.Enabled
	}
	return desc.EnabledByDefault
}

// SeverityFor resolves a rule's effective severity.
func (c *Config) SeverityFor(desc rules.Descriptor) diag.Severity {
	if rc, ok := c.Rules[desc.Name]; ok && rc.Severity != "" {
		if sev, ok := diag.ParseSeverity(rc.Severity); ok {
			return sev
		}
	}
	return desc.DefaultSeverity
}

// MatchesExtension reports whether a path has one of the configured suffixes.
func (c *Config) MatchesExtension(path string) bool {
	for _, ext := range c.Extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// Fingerprint returns a stable string covering every setting that changes
// analysis results. The driver folds it into cache keys so configuration
// edits invalidate cached diagnostics.
func (c *Config) Fingerprint() string {
	var sb strings.Builder
	names := make([]string, 0, len(c.Rules))
	for name := range c.Rules {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rc := c.Rules[name]
		enabled := "default"
		if rc.Enabled != nil {
			enabled = fmt.Sprintf("%t", *rc.Enabled)
		}
		fmt.Fprintf(&sb, "%s=%s,%s;", name, enabled, rc.Severity)
	}
	return sb.String()
}
