// Package diag defines the diagnostic model shared by the parser and the
// style rules.
//
// Diagnostic is the central record: Severity, a stable numeric Code, a short
// Message, the primary source.Span, and optional Notes. Producers emit through
// the Reporter interface so they stay decoupled from storage and rendering;
// BagReporter aggregates into a Bag, which supports sorting, deduplication and
// merging. Rendering lives in internal/diagfmt, orchestration in
// internal/driver.
//
// Keep the data model deterministic and side-effect free: the driver
// serialises diagnostics for caching, so every field must round-trip.
package diag
