// Copyright © 2026 The qassert authors

// Package diagnostic renders assertion reports and description-file
// problems as Rust-style annotated messages for terminal output. It does not
// depend on the meta package so that any command can use it.
package diagnostic

// Severity indicates the severity level of a diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNote
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNote:
		return "note"
	default:
		return "unknown"
	}
}

// Span identifies a line of a source file to show with the diagnostic.
type Span struct {
	File  string // path for reading source; display name if unreadable
	Line  int    // 1-based line number
	Label string // text shown under the underline
}

// Diagnostic is a single report: an assertion failure to explain, or a
// problem found in a description file.
type Diagnostic struct {
	Severity Severity

	// Code is shown in brackets after the severity, e.g. "qf_actq:102".
	Code    string
	Message string
	Spans   []Span

	// Help is free text rendered as a word-wrapped "= help:" block.
	Help string

	Notes []string // "= note:" lines
}
