// Copyright © 2026 The qassert authors

// Package lint provides static checks for assertion description tables.
//
// The linter is modeled after go vet: each check is an independent Analyzer
// that receives a parsed table and reports diagnostics. The framework handles
// parsing description files, running analyzers, collecting results, and
// formatting output.
package lint

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/luthersystems/qassert/meta"
	"github.com/luthersystems/qassert/metasource"
)

// Severity indicates the severity level of a lint diagnostic.
type Severity int

const (
	severityUnset Severity = iota // unexported zero sentinel for default detection
	SeverityError
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes the severity as a JSON string.
// An unset severity (zero value) is marshaled as "warning".
func (s Severity) MarshalJSON() ([]byte, error) {
	if s == severityUnset {
		return json.Marshal("warning")
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON deserializes a severity from a JSON string.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	switch str {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	default:
		return fmt.Errorf("unknown severity: %q", str)
	}
	return nil
}

// Analyzer defines a single lint check.
type Analyzer struct {
	// Name is a short identifier for this check (e.g. "duplicate-key").
	Name string

	// Doc is a human-readable description. The first line is a short summary.
	Doc string

	// Severity is the default severity for diagnostics from this analyzer.
	Severity Severity

	// Run executes the check. It should call pass.Report() for each finding.
	Run func(pass *Pass) error
}

// Pass provides context to a running analyzer.
type Pass struct {
	// Analyzer is the currently running check.
	Analyzer *Analyzer

	// Filename is the description file being analyzed.
	Filename string

	// Table holds the entries of the file in declaration order.
	Table meta.Table

	// Lines holds the declaration line of each entry, when known.
	Lines []int

	// Builtin is the table the file supplements. Nil when the built-in
	// table itself is being checked.
	Builtin meta.Table

	// diagnostics collects reported findings.
	diagnostics []Diagnostic
}

// Report records a diagnostic finding.
func (p *Pass) Report(d Diagnostic) {
	d.Analyzer = p.Analyzer.Name
	if d.Severity == severityUnset {
		d.Severity = p.Analyzer.Severity
	}
	p.diagnostics = append(p.diagnostics, d)
}

// ReportWithNotes records a diagnostic with additional hint text.
func (p *Pass) ReportWithNotes(d Diagnostic, notes ...string) {
	d.Notes = append(d.Notes, notes...)
	p.Report(d)
}

// Reportf reports a diagnostic against the i-th entry of the table.
func (p *Pass) Reportf(i int, format string, args ...interface{}) {
	p.Report(p.EntryDiagnostic(i, fmt.Sprintf(format, args...)))
}

// EntryDiagnostic returns a diagnostic positioned at the i-th entry.
func (p *Pass) EntryDiagnostic(i int, msg string) Diagnostic {
	e := p.Table[i]
	return Diagnostic{
		Pos:     Position{File: p.Filename, Line: p.Line(i), Entry: i},
		Key:     e.Key().String(),
		Message: msg,
	}
}

// Line returns the declaration line of the i-th entry, or 0 if unknown.
func (p *Pass) Line(i int) int {
	if i < len(p.Lines) {
		return p.Lines[i]
	}
	return 0
}

// Diagnostic is a single reported problem.
type Diagnostic struct {
	// Pos is the location of the offending entry.
	Pos Position `json:"pos"`

	// Key is the module:id of the offending entry.
	Key string `json:"key,omitempty"`

	// Message is a human-readable description of the problem.
	Message string `json:"message"`

	// Analyzer is the name of the check that found this problem.
	Analyzer string `json:"analyzer"`

	// Severity is the severity level of the diagnostic.
	Severity Severity `json:"severity"`

	// Notes are optional hint text lines for the user.
	Notes []string `json:"notes,omitempty"`
}

// Position identifies an entry in a description table.
type Position struct {
	File  string `json:"file"`
	Line  int    `json:"line,omitempty"`
	Entry int    `json:"entry"` // 0-based index in declaration order
}

// String returns the position in file:line format, or file#entry when the
// line is unknown.
func (p Position) String() string {
	if p.Line == 0 {
		return fmt.Sprintf("%s#%d", p.File, p.Entry)
	}
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

// String returns the diagnostic in go vet style: file:line: message (analyzer)
// with optional note lines appended.
func (d Diagnostic) String() string {
	s := fmt.Sprintf("%s: %s (%s)", d.Pos, d.Message, d.Analyzer)
	for _, n := range d.Notes {
		s += "\n  = note: " + n
	}
	return s
}

// BuiltinFilename names the built-in table in diagnostics.
const BuiltinFilename = "<builtin>"

// Linter runs a set of analyzers over description tables.
type Linter struct {
	Analyzers []*Analyzer

	// Builtin is the table supplementary files are checked against.
	Builtin meta.Table
}

// LintFile parses a description file and returns all diagnostics.
func (l *Linter) LintFile(source []byte, filename string) ([]Diagnostic, error) {
	f, err := metasource.Parse(source, filename)
	if err != nil {
		return nil, err
	}
	diags, err := l.run(&Pass{
		Filename: filename,
		Table:    f.Table,
		Lines:    f.Lines,
		Builtin:  l.Builtin,
	})
	if err != nil {
		return nil, err
	}
	return filterSuppressed(diags, source), nil
}

// LintTable checks a table that has no source file, such as the built-in one.
func (l *Linter) LintTable(table meta.Table, name string) ([]Diagnostic, error) {
	return l.run(&Pass{Filename: name, Table: table})
}

func (l *Linter) run(tmpl *Pass) ([]Diagnostic, error) {
	var all []Diagnostic
	for _, analyzer := range l.Analyzers {
		pass := *tmpl
		pass.Analyzer = analyzer
		pass.diagnostics = nil
		if err := analyzer.Run(&pass); err != nil {
			return nil, fmt.Errorf("%s: analyzer %s: %w", tmpl.Filename, analyzer.Name, err)
		}
		all = append(all, pass.diagnostics...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Pos.Entry < all[j].Pos.Entry
	})
	return all, nil
}

// filterSuppressed removes diagnostics on lines carrying a nolint comment,
// "# nolint" in YAML or "# nolint" / "// nolint" in HCL.
func filterSuppressed(diags []Diagnostic, source []byte) []Diagnostic {
	nolintLines := scanNolint(source)

	var filtered []Diagnostic
	for _, d := range diags {
		directive, ok := nolintLines[d.Pos.Line]
		if !ok || d.Pos.Line == 0 {
			filtered = append(filtered, d)
			continue
		}
		// Empty directive = suppress all
		if directive == "" {
			continue
		}
		suppressed := false
		for _, name := range strings.Split(directive, ",") {
			if strings.TrimSpace(name) == d.Analyzer {
				suppressed = true
				break
			}
		}
		if !suppressed {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// scanNolint maps line numbers to nolint directives found in comments.
func scanNolint(source []byte) map[int]string {
	lines := make(map[int]string)
	scanner := bufio.NewScanner(bytes.NewReader(source))
	for n := 1; scanner.Scan(); n++ {
		text := scanner.Text()
		i := strings.Index(text, "nolint")
		if i < 0 {
			continue
		}
		before := strings.TrimRight(text[:i], " \t")
		if !strings.HasSuffix(before, "#") && !strings.HasSuffix(before, "//") {
			continue
		}
		comment := strings.TrimSpace(text[i:])
		rest := strings.TrimPrefix(comment, "nolint")
		if rest == "" {
			lines[n] = ""
			continue
		}
		if strings.HasPrefix(rest, ":") {
			lines[n] = strings.TrimPrefix(rest, ":")
		}
	}
	return lines
}

// FormatText writes diagnostics in go vet text format.
func FormatText(w io.Writer, diags []Diagnostic) {
	for _, d := range diags {
		fmt.Fprintln(w, d.String()) //nolint:errcheck // best-effort output to writer
	}
}

// FormatJSON writes diagnostics as JSON.
func FormatJSON(w io.Writer, diags []Diagnostic) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(diags)
}
