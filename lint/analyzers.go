// Copyright © 2026 The qassert authors

package lint

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/luthersystems/qassert/meta"
)

// AnalyzerDuplicateKey reports keys declared more than once. Lookups return
// the first declaration, so later ones are dead text.
var AnalyzerDuplicateKey = &Analyzer{
	Name:     "duplicate-key",
	Doc:      "Report module:id keys declared more than once.\n\nOnly the first declaration of a key is ever returned by a lookup. Later declarations usually come from documentation drift, for example the same condition numbered differently across framework releases.",
	Severity: SeverityWarning,
	Run: func(pass *Pass) error {
		first := make(map[meta.Key]int)
		for i, e := range pass.Table {
			k := e.Key()
			j, seen := first[k]
			if !seen {
				first[k] = i
				continue
			}
			note := fmt.Sprintf("first declared as entry %d", j)
			if line := pass.Line(j); line > 0 {
				note = fmt.Sprintf("first declared at %s:%d", pass.Filename, line)
			}
			pass.ReportWithNotes(pass.EntryDiagnostic(i, "duplicate assertion "+k.String()),
				note, "this declaration is never returned by a lookup")
		}
		return nil
	},
}

// AnalyzerEmptyModule reports entries without a module tag.
var AnalyzerEmptyModule = &Analyzer{
	Name:     "empty-module",
	Doc:      "Report entries without a module.\n\nA lookup with an empty module always fails, so such an entry can never be found.",
	Severity: SeverityError,
	Run: func(pass *Pass) error {
		for i, e := range pass.Table {
			if e.Module == "" {
				pass.Reportf(i, "assertion %d has no module", e.ID)
			}
		}
		return nil
	},
}

// AnalyzerEmptyBrief reports entries without a summary.
var AnalyzerEmptyBrief = &Analyzer{
	Name:     "empty-brief",
	Doc:      "Report entries without a brief summary.\n\nThe brief is the headline shown for a failed assertion; without it the report has nothing to say.",
	Severity: SeverityWarning,
	Run: func(pass *Pass) error {
		for i, e := range pass.Table {
			if strings.TrimSpace(e.Brief) == "" {
				pass.Reportf(i, "assertion %s has no brief", e.Key())
			}
		}
		return nil
	},
}

// AnalyzerURLFormat reports reference links that are not absolute http(s)
// URLs.
var AnalyzerURLFormat = &Analyzer{
	Name:     "url-format",
	Doc:      "Check that reference links are absolute http or https URLs.",
	Severity: SeverityWarning,
	Run: func(pass *Pass) error {
		for i, e := range pass.Table {
			if e.URL == "" {
				continue
			}
			u, err := url.Parse(e.URL)
			if err != nil {
				pass.Reportf(i, "assertion %s has a malformed url: %v", e.Key(), err)
				continue
			}
			if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
				pass.Reportf(i, "assertion %s url is not an absolute http(s) link: %q", e.Key(), e.URL)
			}
		}
		return nil
	},
}

// AnalyzerShadowedBuiltin reports supplementary entries whose key is already
// described by the built-in table. The built-in table is always searched
// before any fallback, so these entries are never returned.
var AnalyzerShadowedBuiltin = &Analyzer{
	Name:     "shadowed-builtin",
	Doc:      "Report entries already described by the built-in table.\n\nSupplementary files are consulted only after the built-in table misses, so an entry for a built-in key is never used.",
	Severity: SeverityInfo,
	Run: func(pass *Pass) error {
		if len(pass.Builtin) == 0 {
			return nil
		}
		for i, e := range pass.Table {
			if _, ok := pass.Builtin.Find(e.Module, e.ID); ok {
				pass.Reportf(i, "assertion %s is already described by the built-in table", e.Key())
			}
		}
		return nil
	},
}

// DefaultAnalyzers returns the built-in set of lint checks.
func DefaultAnalyzers() []*Analyzer {
	return []*Analyzer{
		AnalyzerDuplicateKey,
		AnalyzerEmptyModule,
		AnalyzerEmptyBrief,
		AnalyzerURLFormat,
		AnalyzerShadowedBuiltin,
	}
}

// SelectAnalyzers returns the default analyzers named in names, in default
// order. Unknown names are reported as an error.
func SelectAnalyzers(names []string) ([]*Analyzer, error) {
	selected := make(map[string]bool)
	for _, name := range names {
		selected[strings.TrimSpace(name)] = true
	}
	var filtered []*Analyzer
	for _, a := range DefaultAnalyzers() {
		if selected[a.Name] {
			filtered = append(filtered, a)
			delete(selected, a.Name)
		}
	}
	if len(selected) > 0 {
		unknown := make([]string, 0, len(selected))
		for name := range selected {
			unknown = append(unknown, name)
		}
		sort.Strings(unknown)
		return nil, fmt.Errorf("unknown check: %s", strings.Join(unknown, ", "))
	}
	return filtered, nil
}

// AnalyzerNames returns a sorted list of all default analyzer names.
func AnalyzerNames() []string {
	analyzers := DefaultAnalyzers()
	names := make([]string, len(analyzers))
	for i, a := range analyzers {
		names[i] = a.Name
	}
	sort.Strings(names)
	return names
}

// AnalyzerDoc returns a formatted documentation string for all analyzers.
func AnalyzerDoc() string {
	var b strings.Builder
	for _, a := range DefaultAnalyzers() {
		fmt.Fprintf(&b, "  %s\n", a.Name)
		lines := strings.Split(a.Doc, "\n")
		fmt.Fprintf(&b, "    %s\n\n", lines[0])
	}
	return b.String()
}
