// Copyright © 2026 The qassert authors

package cmd

import (
	"fmt"
	"io"

	"github.com/luthersystems/qassert/diagnostic"
	lintpkg "github.com/luthersystems/qassert/lint"
	"github.com/luthersystems/qassert/meta"
)

// assertionToDiagnostic converts a lookup result to a Diagnostic for display.
func assertionToDiagnostic(key meta.Key, d meta.Description, found bool, withSources bool) diagnostic.Diagnostic {
	diag := diagnostic.Assertion(key.String(), d.Brief, d.Tips, d.URL, found)
	if !found && !withSources {
		diag.Notes = append(diag.Notes,
			"describe project assertions in a YAML or HCL file and pass it with --source")
	}
	return diag
}

// lintDiagToDiagnostic converts a lint.Diagnostic to a diagnostic.Diagnostic.
func lintDiagToDiagnostic(ld lintpkg.Diagnostic) diagnostic.Diagnostic {
	d := diagnostic.Diagnostic{
		Severity: diagnostic.SeverityWarning,
		Code:     ld.Key,
		Message:  ld.Message + " (" + ld.Analyzer + ")",
	}
	switch ld.Severity {
	case lintpkg.SeverityError:
		d.Severity = diagnostic.SeverityError
	case lintpkg.SeverityInfo:
		d.Severity = diagnostic.SeverityNote
	}
	if ld.Pos.Line > 0 {
		d.Spans = append(d.Spans, diagnostic.Span{
			File: ld.Pos.File,
			Line: ld.Pos.Line,
		})
	} else {
		d.Notes = append(d.Notes, fmt.Sprintf("in %s, entry %d", ld.Pos.File, ld.Pos.Entry))
	}
	d.Notes = append(d.Notes, ld.Notes...)
	if ld.Pos.Line > 0 {
		d.Notes = append(d.Notes, "to suppress: add \"# nolint:"+ld.Analyzer+"\" as a comment on this line")
	}
	return d
}

// renderLintDiagnostics renders lint diagnostics with diagnostic formatting.
func renderLintDiagnostics(w io.Writer, r *diagnostic.Renderer, diags []lintpkg.Diagnostic) error {
	ds := make([]diagnostic.Diagnostic, 0, len(diags))
	for _, ld := range diags {
		ds = append(ds, lintDiagToDiagnostic(ld))
	}
	return r.RenderAll(w, ds)
}
