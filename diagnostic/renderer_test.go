// Copyright © 2026 The qassert authors

package diagnostic

import (
	"bytes"
	"strings"
	"testing"
)

// testRenderer returns a Renderer with colors disabled and a fake source reader.
func testRenderer(sources map[string]string) *Renderer {
	return &Renderer{
		Color: ColorNever,
		SourceReader: func(name string) ([]byte, error) {
			s, ok := sources[name]
			if !ok {
				return nil, &fakeErr{name}
			}
			return []byte(s), nil
		},
	}
}

type fakeErr struct{ name string }

func (e *fakeErr) Error() string { return "not found: " + e.name }

func TestRenderAssertion(t *testing.T) {
	r := testRenderer(nil)

	d := Diagnostic{
		Severity: SeverityError,
		Code:     "qf_actq:102",
		Message:  "QActive post(...), the event being posted is either null, invalid, or corrupt.",
		Help:     "This typically means the event pointer was improperly retained\nafter the event was returned to its event pool.",
		Notes:    []string{"see https://www.state-machine.com/qpc/struct_q_active.html"},
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, d); err != nil {
		t.Fatal(err)
	}

	got := buf.String()
	assertContains(t, got, "error[qf_actq:102]: QActive post(...)")
	assertContains(t, got, "   = help: This typically means the event pointer was improperly retained\n")
	assertContains(t, got, "\n           after the event was returned to its event pool.\n")
	assertContains(t, got, "   = note: see https://www.state-machine.com/qpc/struct_q_active.html")
	assertNotContains(t, got, "\033[")
}

func TestRenderWrapsHelp(t *testing.T) {
	r := testRenderer(nil)
	r.Width = 40

	d := Diagnostic{
		Severity: SeverityNote,
		Message:  "wrapped",
		Help:     "one two three four five six seven eight nine ten eleven twelve",
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, d); err != nil {
		t.Fatal(err)
	}

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		if len(line) > 40 {
			t.Errorf("line exceeds width: %q", line)
		}
	}
	assertContains(t, buf.String(), "note: wrapped")
}

func TestRenderHelpKeepsLeadingIndent(t *testing.T) {
	r := testRenderer(nil)
	r.Width = 200

	d := Diagnostic{
		Severity: SeverityError,
		Code:     "qf_time:400",
		Message:  "QTimeEvt arm(...), invalid input parameter.",
		Help:     "  The host AO must not be null.\n  Ticks must not be zero.",
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, d); err != nil {
		t.Fatal(err)
	}

	got := buf.String()
	assertContains(t, got, "   = help:   The host AO must not be null.\n")
	assertContains(t, got, "\n             Ticks must not be zero.\n")
}

func TestRenderMultilineMessage(t *testing.T) {
	r := testRenderer(nil)

	d := Diagnostic{
		Severity: SeverityError,
		Code:     "qf_ps:210",
		Message:  "publish(...) failed an internal integrity check, where the AO\nfound was (somehow) not registered with the framework.",
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, d); err != nil {
		t.Fatal(err)
	}

	got := buf.String()
	assertContains(t, got, "error[qf_ps:210]: publish(...) failed")
	assertContains(t, got, "\n                  found was (somehow)")
}

func TestRenderSpan(t *testing.T) {
	r := testRenderer(map[string]string{
		"app.yaml": "assertions:\n  - module: app\n    id: 1\n",
	})

	d := Diagnostic{
		Severity: SeverityWarning,
		Message:  "assertion has no brief",
		Spans: []Span{
			{File: "app.yaml", Line: 2, Label: "declared here"},
		},
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, d); err != nil {
		t.Fatal(err)
	}

	got := buf.String()
	assertContains(t, got, "warning: assertion has no brief")
	assertContains(t, got, "--> app.yaml:2")
	assertContains(t, got, "2 |    - module: app")
	assertContains(t, got, "^^^^^^^^^^^^^ declared here")
}

func TestRenderNoSource(t *testing.T) {
	r := testRenderer(nil)

	d := Diagnostic{
		Severity: SeverityError,
		Message:  "some error",
		Spans: []Span{
			{File: "<builtin>", Line: 5},
		},
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, d); err != nil {
		t.Fatal(err)
	}

	got := buf.String()
	assertContains(t, got, "--> <builtin>:5")
	assertContains(t, got, "|")
	assertNotContains(t, got, "^")
}

func TestRenderMultipleDiagnostics(t *testing.T) {
	r := testRenderer(nil)

	diags := []Diagnostic{
		{Severity: SeverityWarning, Message: "duplicate assertion app:1"},
		{Severity: SeverityWarning, Message: "assertion has no brief"},
	}

	var buf bytes.Buffer
	if err := r.RenderAll(&buf, diags); err != nil {
		t.Fatal(err)
	}

	got := buf.String()
	parts := strings.Split(got, "\n\n")
	if len(parts) < 2 {
		t.Errorf("expected diagnostics separated by blank line, got:\n%s", got)
	}
	assertContains(t, got, "duplicate assertion app:1")
	assertContains(t, got, "assertion has no brief")
}

func TestRenderColor(t *testing.T) {
	r := testRenderer(nil)
	r.Color = ColorAlways

	var buf bytes.Buffer
	if err := r.Render(&buf, Diagnostic{Severity: SeverityError, Message: "boom", Help: "tip"}); err != nil {
		t.Fatal(err)
	}
	assertContains(t, buf.String(), "\033[1;31m")
	assertContains(t, buf.String(), "\033[1;32mhelp\033[0m")
}

func TestParseColorMode(t *testing.T) {
	for in, want := range map[string]ColorMode{"": ColorAuto, "auto": ColorAuto, "always": ColorAlways, "never": ColorNever} {
		got, err := ParseColorMode(in)
		if err != nil || got != want {
			t.Errorf("ParseColorMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseColorMode("sometimes"); err == nil {
		t.Error("expected error for invalid mode")
	}
}

func assertContains(t *testing.T, got, want string) {
	t.Helper()
	if !strings.Contains(got, want) {
		t.Errorf("output does not contain %q:\n%s", want, got)
	}
}

func assertNotContains(t *testing.T, got, unwanted string) {
	t.Helper()
	if strings.Contains(got, unwanted) {
		t.Errorf("output unexpectedly contains %q:\n%s", unwanted, got)
	}
}
