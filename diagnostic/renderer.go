// Copyright © 2026 The qassert authors

package diagnostic

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

// DefaultWidth is the wrap width used when Renderer.Width is zero.
const DefaultWidth = 80

// Renderer formats diagnostics as Rust-style annotated messages.
type Renderer struct {
	// Color controls ANSI color output. Default is ColorAuto.
	Color ColorMode

	// Width is the column at which help text is wrapped. Zero means
	// DefaultWidth.
	Width int

	// SourceReader reads source file contents. If nil, os.ReadFile is used.
	SourceReader func(string) ([]byte, error)
}

// Render writes a single diagnostic to w.
func (r *Renderer) Render(w io.Writer, d Diagnostic) error {
	p := choosePalette(r.Color, fileFromWriter(w))
	bw := bufio.NewWriter(w)
	ew := &errWriter{w: bw}

	r.writeHeader(ew, d, p)
	for _, span := range d.Spans {
		r.writeSpan(ew, span, p)
	}
	if d.Help != "" {
		r.writeBlock(ew, p.boldGreen+"help"+p.reset, "help", d.Help, p)
	}
	for _, note := range d.Notes {
		r.writeBlock(ew, p.boldCyan+"note"+p.reset, "note", note, p)
	}

	if ew.err != nil {
		return ew.err
	}
	return bw.Flush()
}

// RenderAll writes all diagnostics to w separated by blank lines.
func (r *Renderer) RenderAll(w io.Writer, diags []Diagnostic) error {
	for i, d := range diags {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := r.Render(w, d); err != nil {
			return err
		}
	}
	return nil
}

// errWriter wraps a writer and captures the first error, short-circuiting
// subsequent writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, a ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, a...)
}

func (ew *errWriter) print(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

func (r *Renderer) width() int {
	if r.Width <= 0 {
		return DefaultWidth
	}
	return r.Width
}

// writeHeader prints "error[code]: message". A multi-line message keeps its
// line breaks, continuation lines aligned under the first.
func (r *Renderer) writeHeader(ew *errWriter, d Diagnostic, p palette) {
	head := d.Severity.String()
	if d.Code != "" {
		head += "[" + d.Code + "]"
	}
	lines := strings.Split(strings.TrimRight(d.Message, "\n"), "\n")
	ew.printf("%s%s%s:%s %s%s%s\n",
		p.severityColor(d.Severity), p.bold, head, p.reset,
		p.bold, lines[0], p.reset)
	pad := strings.Repeat(" ", utf8.RuneCountInString(head)+2)
	for _, line := range lines[1:] {
		ew.printf("%s%s%s%s\n", pad, p.bold, line, p.reset)
	}
}

// writeBlock prints "   = label: text" with text wrapped to the renderer
// width and continuation lines indented under the first.
func (r *Renderer) writeBlock(ew *errWriter, label, plainLabel, text string, p palette) {
	prefix := "   = " + plainLabel + ": "
	avail := r.width() - len(prefix)
	if avail < 20 {
		avail = 20
	}
	wrapped := wordwrap.String(strings.TrimRight(text, "\n"), avail)
	body := indent.String(wrapped, uint(len(prefix)))
	// The label takes the place of the first line's indentation.
	body = strings.TrimPrefix(body, strings.Repeat(" ", len(prefix)))
	ew.printf("   %s=%s %s: %s\n", p.boldCyan, p.reset, label, body)
}

func (r *Renderer) writeSpan(ew *errWriter, span Span, p palette) {
	loc := span.File
	if span.Line > 0 {
		loc = fmt.Sprintf("%s:%d", span.File, span.Line)
	}
	ew.printf("  %s-->%s %s\n", p.boldBlue, p.reset, loc)

	source := r.readSourceLine(span.File, span.Line)
	if strings.TrimSpace(source) == "" {
		ew.printf("   %s|%s\n", p.boldBlue, p.reset)
		return
	}

	lineStr := fmt.Sprintf("%d", span.Line)
	pad := strings.Repeat(" ", len(lineStr))
	display := strings.ReplaceAll(source, "\t", "    ")

	ew.printf(" %s%s |%s\n", p.boldBlue, pad, p.reset)
	ew.printf(" %s%s |%s  %s\n", p.boldBlue, lineStr, p.reset, display)

	trimmed := strings.TrimLeft(display, " ")
	underPad := strings.Repeat(" ", len(display)-len(trimmed))
	underline := strings.Repeat("^", utf8.RuneCountInString(strings.TrimRight(trimmed, " ")))
	ew.printf(" %s%s |%s  %s%s%s%s", p.boldBlue, pad, p.reset, underPad, p.boldRed, underline, p.reset)
	if span.Label != "" {
		ew.printf(" %s%s%s", p.boldRed, span.Label, p.reset)
	}
	ew.print("\n")
	ew.printf(" %s%s |%s\n", p.boldBlue, pad, p.reset)
}

func (r *Renderer) readSourceLine(file string, line int) string {
	if line <= 0 || file == "" {
		return ""
	}
	reader := r.SourceReader
	if reader == nil {
		reader = func(name string) ([]byte, error) {
			return os.ReadFile(name) //nolint:gosec // reads user-specified description files for display
		}
	}
	data, err := reader(file)
	if err != nil {
		return ""
	}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for i := 1; scanner.Scan(); i++ {
		if i == line {
			return scanner.Text()
		}
	}
	return ""
}

// fileFromWriter attempts to extract an *os.File from a writer for terminal
// detection. Returns nil if the writer is not backed by a file.
func fileFromWriter(w io.Writer) *os.File {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return nil
}
