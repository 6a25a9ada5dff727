// Copyright © 2026 The qassert authors

package diagnostic

import (
	"fmt"
	"os"
)

// ColorMode controls when ANSI color codes are used.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // detect based on terminal and NO_COLOR
	ColorAlways                  // always use colors
	ColorNever                   // never use colors
)

// ParseColorMode maps "auto", "always" and "never" to a ColorMode. The empty
// string is treated as "auto".
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q: want auto, always or never", s)
	}
}

// palette holds the ANSI escape sequences for diagnostic output.
type palette struct {
	bold      string
	yellow    string
	boldRed   string
	boldGreen string
	boldBlue  string
	boldCyan  string
	reset     string
}

var ansiPalette = palette{
	bold:      "\033[1m",
	yellow:    "\033[33m",
	boldRed:   "\033[1;31m",
	boldGreen: "\033[1;32m",
	boldBlue:  "\033[1;34m",
	boldCyan:  "\033[1;36m",
	reset:     "\033[0m",
}

var noPalette = palette{}

// severityColor returns the header color for s.
func (p palette) severityColor(s Severity) string {
	switch s {
	case SeverityError:
		return p.boldRed
	case SeverityWarning:
		return p.yellow
	default:
		return p.boldCyan
	}
}

// choosePalette selects the palette for mode, consulting NO_COLOR and the
// output file when mode is ColorAuto.
func choosePalette(mode ColorMode, w *os.File) palette {
	switch mode {
	case ColorAlways:
		return ansiPalette
	case ColorNever:
		return noPalette
	default: // ColorAuto
		if os.Getenv("NO_COLOR") != "" {
			return noPalette
		}
		if !isTerminal(w) {
			return noPalette
		}
		return ansiPalette
	}
}

// isTerminal reports whether f is connected to a terminal.
func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
