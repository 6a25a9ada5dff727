// Copyright © 2026 The qassert authors

// Package repl implements an interactive prompt for looking up assertion
// descriptions. Each input line names an assertion as "MODULE ID" or
// "MODULE:ID" and is answered with the same report the describe command
// prints.
package repl

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ergochat/readline"
	"github.com/luthersystems/qassert/diagnostic"
	"github.com/luthersystems/qassert/meta"
	"github.com/sirupsen/logrus"
)

// DefaultPrompt is shown before each input line.
const DefaultPrompt = "qassert> "

const helpText = `Enter an assertion as MODULE ID or MODULE:ID, for example "qf_actq 190".
Commands:
  modules   list the modules with built-in descriptions
  help      show this message
  quit      leave the prompt
`

type config struct {
	stdin       io.ReadCloser
	stderr      io.WriteCloser
	renderer    *diagnostic.Renderer
	historyFile string
	logger      logrus.FieldLogger
}

func newConfig(opts ...Option) *config {
	config := &config{historyFile: historyPath()}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

type Option func(*config)

// WithStdin allows overriding the input to the REPL.
func WithStdin(stdin io.ReadCloser) Option {
	return func(c *config) {
		c.stdin = stdin
	}
}

// WithStderr allows overriding the output of the REPL.
func WithStderr(stderr io.WriteCloser) Option {
	return func(c *config) {
		c.stderr = stderr
	}
}

// WithRenderer sets the renderer used for lookup results.
func WithRenderer(r *diagnostic.Renderer) Option {
	return func(c *config) {
		c.renderer = r
	}
}

// WithHistoryFile overrides the history location. An empty path disables
// history.
func WithHistoryFile(path string) Option {
	return func(c *config) {
		c.historyFile = path
	}
}

// WithLogger sets the logger for lookup tracing.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// Run reads assertion references until end of input and prints the
// description of each.
func Run(reg *meta.Registry, prompt string, opts ...Option) error {
	cfg := newConfig(opts...)
	var out io.Writer = os.Stderr
	if cfg.stderr != nil {
		out = cfg.stderr
	}
	renderer := cfg.renderer
	if renderer == nil {
		renderer = &diagnostic.Renderer{Color: diagnostic.ColorNever}
	}
	logger := cfg.logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	ensureHistoryFilePermissions(cfg.historyFile)
	rlCfg := &readline.Config{
		Stdout:            out,
		Stderr:            out,
		Prompt:            prompt,
		HistoryFile:       cfg.historyFile,
		HistorySearchFold: true,
		AutoComplete:      newCompleter(reg),
	}
	if cfg.stdin != nil {
		rlCfg.Stdin = cfg.stdin
	}
	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return fmt.Errorf("repl: %w", err)
	}
	defer rl.Close() //nolint:errcheck // best-effort cleanup

	for {
		line, err := rl.ReadSlice()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("repl: %w", err)
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		done, err := eval(out, reg, renderer, logger, string(line))
		if err != nil {
			return fmt.Errorf("repl: %w", err)
		}
		if done {
			return nil
		}
	}
}

// eval handles a single input line and reports whether the session should
// end. A failure to render a lookup result is returned.
func eval(w io.Writer, reg *meta.Registry, renderer *diagnostic.Renderer, logger logrus.FieldLogger, line string) (bool, error) {
	switch line {
	case "quit", "exit":
		return true, nil
	case "help", "?":
		fmt.Fprint(w, helpText) //nolint:errcheck // best-effort REPL output
		return false, nil
	case "modules":
		for _, m := range reg.Entries().Modules() {
			fmt.Fprintln(w, m) //nolint:errcheck // best-effort REPL output
		}
		return false, nil
	}

	module, id, err := ParseRef(line)
	if err != nil {
		fmt.Fprintln(w, err) //nolint:errcheck // best-effort error display
		return false, nil
	}
	desc, found := reg.Lookup(module, id)
	logger.WithFields(logrus.Fields{
		"module": module,
		"id":     id,
		"found":  found,
	}).Debug("lookup")
	key := meta.Key{Module: module, ID: id}.String()
	return false, renderer.Render(w, diagnostic.Assertion(key, desc.Brief, desc.Tips, desc.URL, found))
}

// ParseRef splits an assertion reference of the form "MODULE ID" or
// "MODULE:ID".
func ParseRef(s string) (string, int, error) {
	s = strings.TrimSpace(s)
	var module, rawID string
	if fields := strings.Fields(s); len(fields) == 2 {
		module, rawID = fields[0], fields[1]
	} else if i := strings.LastIndex(s, ":"); len(fields) == 1 && i > 0 {
		module, rawID = s[:i], s[i+1:]
	} else {
		return "", 0, fmt.Errorf("expected MODULE ID or MODULE:ID, got %q", s)
	}
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return "", 0, fmt.Errorf("invalid assertion id %q", rawID)
	}
	return module, id, nil
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".qassert_history")
}

// ensureHistoryFilePermissions creates the history file if needed and
// restricts it to the owner.
func ensureHistoryFilePermissions(path string) {
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return
	}
	_ = f.Close()
	_ = os.Chmod(path, 0600)
}
