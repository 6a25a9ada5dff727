// Copyright © 2026 The qassert authors

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/luthersystems/qassert/lint"
	"github.com/spf13/cobra"
)

// VetCommand returns a cobra command that checks description tables.
func VetCommand(opts ...Option) *cobra.Command {
	cfg := newCmdConfig(opts...)
	var (
		jsonOut  bool
		checks   string
		listAll  bool
		excludes []string
	)

	cmd := &cobra.Command{
		Use:   "vet [flags] [files...]",
		Short: "Check assertion description files",
		Long: `Check assertion description files for likely mistakes.

With no files, checks the built-in table. With files, checks each one as a
supplement to the built-in table. A "dir/..." argument checks every .yaml,
.yml, .json and .hcl file under dir.

Exit codes:
  0  No problems found
  1  One or more problems were reported
  2  Bad invocation (invalid flags, unreadable files)

To suppress a specific diagnostic, add a comment on the line the entry
starts on:
  - module: app_main # nolint:empty-brief

To suppress all checks on a line:
  - module: app_main # nolint

Available checks (use --checks to select specific ones):
` + lint.AnalyzerDoc() + `
Examples:
  qassert vet                                     # Check the built-in table
  qassert vet project.yaml                        # Check a description file
  qassert vet --json project.yaml                 # Output diagnostics as JSON
  qassert vet --checks=duplicate-key ./...        # Run only specific checks
  qassert vet --list                              # List available checks
  qassert vet --exclude='vendor' ./...            # Exclude directories`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listAll {
				for _, name := range lint.AnalyzerNames() {
					fmt.Fprintln(cmd.OutOrStdout(), name) //nolint:errcheck // best-effort output
				}
				return nil
			}

			analyzers := lint.DefaultAnalyzers()
			if checks != "" {
				var err error
				if analyzers, err = lint.SelectAnalyzers(strings.Split(checks, ",")); err != nil {
					return &exitError{code: 2, err: err}
				}
			}

			s, err := cfg.settings()
			if err != nil {
				return &exitError{code: 2, err: err}
			}
			log := cfg.log(cmd.ErrOrStderr(), s, "vet")
			builtin := cfg.builtinTable()

			var diags []lint.Diagnostic
			if len(args) == 0 {
				l := &lint.Linter{Analyzers: analyzers}
				if diags, err = l.LintTable(builtin, lint.BuiltinFilename); err != nil {
					return &exitError{code: 2, err: err}
				}
			} else {
				paths, err := expandArgs(args, excludes)
				if err != nil {
					return &exitError{code: 2, err: err}
				}
				l := &lint.Linter{Analyzers: analyzers, Builtin: builtin}
				for _, path := range paths {
					fileDiags, err := vetFile(l, path)
					if err != nil {
						return &exitError{code: 2, err: err}
					}
					log.WithField("file", path).WithField("problems", len(fileDiags)).Debug("checked")
					diags = append(diags, fileDiags...)
				}
			}

			if len(diags) == 0 {
				return nil
			}
			if jsonOut {
				if err := lint.FormatJSON(cmd.OutOrStdout(), diags); err != nil {
					return &exitError{code: 2, err: err}
				}
			} else if err := renderLintDiagnostics(cmd.ErrOrStderr(), s.renderer(), diags); err != nil {
				return &exitError{code: 2, err: err}
			}
			return &exitError{code: 1}
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false,
		"Output diagnostics as JSON.")
	cmd.Flags().StringVar(&checks, "checks", "",
		"Comma-separated list of checks to run (default: all).")
	cmd.Flags().BoolVar(&listAll, "list", false,
		"List available checks and exit.")
	cmd.Flags().StringArrayVar(&excludes, "exclude", nil,
		"Glob pattern for files to exclude (may be repeated).")
	return cmd
}

func vetFile(l *lint.Linter, path string) ([]lint.Diagnostic, error) {
	src, err := os.ReadFile(path) //nolint:gosec // CLI tool reads user-specified files
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l.LintFile(src, path)
}
