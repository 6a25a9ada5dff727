// Copyright © 2026 The qassert authors

package cmd

import (
	"encoding/json"
	"strings"

	"github.com/luthersystems/qassert/meta"
	"github.com/luthersystems/qassert/repl"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// describeResult is the --json output of the describe command.
type describeResult struct {
	Module string `json:"module"`
	ID     int    `json:"id"`
	Found  bool   `json:"found"`
	meta.Description
}

// DescribeCommand returns a cobra command that explains a single assertion.
// Options inject the registry and fallback resolver the command consults.
func DescribeCommand(opts ...Option) *cobra.Command {
	cfg := newCmdConfig(opts...)
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "describe [flags] MODULE ID",
		Short: "Explain a failed assertion",
		Long: `Explain a failed assertion given its module name and id.

The assertion may be written as two arguments or as the single MODULE:ID form
the framework prints. The built-in table is searched first; supplementary
description files and any embedder-provided resolver are consulted only when
it has no match.

Exit codes:
  0  The assertion is described
  1  No description is available
  2  Bad invocation (malformed id, unreadable description files)

Examples:
  qassert describe qf_actq 190
  qassert describe qf_mem:110
  qassert describe --json qep_hsm 290
  qassert describe --source project.yaml app_main 7`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			module, id, err := repl.ParseRef(strings.Join(args, " "))
			if err != nil {
				return &exitError{code: 2, err: err}
			}
			s, err := cfg.settings()
			if err != nil {
				return &exitError{code: 2, err: err}
			}
			log := cfg.log(cmd.ErrOrStderr(), s, "describe")
			lk, err := cfg.buildLookup(s, log)
			if err != nil {
				return &exitError{code: 2, err: err}
			}

			desc, found := lk.registry.Lookup(module, id)
			log.WithFields(logrus.Fields{
				"module": module,
				"id":     id,
				"found":  found,
			}).Debug("lookup")

			if !found {
				desc = meta.Description{}
			}
			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(describeResult{Module: module, ID: id, Found: found, Description: desc}); err != nil {
					return &exitError{code: 2, err: err}
				}
			} else {
				key := meta.Key{Module: module, ID: id}
				d := assertionToDiagnostic(key, desc, found, len(s.Sources) > 0)
				if err := s.renderer().Render(cmd.OutOrStdout(), d); err != nil {
					return &exitError{code: 2, err: err}
				}
			}
			if !found {
				return &exitError{code: 1}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the description as JSON.")
	return cmd
}
