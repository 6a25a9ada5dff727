// Copyright © 2026 The qassert authors

package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/luthersystems/qassert/meta"
	"github.com/spf13/cobra"
)

// listEntry is one row of the list command's --json output.
type listEntry struct {
	meta.Entry
	Source string `json:"source"`
}

// ListCommand returns a cobra command that lists described assertions.
func ListCommand(opts ...Option) *cobra.Command {
	cfg := newCmdConfig(opts...)
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list [flags] [MODULE...]",
		Short: "List described assertions",
		Long: `List the assertions the built-in table describes, followed by those
from supplementary description files when any are configured.

With module arguments only entries of those modules are listed; module names
match exactly. Entries are shown in declaration order.

Examples:
  qassert list
  qassert list qf_mem qf_time
  qassert list --json --source project.yaml`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cfg.settings()
			if err != nil {
				return &exitError{code: 2, err: err}
			}
			log := cfg.log(cmd.ErrOrStderr(), s, "list")
			lk, err := cfg.buildLookup(s, log)
			if err != nil {
				return &exitError{code: 2, err: err}
			}

			rows := filterModules(lk.registry.Entries(), "builtin", args)
			rows = append(rows, filterModules(lk.sources, "source", args)...)
			log.WithField("entries", len(rows)).Debug("listing")

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if rows == nil {
					rows = []listEntry{}
				}
				if err := enc.Encode(rows); err != nil {
					return &exitError{code: 2, err: err}
				}
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, r := range rows {
				brief := firstLine(r.Brief)
				if r.Source != "builtin" {
					brief += " (" + r.Source + ")"
				}
				fmt.Fprintf(tw, "%s\t%s\n", r.Key(), brief) //nolint:errcheck // flushed below
			}
			if err := tw.Flush(); err != nil {
				return &exitError{code: 2, err: err}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output entries as JSON.")
	return cmd
}

func filterModules(table meta.Table, source string, modules []string) []listEntry {
	want := make(map[string]bool, len(modules))
	for _, m := range modules {
		want[m] = true
	}
	var rows []listEntry
	for _, e := range table {
		if len(want) > 0 && !want[e.Module] {
			continue
		}
		rows = append(rows, listEntry{Entry: e, Source: source})
	}
	return rows
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
