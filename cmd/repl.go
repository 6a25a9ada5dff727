// Copyright © 2026 The qassert authors

package cmd

import (
	"os"

	"github.com/luthersystems/qassert/repl"
	"github.com/spf13/cobra"
)

func newReplCommand(opts ...Option) *cobra.Command {
	cfg := newCmdConfig(opts...)
	return &cobra.Command{
		Use:   "repl",
		Short: "Look up assertions interactively",
		Long: `Start an interactive prompt. Each line names an assertion as MODULE ID or
MODULE:ID and is answered with its description. Tab completes module names
and the ids known for a module. Type "help" for the remaining commands.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cfg.settings()
			if err != nil {
				return &exitError{code: 2, err: err}
			}
			log := cfg.log(cmd.ErrOrStderr(), s, "repl")
			lk, err := cfg.buildLookup(s, log)
			if err != nil {
				return &exitError{code: 2, err: err}
			}
			return repl.Run(lk.registry, repl.DefaultPrompt,
				repl.WithRenderer(s.renderer()),
				repl.WithLogger(log),
				repl.WithStderr(os.Stderr),
			)
		},
	}
}
