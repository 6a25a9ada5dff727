// Copyright © 2026 The qassert authors

package cmd

import (
	"fmt"

	"github.com/luthersystems/qassert/docs"
	"github.com/spf13/cobra"
)

func newGuideCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "guide",
		Short: "Show how to write supplementary description files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), docs.SourcesGuide)
			return err
		},
	}
}
