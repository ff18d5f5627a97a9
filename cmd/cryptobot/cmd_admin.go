package main

import (
	"github.com/spf13/cobra"
)

// newCmdAdmin groups resource management subcommands.
func newCmdAdmin() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "admin",
		Short:         "Manage stored resources",
		RunE:          func(cmd *cobra.Command, args []string) error { return cmd.Help() },
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newCmdAdminExchange())
	cmd.AddCommand(newCmdAdminMarket())
	return cmd
}
