package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptobot/cryptobot/config/botcfg"
)

// newCmdConfig returns a command that reads and validates the configuration.
func newCmdConfig() *cobra.Command {
	var file string
	c := &cobra.Command{
		Use:   "config",
		Short: "Read and validate configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := botcfg.Load(file)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			// Print a concise summary to stdout
			fmt.Fprintf(cmd.OutOrStdout(), "version=%s bot=%s exchanges=%d markets=%d output=%s\n",
				cfg.Version, cfg.Bot.Name, len(cfg.Exchanges), len(cfg.Markets), cfg.Output.Dir)
			return nil
		},
	}
	c.Flags().StringVarP(&file, "file", "f", botcfg.DefaultConfigPath, "Path to cryptobot.yml")
	return c
}
