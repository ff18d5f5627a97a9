package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cryptobot/cryptobot/usecase/market"
)

// marketSpec is the YAML/JSON on-disk representation for create/update.
// Exchange references the exchange by ID.
type marketSpec struct {
	Name     string `yaml:"name" json:"name"`
	Exchange string `yaml:"exchange,omitempty" json:"exchange,omitempty"`
	Category string `yaml:"category,omitempty" json:"category,omitempty"`
	Symbol   string `yaml:"symbol,omitempty" json:"symbol,omitempty"`
	Interval string `yaml:"interval,omitempty" json:"interval,omitempty"`
}

func newCmdAdminMarket() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "market",
		Short:         "Manage Market resources",
		RunE:          func(cmd *cobra.Command, args []string) error { return cmd.Help() },
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newCmdAdminMarketList())
	cmd.AddCommand(newCmdAdminMarketGet())
	cmd.AddCommand(newCmdAdminMarketCreate())
	cmd.AddCommand(newCmdAdminMarketUpdate())
	cmd.AddCommand(newCmdAdminMarketDelete())
	return cmd
}

func buildMarketUseCase(cmd *cobra.Command) (*market.UseCase, error) {
	repos, err := buildRepositories(cmd)
	if err != nil {
		return nil, err
	}
	return &market.UseCase{Exchanges: repos.Exchanges, Markets: repos.Markets}, nil
}

func readMarketSpec(path string) (*marketSpec, error) {
	if path == "" {
		return nil, errors.New("spec file required (-f)")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var spec marketSpec
	if err := yaml.Unmarshal(b, &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

func newCmdAdminMarketList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List markets",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := buildMarketUseCase(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			items, err := uc.List(ctx)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, it := range items {
				if err := enc.Encode(it); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newCmdAdminMarketGet() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a market",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := buildMarketUseCase(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			m, err := uc.Get(ctx, args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(m)
		},
	}
}

func newCmdAdminMarketCreate() *cobra.Command {
	var file string
	c := &cobra.Command{
		Use:   "create",
		Short: "Create a market (from spec file)",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := buildMarketUseCase(cmd)
			if err != nil {
				return err
			}
			spec, err := readMarketSpec(file)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			m, err := uc.Create(ctx, market.CreateInput{
				Name:       spec.Name,
				ExchangeID: spec.Exchange,
				Category:   spec.Category,
				Symbol:     spec.Symbol,
				Interval:   spec.Interval,
			})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(m)
		},
	}
	c.Flags().StringVarP(&file, "file", "f", "", "Path to market spec (YAML)")
	return c
}

func newCmdAdminMarketUpdate() *cobra.Command {
	var file string
	c := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a market (from spec file)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := buildMarketUseCase(cmd)
			if err != nil {
				return err
			}
			spec, err := readMarketSpec(file)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			m, err := uc.Update(ctx, market.UpdateInput{
				ID:       args[0],
				Name:     spec.Name,
				Category: spec.Category,
				Symbol:   spec.Symbol,
				Interval: spec.Interval,
			})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(m)
		},
	}
	c.Flags().StringVarP(&file, "file", "f", "", "Path to market spec (YAML)")
	return c
}

func newCmdAdminMarketDelete() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a market",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := buildMarketUseCase(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			return uc.Delete(ctx, args[0])
		},
	}
}
