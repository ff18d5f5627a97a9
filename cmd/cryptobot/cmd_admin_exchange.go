package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cryptobot/cryptobot/usecase/exchange"
)

// exchangeSpec is the YAML/JSON on-disk representation for create/update.
type exchangeSpec struct {
	Name     string            `yaml:"name" json:"name"`
	Driver   string            `yaml:"driver" json:"driver"`
	Settings map[string]string `yaml:"settings,omitempty" json:"settings,omitempty"`
}

func newCmdAdminExchange() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "exchange",
		Short:         "Manage Exchange resources",
		RunE:          func(cmd *cobra.Command, args []string) error { return cmd.Help() },
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newCmdAdminExchangeList())
	cmd.AddCommand(newCmdAdminExchangeGet())
	cmd.AddCommand(newCmdAdminExchangeCreate())
	cmd.AddCommand(newCmdAdminExchangeUpdate())
	cmd.AddCommand(newCmdAdminExchangeDelete())
	return cmd
}

// buildExchangeUseCase selects repositories based on the db-url flag.
func buildExchangeUseCase(cmd *cobra.Command) (*exchange.UseCase, error) {
	repos, err := buildRepositories(cmd)
	if err != nil {
		return nil, err
	}
	return &exchange.UseCase{Exchanges: repos.Exchanges}, nil
}

func readExchangeSpec(path string) (*exchangeSpec, error) {
	if path == "" {
		return nil, errors.New("spec file required (-f)")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var spec exchangeSpec
	if err := yaml.Unmarshal(b, &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

func newCmdAdminExchangeList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List exchanges",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := buildExchangeUseCase(cmd)
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

func newCmdAdminExchangeGet() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get an exchange",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := buildExchangeUseCase(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			e, err := uc.Get(ctx, args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(e)
		},
	}
}

func newCmdAdminExchangeCreate() *cobra.Command {
	var file string
	c := &cobra.Command{
		Use:   "create",
		Short: "Create an exchange (from spec file)",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := buildExchangeUseCase(cmd)
			if err != nil {
				return err
			}
			spec, err := readExchangeSpec(file)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			e, err := uc.Create(ctx, exchange.CreateInput{
				Name:     spec.Name,
				Driver:   spec.Driver,
				Settings: spec.Settings,
			})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(e)
		},
	}
	c.Flags().StringVarP(&file, "file", "f", "", "Path to exchange spec (YAML)")
	return c
}

func newCmdAdminExchangeUpdate() *cobra.Command {
	var file string
	c := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an exchange (from spec file)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := buildExchangeUseCase(cmd)
			if err != nil {
				return err
			}
			spec, err := readExchangeSpec(file)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			e, err := uc.Update(ctx, exchange.UpdateInput{
				ID:       args[0],
				Name:     spec.Name,
				Driver:   spec.Driver,
				Settings: spec.Settings,
			})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(e)
		},
	}
	c.Flags().StringVarP(&file, "file", "f", "", "Path to exchange spec (YAML)")
	return c
}

func newCmdAdminExchangeDelete() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an exchange",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := buildExchangeUseCase(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			return uc.Delete(ctx, args[0])
		},
	}
}
