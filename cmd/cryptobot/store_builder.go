package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cryptobot/cryptobot/adapters/store/inmem"
	"github.com/cryptobot/cryptobot/adapters/store/rdb"
	"github.com/cryptobot/cryptobot/domain"
)

// findFlag recursively searches parents for a flag.
func findFlag(cmd *cobra.Command, name string) *pflag.Flag {
	for c := cmd; c != nil; c = c.Parent() {
		if f := c.Flags().Lookup(name); f != nil {
			return f
		}
		if f := c.PersistentFlags().Lookup(name); f != nil {
			return f
		}
	}
	return nil
}

// getDBURL extracts the db-url flag value from command hierarchy.
func getDBURL(cmd *cobra.Command) string {
	f := findFlag(cmd, "db-url")
	if f != nil && f.Value.String() != "" {
		return f.Value.String()
	}
	return "file:cryptobot.yml"
}

// repositories groups the repository set used by commands.
type repositories struct {
	Exchanges domain.ExchangeRepository
	Markets   domain.MarketRepository
	Candles   domain.CandleRepository
}

// buildRepositories creates repositories based on db-url.
// If db-url starts with "file:", it loads the configuration file into the
// memory store; candles then live only for the duration of the run.
func buildRepositories(cmd *cobra.Command) (*repositories, error) {
	dbURL := getDBURL(cmd)

	switch {
	case strings.HasPrefix(dbURL, "file:"):
		filePath := strings.TrimPrefix(dbURL, "file:")
		if filePath == "" {
			return nil, fmt.Errorf("file path is required for file: URL")
		}

		store := inmem.NewStore()
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := store.LoadFromFile(ctx, filePath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", filePath, err)
		}

		return &repositories{
			Exchanges: store.ExchangeRepo,
			Markets:   store.MarketRepo,
			Candles:   store.CandleRepo,
		}, nil

	case strings.HasPrefix(dbURL, "sqlite:") || strings.HasPrefix(dbURL, "sqlite3:"):
		db, err := rdb.OpenFromURL(dbURL)
		if err != nil {
			return nil, err
		}
		if err := rdb.AutoMigrate(db); err != nil {
			return nil, err
		}
		return &repositories{
			Exchanges: rdb.NewExchangeRepository(db),
			Markets:   rdb.NewMarketRepository(db),
			Candles:   rdb.NewCandleRepository(db),
		}, nil

	default:
		return nil, fmt.Errorf("unsupported db scheme: %s", dbURL)
	}
}
