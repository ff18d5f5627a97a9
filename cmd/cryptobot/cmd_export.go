package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cryptobot/cryptobot/usecase/export"
	"github.com/cryptobot/cryptobot/usecase/market"
)

// newCmdExport returns the command that writes stored candles to CSV.
func newCmdExport() *cobra.Command {
	var (
		marketRef string
		start     string
		end       string
		dir       string
	)
	c := &cobra.Command{
		Use:   "export",
		Short: "Export stored candles to a CSV file",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			repos, err := buildRepositories(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()

			marketUC := &market.UseCase{Exchanges: repos.Exchanges, Markets: repos.Markets}
			m, err := marketUC.Resolve(ctx, marketRef)
			if err != nil {
				return err
			}

			ctx, cleanup := withCmdRunLogger(ctx, "export.csv", m.ID)
			defer func() { cleanup(err) }()

			uc := &export.UseCase{Markets: repos.Markets, Candles: repos.Candles}
			out, err := uc.CSV(ctx, &export.CSVInput{
				MarketID: m.ID,
				Start:    start,
				End:      end,
				Dir:      dir,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved=%s candles=%d\n", out.Path, out.Candles)
			return nil
		},
	}
	c.Flags().StringVarP(&marketRef, "market", "m", "", "Market ID or name (required)")
	c.Flags().StringVar(&start, "start", "", `Range start "YYYY-MM-DD HH:MM:SS" UTC (required)`)
	c.Flags().StringVar(&end, "end", "", `Range end "YYYY-MM-DD HH:MM:SS" UTC (required)`)
	c.Flags().StringVarP(&dir, "dir", "d", "./data/raw", "Output directory")
	_ = c.MarkFlagRequired("market")
	_ = c.MarkFlagRequired("start")
	_ = c.MarkFlagRequired("end")
	return c
}
