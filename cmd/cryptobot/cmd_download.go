package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	exchangedrv "github.com/cryptobot/cryptobot/adapters/drivers/exchange"
	"github.com/cryptobot/cryptobot/usecase/download"
	"github.com/cryptobot/cryptobot/usecase/export"
	"github.com/cryptobot/cryptobot/usecase/market"
)

// newCmdDownload returns the command that fetches historical candles.
func newCmdDownload() *cobra.Command {
	var (
		marketRef string
		start     string
		end       string
		limit     int
		csvDir    string
	)
	c := &cobra.Command{
		Use:   "download",
		Short: "Download historical candles for a market",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			repos, err := buildRepositories(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Minute)
			defer cancel()

			marketUC := &market.UseCase{Exchanges: repos.Exchanges, Markets: repos.Markets}
			m, err := marketUC.Resolve(ctx, marketRef)
			if err != nil {
				return err
			}

			ctx, cleanup := withCmdRunLogger(ctx, "download.run", m.ID)
			defer func() { cleanup(err) }()

			uc := &download.UseCase{
				Markets: repos.Markets,
				Candles: repos.Candles,
				Klines:  exchangedrv.GetKlinePort(repos.Exchanges),
			}
			out, err := uc.Run(ctx, &download.RunInput{
				MarketID: m.ID,
				Start:    start,
				End:      end,
				Limit:    limit,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "market=%s interval=%s candles=%d requests=%d\n",
				out.Market.Name, out.Interval, out.Candles, out.Requests)

			if csvDir == "" {
				return nil
			}
			exportUC := &export.UseCase{Markets: repos.Markets, Candles: repos.Candles}
			res, err := exportUC.CSV(ctx, &export.CSVInput{
				MarketID: m.ID,
				Start:    start,
				End:      end,
				Dir:      csvDir,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved=%s\n", res.Path)
			return nil
		},
	}
	c.Flags().StringVarP(&marketRef, "market", "m", "", "Market ID or name (required)")
	c.Flags().StringVar(&start, "start", "", `Range start "YYYY-MM-DD HH:MM:SS" UTC (required)`)
	c.Flags().StringVar(&end, "end", "", `Range end "YYYY-MM-DD HH:MM:SS" UTC (required)`)
	c.Flags().IntVar(&limit, "limit", download.DefaultLimit, "Max candles per API request")
	c.Flags().StringVar(&csvDir, "csv-dir", "", "Also export the downloaded range as CSV into this directory")
	_ = c.MarkFlagRequired("market")
	_ = c.MarkFlagRequired("start")
	_ = c.MarkFlagRequired("end")
	return c
}
