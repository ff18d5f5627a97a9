package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cryptobot/cryptobot/domain/model"
	"github.com/cryptobot/cryptobot/internal/logging"
)

// csvHeader matches the column order of the candle rows.
var csvHeader = []string{"timestamp", "open", "high", "low", "close", "volume", "turnover"}

// CSVInput selects the candle range to export.
type CSVInput struct {
	MarketID string
	Start    string // "YYYY-MM-DD HH:MM:SS" (UTC)
	End      string
	Dir      string // target directory, created if absent
}

// CSVOutput describes the written file.
type CSVOutput struct {
	Path    string
	Candles int
}

// CSV writes stored candles for a market and range to a CSV file named
// {symbol}_{interval}_{start}_{end}.csv in the target directory. The file is
// written even when the range holds no candles (header only).
func (u *UseCase) CSV(ctx context.Context, in *CSVInput) (*CSVOutput, error) {
	if in == nil || in.MarketID == "" {
		return nil, model.ErrMarketInvalid
	}
	if in.Dir == "" {
		return nil, fmt.Errorf("output directory is required")
	}

	market, err := u.Markets.Get(ctx, in.MarketID)
	if err != nil {
		return nil, err
	}

	start, err := model.ParseTime(in.Start)
	if err != nil {
		return nil, err
	}
	end, err := model.ParseTime(in.End)
	if err != nil {
		return nil, err
	}

	interval := market.Interval
	if !interval.Valid() {
		interval = model.DefaultInterval
	}

	candles, err := u.Candles.Range(ctx, market.ID, interval, start, end)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(in.Dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory %q: %w", in.Dir, err)
	}

	filename := fmt.Sprintf("%s_%s_%s_%s.csv", market.Symbol, interval, in.Start, in.End)
	path := filepath.Join(in.Dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("writing %q: %w", path, err)
	}
	for _, c := range candles {
		row := []string{
			strconv.FormatInt(c.Start.Unix(), 10),
			c.Open, c.High, c.Low, c.Close, c.Volume, c.Turnover,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("writing %q: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("writing %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("closing %q: %w", path, err)
	}

	logging.FromContext(ctx).Info(ctx, "data saved", "path", path, "candles", len(candles))
	return &CSVOutput{Path: path, Candles: len(candles)}, nil
}
