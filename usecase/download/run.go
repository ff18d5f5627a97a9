package download

import (
	"context"
	"fmt"
	"time"

	"github.com/cryptobot/cryptobot/domain/model"
	"github.com/cryptobot/cryptobot/internal/logging"
)

// RunInput describes one download run.
type RunInput struct {
	MarketID string
	Start    string // "YYYY-MM-DD HH:MM:SS" (UTC)
	End      string
	Limit    int // candles per request; defaults to DefaultLimit
}

// RunOutput summarizes a completed download run.
type RunOutput struct {
	Market   *model.Market
	Interval model.Interval
	Start    time.Time
	End      time.Time
	Candles  int
	Requests int
}

// Run downloads candles for a market over a time range, fetching in batches
// of at most Limit candles per request and upserting each batch into the
// candle store. An empty batch ends the run early: the exchange has no more
// data for the range.
func (u *UseCase) Run(ctx context.Context, in *RunInput) (*RunOutput, error) {
	if in == nil || in.MarketID == "" {
		return nil, model.ErrMarketInvalid
	}
	logger := logging.FromContext(ctx)

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
	if !end.After(start) {
		return nil, fmt.Errorf("end %q must be after start %q", in.End, in.Start)
	}

	interval := market.Interval
	seconds, ok := interval.Seconds()
	if !ok {
		logger.Warnf(ctx, "unknown interval %q, defaulting to %q", interval, model.DefaultInterval)
		interval = model.DefaultInterval
		seconds, _ = interval.Seconds()
	}

	limit := in.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	out := &RunOutput{
		Market:   market,
		Interval: interval,
		Start:    start,
		End:      end,
	}

	batchStart := start.Unix()
	endTS := end.Unix()

	for batchStart < endTS {
		batchEnd := batchStart + int64(limit)*seconds
		if batchEnd > endTS {
			batchEnd = endTS
		}
		pageLimit := int((batchEnd - batchStart) / seconds)
		if pageLimit < 1 {
			pageLimit = 1
		}

		candles, err := u.Klines.Klines(ctx, market, model.KlineQuery{
			Category: market.Category,
			Symbol:   market.Symbol,
			Interval: interval,
			Start:    batchStart,
			Limit:    pageLimit,
		})
		if err != nil {
			return nil, fmt.Errorf("fetching klines for %s: %w", market.Name, err)
		}
		out.Requests++

		if len(candles) == 0 {
			logger.Info(ctx, "no more data available for the given range", "market", market.Name)
			break
		}

		if err := u.Candles.PutBatch(ctx, candles); err != nil {
			return nil, fmt.Errorf("storing candles for %s: %w", market.Name, err)
		}
		out.Candles += len(candles)

		batchStart = batchEnd
	}

	logger.Info(ctx, "download complete",
		"market", market.Name, "interval", string(interval),
		"candles", out.Candles, "requests", out.Requests)
	return out, nil
}
