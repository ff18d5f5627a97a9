package domain

import (
	"context"
	"time"

	"github.com/cryptobot/cryptobot/domain/model"
)

// ExchangeRepository stores and retrieves Exchange aggregates.
type ExchangeRepository interface {
	Create(ctx context.Context, e *model.Exchange) error
	Get(ctx context.Context, id string) (*model.Exchange, error)
	List(ctx context.Context) ([]*model.Exchange, error)
	Update(ctx context.Context, e *model.Exchange) error
	Delete(ctx context.Context, id string) error
}

// MarketRepository stores and retrieves Market aggregates.
type MarketRepository interface {
	Create(ctx context.Context, m *model.Market) error
	Get(ctx context.Context, id string) (*model.Market, error)
	List(ctx context.Context) ([]*model.Market, error)
	Update(ctx context.Context, m *model.Market) error
	Delete(ctx context.Context, id string) error
}

// CandleRepository stores downloaded candles. Candles are keyed by
// (MarketID, Interval, Start); PutBatch upserts so re-downloading a range
// never duplicates buckets.
type CandleRepository interface {
	PutBatch(ctx context.Context, candles []*model.Candle) error
	Range(ctx context.Context, marketID string, interval model.Interval, start, end time.Time) ([]*model.Candle, error)
	Count(ctx context.Context, marketID string, interval model.Interval) (int64, error)
}
