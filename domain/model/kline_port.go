package model

import "context"

// KlineQuery describes a single kline page request against an exchange API.
type KlineQuery struct {
	Category string
	Symbol   string
	Interval Interval
	Start    int64 // bucket open time of the first candle, unix seconds
	Limit    int   // max rows per request
}

// KlinePort is an interface (domain port) for fetching candles for a market
// from its exchange. Implementations resolve the market's exchange driver and
// stamp MarketID on the returned candles.
type KlinePort interface {
	Klines(ctx context.Context, market *Market, q KlineQuery) ([]*Candle, error)
}
