package inmem

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cryptobot/cryptobot/domain/model"
)

type candleKey struct {
	marketID string
	interval model.Interval
}

// CandleRepository is a thread-safe in-memory implementation. Candles are
// deduplicated by bucket start time within each (market, interval) series.
type CandleRepository struct {
	mu     sync.RWMutex
	series map[candleKey]map[int64]*model.Candle
}

func NewCandleRepository() *CandleRepository {
	return &CandleRepository{
		series: make(map[candleKey]map[int64]*model.Candle),
	}
}

func (r *CandleRepository) PutBatch(_ context.Context, candles []*model.Candle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range candles {
		if c.MarketID == "" || !c.Interval.Valid() {
			return model.ErrCandleInvalid
		}
		key := candleKey{marketID: c.MarketID, interval: c.Interval}
		buckets, ok := r.series[key]
		if !ok {
			buckets = make(map[int64]*model.Candle)
			r.series[key] = buckets
		}
		cp := *c
		buckets[c.Start.Unix()] = &cp
	}
	return nil
}

func (r *CandleRepository) Range(_ context.Context, marketID string, interval model.Interval, start, end time.Time) ([]*model.Candle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	buckets := r.series[candleKey{marketID: marketID, interval: interval}]
	out := make([]*model.Candle, 0, len(buckets))
	for ts, c := range buckets {
		if ts < start.Unix() || ts >= end.Unix() {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

func (r *CandleRepository) Count(_ context.Context, marketID string, interval model.Interval) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.series[candleKey{marketID: marketID, interval: interval}])), nil
}
