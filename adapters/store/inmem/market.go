package inmem

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cryptobot/cryptobot/domain/model"
)

// MarketRepository is a thread-safe in-memory implementation.
type MarketRepository struct {
	mu      sync.RWMutex
	markets map[string]*model.Market
	seq     int64
}

func NewMarketRepository() *MarketRepository {
	return &MarketRepository{
		markets: make(map[string]*model.Market),
	}
}

func (r *MarketRepository) nextID() string {
	r.seq++
	return fmt.Sprintf("mkt-%d-%d", time.Now().UnixNano(), r.seq)
}

func (r *MarketRepository) Create(_ context.Context, m *model.Market) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m.ID == "" {
		m.ID = r.nextID()
	}
	cp := *m
	r.markets[m.ID] = &cp
	return nil
}

func (r *MarketRepository) Get(_ context.Context, id string) (*model.Market, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.markets[id]
	if !ok {
		return nil, model.ErrMarketNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *MarketRepository) List(_ context.Context) ([]*model.Market, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Market, 0, len(r.markets))
	for _, v := range r.markets {
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}

func (r *MarketRepository) Update(_ context.Context, m *model.Market) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.markets[m.ID]
	if !ok {
		return model.ErrMarketNotFound
	}
	cp := *m
	cp.CreatedAt = existing.CreatedAt
	r.markets[m.ID] = &cp
	return nil
}

func (r *MarketRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.markets[id]; !ok {
		return model.ErrMarketNotFound
	}
	delete(r.markets, id)
	return nil
}
