package inmem

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cryptobot/cryptobot/domain/model"
)

// ExchangeRepository is a thread-safe in-memory implementation.
type ExchangeRepository struct {
	mu        sync.RWMutex
	exchanges map[string]*model.Exchange
	seq       int64
}

func NewExchangeRepository() *ExchangeRepository {
	return &ExchangeRepository{
		exchanges: make(map[string]*model.Exchange),
	}
}

func (r *ExchangeRepository) nextID() string {
	r.seq++
	return fmt.Sprintf("exc-%d-%d", time.Now().UnixNano(), r.seq)
}

func (r *ExchangeRepository) Create(_ context.Context, e *model.Exchange) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.ID == "" {
		e.ID = r.nextID()
	}
	// Copy to avoid external mutation.
	cp := *e
	r.exchanges[e.ID] = &cp
	return nil
}

func (r *ExchangeRepository) Get(_ context.Context, id string) (*model.Exchange, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.exchanges[id]
	if !ok {
		return nil, model.ErrExchangeNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *ExchangeRepository) List(_ context.Context) ([]*model.Exchange, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Exchange, 0, len(r.exchanges))
	for _, v := range r.exchanges {
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}

func (r *ExchangeRepository) Update(_ context.Context, e *model.Exchange) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.exchanges[e.ID]
	if !ok {
		return model.ErrExchangeNotFound
	}
	cp := *e
	// Preserve CreatedAt if caller accidentally changed it.
	cp.CreatedAt = existing.CreatedAt
	r.exchanges[e.ID] = &cp
	return nil
}

func (r *ExchangeRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.exchanges[id]; !ok {
		return model.ErrExchangeNotFound
	}
	delete(r.exchanges, id)
	return nil
}
