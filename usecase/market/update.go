package market

import (
	"context"
	"fmt"
	"time"

	"github.com/cryptobot/cryptobot/domain/model"
)

// UpdateInput carries input data for update. Empty fields keep their
// stored values.
type UpdateInput struct {
	ID       string
	Name     string
	Category string
	Symbol   string
	Interval string
}

// Update modifies an existing market.
func (u *UseCase) Update(ctx context.Context, in UpdateInput) (*model.Market, error) {
	if in.ID == "" {
		return nil, model.ErrMarketInvalid
	}
	m, err := u.Markets.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		m.Name = in.Name
	}
	if in.Category != "" {
		if !model.ValidMarketCategory(in.Category) {
			return nil, fmt.Errorf("%w: invalid category %q", model.ErrMarketInvalid, in.Category)
		}
		m.Category = in.Category
	}
	if in.Symbol != "" {
		m.Symbol = in.Symbol
	}
	if in.Interval != "" {
		if !model.Interval(in.Interval).Valid() {
			return nil, fmt.Errorf("%w: unknown interval %q", model.ErrMarketInvalid, in.Interval)
		}
		m.Interval = model.Interval(in.Interval)
	}
	m.UpdatedAt = time.Now().UTC()
	if err := u.Markets.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}
