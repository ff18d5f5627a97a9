package market

import (
	"context"
	"fmt"
	"time"

	"github.com/cryptobot/cryptobot/domain/model"
	"github.com/cryptobot/cryptobot/internal/naming"
)

// CreateInput carries input data for creation.
type CreateInput struct {
	Name       string
	ExchangeID string
	Category   string
	Symbol     string
	Interval   string
}

// Create validates the input and stores a new market. The referenced
// exchange must exist.
func (u *UseCase) Create(ctx context.Context, in CreateInput) (*model.Market, error) {
	if err := naming.ValidateResourceName(in.Name); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMarketInvalid, err)
	}
	if err := naming.ValidateSymbol(in.Symbol); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMarketInvalid, err)
	}
	if !model.ValidMarketCategory(in.Category) {
		return nil, fmt.Errorf("%w: invalid category %q", model.ErrMarketInvalid, in.Category)
	}
	if !model.Interval(in.Interval).Valid() {
		return nil, fmt.Errorf("%w: unknown interval %q", model.ErrMarketInvalid, in.Interval)
	}
	if _, err := u.Exchanges.Get(ctx, in.ExchangeID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	m := &model.Market{
		ID:         "", // Will be assigned by repository if empty.
		Name:       in.Name,
		ExchangeID: in.ExchangeID,
		Category:   in.Category,
		Symbol:     in.Symbol,
		Interval:   model.Interval(in.Interval),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := u.Markets.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}
