package market

import (
	"context"

	"github.com/cryptobot/cryptobot/domain/model"
)

// Get retrieves a market by ID.
func (u *UseCase) Get(ctx context.Context, id string) (*model.Market, error) {
	if id == "" {
		return nil, model.ErrMarketInvalid
	}
	return u.Markets.Get(ctx, id)
}

// Resolve retrieves a market by ID, falling back to name lookup. CLI
// commands accept either form.
func (u *UseCase) Resolve(ctx context.Context, idOrName string) (*model.Market, error) {
	if idOrName == "" {
		return nil, model.ErrMarketInvalid
	}
	m, err := u.Markets.Get(ctx, idOrName)
	if err == nil {
		return m, nil
	}
	if err != model.ErrMarketNotFound {
		return nil, err
	}
	markets, err := u.Markets.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range markets {
		if m.Name == idOrName {
			return m, nil
		}
	}
	return nil, model.ErrMarketNotFound
}
