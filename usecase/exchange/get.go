package exchange

import (
	"context"

	"github.com/cryptobot/cryptobot/domain/model"
)

// Get retrieves an exchange by ID.
func (u *UseCase) Get(ctx context.Context, id string) (*model.Exchange, error) {
	if id == "" {
		return nil, model.ErrExchangeInvalid
	}
	return u.Exchanges.Get(ctx, id)
}
