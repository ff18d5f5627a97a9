package exchange

import (
	"context"

	"github.com/cryptobot/cryptobot/domain/model"
)

// Delete removes an exchange by ID.
func (u *UseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return model.ErrExchangeInvalid
	}
	return u.Exchanges.Delete(ctx, id)
}
