package market

import (
	"context"

	"github.com/cryptobot/cryptobot/domain/model"
)

// Delete removes a market by ID.
func (u *UseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return model.ErrMarketInvalid
	}
	return u.Markets.Delete(ctx, id)
}
