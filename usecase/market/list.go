package market

import (
	"context"

	"github.com/cryptobot/cryptobot/domain/model"
)

// List returns all markets.
func (u *UseCase) List(ctx context.Context) ([]*model.Market, error) {
	return u.Markets.List(ctx)
}
