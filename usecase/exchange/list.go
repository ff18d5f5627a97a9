package exchange

import (
	"context"

	"github.com/cryptobot/cryptobot/domain/model"
)

// List returns all exchanges.
func (u *UseCase) List(ctx context.Context) ([]*model.Exchange, error) {
	return u.Exchanges.List(ctx)
}
