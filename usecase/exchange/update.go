package exchange

import (
	"context"
	"time"

	"github.com/cryptobot/cryptobot/domain/model"
)

// UpdateInput carries input data for update. Empty fields keep their
// stored values.
type UpdateInput struct {
	ID       string
	Name     string
	Driver   string
	Settings map[string]string
}

// Update modifies an existing exchange.
func (u *UseCase) Update(ctx context.Context, in UpdateInput) (*model.Exchange, error) {
	if in.ID == "" {
		return nil, model.ErrExchangeInvalid
	}
	e, err := u.Exchanges.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		e.Name = in.Name
	}
	if in.Driver != "" {
		e.Driver = in.Driver
	}
	if in.Settings != nil {
		e.Settings = in.Settings
	}
	e.UpdatedAt = time.Now().UTC()
	if err := u.Exchanges.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}
