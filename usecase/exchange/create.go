package exchange

import (
	"context"
	"time"

	"github.com/cryptobot/cryptobot/domain/model"
	"github.com/cryptobot/cryptobot/internal/naming"
)

// CreateInput carries input data for creation.
type CreateInput struct {
	Name     string
	Driver   string
	Settings map[string]string
}

// Create validates the input and stores a new exchange.
func (u *UseCase) Create(ctx context.Context, in CreateInput) (*model.Exchange, error) {
	if err := naming.ValidateResourceName(in.Name); err != nil {
		return nil, model.ErrExchangeInvalid
	}
	if in.Driver == "" {
		return nil, model.ErrExchangeInvalid
	}
	now := time.Now().UTC()
	e := &model.Exchange{
		ID:        "", // Will be assigned by repository if empty.
		Name:      in.Name,
		Driver:    in.Driver,
		Settings:  in.Settings,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.Exchanges.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}
