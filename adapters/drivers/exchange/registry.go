package exchangedrv

import (
	"context"
	"fmt"

	"github.com/cryptobot/cryptobot/domain"
	"github.com/cryptobot/cryptobot/domain/model"
)

// Driver abstracts exchange-specific market-data access. Implementations
// live under adapters/drivers/exchange/<name> and should return an exchange
// identifier such as "bybit" via ID().
type Driver interface {
	// ID returns the exchange driver identifier (e.g., "bybit").
	ID() string

	// Klines fetches one page of candles. Returned candles are ordered
	// oldest-first and carry no MarketID; callers stamp it.
	Klines(ctx context.Context, q model.KlineQuery) ([]*model.Candle, error)
}

// driverFactory is a constructor function for an exchange driver.
type driverFactory func(settings map[string]string) (Driver, error)

// registry holds registered drivers by name.
var registry = map[string]driverFactory{}

// Register makes a driver available by the given name. Drivers should call
// this from their init() function.
func Register(name string, factory driverFactory) {
	registry[name] = factory
}

// GetDriverFactory returns the driver factory function for the given name.
func GetDriverFactory(name string) (driverFactory, bool) {
	factory, exists := registry[name]
	return factory, exists
}

// klinePortAdapter implements model.KlinePort backed by exchange drivers.
type klinePortAdapter struct {
	exchanges domain.ExchangeRepository
}

func (a *klinePortAdapter) Klines(ctx context.Context, market *model.Market, q model.KlineQuery) ([]*model.Candle, error) {
	exchange, err := a.exchanges.Get(ctx, market.ExchangeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange %s: %w", market.ExchangeID, err)
	}

	factory, exists := GetDriverFactory(exchange.Driver)
	if !exists {
		return nil, fmt.Errorf("unknown exchange driver: %s", exchange.Driver)
	}

	driver, err := factory(exchange.Settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create driver %s: %w", exchange.Driver, err)
	}

	candles, err := driver.Klines(ctx, q)
	if err != nil {
		return nil, err
	}
	for _, c := range candles {
		c.MarketID = market.ID
	}
	return candles, nil
}

// GetKlinePort returns a model.KlinePort implemented via exchange drivers.
func GetKlinePort(exchanges domain.ExchangeRepository) model.KlinePort {
	return &klinePortAdapter{exchanges: exchanges}
}
