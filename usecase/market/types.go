package market

import "github.com/cryptobot/cryptobot/domain"

// UseCase wires repositories needed for market use cases.
type UseCase struct {
	Exchanges domain.ExchangeRepository
	Markets   domain.MarketRepository
}
