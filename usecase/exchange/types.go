package exchange

import "github.com/cryptobot/cryptobot/domain"

// UseCase wires repositories needed for exchange use cases.
type UseCase struct {
	Exchanges domain.ExchangeRepository
}
