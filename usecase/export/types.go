package export

import "github.com/cryptobot/cryptobot/domain"

// UseCase wires repositories needed for export use cases.
type UseCase struct {
	Markets domain.MarketRepository
	Candles domain.CandleRepository
}
