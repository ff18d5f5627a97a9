package download

import (
	"github.com/cryptobot/cryptobot/domain"
	"github.com/cryptobot/cryptobot/domain/model"
)

// DefaultLimit is the number of candles requested per exchange API call.
const DefaultLimit = 1000

// UseCase wires repositories and the exchange kline port for download runs.
type UseCase struct {
	Markets domain.MarketRepository
	Candles domain.CandleRepository
	Klines  model.KlinePort
}
