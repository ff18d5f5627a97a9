package model

import "errors"

var (
	ErrExchangeNotFound = errors.New("exchange not found")
	ErrExchangeInvalid  = errors.New("exchange invalid")
	ErrMarketNotFound   = errors.New("market not found")
	ErrMarketInvalid    = errors.New("market invalid")
	ErrCandleInvalid    = errors.New("candle invalid")
)
