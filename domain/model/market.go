package model

import "time"

// Market identifies one tradable instrument on an exchange.
type Market struct {
	ID         string
	Name       string
	ExchangeID string   // references Exchange
	Category   string   // e.g., "inverse", "linear", "spot"
	Symbol     string   // e.g., "BTCUSD"
	Interval   Interval // default download interval
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// MarketCategories lists the product categories accepted in configuration.
var MarketCategories = []string{"spot", "linear", "inverse", "option"}

// ValidMarketCategory reports whether c is a known product category.
func ValidMarketCategory(c string) bool {
	for _, v := range MarketCategories {
		if c == v {
			return true
		}
	}
	return false
}
