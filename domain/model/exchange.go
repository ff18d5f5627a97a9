package model

import "time"

// Exchange represents a market-data source (e.g., Bybit).
type Exchange struct {
	ID        string
	Name      string
	Driver    string            // e.g., "bybit"
	Settings  map[string]string // driver-specific settings (endpoint, timeout)
	CreatedAt time.Time
	UpdatedAt time.Time
}
