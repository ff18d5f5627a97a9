package model

import (
	"fmt"
	"time"
)

// TimeLayout is the timestamp format accepted on the CLI and used in
// exported file names, interpreted as UTC.
const TimeLayout = "2006-01-02 15:04:05"

// Candle is a single OHLCV bucket fetched from an exchange.
// Price and volume fields keep the exchange's decimal string encoding so
// exports round-trip without precision loss.
type Candle struct {
	MarketID string
	Interval Interval
	Start    time.Time // bucket open time (UTC)
	Open     string
	High     string
	Low      string
	Close    string
	Volume   string
	Turnover string
}

// ParseTime parses a TimeLayout timestamp in UTC.
func ParseTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(TimeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: expected format %q", s, TimeLayout)
	}
	return t, nil
}
