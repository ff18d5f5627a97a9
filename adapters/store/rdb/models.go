package rdb

import "time"

// ExchangeRecord is the RDB persistence model for domain Exchange.
// Table name: exchanges
type ExchangeRecord struct {
	ID        string    `gorm:"primaryKey;type:text;not null"`
	Name      string    `gorm:"type:text;not null"`
	Driver    string    `gorm:"type:text;not null"`
	Settings  string    `gorm:"type:text"` // JSON encoded map[string]string
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (ExchangeRecord) TableName() string { return "exchanges" }

// MarketRecord persistence model
type MarketRecord struct {
	ID         string    `gorm:"primaryKey;type:text;not null"`
	Name       string    `gorm:"type:text;not null"`
	ExchangeID string    `gorm:"type:text;not null"` // references Exchange
	Category   string    `gorm:"type:text;not null"`
	Symbol     string    `gorm:"type:text;not null"`
	Interval   string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (MarketRecord) TableName() string { return "markets" }

// CandleRecord persistence model. One row per candle bucket; the composite
// unique index backs the upsert in CandleRepository.PutBatch.
type CandleRecord struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	MarketID  string    `gorm:"type:text;not null;uniqueIndex:idx_candles_bucket"`
	Interval  string    `gorm:"type:text;not null;uniqueIndex:idx_candles_bucket"`
	StartTime time.Time `gorm:"not null;uniqueIndex:idx_candles_bucket"`
	Open      string    `gorm:"type:text;not null"`
	High      string    `gorm:"type:text;not null"`
	Low       string    `gorm:"type:text;not null"`
	Close     string    `gorm:"type:text;not null"`
	Volume    string    `gorm:"type:text;not null"`
	Turnover  string    `gorm:"type:text"`
}

func (CandleRecord) TableName() string { return "candles" }
