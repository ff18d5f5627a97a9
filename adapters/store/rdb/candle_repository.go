package rdb

import (
	"context"
	"time"

	"github.com/cryptobot/cryptobot/domain"
	"github.com/cryptobot/cryptobot/domain/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CandleRepository is a GORM-backed implementation of domain.CandleRepository.
type CandleRepository struct {
	db *gorm.DB
}

func NewCandleRepository(db *gorm.DB) *CandleRepository {
	return &CandleRepository{db: db}
}

func candleToRecord(c *model.Candle) CandleRecord {
	return CandleRecord{
		MarketID:  c.MarketID,
		Interval:  string(c.Interval),
		StartTime: c.Start.UTC(),
		Open:      c.Open,
		High:      c.High,
		Low:       c.Low,
		Close:     c.Close,
		Volume:    c.Volume,
		Turnover:  c.Turnover,
	}
}

func candleToModel(r *CandleRecord) *model.Candle {
	return &model.Candle{
		MarketID: r.MarketID,
		Interval: model.Interval(r.Interval),
		Start:    r.StartTime.UTC(),
		Open:     r.Open,
		High:     r.High,
		Low:      r.Low,
		Close:    r.Close,
		Volume:   r.Volume,
		Turnover: r.Turnover,
	}
}

// PutBatch upserts candles on the (market_id, interval, start_time) bucket key.
func (r *CandleRepository) PutBatch(ctx context.Context, candles []*model.Candle) error {
	if len(candles) == 0 {
		return nil
	}
	recs := make([]CandleRecord, 0, len(candles))
	for _, c := range candles {
		if c.MarketID == "" || !c.Interval.Valid() {
			return model.ErrCandleInvalid
		}
		recs = append(recs, candleToRecord(c))
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "market_id"}, {Name: "interval"}, {Name: "start_time"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"open", "high", "low", "close", "volume", "turnover",
		}),
	}).Create(&recs).Error
}

func (r *CandleRepository) Range(ctx context.Context, marketID string, interval model.Interval, start, end time.Time) ([]*model.Candle, error) {
	var recs []CandleRecord
	err := r.db.WithContext(ctx).
		Where("market_id = ? AND interval = ? AND start_time >= ? AND start_time < ?",
			marketID, string(interval), start.UTC(), end.UTC()).
		Order("start_time ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	out := make([]*model.Candle, 0, len(recs))
	for i := range recs {
		out = append(out, candleToModel(&recs[i]))
	}
	return out, nil
}

func (r *CandleRepository) Count(ctx context.Context, marketID string, interval model.Interval) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&CandleRecord{}).
		Where("market_id = ? AND interval = ?", marketID, string(interval)).
		Count(&n).Error
	return n, err
}

// Ensure interface satisfaction.
var _ domain.CandleRepository = (*CandleRepository)(nil)
