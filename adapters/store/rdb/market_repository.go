package rdb

import (
	"context"

	"github.com/cryptobot/cryptobot/domain"
	"github.com/cryptobot/cryptobot/domain/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MarketRepository is a GORM-backed implementation of domain.MarketRepository.
type MarketRepository struct {
	db *gorm.DB
}

func NewMarketRepository(db *gorm.DB) *MarketRepository {
	return &MarketRepository{db: db}
}

func marketToRecord(m *model.Market) *MarketRecord {
	return &MarketRecord{
		ID:         m.ID,
		Name:       m.Name,
		ExchangeID: m.ExchangeID,
		Category:   m.Category,
		Symbol:     m.Symbol,
		Interval:   string(m.Interval),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func marketToModel(r *MarketRecord) *model.Market {
	return &model.Market{
		ID:         r.ID,
		Name:       r.Name,
		ExchangeID: r.ExchangeID,
		Category:   r.Category,
		Symbol:     r.Symbol,
		Interval:   model.Interval(r.Interval),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func (r *MarketRepository) Create(ctx context.Context, m *model.Market) error {
	rec := marketToRecord(m)
	if rec.ID == "" {
		// Generate a unique ID if not provided
		rec.ID = "mkt-" + uuid.NewString()
		m.ID = rec.ID
	}
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *MarketRepository) Get(ctx context.Context, id string) (*model.Market, error) {
	var rec MarketRecord
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, model.ErrMarketNotFound
		}
		return nil, err
	}
	return marketToModel(&rec), nil
}

func (r *MarketRepository) List(ctx context.Context) ([]*model.Market, error) {
	var recs []MarketRecord
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*model.Market, 0, len(recs))
	for i := range recs {
		out = append(out, marketToModel(&recs[i]))
	}
	return out, nil
}

func (r *MarketRepository) Update(ctx context.Context, m *model.Market) error {
	rec := marketToRecord(m)
	return r.db.WithContext(ctx).Model(&MarketRecord{}).Where("id = ?", rec.ID).Updates(rec).Error
}

func (r *MarketRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&MarketRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrMarketNotFound
	}
	return nil
}

// Ensure interface satisfaction.
var _ domain.MarketRepository = (*MarketRepository)(nil)
