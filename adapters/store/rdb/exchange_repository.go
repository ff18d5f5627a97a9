package rdb

import (
	"context"
	"encoding/json"

	"github.com/cryptobot/cryptobot/domain"
	"github.com/cryptobot/cryptobot/domain/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExchangeRepository is a GORM-backed implementation of domain.ExchangeRepository.
type ExchangeRepository struct {
	db *gorm.DB
}

func NewExchangeRepository(db *gorm.DB) *ExchangeRepository {
	return &ExchangeRepository{db: db}
}

func exchangeToRecord(e *model.Exchange) (*ExchangeRecord, error) {
	settings, err := encodeSettings(e.Settings)
	if err != nil {
		return nil, err
	}
	return &ExchangeRecord{
		ID:        e.ID,
		Name:      e.Name,
		Driver:    e.Driver,
		Settings:  settings,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}, nil
}

func exchangeToModel(r *ExchangeRecord) (*model.Exchange, error) {
	settings, err := decodeSettings(r.Settings)
	if err != nil {
		return nil, err
	}
	return &model.Exchange{
		ID:        r.ID,
		Name:      r.Name,
		Driver:    r.Driver,
		Settings:  settings,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

func encodeSettings(settings map[string]string) (string, error) {
	if len(settings) == 0 {
		return "", nil
	}
	b, err := json.Marshal(settings)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeSettings(s string) (map[string]string, error) {
	if s == "" {
		return nil, nil
	}
	var settings map[string]string
	if err := json.Unmarshal([]byte(s), &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *ExchangeRepository) Create(ctx context.Context, e *model.Exchange) error {
	if e.ID == "" {
		// Generate a unique ID if not provided
		e.ID = "exc-" + uuid.NewString()
	}
	rec, err := exchangeToRecord(e)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *ExchangeRepository) Get(ctx context.Context, id string) (*model.Exchange, error) {
	var rec ExchangeRecord
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, model.ErrExchangeNotFound
		}
		return nil, err
	}
	return exchangeToModel(&rec)
}

func (r *ExchangeRepository) List(ctx context.Context) ([]*model.Exchange, error) {
	var recs []ExchangeRecord
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*model.Exchange, 0, len(recs))
	for i := range recs {
		e, err := exchangeToModel(&recs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *ExchangeRepository) Update(ctx context.Context, e *model.Exchange) error {
	rec, err := exchangeToRecord(e)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&ExchangeRecord{}).Where("id = ?", rec.ID).Updates(rec).Error
}

func (r *ExchangeRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&ExchangeRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrExchangeNotFound
	}
	return nil
}

// Ensure interface satisfaction.
var _ domain.ExchangeRepository = (*ExchangeRepository)(nil)
