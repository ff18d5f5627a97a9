package botcfg

import (
	"fmt"
	"time"

	"github.com/cryptobot/cryptobot/domain/model"
	"github.com/google/uuid"
)

// ToModels converts the configuration to domain models with resolved
// references. Exchange IDs are generated; markets reference them by ID.
func (r *Root) ToModels() ([]*model.Exchange, []*model.Market, error) {
	now := time.Now().UTC()

	exchanges := make([]*model.Exchange, 0, len(r.Exchanges))
	idByName := make(map[string]string, len(r.Exchanges))
	for _, e := range r.Exchanges {
		id := "exc-" + uuid.NewString()
		idByName[e.Name] = id
		exchanges = append(exchanges, &model.Exchange{
			ID:        id,
			Name:      e.Name,
			Driver:    e.Driver,
			Settings:  e.Settings,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	markets := make([]*model.Market, 0, len(r.Markets))
	for _, m := range r.Markets {
		exchangeID, ok := idByName[m.Exchange]
		if !ok {
			return nil, nil, fmt.Errorf("market %q references unknown exchange %q", m.Name, m.Exchange)
		}
		markets = append(markets, &model.Market{
			ID:         "mkt-" + uuid.NewString(),
			Name:       m.Name,
			ExchangeID: exchangeID,
			Category:   m.Category,
			Symbol:     m.Symbol,
			Interval:   model.Interval(m.Interval),
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	return exchanges, markets, nil
}
