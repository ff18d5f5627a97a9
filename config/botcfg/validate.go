package botcfg

import (
	"fmt"

	"github.com/cryptobot/cryptobot/domain/model"
	"github.com/cryptobot/cryptobot/internal/naming"
)

// Validate performs semantic validation on the configuration tree.
func (r *Root) Validate() error {
	if r.Bot.Name != "" {
		if err := naming.ValidateResourceName(r.Bot.Name); err != nil {
			return fmt.Errorf("bot.name: %w", err)
		}
	}
	exchanges, err := r.validateExchanges()
	if err != nil {
		return err
	}
	return r.validateMarkets(exchanges)
}

func (r *Root) validateExchanges() (map[string]struct{}, error) {
	if len(r.Exchanges) == 0 {
		return nil, fmt.Errorf("exchanges: at least one exchange is required")
	}
	seen := make(map[string]struct{}, len(r.Exchanges))
	for i, e := range r.Exchanges {
		if err := naming.ValidateResourceName(e.Name); err != nil {
			return nil, fmt.Errorf("exchanges[%d].name: %w", i, err)
		}
		if _, exists := seen[e.Name]; exists {
			return nil, fmt.Errorf("exchanges[%d].name: duplicate exchange name %q", i, e.Name)
		}
		seen[e.Name] = struct{}{}
		if e.Driver == "" {
			return nil, fmt.Errorf("exchanges[%d].driver: driver is required", i)
		}
	}
	return seen, nil
}

func (r *Root) validateMarkets(exchanges map[string]struct{}) error {
	if len(r.Markets) == 0 {
		return fmt.Errorf("markets: at least one market is required")
	}
	seen := make(map[string]struct{}, len(r.Markets))
	for i, m := range r.Markets {
		if err := naming.ValidateResourceName(m.Name); err != nil {
			return fmt.Errorf("markets[%d].name: %w", i, err)
		}
		if _, exists := seen[m.Name]; exists {
			return fmt.Errorf("markets[%d].name: duplicate market name %q", i, m.Name)
		}
		seen[m.Name] = struct{}{}

		if _, exists := exchanges[m.Exchange]; !exists {
			return fmt.Errorf("markets[%d].exchange: unknown exchange %q", i, m.Exchange)
		}
		if !model.ValidMarketCategory(m.Category) {
			return fmt.Errorf("markets[%d].category: invalid category %q, must be one of %v", i, m.Category, model.MarketCategories)
		}
		if err := naming.ValidateSymbol(m.Symbol); err != nil {
			return fmt.Errorf("markets[%d].symbol: %w", i, err)
		}
		if !model.Interval(m.Interval).Valid() {
			return fmt.Errorf("markets[%d].interval: unknown interval %q", i, m.Interval)
		}
	}
	return nil
}
