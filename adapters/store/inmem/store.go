package inmem

import (
	"context"

	"github.com/cryptobot/cryptobot/config/botcfg"
	"github.com/cryptobot/cryptobot/domain"
)

// Store provides a unified interface for all in-memory repositories.
type Store struct {
	ExchangeRepo *ExchangeRepository
	MarketRepo   *MarketRepository
	CandleRepo   *CandleRepository
}

// NewStore creates a new in-memory store with all repositories.
func NewStore() *Store {
	return &Store{
		ExchangeRepo: NewExchangeRepository(),
		MarketRepo:   NewMarketRepository(),
		CandleRepo:   NewCandleRepository(),
	}
}

// LoadFromConfig loads a cryptobot.yml configuration into the memory store.
func (s *Store) LoadFromConfig(ctx context.Context, cfg *botcfg.Root) error {
	exchanges, markets, err := cfg.ToModels()
	if err != nil {
		return err
	}

	// Store models in dependency order: exchanges before markets.
	for _, e := range exchanges {
		if err := s.ExchangeRepo.Create(ctx, e); err != nil {
			return err
		}
	}
	for _, m := range markets {
		if err := s.MarketRepo.Create(ctx, m); err != nil {
			return err
		}
	}

	return nil
}

// LoadFromFile loads a cryptobot.yml file into the memory store.
func (s *Store) LoadFromFile(ctx context.Context, path string) error {
	cfg, err := botcfg.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return s.LoadFromConfig(ctx, cfg)
}

// Compile-time assertions
var _ domain.ExchangeRepository = (*ExchangeRepository)(nil)
var _ domain.MarketRepository = (*MarketRepository)(nil)
var _ domain.CandleRepository = (*CandleRepository)(nil)
