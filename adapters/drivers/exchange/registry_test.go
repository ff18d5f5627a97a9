package exchangedrv

import (
	"context"
	"errors"
	"testing"

	"github.com/cryptobot/cryptobot/domain/model"
)

// fakeDriver is a minimal driver for registry tests.
type fakeDriver struct {
	candles []*model.Candle
	err     error
}

func (d *fakeDriver) ID() string { return "fake" }

func (d *fakeDriver) Klines(ctx context.Context, q model.KlineQuery) ([]*model.Candle, error) {
	return d.candles, d.err
}

// mockExchangeRepo implements domain.ExchangeRepository for tests.
type mockExchangeRepo struct {
	getFunc func(ctx context.Context, id string) (*model.Exchange, error)
}

func (m *mockExchangeRepo) Get(ctx context.Context, id string) (*model.Exchange, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockExchangeRepo) Create(ctx context.Context, e *model.Exchange) error {
	return errors.New("not implemented")
}

func (m *mockExchangeRepo) List(ctx context.Context) ([]*model.Exchange, error) {
	return nil, errors.New("not implemented")
}

func (m *mockExchangeRepo) Update(ctx context.Context, e *model.Exchange) error {
	return errors.New("not implemented")
}

func (m *mockExchangeRepo) Delete(ctx context.Context, id string) error {
	return errors.New("not implemented")
}

func TestRegister(t *testing.T) {
	Register("fake", func(settings map[string]string) (Driver, error) {
		return &fakeDriver{}, nil
	})

	if _, exists := GetDriverFactory("fake"); !exists {
		t.Error("registered driver should be resolvable")
	}
	if _, exists := GetDriverFactory("missing"); exists {
		t.Error("unregistered driver should not be resolvable")
	}
}

func TestKlinePort(t *testing.T) {
	ctx := context.Background()

	Register("fake", func(settings map[string]string) (Driver, error) {
		return &fakeDriver{candles: []*model.Candle{{Open: "1"}, {Open: "2"}}}, nil
	})

	exchanges := &mockExchangeRepo{
		getFunc: func(ctx context.Context, id string) (*model.Exchange, error) {
			if id != "exc-1" {
				return nil, model.ErrExchangeNotFound
			}
			return &model.Exchange{ID: "exc-1", Driver: "fake"}, nil
		},
	}
	market := &model.Market{ID: "mkt-1", ExchangeID: "exc-1", Symbol: "BTCUSD"}

	port := GetKlinePort(exchanges)
	candles, err := port.Klines(ctx, market, model.KlineQuery{Symbol: market.Symbol})
	if err != nil {
		t.Fatalf("Klines returned error: %v", err)
	}
	if len(candles) != 2 {
		t.Fatalf("expected 2 candles, got %d", len(candles))
	}
	for _, c := range candles {
		if c.MarketID != "mkt-1" {
			t.Errorf("candle MarketID = %q, want mkt-1", c.MarketID)
		}
	}

	t.Run("unknown exchange", func(t *testing.T) {
		m := &model.Market{ID: "mkt-2", ExchangeID: "exc-missing"}
		if _, err := port.Klines(ctx, m, model.KlineQuery{}); err == nil {
			t.Error("expected error for missing exchange")
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		repo := &mockExchangeRepo{
			getFunc: func(ctx context.Context, id string) (*model.Exchange, error) {
				return &model.Exchange{ID: id, Driver: "nope"}, nil
			},
		}
		p := GetKlinePort(repo)
		if _, err := p.Klines(ctx, market, model.KlineQuery{}); err == nil {
			t.Error("expected error for unknown driver")
		}
	})
}
