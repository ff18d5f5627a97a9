package inmem

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/cryptobot/cryptobot/domain/model"
)

func candleAt(ts int64, open string) *model.Candle {
	return &model.Candle{
		MarketID: "mkt-1",
		Interval: "D",
		Start:    time.Unix(ts, 0).UTC(),
		Open:     open,
		High:     open,
		Low:      open,
		Close:    open,
		Volume:   "1",
		Turnover: "1",
	}
}

func TestCandlePutBatchUpsert(t *testing.T) {
	ctx := context.Background()
	repo := NewCandleRepository()

	if err := repo.PutBatch(ctx, []*model.Candle{candleAt(0, "100"), candleAt(86400, "200")}); err != nil {
		t.Fatalf("PutBatch returned error: %v", err)
	}
	// Same bucket again with a different value must not duplicate.
	if err := repo.PutBatch(ctx, []*model.Candle{candleAt(86400, "250")}); err != nil {
		t.Fatalf("PutBatch returned error: %v", err)
	}

	n, err := repo.Count(ctx, "mkt-1", "D")
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if n != 2 {
		t.Errorf("Count = %d, want 2", n)
	}

	candles, err := repo.Range(ctx, "mkt-1", "D", time.Unix(0, 0), time.Unix(200000, 0))
	if err != nil {
		t.Fatalf("Range returned error: %v", err)
	}
	if len(candles) != 2 {
		t.Fatalf("expected 2 candles, got %d", len(candles))
	}
	if candles[1].Open != "250" {
		t.Errorf("upsert should replace candle, got open %q", candles[1].Open)
	}
}

func TestCandleRangeBoundsAndOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewCandleRepository()

	// Insert out of order.
	batch := []*model.Candle{candleAt(2*86400, "3"), candleAt(0, "1"), candleAt(86400, "2")}
	if err := repo.PutBatch(ctx, batch); err != nil {
		t.Fatalf("PutBatch returned error: %v", err)
	}

	// [start, end) semantics: the candle at 2*86400 is excluded.
	candles, err := repo.Range(ctx, "mkt-1", "D", time.Unix(0, 0), time.Unix(2*86400, 0))
	if err != nil {
		t.Fatalf("Range returned error: %v", err)
	}
	if len(candles) != 2 {
		t.Fatalf("expected 2 candles, got %d", len(candles))
	}
	if candles[0].Open != "1" || candles[1].Open != "2" {
		t.Errorf("candles should be ordered by start time: %+v", candles)
	}

	// Other series are isolated.
	candles, err = repo.Range(ctx, "mkt-1", "60", time.Unix(0, 0), time.Unix(10*86400, 0))
	if err != nil {
		t.Fatalf("Range returned error: %v", err)
	}
	if len(candles) != 0 {
		t.Errorf("expected no candles for other interval, got %d", len(candles))
	}
}

func TestCandlePutBatchInvalid(t *testing.T) {
	ctx := context.Background()
	repo := NewCandleRepository()

	noMarket := candleAt(0, "1")
	noMarket.MarketID = ""
	if err := repo.PutBatch(ctx, []*model.Candle{noMarket}); err != model.ErrCandleInvalid {
		t.Errorf("expected ErrCandleInvalid for missing market, got %v", err)
	}

	badInterval := candleAt(0, "1")
	badInterval.Interval = "2h"
	if err := repo.PutBatch(ctx, []*model.Candle{badInterval}); err != model.ErrCandleInvalid {
		t.Errorf("expected ErrCandleInvalid for unknown interval, got %v", err)
	}
}

func TestStoreLoadFromFile(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	dir := t.TempDir()
	path := dir + "/cryptobot.yml"
	content := `
version: v1
bot:
  name: cryptobot
exchanges:
  - name: bybit-main
    driver: bybit
markets:
  - name: btcusd-inverse
    exchange: bybit-main
    category: inverse
    symbol: BTCUSD
    interval: D
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := store.LoadFromFile(ctx, path); err != nil {
		t.Fatalf("LoadFromFile returned error: %v", err)
	}

	markets, err := store.MarketRepo.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(markets) != 1 {
		t.Fatalf("expected 1 market, got %d", len(markets))
	}
	if _, err := store.ExchangeRepo.Get(ctx, markets[0].ExchangeID); err != nil {
		t.Errorf("market should reference a stored exchange: %v", err)
	}
}
