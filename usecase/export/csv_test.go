package export

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cryptobot/cryptobot/adapters/store/inmem"
	"github.com/cryptobot/cryptobot/domain/model"
)

func seedStore(t *testing.T) (*inmem.Store, *model.Market) {
	t.Helper()
	ctx := context.Background()
	store := inmem.NewStore()

	market := &model.Market{
		ID:         "mkt-1",
		Name:       "btcusd-inverse",
		ExchangeID: "exc-1",
		Category:   "inverse",
		Symbol:     "BTCUSD",
		Interval:   "D",
	}
	if err := store.MarketRepo.Create(ctx, market); err != nil {
		t.Fatal(err)
	}

	base := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	candles := []*model.Candle{
		{MarketID: "mkt-1", Interval: "D", Start: base, Open: "35000", High: "36000", Low: "34000", Close: "35500", Volume: "100", Turnover: "500000"},
		{MarketID: "mkt-1", Interval: "D", Start: base.Add(24 * time.Hour), Open: "35500", High: "36500", Low: "34500", Close: "36000", Volume: "200", Turnover: "700000"},
	}
	if err := store.CandleRepo.PutBatch(ctx, candles); err != nil {
		t.Fatal(err)
	}
	return store, market
}

func TestCSV(t *testing.T) {
	ctx := context.Background()
	store, market := seedStore(t)
	uc := &UseCase{Markets: store.MarketRepo, Candles: store.CandleRepo}

	dir := t.TempDir()
	out, err := uc.CSV(ctx, &CSVInput{
		MarketID: market.ID,
		Start:    "2024-12-01 00:00:00",
		End:      "2024-12-04 00:00:00",
		Dir:      dir,
	})
	if err != nil {
		t.Fatalf("CSV returned error: %v", err)
	}

	wantName := "BTCUSD_D_2024-12-01 00:00:00_2024-12-04 00:00:00.csv"
	if filepath.Base(out.Path) != wantName {
		t.Errorf("file name = %q, want %q", filepath.Base(out.Path), wantName)
	}
	if out.Candles != 2 {
		t.Errorf("Candles = %d, want 2", out.Candles)
	}

	f, err := os.Open(out.Path)
	if err != nil {
		t.Fatalf("opening exported file: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading exported file: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "timestamp" || rows[0][6] != "turnover" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][1] != "35000" || rows[2][4] != "36000" {
		t.Errorf("unexpected rows: %v", rows[1:])
	}
	// Timestamps are unix seconds, oldest first.
	if rows[1][0] != "1733011200" {
		t.Errorf("first timestamp = %q, want 1733011200", rows[1][0])
	}
}

func TestCSV_EmptyRange(t *testing.T) {
	ctx := context.Background()
	store, market := seedStore(t)
	uc := &UseCase{Markets: store.MarketRepo, Candles: store.CandleRepo}

	out, err := uc.CSV(ctx, &CSVInput{
		MarketID: market.ID,
		Start:    "2020-01-01 00:00:00",
		End:      "2020-01-02 00:00:00",
		Dir:      t.TempDir(),
	})
	if err != nil {
		t.Fatalf("CSV returned error: %v", err)
	}
	if out.Candles != 0 {
		t.Errorf("Candles = %d, want 0", out.Candles)
	}

	data, err := os.ReadFile(out.Path)
	if err != nil {
		t.Fatalf("reading exported file: %v", err)
	}
	if string(data) != "timestamp,open,high,low,close,volume,turnover\n" {
		t.Errorf("empty export should contain only the header, got %q", string(data))
	}
}

func TestCSV_Errors(t *testing.T) {
	ctx := context.Background()
	store, market := seedStore(t)
	uc := &UseCase{Markets: store.MarketRepo, Candles: store.CandleRepo}

	if _, err := uc.CSV(ctx, nil); err == nil {
		t.Error("expected error for nil input")
	}
	if _, err := uc.CSV(ctx, &CSVInput{MarketID: market.ID, Start: "2024-12-01 00:00:00", End: "2024-12-02 00:00:00"}); err == nil {
		t.Error("expected error for missing dir")
	}
	if _, err := uc.CSV(ctx, &CSVInput{MarketID: "mkt-missing", Start: "2024-12-01 00:00:00", End: "2024-12-02 00:00:00", Dir: t.TempDir()}); err != model.ErrMarketNotFound {
		t.Errorf("expected ErrMarketNotFound, got %v", err)
	}
	if _, err := uc.CSV(ctx, &CSVInput{MarketID: market.ID, Start: "bad", End: "2024-12-02 00:00:00", Dir: t.TempDir()}); err == nil {
		t.Error("expected error for invalid start time")
	}
}
