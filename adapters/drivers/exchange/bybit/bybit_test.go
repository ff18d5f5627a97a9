package bybit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cryptobot/cryptobot/domain/model"
)

func newTestDriver(t *testing.T, handler http.HandlerFunc) *Driver {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	d, err := New(map[string]string{"endpoint": srv.URL})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return d
}

func TestKlines_Success(t *testing.T) {
	var gotQuery map[string]string
	d := newTestDriver(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v5/market/kline" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		gotQuery = map[string]string{
			"category": r.URL.Query().Get("category"),
			"symbol":   r.URL.Query().Get("symbol"),
			"interval": r.URL.Query().Get("interval"),
			"start":    r.URL.Query().Get("start"),
			"limit":    r.URL.Query().Get("limit"),
		}
		// Bybit returns rows newest-first.
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"retCode": 0,
			"retMsg": "OK",
			"result": {
				"category": "inverse",
				"symbol": "BTCUSD",
				"list": [
					["1609462800000", "35500", "36500", "34500", "36000", "200", "700000"],
					["1609459200000", "35000", "36000", "34000", "35500", "100", "500000"]
				]
			}
		}`))
	})

	candles, err := d.Klines(context.Background(), model.KlineQuery{
		Category: "inverse",
		Symbol:   "BTCUSD",
		Interval: "60",
		Start:    1609459200,
		Limit:    2,
	})
	if err != nil {
		t.Fatalf("Klines returned error: %v", err)
	}

	if gotQuery["category"] != "inverse" || gotQuery["symbol"] != "BTCUSD" || gotQuery["interval"] != "60" {
		t.Errorf("unexpected query parameters: %+v", gotQuery)
	}
	if gotQuery["start"] != "1609459200000" {
		t.Errorf("start should be sent in milliseconds, got %q", gotQuery["start"])
	}
	if gotQuery["limit"] != "2" {
		t.Errorf("limit = %q, want 2", gotQuery["limit"])
	}

	if len(candles) != 2 {
		t.Fatalf("expected 2 candles, got %d", len(candles))
	}
	// Oldest-first after reversal.
	if candles[0].Start.Unix() != 1609459200 {
		t.Errorf("first candle start = %d, want 1609459200", candles[0].Start.Unix())
	}
	if candles[0].Open != "35000" || candles[0].Close != "35500" {
		t.Errorf("unexpected first candle: %+v", candles[0])
	}
	if candles[1].Start.Unix() != 1609462800 {
		t.Errorf("second candle start = %d, want 1609462800", candles[1].Start.Unix())
	}
	if candles[1].Turnover != "700000" {
		t.Errorf("second candle turnover = %q, want 700000", candles[1].Turnover)
	}
	if candles[0].Interval != "60" {
		t.Errorf("candle interval = %q, want 60", candles[0].Interval)
	}
}

func TestKlines_SecondTimestamps(t *testing.T) {
	d := newTestDriver(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"retCode": 0,
			"retMsg": "OK",
			"result": {"list": [[1609459200, "35000", "36000", "34000", "35500", "100", "500000"]]}
		}`))
	})

	candles, err := d.Klines(context.Background(), model.KlineQuery{Interval: "D", Start: 1609459200})
	if err != nil {
		t.Fatalf("Klines returned error: %v", err)
	}
	if len(candles) != 1 {
		t.Fatalf("expected 1 candle, got %d", len(candles))
	}
	if candles[0].Start.Unix() != 1609459200 {
		t.Errorf("candle start = %d, want 1609459200", candles[0].Start.Unix())
	}
}

func TestKlines_APIError(t *testing.T) {
	d := newTestDriver(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"retCode": 10001, "retMsg": "API error"}`))
	})

	_, err := d.Klines(context.Background(), model.KlineQuery{Interval: "D", Start: 0})
	if err == nil {
		t.Fatal("expected error for non-zero retCode")
	}
	if got := err.Error(); got != "API error: API error" {
		t.Errorf("error = %q, want API error message", got)
	}
}

func TestKlines_HTTPError(t *testing.T) {
	d := newTestDriver(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Server Error", http.StatusInternalServerError)
	})

	if _, err := d.Klines(context.Background(), model.KlineQuery{Interval: "D", Start: 0}); err == nil {
		t.Fatal("expected error for HTTP 500")
	}
}

func TestKlines_EmptyResult(t *testing.T) {
	d := newTestDriver(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"retCode": 0, "retMsg": "OK", "result": {"list": []}}`))
	})

	candles, err := d.Klines(context.Background(), model.KlineQuery{Interval: "D", Start: 0})
	if err != nil {
		t.Fatalf("Klines returned error: %v", err)
	}
	if len(candles) != 0 {
		t.Errorf("expected empty result, got %d candles", len(candles))
	}
}

func TestKlines_MalformedRow(t *testing.T) {
	d := newTestDriver(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"retCode": 0, "retMsg": "OK", "result": {"list": [["1609459200000", "35000"]]}}`))
	})

	if _, err := d.Klines(context.Background(), model.KlineQuery{Interval: "D", Start: 0}); err == nil {
		t.Fatal("expected error for short kline row")
	}
}

func TestNew_Settings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		d, err := New(nil)
		if err != nil {
			t.Fatalf("New returned error: %v", err)
		}
		if d.endpoint != defaultEndpoint {
			t.Errorf("endpoint = %q, want default", d.endpoint)
		}
		if d.client.Timeout != defaultTimeout {
			t.Errorf("timeout = %v, want %v", d.client.Timeout, defaultTimeout)
		}
	})

	t.Run("trailing slash trimmed", func(t *testing.T) {
		d, err := New(map[string]string{"endpoint": "https://example.com/"})
		if err != nil {
			t.Fatalf("New returned error: %v", err)
		}
		if d.endpoint != "https://example.com" {
			t.Errorf("endpoint = %q", d.endpoint)
		}
	})

	t.Run("invalid timeout", func(t *testing.T) {
		if _, err := New(map[string]string{"timeout": "zero"}); err == nil {
			t.Error("expected error for non-numeric timeout")
		}
		if _, err := New(map[string]string{"timeout": "-1"}); err == nil {
			t.Error("expected error for negative timeout")
		}
	})
}
