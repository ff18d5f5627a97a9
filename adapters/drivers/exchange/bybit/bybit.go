// Package bybit implements an exchange driver for the Bybit v5 market API.
package bybit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	exchangedrv "github.com/cryptobot/cryptobot/adapters/drivers/exchange"
	"github.com/cryptobot/cryptobot/domain/model"
)

const (
	driverName      = "bybit"
	defaultEndpoint = "https://api.bybit.com"
	defaultTimeout  = 10 * time.Second
	klinePath       = "/v5/market/kline"

	// MaxPageLimit is the largest row count Bybit accepts per kline request.
	MaxPageLimit = 1000
)

func init() {
	exchangedrv.Register(driverName, func(settings map[string]string) (exchangedrv.Driver, error) {
		return New(settings)
	})
}

// Driver fetches historical candles from the Bybit v5 public API.
type Driver struct {
	endpoint string
	client   *http.Client
}

// New creates a Bybit driver from exchange settings.
// Recognized settings: "endpoint" (base URL), "timeout" (seconds).
func New(settings map[string]string) (*Driver, error) {
	endpoint := defaultEndpoint
	if v := settings["endpoint"]; v != "" {
		endpoint = strings.TrimRight(v, "/")
	}
	timeout := defaultTimeout
	if v := settings["timeout"]; v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("invalid timeout setting %q", v)
		}
		timeout = time.Duration(secs) * time.Second
	}
	return &Driver{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}, nil
}

// ID returns the exchange driver identifier.
func (d *Driver) ID() string { return driverName }

// klineResponse is the v5 market/kline envelope.
type klineResponse struct {
	RetCode int    `json:"retCode"`
	RetMsg  string `json:"retMsg"`
	Result  struct {
		Category string  `json:"category"`
		Symbol   string  `json:"symbol"`
		List     [][]any `json:"list"`
	} `json:"result"`
}

// Klines fetches one page of candles. Bybit returns rows newest-first;
// the result here is reversed to oldest-first.
func (d *Driver) Klines(ctx context.Context, q model.KlineQuery) ([]*model.Candle, error) {
	limit := q.Limit
	if limit <= 0 || limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	params := url.Values{}
	params.Set("category", q.Category)
	params.Set("symbol", q.Symbol)
	params.Set("interval", string(q.Interval))
	params.Set("start", strconv.FormatInt(q.Start*1000, 10)) // API takes milliseconds
	params.Set("limit", strconv.Itoa(limit))

	reqURL := d.endpoint + klinePath + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building kline request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("kline request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kline request failed: unexpected status %s", resp.Status)
	}

	var body klineResponse
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding kline response: %w", err)
	}

	if body.RetCode != 0 {
		msg := body.RetMsg
		if msg == "" {
			msg = "unknown error from API"
		}
		return nil, fmt.Errorf("API error: %s", msg)
	}

	rows := body.Result.List
	candles := make([]*model.Candle, 0, len(rows))
	// Reverse while converting: rows arrive newest-first.
	for i := len(rows) - 1; i >= 0; i-- {
		c, err := rowToCandle(rows[i], q.Interval)
		if err != nil {
			return nil, err
		}
		candles = append(candles, c)
	}
	return candles, nil
}

// rowToCandle converts a kline row [start, open, high, low, close, volume,
// turnover] into a Candle. Start times may arrive in milliseconds or seconds
// depending on the endpoint version.
func rowToCandle(row []any, interval model.Interval) (*model.Candle, error) {
	if len(row) < 7 {
		return nil, fmt.Errorf("malformed kline row: %d fields", len(row))
	}

	ts, err := strconv.ParseInt(fieldString(row[0]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed kline timestamp %v: %w", row[0], err)
	}
	if ts >= 1_000_000_000_000 {
		ts /= 1000
	}

	return &model.Candle{
		Interval: interval,
		Start:    time.Unix(ts, 0).UTC(),
		Open:     fieldString(row[1]),
		High:     fieldString(row[2]),
		Low:      fieldString(row[3]),
		Close:    fieldString(row[4]),
		Volume:   fieldString(row[5]),
		Turnover: fieldString(row[6]),
	}, nil
}

func fieldString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// Compile-time assertion.
var _ exchangedrv.Driver = (*Driver)(nil)
