package botcfg

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleConfig = `
version: v1
bot:
  name: cryptobot
exchanges:
  - name: bybit-main
    driver: bybit
    settings:
      endpoint: https://api.bybit.com
      timeout: "10"
markets:
  - name: btcusd-inverse
    exchange: bybit-main
    category: inverse
    symbol: BTCUSD
    interval: D
  - name: ethusdt-linear
    exchange: bybit-main
    category: linear
    symbol: ETHUSDT
    interval: "60"
output:
  dir: ./data/raw
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cryptobot.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp yaml: %v", err)
	}
	return path
}

func TestLoad_Success(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Version != "v1" {
		t.Errorf("expected version v1, got %s", cfg.Version)
	}
	if cfg.Bot.Name != "cryptobot" {
		t.Errorf("unexpected bot name: %s", cfg.Bot.Name)
	}
	if len(cfg.Exchanges) != 1 || cfg.Exchanges[0].Driver != "bybit" {
		t.Errorf("unexpected exchanges: %+v", cfg.Exchanges)
	}
	if cfg.Exchanges[0].Settings["timeout"] != "10" {
		t.Errorf("unexpected settings: %+v", cfg.Exchanges[0].Settings)
	}
	if len(cfg.Markets) != 2 {
		t.Fatalf("expected 2 markets, got %d", len(cfg.Markets))
	}
	if cfg.Markets[0].Symbol != "BTCUSD" || cfg.Markets[0].Interval != "D" {
		t.Errorf("unexpected market: %+v", cfg.Markets[0])
	}
	if cfg.Markets[1].Interval != "60" {
		t.Errorf("unexpected market interval: %+v", cfg.Markets[1])
	}
	if cfg.Output.Dir != "./data/raw" {
		t.Errorf("unexpected output dir: %s", cfg.Output.Dir)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	if _, err := Load("/path/does/not/exist.yml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	if _, err := Load(writeConfig(t, "version: [broken")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestToModels(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	exchanges, markets, err := cfg.ToModels()
	if err != nil {
		t.Fatalf("ToModels returned error: %v", err)
	}
	if len(exchanges) != 1 || len(markets) != 2 {
		t.Fatalf("expected 1 exchange and 2 markets, got %d and %d", len(exchanges), len(markets))
	}
	if exchanges[0].ID == "" {
		t.Error("exchange ID should be generated")
	}
	for _, m := range markets {
		if m.ExchangeID != exchanges[0].ID {
			t.Errorf("market %s should reference exchange %s, got %s", m.Name, exchanges[0].ID, m.ExchangeID)
		}
	}
	if markets[1].Interval != "60" {
		t.Errorf("market interval = %q, want 60", markets[1].Interval)
	}
}

func TestToModels_DanglingExchangeRef(t *testing.T) {
	cfg := &Root{
		Exchanges: []Exchange{{Name: "bybit-main", Driver: "bybit"}},
		Markets:   []Market{{Name: "m1", Exchange: "missing", Category: "spot", Symbol: "BTCUSDT", Interval: "D"}},
	}
	if _, _, err := cfg.ToModels(); err == nil {
		t.Error("expected error for unknown exchange reference")
	}
}
