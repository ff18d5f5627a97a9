// Package botcfg defines the configuration schema (structs) for cryptobot.yml.
// This package is intended for YAML -> struct deserialization; loading and
// validation helpers live alongside.
package botcfg

// DefaultConfigPath is the config file looked up when none is given.
const DefaultConfigPath = "cryptobot.yml"

// Root is the root structure of cryptobot.yml.
type Root struct {
	Version   string     `yaml:"version"`
	Bot       Bot        `yaml:"bot"`
	Exchanges []Exchange `yaml:"exchanges"`
	Markets   []Market   `yaml:"markets"`
	Output    Output     `yaml:"output"`
}

// Bot represents global bot settings.
type Bot struct {
	Name string `yaml:"name"` // RFC1123-compliant DNS label
}

// Exchange represents a market-data source configuration.
type Exchange struct {
	Name     string            `yaml:"name"`     // exchange name
	Driver   string            `yaml:"driver"`   // e.g., "bybit"
	Settings map[string]string `yaml:"settings"` // driver-specific settings
}

// Market represents one instrument to download.
type Market struct {
	Name     string `yaml:"name"`     // RFC1123-compliant DNS label
	Exchange string `yaml:"exchange"` // references an Exchange by name
	Category string `yaml:"category"` // e.g., "inverse", "linear", "spot"
	Symbol   string `yaml:"symbol"`   // e.g., "BTCUSD"
	Interval string `yaml:"interval"` // e.g., "D", "1", "5"
}

// Output represents export settings.
type Output struct {
	Dir string `yaml:"dir"` // CSV output directory (default: ./data/raw)
}
