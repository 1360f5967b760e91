// Package config holds runtime settings. Sources are layered as
// defaults -> JSON file -> environment; command-line flags are parsed
// by main on top of the loaded values, so later sources win.
package config

import "time"

const (
	// DefaultBaseURL is the public mock API the demo reads from.
	DefaultBaseURL = "https://jsonplaceholder.typicode.com"

	// DefaultQuantity is the number of items fetched at startup.
	DefaultQuantity = 10
)

type Config struct {
	// APIBaseURL is the data provider root, no trailing slash needed.
	APIBaseURL string
	// Quantity is the batch size for the initial load, >= 0.
	Quantity int
	// Timeout bounds each provider request. Zero means no timeout.
	Timeout time.Duration
	// Theme selects the static-listing theme: classic, neon or mono.
	Theme string
	// NoColor disables ANSI color in non-interactive output.
	NoColor bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultBaseURL
	c.Quantity = DefaultQuantity
	c.Timeout = 0
	c.Theme = "classic"
	c.NoColor = false
}

// Load builds a Config from defaults, then the optional JSON file, then
// the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseFile(cfg); err != nil {
		return nil, err
	}
	parseEnv(cfg)
	return cfg, nil
}
