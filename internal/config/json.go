package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const configFileName = "config.json"

// duration accepts either a string like "5s" or integer nanoseconds.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case string:
		parsed, err := time.ParseDuration(x)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	case float64:
		d.Duration = time.Duration(x)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", b)
	}
}

// fileConfig is a DTO used only for JSON unmarshalling. Pointer fields
// distinguish "absent" from zero values so partial files work.
type fileConfig struct {
	APIBaseURL *string   `json:"api_base_url"`
	Quantity   *int      `json:"quantity"`
	Timeout    *duration `json:"timeout"`
	Theme      *string   `json:"theme"`
	NoColor    *bool     `json:"no_color"`
}

// filePath resolves the config file: TRIPTYCH_CONFIG if set, otherwise
// ~/.triptych/config.json.
func filePath() (string, error) {
	if p := os.Getenv("TRIPTYCH_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".triptych", configFileName), nil
}

// parseFile overlays cfg with values from the JSON file, if one exists.
// A missing file is fine; an unreadable or malformed one is an error.
func parseFile(cfg *Config) error {
	p, err := filePath()
	if err != nil {
		return err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := json.Unmarshal(b, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", p, err)
	}
	if fc.APIBaseURL != nil {
		cfg.APIBaseURL = *fc.APIBaseURL
	}
	if fc.Quantity != nil {
		cfg.Quantity = *fc.Quantity
	}
	if fc.Timeout != nil {
		cfg.Timeout = fc.Timeout.Duration
	}
	if fc.Theme != nil {
		cfg.Theme = *fc.Theme
	}
	if fc.NoColor != nil {
		cfg.NoColor = *fc.NoColor
	}
	return nil
}
