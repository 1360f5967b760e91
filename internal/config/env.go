package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays cfg with TRIPTYCH_* environment variables.
// Unparsable values are ignored rather than fatal; flags can still
// correct them.
func parseEnv(cfg *Config) {
	if v := os.Getenv("TRIPTYCH_API"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("TRIPTYCH_QUANTITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Quantity = n
		}
	}
	if v := os.Getenv("TRIPTYCH_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
	if v := os.Getenv("TRIPTYCH_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("TRIPTYCH_NO_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.NoColor = b
		}
	}
}
