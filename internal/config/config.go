package config

import (
	"os"
	"strconv"
)

type Config struct {
	// Serve mode
	Port   string
	APIKey string // optional; empty disables auth on /api

	// Upload limits (serve mode)
	MaxUploadBytes int64

	// Logging
	LogFormat string // "text" or "json"
}

func Load() Config {
	cfg := Config{
		Port:           envOr("ARTSPLIT_PORT", "8085"),
		APIKey:         os.Getenv("ARTSPLIT_API_KEY"),
		MaxUploadBytes: envInt64("ARTSPLIT_MAX_UPLOAD_BYTES", 20971520), // 20MB
		LogFormat:      envOr("ARTSPLIT_LOG_FORMAT", "text"),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 20971520
	}
	if cfg.LogFormat != "json" {
		cfg.LogFormat = "text"
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
