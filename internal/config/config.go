// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/justestif/silent-signal/internal/card"
)

// ErrInvalidLogLevel is returned when LOG_LEVEL is not a known level.
var ErrInvalidLogLevel = errors.New("invalid LOG_LEVEL")

// DefaultAddr is the default server address.
const DefaultAddr = "127.0.0.1:8080"

// Config holds runtime settings.
type Config struct {
	Addr       string
	BaseURL    string // absolute page URL used for share links
	LogLevel   slog.Level
	CardWidth  int
	CardHeight int
	CacheSize  int
}

// Load reads a .env file from the working directory if one exists, then
// reads configuration from environment variables. Variables already set in
// the environment take precedence over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	return FromEnv()
}

// FromEnv reads configuration from environment variables only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Addr:       getEnv("SILENT_SIGNAL_ADDR", DefaultAddr),
		CardWidth:  getEnvInt("CARD_WIDTH", card.DefaultWidth),
		CardHeight: getEnvInt("CARD_HEIGHT", card.DefaultHeight),
		CacheSize:  getEnvInt("CARD_CACHE_SIZE", card.DefaultCacheSize),
	}

	cfg.BaseURL = getEnv("SILENT_SIGNAL_BASE_URL", "http://"+cfg.Addr+"/")

	level, err := parseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	// Out-of-range sizes fall back to the defaults
	if cfg.CardWidth <= 0 || cfg.CardWidth > card.MaxDimension {
		cfg.CardWidth = card.DefaultWidth
	}
	if cfg.CardHeight <= 0 || cfg.CardHeight > card.MaxDimension {
		cfg.CardHeight = card.DefaultHeight
	}

	return cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}
