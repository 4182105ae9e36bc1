package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"

	"notebase/internal/storage"
	"notebase/internal/validator"
)

// Config holds all configuration for the application.
type Config struct {
	DBPath              string
	DBMode              storage.Mode
	APIPort             string
	LogLevel            slog.Level
	LogFormat           string
	ImportPath          string
	ImportKnowledgeBase string
	ImportExclude       []string
	ImportWatch         bool
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the rest.
// If a .env file exists in the current directory or one of its parents, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		DBPath:              getEnv("DB_PATH", "./data/notebase.db"),
		APIPort:             getEnv("API_PORT", "9000"),
		LogFormat:           strings.ToLower(getEnv("LOG_FORMAT", "text")),
		ImportPath:          getEnv("IMPORT_PATH", ""),
		ImportKnowledgeBase: getEnv("IMPORT_KNOWLEDGE_BASE", ""),
	}

	// DB_MODE=ephemeral wipes the database file on every start
	mode, err := storage.ParseMode(getEnv("DB_MODE", string(storage.ModeDurable)))
	if err != nil {
		return nil, fmt.Errorf("DB_MODE: %w", err)
	}
	cfg.DBMode = mode

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error: %w", err)
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be either text or json, got %q", cfg.LogFormat)
	}

	for _, p := range strings.Split(getEnv("IMPORT_EXCLUDE", ""), ",") {
		if p = strings.TrimSpace(p); p != "" {
			cfg.ImportExclude = append(cfg.ImportExclude, p)
		}
	}

	watch, err := strconv.ParseBool(getEnv("IMPORT_WATCH", "false"))
	if err != nil {
		return nil, fmt.Errorf("IMPORT_WATCH must be a boolean: %w", err)
	}
	cfg.ImportWatch = watch

	if (cfg.ImportPath == "") != (cfg.ImportKnowledgeBase == "") {
		return nil, fmt.Errorf("IMPORT_PATH and IMPORT_KNOWLEDGE_BASE must be set together")
	}
	if kb := cfg.ImportKnowledgeBase; kb != "" {
		if !validator.ValidKeyName(kb) || utf8.RuneCountInString(kb) > validator.MaxKeyNameLength {
			return nil, fmt.Errorf("IMPORT_KNOWLEDGE_BASE %q must be at most %d characters without '/' or control characters", kb, validator.MaxKeyNameLength)
		}
	}

	// Create the data directory if it doesn't exist
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// NewLogger builds a slog logger according to the configured level and format.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: c.LogLevel,
	}
	var handler slog.Handler
	if c.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
