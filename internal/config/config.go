package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the planner.
type Config struct {
	ListenAddr  string
	DatabaseURL string
	GenerateAt  string // HH:MM, daily task generation time
	EntriesKey  string // hex-encoded AES key for journal entries
	LogLevel    string
	LogFile     string // empty = stdout only
}

// Load reads configuration from the environment (and a .env file when
// present) with sane defaults.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		ListenAddr:  strings.TrimSpace(os.Getenv("LISTEN_ADDR")),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		GenerateAt:  strings.TrimSpace(os.Getenv("GENERATE_AT")),
		EntriesKey:  strings.TrimSpace(os.Getenv("ENTRIES_KEY")),
		LogLevel:    strings.TrimSpace(os.Getenv("LOG_LEVEL")),
		LogFile:     strings.TrimSpace(os.Getenv("LOG_FILE")),
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "task_planner.db"
	}
	if cfg.GenerateAt == "" {
		cfg.GenerateAt = "00:05"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.EntriesKey == "" {
		return cfg, fmt.Errorf("ENTRIES_KEY is required")
	}
	if _, err := cfg.EntriesSecret(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// EntriesSecret decodes the journal encryption key.
func (c Config) EntriesSecret() ([]byte, error) {
	key, err := hex.DecodeString(c.EntriesKey)
	if err != nil {
		return nil, fmt.Errorf("ENTRIES_KEY is not valid hex: %w", err)
	}
	switch len(key) {
	case 16, 24, 32:
		return key, nil
	}
	return nil, fmt.Errorf("ENTRIES_KEY must decode to 16, 24 or 32 bytes, got %d", len(key))
}
