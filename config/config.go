// Package config reads runtime configuration from environment variables,
// with .env support for local runs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Defaults mirroring the deployed bot; override via environment.
const (
	defaultSpreadsheetID = "1hN3zFqE3fsb1nLwH3kj2t-5OlzhAIR8A_LMxLaskkd8"
	defaultGroupChatID   = -1002146448322
)

type Config struct {
	BotToken string

	// GoogleCredentialsJSON holds the service account key for the Sheets
	// store. Required unless DatabaseURL selects the Postgres store.
	GoogleCredentialsJSON string
	SpreadsheetID         string

	// DatabaseURL, when set, switches the record store to Postgres.
	DatabaseURL string

	// GroupChatID is the one group where mentions are parsed and where
	// /test and the startup greeting go.
	GroupChatID int64
}

// Load reads the configuration. Missing required variables are reported
// together so a broken deployment fails with one actionable message.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:              os.Getenv("BOT_TOKEN"),
		GoogleCredentialsJSON: os.Getenv("GOOGLE_CREDENTIALS_JSON"),
		SpreadsheetID:         getenvDefault("SPREADSHEET_ID", defaultSpreadsheetID),
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		GroupChatID:           getenvInt64("GROUP_CHAT_ID", defaultGroupChatID),
	}

	var missing []string
	if cfg.BotToken == "" {
		missing = append(missing, "BOT_TOKEN")
	}
	if cfg.GoogleCredentialsJSON == "" && cfg.DatabaseURL == "" {
		missing = append(missing, "GOOGLE_CREDENTIALS_JSON")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("configuration is missing variable(s): %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// SpreadsheetURL is the user-visible link to the backing table.
func (c *Config) SpreadsheetURL() string {
	return "https://docs.google.com/spreadsheets/d/" + c.SpreadsheetID
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt64(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return parsed
}
