package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the app-level configuration, read once at startup.
type Config struct {
	EventKey string // e.g. "2025txwac"
	TBAKey   string
	SROrgKey string // scoutradioz org key, empty disables export downloads
	Port     string
}

func loadConfig() (Config, error) {
	// Local development keeps keys in a .env file; missing is fine.
	godotenv.Load()

	cfg := Config{
		EventKey: os.Getenv("EVENT_KEY"),
		SROrgKey: os.Getenv("SR_ORG_KEY"),
		Port:     os.Getenv("PORT"),
	}
	if cfg.EventKey == "" {
		return Config{}, fmt.Errorf("EVENT_KEY is not set (e.g. 2025txwac)")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	key, err := tbaAPIKey()
	if err != nil {
		return Config{}, err
	}
	cfg.TBAKey = key
	return cfg, nil
}

// tbaAPIKey resolves the TBA auth key, preferring a .tba_key file over the
// environment.
func tbaAPIKey() (string, error) {
	if b, err := os.ReadFile(".tba_key"); err == nil {
		return strings.TrimSpace(string(b)), nil
	}
	if key := os.Getenv("TBA_API_KEY"); key != "" {
		return key, nil
	}
	return "", fmt.Errorf("could not find a TBA API key in .tba_key or the TBA_API_KEY environment variable; create one at https://www.thebluealliance.com/account")
}
