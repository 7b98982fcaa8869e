package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const defaultHTTPTimeout = 15 * time.Second

type Config struct {
	APIBaseURL  string
	APIKey      string
	StateDir    string
	HTTPTimeout time.Duration
	AppEnv      string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:  os.Getenv("API_BASE_URL"),
		APIKey:      os.Getenv("API_KEY"),
		StateDir:    os.Getenv("STATE_DIR"),
		HTTPTimeout: defaultHTTPTimeout,
		AppEnv:      os.Getenv("APP_ENV"),
	}

	if raw := os.Getenv("HTTP_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("invalid HTTP_TIMEOUT %q: %v", raw, err)
		}
		cfg.HTTPTimeout = d
	}

	if cfg.StateDir == "" {
		cfg.StateDir = "."
	}

	if cfg.APIBaseURL == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}
