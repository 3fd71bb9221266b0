package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                  string
	Env                   string
	DatabasePath          string
	DefaultLocale         string
	SessionTTLMinutes     int
	KeywordMinOccurrences int
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		Port:                  os.Getenv("PORT"),
		Env:                   os.Getenv("ENV"),
		DatabasePath:          os.Getenv("DATABASE_PATH"),
		DefaultLocale:         os.Getenv("DEFAULT_LOCALE"),
		SessionTTLMinutes:     getEnvInt("SESSION_TTL_MINUTES", 30),
		KeywordMinOccurrences: getEnvInt("KEYWORD_MIN_OCCURRENCES", 3),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.DatabasePath == "" {
		// Catalog lives in-memory unless a file path is given
		cfg.DatabasePath = "file::memory:?cache=shared"
	}
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = "fr"
	}

	return cfg
}

func getEnvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("⚠️ Invalid value for %s: %q, using default %d", key, raw, fallback)
		return fallback
	}
	return v
}
