package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL  string
	FoodAPIURL  string
	DBPath      string
	HTTPTimeout time.Duration
	Env         string
	LogLevel    string
}

func Load() *Config {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	return &Config{
		APIBaseURL:  getEnv("FITFLEX_API_URL", "http://localhost:3001"),
		FoodAPIURL:  getEnv("FITFLEX_FOOD_API_URL", "https://world.openfoodfacts.org"),
		DBPath:      getEnv("FITFLEX_DB", ""),
		HTTPTimeout: time.Duration(getEnvInt("FITFLEX_HTTP_TIMEOUT", 12)) * time.Second,
		Env:         getEnv("FITFLEX_ENV", "prod"),
		LogLevel:    getEnv("FITFLEX_LOG_LEVEL", ""),
	}
}

func (c *Config) IsDev() bool {
	return c.Env == "dev" || c.Env == "development"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
