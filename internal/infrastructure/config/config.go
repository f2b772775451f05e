// Package config internal/infrastructure/config/config.go
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration, resolved once at startup. The
// precedence is environment variable, then .env file, then default.
type Config struct {
	Port string

	// CurrencyAPIKey authenticates every rate-provider request. The rate
	// client refuses to issue unauthenticated requests when it is empty.
	CurrencyAPIKey     string
	CurrencyAPIBaseURL string

	RESTCountriesBaseURL string

	// HTTPTimeout is the fixed per-request deadline for both providers.
	HTTPTimeout time.Duration

	// CacheTTL bounds the staleness of directory and rate lookups.
	CacheTTL time.Duration

	LogLevel string
}

// Load resolves configuration from environment variables and a .env file if
// present.
func Load() *Config {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("CURRENCYAPI_KEY", "")
	viper.SetDefault("CURRENCYAPI_BASE_URL", "https://api.currencyapi.com/v3")
	viper.SetDefault("RESTCOUNTRIES_BASE_URL", "https://restcountries.com/v3.1")
	viper.SetDefault("HTTP_TIMEOUT", "15s")
	viper.SetDefault("CACHE_TTL", "24h")
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.AutomaticEnv()

	return &Config{
		Port:                 viper.GetString("PORT"),
		CurrencyAPIKey:       viper.GetString("CURRENCYAPI_KEY"),
		CurrencyAPIBaseURL:   viper.GetString("CURRENCYAPI_BASE_URL"),
		RESTCountriesBaseURL: viper.GetString("RESTCOUNTRIES_BASE_URL"),
		HTTPTimeout:          durationOrDefault("HTTP_TIMEOUT", 15*time.Second),
		CacheTTL:             durationOrDefault("CACHE_TTL", 24*time.Hour),
		LogLevel:             viper.GetString("LOG_LEVEL"),
	}
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(viper.GetString(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
