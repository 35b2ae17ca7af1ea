package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/agrisync/agrisync/internal/pricing"
	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	GinMode  string
	Database DatabaseConfig
	Pricing  PricingConfig
	Quote    QuoteConfig
	Location *time.Location
}

type DatabaseConfig struct {
	URL string
}

type PricingConfig struct {
	BasePrice float64
}

type QuoteConfig struct {
	SigningKey string
	TTL        time.Duration
}

func Load() (*Config, error) {
	godotenv.Load()

	basePrice, err := strconv.ParseFloat(getEnv("BASE_PRICE", strconv.FormatFloat(pricing.DefaultBasePrice, 'f', -1, 64)), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid BASE_PRICE: %w", err)
	}
	if basePrice <= 0 {
		return nil, fmt.Errorf("invalid BASE_PRICE: must be positive")
	}

	quoteTTL, err := time.ParseDuration(getEnv("QUOTE_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid QUOTE_TTL: %w", err)
	}

	location, err := time.LoadLocation(getEnv("TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	return &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Pricing: PricingConfig{
			BasePrice: basePrice,
		},
		Quote: QuoteConfig{
			SigningKey: getEnv("QUOTE_SIGNING_KEY", ""),
			TTL:        quoteTTL,
		},
		Location: location,
	}, nil
}

func (c *Config) PricingRules() pricing.Rules {
	return pricing.Rules{BasePrice: c.Pricing.BasePrice}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
