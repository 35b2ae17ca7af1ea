package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("BASE_PRICE", "")
	t.Setenv("QUOTE_TTL", "")
	t.Setenv("TIMEZONE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 20.0, cfg.Pricing.BasePrice)
	assert.Equal(t, 24*time.Hour, cfg.Quote.TTL)
	assert.Equal(t, "UTC", cfg.Location.String())
	assert.Equal(t, 20.0, cfg.PricingRules().BasePrice)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BASE_PRICE", "32.5")
	t.Setenv("QUOTE_TTL", "30m")
	t.Setenv("TIMEZONE", "Asia/Kolkata")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 32.5, cfg.Pricing.BasePrice)
	assert.Equal(t, 30*time.Minute, cfg.Quote.TTL)
	assert.Equal(t, "Asia/Kolkata", cfg.Location.String())
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("BASE_PRICE", "cheap")
	_, err := Load()
	assert.ErrorContains(t, err, "BASE_PRICE")

	t.Setenv("BASE_PRICE", "-1")
	_, err = Load()
	assert.ErrorContains(t, err, "BASE_PRICE")

	t.Setenv("BASE_PRICE", "")
	t.Setenv("QUOTE_TTL", "tomorrow")
	_, err = Load()
	assert.ErrorContains(t, err, "QUOTE_TTL")

	t.Setenv("QUOTE_TTL", "")
	t.Setenv("TIMEZONE", "Mars/Olympus")
	_, err = Load()
	assert.ErrorContains(t, err, "TIMEZONE")
}
