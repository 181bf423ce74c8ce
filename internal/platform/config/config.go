package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Remote record store (Airtable-style table API).
	AirtableAPIURL     string
	AirtableBaseID     string
	AirtableToken      string
	AirtableRatesTable string

	// Upstream national-bank rate API.
	NBPAPIURL string
	NBPTable  string

	// Paths to YAML data files.
	SpreadsPath   string
	CountriesPath string

	// Per-call timeout for outbound HTTP clients.
	HTTPTimeout time.Duration

	// Rate limit spec for ulule/limiter, e.g. "60-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("AIRTABLE_API_URL", "https://api.airtable.com/v0")
	viper.SetDefault("AIRTABLE_BASE_ID", "")
	viper.SetDefault("AIRTABLE_TOKEN", "")
	viper.SetDefault("AIRTABLE_RATES_TABLE", "last_rates")
	viper.SetDefault("NBP_API_URL", "https://api.nbp.pl/api")
	viper.SetDefault("NBP_TABLE", "A")
	viper.SetDefault("SPREADS_CONFIG_PATH", "config/exchange_rates.yaml")
	viper.SetDefault("COUNTRIES_CONFIG_PATH", "config/currency_countries.yaml")
	viper.SetDefault("HTTP_TIMEOUT", "30s")
	viper.SetDefault("RATE_LIMIT", "60-M")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:               viper.GetString("PORT"),
		IsProduction:       viper.GetBool("IS_PRODUCTION"),
		AirtableAPIURL:     viper.GetString("AIRTABLE_API_URL"),
		AirtableBaseID:     viper.GetString("AIRTABLE_BASE_ID"),
		AirtableToken:      viper.GetString("AIRTABLE_TOKEN"),
		AirtableRatesTable: viper.GetString("AIRTABLE_RATES_TABLE"),
		NBPAPIURL:          viper.GetString("NBP_API_URL"),
		NBPTable:           viper.GetString("NBP_TABLE"),
		SpreadsPath:        viper.GetString("SPREADS_CONFIG_PATH"),
		CountriesPath:      viper.GetString("COUNTRIES_CONFIG_PATH"),
		RateLimit:          viper.GetString("RATE_LIMIT"),
	}

	if cfg.AirtableToken == "" {
		log.Println("Warning: AIRTABLE_TOKEN environment variable not set.")
	}
	if cfg.AirtableBaseID == "" {
		log.Println("Warning: AIRTABLE_BASE_ID environment variable not set.")
	}

	timeoutStr := viper.GetString("HTTP_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 30 * time.Second
		log.Printf("Warning: Invalid value for HTTP_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.HTTPTimeout = timeout

	return cfg, nil
}
