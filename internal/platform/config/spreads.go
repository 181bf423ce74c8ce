package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/domain"
)

// SpreadEntry holds a currency's optional signed buy/sell offsets to the mid
// rate. A nil side means that operation is unavailable for the currency.
type SpreadEntry struct {
	Buy  *float64 `mapstructure:"buy"`
	Sell *float64 `mapstructure:"sell"`
}

// SpreadsConfig is the per-currency spread table. Presence of an entry is the
// allow-list: currencies without one are not tradable at all. Loaded once at
// startup and immutable afterwards.
type SpreadsConfig struct {
	spreads map[string]SpreadEntry
}

// LoadSpreadsConfig reads the spread table from a YAML file laid out as
// exchange_rates.spreads.<CODE>.{buy,sell}.
func LoadSpreadsConfig(path string) (*SpreadsConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read spreads config %s: %w", path, err)
	}

	raw := map[string]SpreadEntry{}
	if err := v.UnmarshalKey("exchange_rates.spreads", &raw); err != nil {
		return nil, fmt.Errorf("failed to parse spreads config %s: %w", path, err)
	}

	// viper lowercases map keys; normalize back to ISO uppercase.
	spreads := make(map[string]SpreadEntry, len(raw))
	for code, entry := range raw {
		spreads[strings.ToUpper(code)] = entry
	}

	return &SpreadsConfig{spreads: spreads}, nil
}

// NewSpreadsConfig builds a spread table directly from entries, for tests and
// programmatic setup.
func NewSpreadsConfig(entries map[string]SpreadEntry) *SpreadsConfig {
	spreads := make(map[string]SpreadEntry, len(entries))
	for code, entry := range entries {
		spreads[strings.ToUpper(code)] = entry
	}
	return &SpreadsConfig{spreads: spreads}
}

// IsAllowed reports whether the currency has a spread entry at all.
func (c *SpreadsConfig) IsAllowed(code domain.CurrencyCode) bool {
	_, ok := c.spreads[code.String()]
	return ok
}

// BuySpread returns the configured buy offset, or nil when unavailable.
func (c *SpreadsConfig) BuySpread(code domain.CurrencyCode) *float64 {
	entry, ok := c.spreads[code.String()]
	if !ok {
		return nil
	}
	return entry.Buy
}

// SellSpread returns the configured sell offset, or nil when unavailable.
func (c *SpreadsConfig) SellSpread(code domain.CurrencyCode) *float64 {
	entry, ok := c.spreads[code.String()]
	if !ok {
		return nil
	}
	return entry.Sell
}

// AllowedCurrencies lists every tradable currency code.
func (c *SpreadsConfig) AllowedCurrencies() []domain.CurrencyCode {
	codes := make([]domain.CurrencyCode, 0, len(c.spreads))
	for raw := range c.spreads {
		code, err := domain.NewCurrencyCode(raw)
		if err != nil {
			continue
		}
		codes = append(codes, code)
	}
	return codes
}
