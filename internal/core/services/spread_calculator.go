package services

import (
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/domain"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/platform/config"
)

// SpreadCalculator derives buy/sell rates from a mid rate using the configured
// per-currency additive spreads.
type SpreadCalculator struct {
	spreads *config.SpreadsConfig
}

// NewSpreadCalculator creates a new SpreadCalculator.
func NewSpreadCalculator(spreads *config.SpreadsConfig) *SpreadCalculator {
	return &SpreadCalculator{spreads: spreads}
}

// BuyRate returns mid plus the configured buy spread, or nil when the currency
// has no buy spread configured.
func (s *SpreadCalculator) BuyRate(code domain.CurrencyCode, mid domain.Rate) (*domain.Rate, error) {
	spread := s.spreads.BuySpread(code)
	if spread == nil {
		return nil, nil
	}
	rate, err := mid.AddSpread(*spread)
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

// SellRate returns mid plus the configured sell spread, or nil when the
// currency has no sell spread configured.
func (s *SpreadCalculator) SellRate(code domain.CurrencyCode, mid domain.Rate) (*domain.Rate, error) {
	spread := s.spreads.SellSpread(code)
	if spread == nil {
		return nil, nil
	}
	rate, err := mid.AddSpread(*spread)
	if err != nil {
		return nil, err
	}
	return &rate, nil
}
