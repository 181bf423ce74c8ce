package services

import (
	"context"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/apperrors"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/domain"
	portssvc "github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/ports/services"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/platform/config"
)

// resultDecimalPlaces applies to every currency uniformly, including ones that
// conventionally use 0 or 3 decimals.
const resultDecimalPlaces = 2

// ConversionService converts amounts between currencies using exchange-office
// pricing: client "buy" prices at the office's sell rate and vice versa, cross
// pairs pivot through PLN, and the final result is rounded in the house's
// favor (floor on buy, ceil on sell, half-up at mid).
type ConversionService struct {
	rates      portssvc.RatesReaderSvc
	calculator *SpreadCalculator
	spreads    *config.SpreadsConfig
}

// NewConversionService creates a new ConversionService.
func NewConversionService(rates portssvc.RatesReaderSvc, calculator *SpreadCalculator, spreads *config.SpreadsConfig) *ConversionService {
	return &ConversionService{
		rates:      rates,
		calculator: calculator,
		spreads:    spreads,
	}
}

// Convert performs one conversion. The amount must be strictly positive;
// PLN to PLN is the identity at rate 1.0 regardless of operation.
func (s *ConversionService) Convert(ctx context.Context, amount float64, from, to string, operation domain.Operation) (domain.Conversion, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return domain.Conversion{}, fmt.Errorf("%w: amount must be a finite number", apperrors.ErrValidation)
	}
	if amount <= 0 {
		return domain.Conversion{}, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	fromCode, err := domain.ParseCurrencyCode(from)
	if err != nil {
		return domain.Conversion{}, err
	}
	toCode, err := domain.ParseCurrencyCode(to)
	if err != nil {
		return domain.Conversion{}, err
	}
	if _, err := domain.ParseOperation(string(operation)); err != nil {
		return domain.Conversion{}, err
	}

	if err := s.validateAvailability(fromCode, toCode, operation); err != nil {
		return domain.Conversion{}, err
	}

	if fromCode.IsPLN() && toCode.IsPLN() {
		return domain.Conversion{
			Result:    amount,
			Amount:    amount,
			From:      fromCode,
			To:        toCode,
			Rate:      1.0,
			Operation: operation,
		}, nil
	}

	entries, err := s.rates.CurrentRates(ctx)
	if err != nil {
		return domain.Conversion{}, err
	}
	snapshot := make(map[string]domain.RateEntry, len(entries))
	for _, entry := range entries {
		snapshot[entry.Code.String()] = entry
	}

	var result, usedRate float64

	switch {
	case fromCode.IsPLN():
		// PLN -> foreign: the client buys foreign currency, so the office's
		// sell rate applies.
		entry, ok := snapshot[toCode.String()]
		if !ok {
			return domain.Conversion{}, fmt.Errorf("%w: currency %s not available", apperrors.ErrCurrencyUnavailable, toCode)
		}
		rate, err := s.directionRate(entry, operation)
		if err != nil {
			return domain.Conversion{}, err
		}
		result = amount / rate.Value()
		usedRate = rate.Value()

	case toCode.IsPLN():
		// Foreign -> PLN: the client sells foreign currency, so the office's
		// buy rate applies.
		entry, ok := snapshot[fromCode.String()]
		if !ok {
			return domain.Conversion{}, fmt.Errorf("%w: currency %s not available", apperrors.ErrCurrencyUnavailable, fromCode)
		}
		rate, err := s.directionRate(entry, operation)
		if err != nil {
			return domain.Conversion{}, err
		}
		result = amount * rate.Value()
		usedRate = rate.Value()

	default:
		// Foreign -> foreign: pivot through PLN. Both legs use the same
		// direction mapping as their single-leg counterparts.
		fromEntry, ok := snapshot[fromCode.String()]
		if !ok {
			return domain.Conversion{}, fmt.Errorf("%w: currency %s not available", apperrors.ErrCurrencyUnavailable, fromCode)
		}
		toEntry, ok := snapshot[toCode.String()]
		if !ok {
			return domain.Conversion{}, fmt.Errorf("%w: currency %s not available", apperrors.ErrCurrencyUnavailable, toCode)
		}
		fromRate, err := s.directionRate(fromEntry, operation)
		if err != nil {
			return domain.Conversion{}, err
		}
		toRate, err := s.directionRate(toEntry, operation)
		if err != nil {
			return domain.Conversion{}, err
		}
		plnAmount := amount * fromRate.Value()
		result = plnAmount / toRate.Value()
		usedRate = fromRate.Value() / toRate.Value()
	}

	return domain.Conversion{
		Result:    applyExchangeRounding(result, operation),
		Amount:    amount,
		From:      fromCode,
		To:        toCode,
		Rate:      usedRate,
		Operation: operation,
	}, nil
}

// directionRate resolves the rate a conversion leg actually trades at: client
// buy maps to the configured sell rate, client sell to the buy rate, and mid
// stays at the unmodified mid. Falls back to mid when no spread is derived,
// which is only reachable for mid since availability is validated upfront.
func (s *ConversionService) directionRate(entry domain.RateEntry, operation domain.Operation) (domain.Rate, error) {
	var derived *domain.Rate
	var err error

	switch operation {
	case domain.OperationBuy:
		derived, err = s.calculator.SellRate(entry.Code, entry.CurrentMid)
	case domain.OperationSell:
		derived, err = s.calculator.BuyRate(entry.Code, entry.CurrentMid)
	default:
		return entry.CurrentMid, nil
	}
	if err != nil {
		return domain.Rate{}, err
	}
	if derived == nil {
		return entry.CurrentMid, nil
	}
	return *derived, nil
}

// validateAvailability ensures the spread for the requested operation is
// configured on every non-PLN leg. Checked before rate-data existence so
// "not configured" and "no snapshot" stay distinguishable. Skipped for mid.
func (s *ConversionService) validateAvailability(from, to domain.CurrencyCode, operation domain.Operation) error {
	if operation == domain.OperationMid {
		return nil
	}

	check := func(code domain.CurrencyCode) error {
		var spread *float64
		if operation == domain.OperationBuy {
			spread = s.spreads.BuySpread(code)
		} else {
			spread = s.spreads.SellSpread(code)
		}
		if spread == nil {
			return fmt.Errorf("%w: %s operation not available for currency %s", apperrors.ErrOperationUnavailable, operation, code)
		}
		return nil
	}

	switch {
	case from.IsPLN() && !to.IsPLN():
		return check(to)
	case !from.IsPLN() && to.IsPLN():
		return check(from)
	case !from.IsPLN() && !to.IsPLN():
		if err := check(from); err != nil {
			return err
		}
		return check(to)
	}
	return nil
}

// applyExchangeRounding rounds the final numeric result only, never
// intermediate PLN amounts. Buy floors (the client receives less), sell ceils
// (the office pays out more PLN), mid rounds half-up.
func applyExchangeRounding(result float64, operation domain.Operation) float64 {
	d := decimal.NewFromFloat(result)
	switch operation {
	case domain.OperationBuy:
		d = d.RoundFloor(resultDecimalPlaces)
	case domain.OperationSell:
		d = d.RoundCeil(resultDecimalPlaces)
	default:
		d = d.Round(resultDecimalPlaces)
	}
	out, _ := d.Float64()
	return out
}
