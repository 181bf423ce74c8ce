package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/domain"
	portsrepo "github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/ports/repositories"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/middleware"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/platform/config"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/utils/mapping"
)

// RatesService reads the last-rates snapshot from the record store, filtering
// to configured currencies and optionally attaching derived buy/sell rates.
type RatesService struct {
	store      portsrepo.RateStore
	spreads    *config.SpreadsConfig
	calculator *SpreadCalculator
	tableName  string
}

// NewRatesService creates a new RatesService.
func NewRatesService(store portsrepo.RateStore, spreads *config.SpreadsConfig, calculator *SpreadCalculator, tableName string) *RatesService {
	return &RatesService{
		store:      store,
		spreads:    spreads,
		calculator: calculator,
		tableName:  tableName,
	}
}

// CurrentRates returns the stored snapshot as domain entries, skipping
// currencies that are no longer in the configured allow-list.
func (s *RatesService) CurrentRates(ctx context.Context) ([]domain.RateEntry, error) {
	records, err := s.store.ListAll(ctx, s.tableName, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list current rates: %w", err)
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	entries := make([]domain.RateEntry, 0, len(records))
	for _, record := range records {
		rec, err := mapping.FieldsToRateRecord(record.Fields)
		if err != nil {
			return nil, err
		}
		entry, err := mapping.RateRecordToDomain(rec)
		if err != nil {
			return nil, err
		}
		if !s.spreads.IsAllowed(entry.Code) {
			logger.Debug("Skipping stored rate for unconfigured currency", slog.String("currency", entry.Code.String()))
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// RatesWithSpreads returns the snapshot with buy/sell rates derived from the
// configured spreads. Either derived rate is nil when its side is not
// configured for the currency.
func (s *RatesService) RatesWithSpreads(ctx context.Context) ([]domain.RateEntryWithSpreads, error) {
	entries, err := s.CurrentRates(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.RateEntryWithSpreads, 0, len(entries))
	for _, entry := range entries {
		buyRate, err := s.calculator.BuyRate(entry.Code, entry.CurrentMid)
		if err != nil {
			return nil, err
		}
		sellRate, err := s.calculator.SellRate(entry.Code, entry.CurrentMid)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.RateEntryWithSpreads{
			RateEntry: entry,
			BuyRate:   buyRate,
			SellRate:  sellRate,
		})
	}

	return out, nil
}
