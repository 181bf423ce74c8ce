package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/apperrors"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/domain"
	portsrepo "github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/ports/repositories"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/middleware"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/platform/config"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/utils/mapping"
)

// RateSyncService pulls the two most recent published rate tables, computes
// day-over-day deltas, and replaces the record-store snapshot wholesale.
//
// Previous-day matching is positional: a currency missing from either table is
// dropped, and a sync gap longer than one publication cycle loses the true
// previous value. Known limitation, kept to bound memory and avoid drift.
type RateSyncService struct {
	source    portsrepo.RateSource
	store     portsrepo.RateStore
	spreads   *config.SpreadsConfig
	nbpTable  string
	tableName string
	now       func() time.Time
}

// NewRateSyncService creates a new RateSyncService.
func NewRateSyncService(source portsrepo.RateSource, store portsrepo.RateStore, spreads *config.SpreadsConfig, nbpTable, tableName string) *RateSyncService {
	return &RateSyncService{
		source:    source,
		store:     store,
		spreads:   spreads,
		nbpTable:  nbpTable,
		tableName: tableName,
		now:       time.Now,
	}
}

// SyncRates fetches the last two published tables and replaces the stored
// snapshot with the delta-annotated entries. Must not run concurrently for the
// same table.
func (s *RateSyncService) SyncRates(ctx context.Context) ([]domain.RateEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tables, err := s.source.LastTables(ctx, s.nbpTable, 2)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rate tables: %w", err)
	}
	if len(tables) < 2 {
		return nil, fmt.Errorf("%w: received %d tables", apperrors.ErrInsufficientTables, len(tables))
	}

	previousTable := tables[0]
	currentTable := tables[1]

	effectiveDate, err := domain.ParseExchangeDate(currentTable.EffectiveDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid table effective date %q", apperrors.ErrUpstream, currentTable.EffectiveDate)
	}

	previousMids := make(map[string]float64, len(previousTable.Rates))
	for _, rate := range previousTable.Rates {
		previousMids[rate.Code] = rate.Mid
	}

	// One timestamp per run so repeated syncs of unchanged upstream data
	// differ only in updated_at.
	updatedAt := s.now()

	var entries []domain.RateEntry
	for _, rate := range currentTable.Rates {
		code, err := domain.NewCurrencyCode(rate.Code)
		if err != nil {
			logger.Warn("Skipping rate with invalid currency code", slog.String("code", rate.Code))
			continue
		}
		if !s.spreads.IsAllowed(code) {
			continue
		}
		previousMid, ok := previousMids[rate.Code]
		if !ok {
			// Newly listed currency: no previous value to diff against.
			logger.Debug("Skipping currency without previous rate", slog.String("currency", rate.Code))
			continue
		}

		currentRate, err := domain.NewRate(rate.Mid)
		if err != nil {
			return nil, fmt.Errorf("invalid mid rate for %s: %w", rate.Code, err)
		}
		previousRate, err := domain.NewRate(previousMid)
		if err != nil {
			return nil, fmt.Errorf("invalid previous mid rate for %s: %w", rate.Code, err)
		}

		entries = append(entries, domain.RateEntry{
			Code:          code,
			Name:          rate.Currency,
			CurrentMid:    currentRate,
			PreviousMid:   previousRate,
			EffectiveDate: effectiveDate,
			UpdatedAt:     updatedAt,
		})
	}

	fields := make([]map[string]any, len(entries))
	for i, entry := range entries {
		fields[i] = mapping.RateRecordToFields(mapping.DomainToRateRecord(entry))
	}

	if _, err := s.store.ReplaceAll(ctx, s.tableName, fields); err != nil {
		return nil, fmt.Errorf("failed to replace stored rates: %w", err)
	}

	logger.Info("Rate synchronization completed",
		slog.Int("entries", len(entries)),
		slog.String("effective_date", effectiveDate.String()),
	)
	return entries, nil
}
