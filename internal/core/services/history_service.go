package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/apperrors"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/domain"
	portsrepo "github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/ports/repositories"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/middleware"
)

const (
	historyWindowSize = 14
	// Expanding-window search parameters. Trading calendars have gaps of
	// unpredictable length, so the lookback widens until enough observations
	// appear or the attempt budget runs out.
	initialLookbackDays = 20
	lookbackStepDays    = 15
	maxWindowAttempts   = 5
)

// HistoryService serves "last 14 observations ending on date D" queries
// against an upstream that only answers fixed date ranges.
type HistoryService struct {
	source   portsrepo.RateSource
	nbpTable string
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(source portsrepo.RateSource, nbpTable string) *HistoryService {
	return &HistoryService{source: source, nbpTable: nbpTable}
}

// History returns up to 14 observations for the currency, newest first. With
// no anchor the upstream last-N endpoint answers directly; with an anchor an
// expanding-window search probes progressively larger ranges.
func (s *HistoryService) History(ctx context.Context, code domain.CurrencyCode, anchor *domain.ExchangeDate) (domain.CurrencyHistory, error) {
	if anchor == nil {
		data, err := s.source.LastRates(ctx, s.nbpTable, code, historyWindowSize)
		if err != nil {
			return domain.CurrencyHistory{}, fmt.Errorf("failed to fetch currency history: %w", err)
		}
		return s.toDomain(data, code)
	}
	return s.fetchEndingAt(ctx, code, *anchor)
}

func (s *HistoryService) fetchEndingAt(ctx context.Context, code domain.CurrencyCode, anchor domain.ExchangeDate) (domain.CurrencyHistory, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var best []domain.HistoricalRatePoint
	var lastData *portsrepo.CurrencyRates

	lookback := initialLookbackDays
	for attempt := 0; attempt < maxWindowAttempts && len(best) < historyWindowSize; attempt++ {
		start, err := anchor.AddDays(-lookback)
		if err != nil {
			return domain.CurrencyHistory{}, err
		}

		data, err := s.source.RatesInRange(ctx, s.nbpTable, code, start, anchor)
		if err != nil {
			return domain.CurrencyHistory{}, fmt.Errorf("failed to fetch currency history range: %w", err)
		}
		lastData = &data

		points, err := parsePoints(data.Rates, anchor)
		if err != nil {
			return domain.CurrencyHistory{}, err
		}
		// Replace, never accumulate: each attempt's range contains the
		// previous one, so merging would only duplicate points.
		best = points

		logger.Debug("History window attempt",
			slog.String("currency", code.String()),
			slog.Int("lookback_days", lookback),
			slog.Int("points", len(best)),
		)
		lookback += lookbackStepDays
	}

	if len(best) > historyWindowSize {
		best = best[:historyWindowSize]
	}

	history := domain.CurrencyHistory{
		Table:    s.nbpTable,
		Currency: code.String(),
		Code:     code,
		Rates:    best,
	}
	if lastData != nil {
		if lastData.Table != "" {
			history.Table = lastData.Table
		}
		if lastData.Currency != "" {
			history.Currency = lastData.Currency
		}
		if parsed, err := domain.NewCurrencyCode(lastData.Code); err == nil {
			history.Code = parsed
		}
	}
	return history, nil
}

// parsePoints converts wire points into domain ones, dropping anything dated
// strictly after the anchor and sorting the rest newest first.
func parsePoints(rates []portsrepo.RatePoint, anchor domain.ExchangeDate) ([]domain.HistoricalRatePoint, error) {
	points := make([]domain.HistoricalRatePoint, 0, len(rates))
	for _, r := range rates {
		date, err := domain.ParseExchangeDate(r.EffectiveDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid effective date %q", apperrors.ErrUpstream, r.EffectiveDate)
		}
		if date.IsAfter(anchor) {
			continue
		}
		mid, err := domain.NewRate(r.Mid)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid mid %v for %s", apperrors.ErrUpstream, r.Mid, r.EffectiveDate)
		}
		points = append(points, domain.HistoricalRatePoint{No: r.No, EffectiveDate: date, Mid: mid})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].EffectiveDate.IsAfter(points[j].EffectiveDate)
	})
	return points, nil
}

// toDomain converts an upstream last-N response verbatim; the upstream already
// returns it sorted.
func (s *HistoryService) toDomain(data portsrepo.CurrencyRates, fallback domain.CurrencyCode) (domain.CurrencyHistory, error) {
	points := make([]domain.HistoricalRatePoint, 0, len(data.Rates))
	for _, r := range data.Rates {
		date, err := domain.ParseExchangeDate(r.EffectiveDate)
		if err != nil {
			return domain.CurrencyHistory{}, fmt.Errorf("%w: invalid effective date %q", apperrors.ErrUpstream, r.EffectiveDate)
		}
		mid, err := domain.NewRate(r.Mid)
		if err != nil {
			return domain.CurrencyHistory{}, fmt.Errorf("%w: invalid mid %v for %s", apperrors.ErrUpstream, r.Mid, r.EffectiveDate)
		}
		points = append(points, domain.HistoricalRatePoint{No: r.No, EffectiveDate: date, Mid: mid})
	}

	code := fallback
	if parsed, err := domain.NewCurrencyCode(data.Code); err == nil {
		code = parsed
	}
	currency := data.Currency
	if currency == "" {
		currency = fallback.String()
	}
	table := data.Table
	if table == "" {
		table = s.nbpTable
	}

	return domain.CurrencyHistory{Table: table, Currency: currency, Code: code, Rates: points}, nil
}
