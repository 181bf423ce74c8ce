package repositories

import (
	"context"

	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/domain"
)

// TableRate is one currency's row inside a published rate table.
type TableRate struct {
	Currency string
	Code     string
	Mid      float64
}

// ExchangeTable is one published rate table as returned by the upstream
// national-bank API. Dates stay as wire strings; parsing into domain types
// happens in the services that consume them.
type ExchangeTable struct {
	Table         string
	No            string
	EffectiveDate string
	Rates         []TableRate
}

// RatePoint is one observation in a currency's published history.
type RatePoint struct {
	No            string
	EffectiveDate string
	Mid           float64
}

// CurrencyRates is the upstream response for a per-currency history query.
type CurrencyRates struct {
	Table    string
	Currency string
	Code     string
	Rates    []RatePoint
}

// RateSource is the read-only client for the upstream national-bank rate APIs.
type RateSource interface {
	// LastTables fetches the most recent count published rate tables, ordered
	// oldest first.
	LastTables(ctx context.Context, table string, count int) ([]ExchangeTable, error)

	// LastRates fetches the last count published observations for a currency.
	LastRates(ctx context.Context, table string, code domain.CurrencyCode, count int) (CurrencyRates, error)

	// RatesInRange fetches a currency's observations within [start, end]. The
	// upstream only answers fixed date ranges; callers needing "last N ending
	// at D" widen the range themselves.
	RatesInRange(ctx context.Context, table string, code domain.CurrencyCode, start, end domain.ExchangeDate) (CurrencyRates, error)
}
