package domain

import "time"

// RateEntry is one currency's most recent published rate plus the rate it
// supersedes. Created by the sync engine; read-only afterwards and replaced
// wholesale on each sync.
type RateEntry struct {
	Code          CurrencyCode
	Name          string
	CurrentMid    Rate
	PreviousMid   Rate
	EffectiveDate ExchangeDate
	UpdatedAt     time.Time
}

// RateEntryWithSpreads is a RateEntry with derived buy/sell rates. Either rate
// is nil when no spread is configured for that side. Computed per read request,
// never persisted.
type RateEntryWithSpreads struct {
	RateEntry
	BuyRate  *Rate
	SellRate *Rate
}

// HistoricalRatePoint is one published observation in a currency's history.
type HistoricalRatePoint struct {
	No            string
	EffectiveDate ExchangeDate
	Mid           Rate
}

// CurrencyHistory is the result of a history-window query: up to 14
// observations, newest first.
type CurrencyHistory struct {
	Table    string
	Currency string
	Code     CurrencyCode
	Rates    []HistoricalRatePoint
}
