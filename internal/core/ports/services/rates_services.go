package services

import (
	"context"

	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/domain"
)

// RatesReaderSvc provides read access to the current rate snapshot. Split out
// so the conversion calculator depends only on the read path.
type RatesReaderSvc interface {
	CurrentRates(ctx context.Context) ([]domain.RateEntry, error)
}

// RatesSvcFacade exposes the stored rate snapshot, plain and with derived
// buy/sell rates.
type RatesSvcFacade interface {
	RatesReaderSvc
	RatesWithSpreads(ctx context.Context) ([]domain.RateEntryWithSpreads, error)
}
