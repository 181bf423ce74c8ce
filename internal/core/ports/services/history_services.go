package services

import (
	"context"

	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/domain"
)

// HistorySvcFacade answers "last 14 observations ending on a date" queries.
// anchor == nil means "ending today", served directly by the upstream last-N
// endpoint.
type HistorySvcFacade interface {
	History(ctx context.Context, code domain.CurrencyCode, anchor *domain.ExchangeDate) (domain.CurrencyHistory, error)
}
