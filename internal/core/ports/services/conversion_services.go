package services

import (
	"context"

	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/domain"
)

// ConversionSvcFacade converts an amount between currencies using
// exchange-office pricing: direction-mapped buy/sell rates, PLN-pivoted cross
// conversion, and house-favoring rounding.
type ConversionSvcFacade interface {
	Convert(ctx context.Context, amount float64, from, to string, operation domain.Operation) (domain.Conversion, error)
}
