package services

import (
	"context"

	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/domain"
)

// RateSyncSvcFacade runs one synchronization of the upstream rate tables into
// the record store. Must not be invoked concurrently for the same table: the
// underlying replace is delete-then-insert without isolation.
type RateSyncSvcFacade interface {
	SyncRates(ctx context.Context) ([]domain.RateEntry, error)
}
