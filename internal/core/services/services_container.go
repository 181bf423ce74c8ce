package services

import (
	portsrepo "github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/ports/repositories"
	portssvc "github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/ports/services"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(cfg *config.Config, spreads *config.SpreadsConfig, store portsrepo.RateStore, source portsrepo.RateSource) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	calculator := NewSpreadCalculator(spreads)

	ratesService := NewRatesService(store, spreads, calculator, cfg.AirtableRatesTable)
	container.Rates = ratesService
	container.Sync = NewRateSyncService(source, store, spreads, cfg.NBPTable, cfg.AirtableRatesTable)
	container.History = NewHistoryService(source, cfg.NBPTable)
	container.Conversion = NewConversionService(ratesService, calculator, spreads)
	container.Countries = NewCountryService(cfg.CountriesPath)

	return container
}

// Compile-time interface implementation checks.
var (
	_ portssvc.RatesSvcFacade      = (*RatesService)(nil)
	_ portssvc.RateSyncSvcFacade   = (*RateSyncService)(nil)
	_ portssvc.HistorySvcFacade    = (*HistoryService)(nil)
	_ portssvc.ConversionSvcFacade = (*ConversionService)(nil)
	_ portssvc.CountrySvcFacade    = (*CountryService)(nil)
)
