package services

import "context"

// CountrySvcFacade resolves currency codes to country codes for flag display.
// Implementations load the mapping once and memoize it process-wide.
type CountrySvcFacade interface {
	Countries(ctx context.Context) (map[string]string, error)
	CountryForCurrency(ctx context.Context, currency string) (string, error)
}
