package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
	"golang.org/x/sync/singleflight"

	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/apperrors"
)

// CountryService resolves currency codes to ISO country codes for flag
// display. The mapping file is read at most once per process: concurrent first
// callers share a single load via singleflight, and the result is memoized for
// the process lifetime (no TTL, no invalidation).
type CountryService struct {
	path string

	group  singleflight.Group
	mu     sync.RWMutex
	cached map[string]string
}

// NewCountryService creates a new CountryService reading from the given YAML
// file (a flat currency -> country-code map).
func NewCountryService(path string) *CountryService {
	return &CountryService{path: path}
}

// Countries returns the full currency -> country mapping.
func (s *CountryService) Countries(ctx context.Context) (map[string]string, error) {
	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	result, err, _ := s.group.Do("countries", func() (any, error) {
		mapping, err := s.load()
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.cached = mapping
		s.mu.Unlock()
		return mapping, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(map[string]string), nil
}

// CountryForCurrency resolves one currency code, case-insensitively.
func (s *CountryService) CountryForCurrency(ctx context.Context, currency string) (string, error) {
	countries, err := s.Countries(ctx)
	if err != nil {
		return "", err
	}
	country, ok := countries[strings.ToUpper(currency)]
	if !ok {
		return "", fmt.Errorf("%w: no country mapping for currency %s", apperrors.ErrCurrencyUnavailable, strings.ToUpper(currency))
	}
	return country, nil
}

func (s *CountryService) load() (map[string]string, error) {
	v := viper.New()
	v.SetConfigFile(s.path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read country mapping %s: %w", s.path, err)
	}

	raw := map[string]string{}
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse country mapping %s: %w", s.path, err)
	}

	mapping := make(map[string]string, len(raw))
	for currency, country := range raw {
		mapping[strings.ToUpper(currency)] = country
	}
	return mapping, nil
}
