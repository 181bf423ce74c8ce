package services_test

import (
	"context"
	"net/url"

	"github.com/stretchr/testify/mock"

	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/domain"
	portsrepo "github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/ports/repositories"
)

// --- Mock RateStore ---
type MockRateStore struct {
	mock.Mock
}

func (m *MockRateStore) ListAll(ctx context.Context, table string, params url.Values) ([]portsrepo.Record, error) {
	args := m.Called(ctx, table, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]portsrepo.Record), args.Error(1)
}

func (m *MockRateStore) BulkInsert(ctx context.Context, table string, fields []map[string]any) ([]portsrepo.Record, error) {
	args := m.Called(ctx, table, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]portsrepo.Record), args.Error(1)
}

func (m *MockRateStore) ReplaceAll(ctx context.Context, table string, fields []map[string]any) ([]portsrepo.Record, error) {
	args := m.Called(ctx, table, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]portsrepo.Record), args.Error(1)
}

// --- Mock RateSource ---
type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) LastTables(ctx context.Context, table string, count int) ([]portsrepo.ExchangeTable, error) {
	args := m.Called(ctx, table, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]portsrepo.ExchangeTable), args.Error(1)
}

func (m *MockRateSource) LastRates(ctx context.Context, table string, code domain.CurrencyCode, count int) (portsrepo.CurrencyRates, error) {
	args := m.Called(ctx, table, code, count)
	return args.Get(0).(portsrepo.CurrencyRates), args.Error(1)
}

func (m *MockRateSource) RatesInRange(ctx context.Context, table string, code domain.CurrencyCode, start, end domain.ExchangeDate) (portsrepo.CurrencyRates, error) {
	args := m.Called(ctx, table, code, start, end)
	return args.Get(0).(portsrepo.CurrencyRates), args.Error(1)
}

// --- Mock rates reader ---
type MockRatesReader struct {
	mock.Mock
}

func (m *MockRatesReader) CurrentRates(ctx context.Context) ([]domain.RateEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RateEntry), args.Error(1)
}

// --- shared fixture helpers ---

func fptr(v float64) *float64 {
	return &v
}

func mustCode(raw string) domain.CurrencyCode {
	code, err := domain.NewCurrencyCode(raw)
	if err != nil {
		panic(err)
	}
	return code
}

func mustRate(v float64) domain.Rate {
	rate, err := domain.NewRate(v)
	if err != nil {
		panic(err)
	}
	return rate
}

func mustDate(raw string) domain.ExchangeDate {
	date, err := domain.ParseExchangeDate(raw)
	if err != nil {
		panic(err)
	}
	return date
}

func testEntry(code string, mid float64) domain.RateEntry {
	return domain.RateEntry{
		Code:          mustCode(code),
		Name:          code,
		CurrentMid:    mustRate(mid),
		PreviousMid:   mustRate(mid),
		EffectiveDate: mustDate("2023-05-11"),
	}
}
