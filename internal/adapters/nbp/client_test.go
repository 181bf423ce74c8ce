package nbp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/apperrors"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/domain"
)

func TestLastTables(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/exchangerates/tables/A/last/2", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"table":"A","no":"090/A/NBP/2023","effectiveDate":"2023-05-10","rates":[
				{"currency":"dolar amerykański","code":"USD","mid":4.15}
			]},
			{"table":"A","no":"091/A/NBP/2023","effectiveDate":"2023-05-11","rates":[
				{"currency":"dolar amerykański","code":"USD","mid":4.18},
				{"currency":"euro","code":"EUR","mid":4.55}
			]}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	tables, err := client.LastTables(context.Background(), "A", 2)

	require.NoError(t, err)
	require.Len(t, tables, 2)
	assert.Equal(t, "2023-05-10", tables[0].EffectiveDate)
	assert.Equal(t, "2023-05-11", tables[1].EffectiveDate)
	require.Len(t, tables[1].Rates, 2)
	assert.Equal(t, "USD", tables[1].Rates[0].Code)
	assert.Equal(t, 4.18, tables[1].Rates[0].Mid)
	assert.Equal(t, "euro", tables[1].Rates[1].Currency)
}

func TestLastRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/exchangerates/rates/A/USD/last/14", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"table":"A","currency":"dolar amerykański","code":"USD","rates":[
				{"no":"090/A/NBP/2023","effectiveDate":"2023-05-10","mid":4.15},
				{"no":"091/A/NBP/2023","effectiveDate":"2023-05-11","mid":4.18}
			]
		}`))
	}))
	defer server.Close()

	usd, err := domain.NewCurrencyCode("USD")
	require.NoError(t, err)

	client := NewClient(server.URL, 5*time.Second)
	rates, err := client.LastRates(context.Background(), "A", usd, 14)

	require.NoError(t, err)
	assert.Equal(t, "A", rates.Table)
	assert.Equal(t, "USD", rates.Code)
	require.Len(t, rates.Rates, 2)
	assert.Equal(t, "2023-05-10", rates.Rates[0].EffectiveDate)
	assert.Equal(t, 4.18, rates.Rates[1].Mid)
}

func TestRatesInRange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/exchangerates/rates/A/EUR/2023-05-01/2023-05-11", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"table":"A","currency":"euro","code":"EUR","rates":[
				{"no":"085/A/NBP/2023","effectiveDate":"2023-05-04","mid":4.58}
			]
		}`))
	}))
	defer server.Close()

	eur, err := domain.NewCurrencyCode("EUR")
	require.NoError(t, err)
	start, err := domain.ParseExchangeDate("2023-05-01")
	require.NoError(t, err)
	end, err := domain.ParseExchangeDate("2023-05-11")
	require.NoError(t, err)

	client := NewClient(server.URL, 5*time.Second)
	rates, err := client.RatesInRange(context.Background(), "A", eur, start, end)

	require.NoError(t, err)
	require.Len(t, rates.Rates, 1)
	assert.Equal(t, 4.58, rates.Rates[0].Mid)
}

func TestGet_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "404 NotFound - Not Found - Brak danych", http.StatusNotFound)
	}))
	defer server.Close()

	usd, _ := domain.NewCurrencyCode("USD")
	client := NewClient(server.URL, 5*time.Second)
	_, err := client.LastRates(context.Background(), "A", usd, 14)

	assert.ErrorIs(t, err, apperrors.ErrUpstream)
	assert.Contains(t, err.Error(), "404")
}

func TestGet_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.LastTables(context.Background(), "A", 2)

	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}
