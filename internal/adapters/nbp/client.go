// Package nbp implements the read-only client for the national-bank exchange
// rate APIs: last-N published tables and per-currency rate history.
package nbp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/apperrors"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/domain"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/ports/repositories"
)

// Client fetches published rate tables and currency histories.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ repositories.RateSource = (*Client)(nil)

// NewClient creates an upstream rate client rooted at baseURL
// (e.g. "https://api.nbp.pl/api").
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type tablePayload struct {
	Table         string `json:"table"`
	No            string `json:"no"`
	EffectiveDate string `json:"effectiveDate"`
	Rates         []struct {
		Currency string  `json:"currency"`
		Code     string  `json:"code"`
		Mid      float64 `json:"mid"`
	} `json:"rates"`
}

type currencyRatesPayload struct {
	Table    string `json:"table"`
	Currency string `json:"currency"`
	Code     string `json:"code"`
	Rates    []struct {
		No            string  `json:"no"`
		EffectiveDate string  `json:"effectiveDate"`
		Mid           float64 `json:"mid"`
	} `json:"rates"`
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "kantor-backend/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %v", apperrors.ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: GET %s returned status %d", apperrors.ErrUpstream, rawURL, resp.StatusCode)
	}
	return body, nil
}

// LastTables fetches the most recent count published rate tables, oldest first.
func (c *Client) LastTables(ctx context.Context, table string, count int) ([]repositories.ExchangeTable, error) {
	rawURL := fmt.Sprintf("%s/exchangerates/tables/%s/last/%d?format=json", c.baseURL, table, count)
	body, err := c.get(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	var payload []tablePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON response: %v", apperrors.ErrUpstream, err)
	}

	tables := make([]repositories.ExchangeTable, len(payload))
	for i, t := range payload {
		out := repositories.ExchangeTable{
			Table:         t.Table,
			No:            t.No,
			EffectiveDate: t.EffectiveDate,
			Rates:         make([]repositories.TableRate, len(t.Rates)),
		}
		for j, r := range t.Rates {
			out.Rates[j] = repositories.TableRate{Currency: r.Currency, Code: r.Code, Mid: r.Mid}
		}
		tables[i] = out
	}
	return tables, nil
}

// LastRates fetches the last count published observations for a currency.
func (c *Client) LastRates(ctx context.Context, table string, code domain.CurrencyCode, count int) (repositories.CurrencyRates, error) {
	rawURL := fmt.Sprintf("%s/exchangerates/rates/%s/%s/last/%d?format=json", c.baseURL, table, code, count)
	return c.fetchCurrencyRates(ctx, rawURL)
}

// RatesInRange fetches a currency's observations within [start, end].
func (c *Client) RatesInRange(ctx context.Context, table string, code domain.CurrencyCode, start, end domain.ExchangeDate) (repositories.CurrencyRates, error) {
	rawURL := fmt.Sprintf("%s/exchangerates/rates/%s/%s/%s/%s?format=json", c.baseURL, table, code, start, end)
	return c.fetchCurrencyRates(ctx, rawURL)
}

func (c *Client) fetchCurrencyRates(ctx context.Context, rawURL string) (repositories.CurrencyRates, error) {
	body, err := c.get(ctx, rawURL)
	if err != nil {
		return repositories.CurrencyRates{}, err
	}

	var payload currencyRatesPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return repositories.CurrencyRates{}, fmt.Errorf("%w: invalid JSON response: %v", apperrors.ErrUpstream, err)
	}

	out := repositories.CurrencyRates{
		Table:    payload.Table,
		Currency: payload.Currency,
		Code:     payload.Code,
		Rates:    make([]repositories.RatePoint, len(payload.Rates)),
	}
	for i, r := range payload.Rates {
		out.Rates[i] = repositories.RatePoint{No: r.No, EffectiveDate: r.EffectiveDate, Mid: r.Mid}
	}
	return out, nil
}
