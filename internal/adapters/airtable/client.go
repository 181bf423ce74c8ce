// Package airtable implements the remote record-store client: paged listing
// with an opaque continuation cursor, chunked bulk writes and deletes, and a
// bounded fixed-delay retry on 429 responses.
package airtable

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"

	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/apperrors"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/ports/repositories"
)

const (
	maxRetries = 3
	pageSize   = 100
	// Free-tier per-request record limit imposed by the store.
	chunkSize = 10

	defaultRetryDelay = 500 * time.Millisecond
	defaultChunkDelay = 200 * time.Millisecond
)

// Config holds the connection parameters of the record store.
type Config struct {
	APIURL  string
	BaseID  string
	Token   string
	Timeout time.Duration
}

func (c Config) baseURL() string {
	return c.APIURL + "/" + c.BaseID
}

// Client talks to one record-store base. Safe for concurrent reads; callers
// must serialize ReplaceAll per table themselves.
type Client struct {
	cfg        Config
	httpClient *http.Client

	retryDelay time.Duration
	chunkDelay time.Duration
}

var _ repositories.RateStore = (*Client)(nil)

// NewClient creates a record-store client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		retryDelay: defaultRetryDelay,
		chunkDelay: defaultChunkDelay,
	}
}

type recordPayload struct {
	ID     string         `json:"id,omitempty"`
	Fields map[string]any `json:"fields"`
}

type recordsPage struct {
	Records []recordPayload `json:"records"`
	Offset  string          `json:"offset,omitempty"`
}

// doWithRetry executes a request, retrying after a fixed delay on 429 up to
// maxRetries attempts. Any other failure surfaces immediately.
func (c *Client) doWithRetry(ctx context.Context, method, rawURL string, body []byte) ([]byte, error) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstream, err)
		}
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstream, err)
		}
		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: reading response body: %v", apperrors.ErrUpstream, err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			if attempt < maxRetries-1 {
				time.Sleep(c.retryDelay)
				continue
			}
			return nil, fmt.Errorf("%w: %s %s", apperrors.ErrMaxRetries, method, rawURL)
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, fmt.Errorf("%w: %s %s returned status %d", apperrors.ErrUpstream, method, rawURL, resp.StatusCode)
		}
		return respBody, nil
	}
	return nil, fmt.Errorf("%w: %s %s", apperrors.ErrMaxRetries, method, rawURL)
}

// ListAll fetches every record in the table, following the continuation cursor
// until a short page or a missing cursor ends the listing.
func (c *Client) ListAll(ctx context.Context, table string, params url.Values) ([]repositories.Record, error) {
	var all []repositories.Record
	offset := ""

	for {
		query := url.Values{}
		for key, values := range params {
			for _, v := range values {
				query.Add(key, v)
			}
		}
		query.Set("pageSize", fmt.Sprint(pageSize))
		if offset != "" {
			query.Set("offset", offset)
		}

		rawURL := c.baseTableURL(table) + "?" + query.Encode()
		body, err := c.doWithRetry(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, err
		}

		var page recordsPage
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("%w: invalid JSON response: %v", apperrors.ErrUpstream, err)
		}

		for _, rec := range page.Records {
			all = append(all, repositories.Record{ID: rec.ID, Fields: rec.Fields})
		}

		if len(page.Records) < pageSize || page.Offset == "" {
			break
		}
		offset = page.Offset
	}

	return all, nil
}

// BulkInsert creates the given field maps as records, in chunks of the store's
// per-request limit, pausing briefly between chunks to avoid throttling.
func (c *Client) BulkInsert(ctx context.Context, table string, fields []map[string]any) ([]repositories.Record, error) {
	chunks := chunk(fields, chunkSize)
	var created []repositories.Record

	for i, part := range chunks {
		payload := recordsPage{Records: make([]recordPayload, len(part))}
		for j, f := range part {
			payload.Records[j] = recordPayload{Fields: f}
		}
		body, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: encoding records: %v", apperrors.ErrUpstream, err)
		}

		respBody, err := c.doWithRetry(ctx, http.MethodPost, c.baseTableURL(table), body)
		if err != nil {
			return nil, err
		}

		var page recordsPage
		if err := json.Unmarshal(respBody, &page); err != nil {
			return nil, fmt.Errorf("%w: invalid JSON response: %v", apperrors.ErrUpstream, err)
		}
		for _, rec := range page.Records {
			created = append(created, repositories.Record{ID: rec.ID, Fields: rec.Fields})
		}

		if len(chunks) > 1 && i < len(chunks)-1 {
			time.Sleep(c.chunkDelay)
		}
	}

	return created, nil
}

// ReplaceAll deletes every existing record in the table, then bulk-inserts the
// new set. Not transactional; see the RateStore port contract.
func (c *Client) ReplaceAll(ctx context.Context, table string, fields []map[string]any) ([]repositories.Record, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: records data cannot be empty", apperrors.ErrValidation)
	}

	if err := c.truncate(ctx, table); err != nil {
		return nil, err
	}

	return c.BulkInsert(ctx, table, fields)
}

// truncate lists every record ID and deletes them in chunks.
func (c *Client) truncate(ctx context.Context, table string) error {
	existing, err := c.ListAll(ctx, table, nil)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		return nil
	}

	ids := make([]string, len(existing))
	for i, rec := range existing {
		ids[i] = rec.ID
	}

	chunks := chunk(ids, chunkSize)
	for i, part := range chunks {
		query := url.Values{}
		for _, id := range part {
			query.Add("records[]", id)
		}
		rawURL := c.baseTableURL(table) + "?" + query.Encode()
		if _, err := c.doWithRetry(ctx, http.MethodDelete, rawURL, nil); err != nil {
			return err
		}

		if len(chunks) > 1 && i < len(chunks)-1 {
			time.Sleep(c.chunkDelay)
		}
	}

	return nil
}

func (c *Client) baseTableURL(table string) string {
	return c.cfg.baseURL() + "/" + url.PathEscape(table)
}

func chunk[T any](items []T, size int) [][]T {
	var out [][]T
	for size < len(items) {
		out = append(out, items[:size])
		items = items[size:]
	}
	if len(items) > 0 {
		out = append(out, items)
	}
	return out
}
