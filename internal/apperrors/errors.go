package apperrors

import "errors"

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrCurrencyUnavailable indicates that no current-rate data exists for a
// requested currency.
var ErrCurrencyUnavailable = errors.New("currency not available")

// ErrOperationUnavailable indicates that a buy or sell spread is not configured
// for the requested operation direction.
var ErrOperationUnavailable = errors.New("operation not available")

// ErrRateLimited indicates an upstream 429 response. The record-store client
// retries these internally; the error only escapes through ErrMaxRetries.
var ErrRateLimited = errors.New("too many requests")

// ErrMaxRetries indicates that the bounded retry budget for a rate-limited
// request was exhausted.
var ErrMaxRetries = errors.New("max retries exceeded")

// ErrUpstream indicates a network or protocol failure talking to an external
// service, or a malformed upstream payload. Never retried.
var ErrUpstream = errors.New("upstream request failed")

// ErrInsufficientTables indicates that fewer than two published rate tables
// were available, so no day-over-day delta can be computed.
var ErrInsufficientTables = errors.New("insufficient exchange rate tables data")
