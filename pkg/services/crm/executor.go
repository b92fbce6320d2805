// Package crm is the client for the Zero CRM HTTP API: a retrying request
// executor, typed endpoint methods, and pre-submission record validation.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultMaxRetries    = 3
	defaultBackoffFactor = 2.0
	defaultTimeout       = 10 * time.Second
)

// Settings configure a Client. Zero values fall back to the defaults the
// API examples use (3 attempts, factor-2 backoff, 10s timeout).
type Settings struct {
	// Host is the base URL of the API, e.g. "https://crm.example.com".
	Host string
	// APIKey is sent as the x-api-key header on authenticated requests.
	APIKey string

	MaxRetries    int
	BackoffFactor float64
	Timeout       time.Duration
}

// Client talks to the Zero CRM API. All methods are safe for concurrent
// use; the client holds no mutable state between calls.
type Client struct {
	host          string
	apiKey        string
	httpClient    *http.Client
	maxRetries    int
	backoffFactor float64

	// sleep is swapped out in tests to avoid real backoff waits.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewClient creates a Client from settings, applying defaults for any
// zero-valued tuning knob.
func NewClient(settings Settings) (*Client, error) {
	if settings.Host == "" {
		return nil, fmt.Errorf("host is required")
	}

	if settings.MaxRetries <= 0 {
		settings.MaxRetries = defaultMaxRetries
	}
	if settings.BackoffFactor <= 0 {
		settings.BackoffFactor = defaultBackoffFactor
	}
	if settings.Timeout <= 0 {
		settings.Timeout = defaultTimeout
	}

	return &Client{
		host:          strings.TrimRight(settings.Host, "/"),
		apiKey:        settings.APIKey,
		httpClient:    &http.Client{Timeout: settings.Timeout},
		maxRetries:    settings.MaxRetries,
		backoffFactor: settings.BackoffFactor,
		sleep:         sleepContext,
	}, nil
}

// execute performs one API exchange with retry. Transient failures
// (transport errors, timeouts, 5xx) are retried with exponential backoff;
// 401, 404, 400 and other non-2xx statuses are terminal. On 2xx the body
// is decoded into out when out is non-nil.
func (c *Client) execute(ctx context.Context, method, path string, body any, out any) error {
	logger := zerolog.Ctx(ctx)

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		logger.Info().
			Str("method", method).
			Str("path", path).
			Int("attempt", attempt+1).
			Int("max_attempts", c.maxRetries).
			Msg("crm request")

		retryable, err := c.attempt(ctx, method, path, payload, out)
		if err == nil {
			logger.Info().Str("method", method).Str("path", path).Msg("crm request succeeded")
			return nil
		}
		if !retryable {
			logger.Error().Err(err).Str("method", method).Str("path", path).Msg("crm request failed")
			return err
		}

		lastErr = err
		if attempt == c.maxRetries-1 {
			break
		}

		wait := c.backoffDelay(attempt)
		logger.Warn().
			Err(err).
			Str("method", method).
			Str("path", path).
			Dur("wait", wait).
			Msg("transient failure, retrying")

		if err := c.sleep(ctx, wait); err != nil {
			return fmt.Errorf("retry aborted: %w", err)
		}
	}

	exhausted := &RetryExhaustedError{Attempts: c.maxRetries, Err: lastErr}
	logger.Error().Err(exhausted).Str("method", method).Str("path", path).Msg("retry budget exhausted")
	return exhausted
}

// attempt issues a single request and classifies the outcome. The bool
// reports whether the returned error is retryable.
func (c *Client) attempt(ctx context.Context, method, path string, payload []byte, out any) (bool, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.host+path, reqBody)
	if err != nil {
		return false, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Context cancellation is the caller's decision, not a flaky
		// network; surface it without retry.
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return true, fmt.Errorf("transport failure: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return true, fmt.Errorf("failed to read response body: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil || len(raw) == 0 {
			return false, nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return false, fmt.Errorf("failed to decode response: %w", err)
		}
		return false, nil
	case resp.StatusCode == http.StatusUnauthorized:
		return false, ErrAuthentication
	case resp.StatusCode == http.StatusNotFound:
		return false, fmt.Errorf("%w: %s", ErrNotFound, path)
	case resp.StatusCode >= 500:
		return true, fmt.Errorf("server error %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	default:
		return false, &ClientError{StatusCode: resp.StatusCode, Detail: strings.TrimSpace(string(raw))}
	}
}

// backoffDelay returns factor^attempt seconds for 0-based attempt indices.
func (c *Client) backoffDelay(attempt int) time.Duration {
	return time.Duration(math.Pow(c.backoffFactor, float64(attempt)) * float64(time.Second))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
