package crm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points a client at the given server and disarms the
// backoff sleep, recording requested delays instead.
func newTestClient(t *testing.T, host string, settings Settings) (*Client, *[]time.Duration) {
	t.Helper()

	settings.Host = host
	if settings.APIKey == "" {
		settings.APIKey = "key-under-test"
	}
	client, err := NewClient(settings)
	require.NoError(t, err)

	var delays []time.Duration
	client.sleep = func(ctx context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}
	return client, &delays
}

func TestExecuteRetriesServerErrorsThenSucceeds(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"healthy","platform":"test"}`))
	}))
	defer server.Close()

	client, delays := newTestClient(t, server.URL, Settings{MaxRetries: 3})

	var out struct {
		Status string `json:"status"`
	}
	err := client.execute(context.Background(), http.MethodGet, "/api/health", nil, &out)

	require.NoError(t, err)
	assert.Equal(t, int32(3), attempts.Load())
	assert.Equal(t, "healthy", out.Status)
	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second}, *delays)
}

func TestExecuteExhaustsRetryBudget(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client, delays := newTestClient(t, server.URL, Settings{MaxRetries: 3, BackoffFactor: 2})

	err := client.execute(context.Background(), http.MethodGet, "/api/deals", nil, nil)

	var exhausted *RetryExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 3, exhausted.Attempts)
	assert.Equal(t, int32(3), attempts.Load())
	// backoff^attempt seconds between attempts, none after the last one
	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second}, *delays)
}

func TestExecuteNotFoundIsImmediate(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		http.Error(w, "no such contact", http.StatusNotFound)
	}))
	defer server.Close()

	client, delays := newTestClient(t, server.URL, Settings{})

	err := client.execute(context.Background(), http.MethodGet, "/api/contacts/nope", nil, nil)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int32(1), attempts.Load())
	assert.Empty(t, *delays)
}

func TestExecuteUnauthorizedIsTerminal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer server.Close()

	client, delays := newTestClient(t, server.URL, Settings{})

	err := client.execute(context.Background(), http.MethodGet, "/api/user/profile", nil, nil)

	assert.ErrorIs(t, err, ErrAuthentication)
	assert.Empty(t, *delays)
}

func TestExecuteBadRequestCarriesDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "value must be non-negative", http.StatusBadRequest)
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL, Settings{})

	err := client.execute(context.Background(), http.MethodPost, "/api/deals", map[string]any{"title": "T"}, nil)

	var clientErr *ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
	assert.Equal(t, "value must be non-negative", clientErr.Detail)
}

func TestExecuteOtherClientStatusIsTerminal(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL, Settings{})

	err := client.execute(context.Background(), http.MethodGet, "/api/deals", nil, nil)

	var clientErr *ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusTooManyRequests, clientErr.StatusCode)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestExecuteRetriesTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	// Close immediately so every attempt hits a refused connection.
	server.Close()

	client, delays := newTestClient(t, server.URL, Settings{MaxRetries: 3})

	err := client.execute(context.Background(), http.MethodGet, "/api/health", nil, nil)

	var exhausted *RetryExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Len(t, *delays, 2)
}

func TestExecuteHonorsCancellationBetweenAttempts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewClient(Settings{Host: server.URL, APIKey: "k", MaxRetries: 3})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	client.sleep = func(ctx context.Context, d time.Duration) error {
		cancel()
		return ctx.Err()
	}

	execErr := client.execute(ctx, http.MethodGet, "/api/deals", nil, nil)

	require.Error(t, execErr)
	assert.ErrorIs(t, execErr, context.Canceled)
}

func TestExecuteSendsAPIKeyHeader(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL, Settings{APIKey: "zero_secret"})

	require.NoError(t, client.execute(context.Background(), http.MethodGet, "/api/user/profile", nil, nil))
	assert.Equal(t, "zero_secret", gotKey)
}

func TestNewClientDefaults(t *testing.T) {
	client, err := NewClient(Settings{Host: "https://crm.example.com/"})
	require.NoError(t, err)

	assert.Equal(t, "https://crm.example.com", client.host)
	assert.Equal(t, defaultMaxRetries, client.maxRetries)
	assert.Equal(t, defaultBackoffFactor, client.backoffFactor)
	assert.Equal(t, defaultTimeout, client.httpClient.Timeout)
}

func TestNewClientRequiresHost(t *testing.T) {
	_, err := NewClient(Settings{})
	assert.Error(t, err)
}

func TestBackoffDelayGrowsExponentially(t *testing.T) {
	client, err := NewClient(Settings{Host: "http://x", BackoffFactor: 3})
	require.NoError(t, err)

	assert.Equal(t, 1*time.Second, client.backoffDelay(0))
	assert.Equal(t, 3*time.Second, client.backoffDelay(1))
	assert.Equal(t, 9*time.Second, client.backoffDelay(2))
}

func TestSleepContextAbortsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sleepContext(ctx, time.Minute)
	assert.True(t, errors.Is(err, context.Canceled))
}
