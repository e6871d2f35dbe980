// Package fetcher retrieves page bodies over HTTP with bounded retries
// and uniform-random backoff.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/jonesrussell/goimpressum/internal/logger"
)

// maxResponseBodyBytes limits the size of fetched page responses.
const maxResponseBodyBytes = 10 * 1024 * 1024 // 10 MB

// Fetcher fetches page bodies. The underlying http.Client is shared
// across all callers and is safe for concurrent use.
type Fetcher struct {
	client     *http.Client
	log        logger.Interface
	userAgent  string
	maxRetries int
	backoffMin time.Duration
	backoffMax time.Duration
}

// New creates a fetcher with a shared HTTP client.
func New(cfg Config, log logger.Interface) *Fetcher {
	cfg = cfg.WithDefaults()

	return &Fetcher{
		client:     &http.Client{Timeout: cfg.RequestTimeout},
		log:        log,
		userAgent:  cfg.UserAgent,
		maxRetries: cfg.MaxRetries,
		backoffMin: cfg.BackoffMin,
		backoffMax: cfg.BackoffMax,
	}
}

// Fetch retrieves the body of url. Each failed attempt logs a warning
// and sleeps a uniform-random duration between the configured backoff
// bounds before the next attempt. After maxRetries consecutive failures
// it reports ok=false; no error ever propagates to the caller. At most
// maxRetries HTTP requests are made.
func (f *Fetcher) Fetch(ctx context.Context, url string) (body string, ok bool) {
	for attempt := 1; attempt <= f.maxRetries; attempt++ {
		text, err := f.get(ctx, url)
		if err == nil {
			return text, true
		}

		f.log.Warn("fetch attempt failed",
			"url", url,
			"attempt", attempt,
			"error", err.Error(),
		)

		if cancelled := f.backoff(ctx); cancelled {
			return "", false
		}
	}

	return "", false
}

// get performs a single GET request.
func (f *Fetcher) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("http fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("http status %d", resp.StatusCode)
	}

	limited := io.LimitReader(resp.Body, maxResponseBodyBytes)

	data, err := io.ReadAll(limited)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	return string(data), nil
}

// backoff sleeps a uniform-random duration in [backoffMin, backoffMax].
// Returns true if the context was cancelled during the sleep.
func (f *Fetcher) backoff(ctx context.Context) bool {
	delay := f.backoffMin
	if span := f.backoffMax - f.backoffMin; span > 0 {
		delay += rand.N(span)
	}

	select {
	case <-ctx.Done():
		return true
	case <-time.After(delay):
		return false
	}
}
