// Package httpclient sends JSON requests to LLM provider APIs. Rate limit
// responses, server errors and network failures are retried with
// exponential backoff; a Retry-After header in seconds wins over the
// computed delay.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/launchpad-assist/internal/logger"
)

// Default retry settings.
const (
	DefaultMaxRetries = 2
	DefaultBaseDelay  = 200 * time.Millisecond
	maxDelay          = 5 * time.Second
	maxErrorBody      = 512
)

// StatusError is returned when the provider answers with a non-200 status.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s error (status %d): %s", e.Provider, e.StatusCode, e.Body)
}

// Retryable reports whether the request may succeed when sent again.
func (e *StatusError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// Config configures a Client.
type Config struct {
	// Provider prefixes error messages (e.g. "openai").
	Provider string

	// Timeout bounds a single attempt.
	Timeout time.Duration

	// Headers are sent with every request.
	Headers map[string]string

	// MaxRetries is the number of attempts after the first. Negative disables retries.
	MaxRetries int

	// BaseDelay is the first backoff delay, doubled per attempt.
	BaseDelay time.Duration
}

// Client posts JSON to one provider.
type Client struct {
	http       *http.Client
	provider   string
	headers    map[string]string
	maxRetries int
	baseDelay  time.Duration
}

// New creates a client. Zero MaxRetries and BaseDelay take the defaults.
func New(cfg Config) *Client {
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = DefaultBaseDelay
	}
	return &Client{
		http:       &http.Client{Timeout: cfg.Timeout},
		provider:   cfg.Provider,
		headers:    cfg.Headers,
		maxRetries: cfg.MaxRetries,
		baseDelay:  cfg.BaseDelay,
	}
}

// PostJSON sends in as JSON to url and decodes the 200 response into out.
func (c *Client) PostJSON(ctx context.Context, url string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	for attempt := 0; ; attempt++ {
		payload, wait, err := c.post(ctx, url, body)
		if err == nil {
			if err := json.Unmarshal(payload, out); err != nil {
				return fmt.Errorf("decode response: %w", err)
			}
			return nil
		}

		if attempt >= c.maxRetries || !retryable(err) {
			return err
		}
		if wait == 0 {
			wait = RetryDelay(attempt, c.baseDelay)
		}
		logger.Debug("%s: attempt %d failed (%v), retrying in %s", c.provider, attempt+1, err, wait)
		if err := sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// post sends one attempt. The returned duration is the server's Retry-After, if any.
func (c *Client) post(ctx context.Context, url string, body []byte) ([]byte, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, &sendError{err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, &sendError{err: fmt.Errorf("read response: %w", err)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, retryAfter(resp.Header.Get("Retry-After")), &StatusError{
			Provider:   c.provider,
			StatusCode: resp.StatusCode,
			Body:       truncate(strings.TrimSpace(string(payload)), maxErrorBody),
		}
	}
	return payload, 0, nil
}

// Get checks that url answers 200. Used for lightweight health pings.
func (c *Client) Get(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("%s: failed to create ping request: %w", c.provider, err)
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: ping failed: %w", c.provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: API returned status %d", c.provider, resp.StatusCode)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
}

// sendError marks transport failures, which are always worth retrying.
type sendError struct {
	err error
}

func (e *sendError) Error() string { return "send request: " + e.err.Error() }
func (e *sendError) Unwrap() error { return e.err }

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var se *sendError
	if errors.As(err, &se) {
		return true
	}
	var status *StatusError
	return errors.As(err, &status) && status.Retryable()
}

// RetryDelay is the backoff before retry number attempt+1, capped at five seconds.
func RetryDelay(attempt int, base time.Duration) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	if attempt > 16 {
		return maxDelay
	}
	d := base << attempt
	if d > maxDelay || d <= 0 {
		d = maxDelay
	}
	return d
}

func retryAfter(header string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || secs <= 0 {
		return 0
	}
	d := time.Duration(secs) * time.Second
	if d > maxDelay {
		d = maxDelay
	}
	return d
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
