// Package webhook calls the external automation workflow that performs the
// LinkedIn search and scores the leads.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"leadgen/internal/metrics"
	"leadgen/internal/models"
)

// DefaultTimeout bounds a single search call.
const DefaultTimeout = 300 * time.Second

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 10 << 20

// Options configures a Client.
type Options struct {
	Timeout       time.Duration // DefaultTimeout when zero
	RatePerMinute int           // 0 disables outbound limiting
	Metrics       *metrics.Recorder
}

// Client sends search payloads to the webhook. It makes exactly one request
// per Search call and never retries.
type Client struct {
	url     string
	client  *http.Client
	timeout time.Duration
	limiter *rate.Limiter
	metrics *metrics.Recorder
}

// NewClient creates a webhook client for the given endpoint.
func NewClient(url string, opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var limiter *rate.Limiter
	if opts.RatePerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(opts.RatePerMinute)), 1)
	}

	return &Client{
		url:     url,
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
		limiter: limiter,
		metrics: opts.Metrics,
	}
}

// URL returns the configured endpoint.
func (c *Client) URL() string {
	return c.url
}

// Search posts payload as JSON and returns the normalized lead list.
// Errors are *RequestFailedError, *ConnectionError or ErrNotConfigured.
// The limiter wait and the request together never exceed the client timeout;
// a wait that cannot finish in time fails at once with a *ConnectionError.
func (c *Client) Search(ctx context.Context, payload any) ([]models.Lead, error) {
	if c.url == "" {
		return nil, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &ConnectionError{Message: "rate limited: " + err.Error(), Err: err}
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, &ConnectionError{Message: "invalid request: " + err.Error(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "LeadGen-Dashboard/1.0")
	req.Header.Set("X-Request-ID", uuid.NewString())

	start := time.Now()
	leads, err := c.do(req)
	c.metrics.ObserveWebhook(outcomeFor(err), time.Since(start))
	return leads, err
}

func (c *Client) do(req *http.Request) ([]models.Lead, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &ConnectionError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &RequestFailedError{StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &ConnectionError{Message: "failed to read response: " + err.Error(), Err: err}
	}

	leads, err := NormalizeLeads(data)
	if err != nil {
		return nil, &RequestFailedError{StatusCode: resp.StatusCode, Err: err}
	}
	return leads, nil
}

func outcomeFor(err error) string {
	var reqErr *RequestFailedError
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.As(err, &reqErr):
		return metrics.OutcomeRequestFailed
	default:
		return metrics.OutcomeConnectionError
	}
}
