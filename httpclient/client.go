// Package httpclient provides a configured JSON-over-HTTP client: base URL
// resolution, default timeouts, per-request IDs, structured logging and
// retry with backoff for transport errors and 5xx responses.
//
// TLS customization comes in through WithTransport; this package does not
// build TLS configurations itself.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"

	"github.com/stackbound/commons/pkg/logger"
)

// Client issues JSON requests against a single base URL. It is safe for
// concurrent use.
type Client struct {
	cfg        Config
	httpClient *http.Client
	lggr       logger.Logger
}

// New returns a Client for the given base URL, configured by the options.
func New(baseURL string, opts ...Option) (*Client, error) {
	cfg := defaultConfig(baseURL)
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lggr := cfg.Logger
	if lggr == nil {
		lggr = logger.Nop()
	}

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: cfg.Transport,
		},
		lggr: lggr.Named("httpclient"),
	}, nil
}

// GetJSON issues a GET request and decodes the response body into out.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	body, err := c.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	return decode(body, out)
}

// PostJSON issues a POST request with in as the JSON body and decodes the
// response body into out. A nil out discards the response.
func (c *Client) PostJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	body, err := c.Do(ctx, http.MethodPost, path, payload)
	if err != nil {
		return err
	}

	return decode(body, out)
}

// PutJSON issues a PUT request with in as the JSON body and decodes the
// response body into out. A nil out discards the response.
func (c *Client) PutJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	body, err := c.Do(ctx, http.MethodPut, path, payload)
	if err != nil {
		return err
	}

	return decode(body, out)
}

// Delete issues a DELETE request, discarding any response body.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.Do(ctx, http.MethodDelete, path, nil)

	return err
}

// Do issues a single logical request, retrying per the configured policy,
// and returns the response body. Each logical request carries one
// X-Request-ID across all of its attempts.
func (c *Client) Do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	endpoint, err := url.JoinPath(c.cfg.BaseURL, path)
	if err != nil {
		return nil, fmt.Errorf("failed to build request URL: %w", err)
	}

	requestID := uuid.NewString()
	lggr := c.lggr.With("method", method, "url", endpoint, "request_id", requestID)

	onRetry := func(attempt uint, err error) {
		lggr.Warnw("Request failed. Retrying...", "attempt", attempt+1, "error", err)
	}

	body, err := retry.DoWithData(
		func() ([]byte, error) {
			return c.attempt(ctx, method, endpoint, payload, requestID)
		},
		c.cfg.Retry.options(ctx, onRetry)...,
	)
	if err != nil {
		return nil, err
	}

	lggr.Debugw("Request succeeded", "bytes", len(body))

	return body, nil
}

// attempt performs one HTTP exchange. Non-2xx statuses become StatusError
// values; 4xx ones are marked unrecoverable so the retry loop stops.
func (c *Client) attempt(ctx context.Context, method, endpoint string, payload []byte, requestID string) ([]byte, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, retry.Unrecoverable(fmt.Errorf("failed to create request: %w", err))
	}

	for key, values := range c.cfg.Headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil

	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, retry.Unrecoverable(statusError(resp.StatusCode, requestID, body))

	default:
		return nil, statusError(resp.StatusCode, requestID, body)
	}
}

func statusError(code int, requestID string, body []byte) *StatusError {
	excerpt := string(body)
	if len(excerpt) > errBodyExcerptLen {
		excerpt = excerpt[:errBodyExcerptLen]
	}

	return &StatusError{
		StatusCode: code,
		RequestID:  requestID,
		Body:       excerpt,
	}
}

func decode(body []byte, out any) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}

	return nil
}
