package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/stackbound/commons/pkg/logger"
)

const (
	// DefaultTimeout bounds a single request attempt.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxAttempts is the number of tries per request, the first
	// attempt included.
	DefaultMaxAttempts = 3

	// DefaultInitialDelay is the backoff delay before the first retry.
	DefaultInitialDelay = 250 * time.Millisecond
)

// RetryPolicy defines the arguments controlling request retry behavior.
type RetryPolicy struct {
	// MaxAttempts is the total number of tries, the first attempt included.
	MaxAttempts uint

	// InitialDelay is the backoff delay before the first retry; subsequent
	// retries back off exponentially from it.
	InitialDelay time.Duration
}

// options returns the 'avast/retry' functional options for the policy.
func (p RetryPolicy) options(ctx context.Context, onRetry func(attempt uint, err error)) []retry.Option {
	return []retry.Option{
		retry.Attempts(p.MaxAttempts),
		retry.Delay(p.InitialDelay),
		retry.Context(ctx),
		retry.OnRetry(onRetry),
		retry.LastErrorOnly(true),
	}
}

// Config holds the settings for a Client. Construct it through New and the
// functional options rather than directly.
type Config struct {
	// BaseURL is the scheme and authority every request path is resolved
	// against. Required.
	BaseURL string

	// Timeout bounds a single request attempt, connection included.
	Timeout time.Duration

	// UserAgent is sent as the User-Agent header when non-empty.
	UserAgent string

	// Headers are added to every request.
	Headers http.Header

	// Retry controls how transport errors and 5xx responses are retried.
	Retry RetryPolicy

	// Transport overrides the default http.RoundTripper. This is the hook
	// for custom TLS setups and test doubles.
	Transport http.RoundTripper

	// Logger receives request/response logging. Defaults to a no-op logger.
	Logger logger.Logger
}

// Validate checks the configuration for construction errors.
func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return ErrMissingBaseURL
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base URL %q: scheme must be http or https", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid base URL %q: missing host", c.BaseURL)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry max attempts must be at least 1, got %d", c.Retry.MaxAttempts)
	}

	return nil
}

func defaultConfig(baseURL string) Config {
	return Config{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Timeout: DefaultTimeout,
		Headers: http.Header{},
		Retry: RetryPolicy{
			MaxAttempts:  DefaultMaxAttempts,
			InitialDelay: DefaultInitialDelay,
		},
	}
}

// Option mutates the Config during New.
type Option func(*Config)

// WithTimeout sets the per-attempt timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Config) {
		c.UserAgent = ua
	}
}

// WithHeader adds a header to every request.
func WithHeader(key, value string) Option {
	return func(c *Config) {
		c.Headers.Add(key, value)
	}
}

// WithRetryPolicy replaces the default retry policy.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(c *Config) {
		c.Retry = p
	}
}

// WithTransport sets a custom http.RoundTripper, e.g. for a custom TLS
// configuration.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Config) {
		c.Transport = rt
	}
}

// WithLogger sets the logger used for request and retry logging.
func WithLogger(lggr logger.Logger) Option {
	return func(c *Config) {
		c.Logger = lggr
	}
}
