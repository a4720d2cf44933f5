package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"wikicorpus/internal/observability/metrics"
	"wikicorpus/internal/observability/tracing"
	"wikicorpus/internal/resilience/circuitbreaker"
	"wikicorpus/pkg/ratelimit"
)

const (
	defaultUserAgent = "wikicorpus/0.1 (corpus harvesting; contact: ops@wikicorpus.dev)"
	defaultTimeout   = 30 * time.Second
	defaultRetries   = 3
	defaultBaseDelay = 1 * time.Second

	// DefaultMaxConcurrency bounds batch fan-out when the caller passes
	// a non-positive limit.
	DefaultMaxConcurrency = 4
)

// Config holds client construction parameters. The zero value is usable:
// every field has a default and the shared transport pieces (limiter,
// breaker, HTTP client) are built on demand when not injected.
type Config struct {
	// UserAgent identifies the harvester to the Wikimedia servers, which
	// require a descriptive agent string.
	UserAgent string

	// Timeout bounds a single HTTP round-trip.
	Timeout time.Duration

	// MaxRetries is the number of retries after the initial attempt.
	// Zero means the default; a negative value disables retries.
	MaxRetries int

	// BaseDelay is the first backoff delay; attempt n waits
	// BaseDelay * 2^n unless the server dictates otherwise.
	BaseDelay time.Duration

	// Endpoint overrides the per-language Wikipedia URL. Tests point
	// this at a local server.
	Endpoint string

	// Limiter throttles outbound requests. When nil a limiter with
	// default capacity is created.
	Limiter *ratelimit.Limiter

	// Breaker guards the endpoint. When nil a breaker with the
	// Wikipedia preset is created.
	Breaker *circuitbreaker.CircuitBreaker

	// HTTPClient performs the round-trips. When nil a client with
	// Timeout is created.
	HTTPClient *http.Client
}

// Client talks to the MediaWiki action API. All operations go through
// one rate-limited retrying transport, so a Client is safe for
// concurrent use and should be shared.
type Client struct {
	userAgent  string
	maxRetries int
	baseDelay  time.Duration
	endpoint   string

	limiter    *ratelimit.Limiter
	breaker    *circuitbreaker.CircuitBreaker
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client, filling every unset Config field with its
// default.
func NewClient(cfg Config) (*Client, error) {
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = defaultRetries
	} else if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = defaultBaseDelay
	}

	limiter := cfg.Limiter
	if limiter == nil {
		var err error
		limiter, err = ratelimit.New(ratelimit.Config{})
		if err != nil {
			return nil, fmt.Errorf("create rate limiter: %w", err)
		}
	}

	breaker := cfg.Breaker
	if breaker == nil {
		breaker = circuitbreaker.New(circuitbreaker.WikipediaAPIConfig())
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		userAgent:  cfg.UserAgent,
		maxRetries: cfg.MaxRetries,
		baseDelay:  cfg.BaseDelay,
		endpoint:   cfg.Endpoint,
		limiter:    limiter,
		breaker:    breaker,
		httpClient: httpClient,
		logger:     slog.Default().With(slog.String("component", "wiki_client")),
	}, nil
}

func (c *Client) endpointURL(lang string) string {
	if c.endpoint != "" {
		return c.endpoint
	}
	return fmt.Sprintf("https://%s.wikipedia.org/w/api.php", lang)
}

// getOptions carries per-call behavior of the shared transport.
type getOptions struct {
	// operation labels metrics and spans.
	operation string

	// checkMissing turns a sole-page "missing" marker into
	// PageNotFoundError. Only single-title lookups set it.
	checkMissing bool

	// title is the subject page, used for PageNotFoundError and logs.
	title string
}

// get performs one logical API query: rate-limit gate, HTTP round-trip
// through the circuit breaker, retry with exponential backoff on
// transient failures, HTTP 429 handling with Retry-After, and decoding
// of the response envelope including its error and missing markers.
func (c *Client) get(ctx context.Context, lang string, params url.Values, opt getOptions) (*apiResponse, error) {
	var lastRetryAfter time.Duration

	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		start := time.Now()
		status, body, err := c.roundTrip(ctx, lang, params, opt.operation)
		elapsed := time.Since(start)

		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			metrics.RecordAPIRequest(opt.operation, "network_error", elapsed)
			if attempt >= c.maxRetries {
				return nil, &NetworkError{Cause: err}
			}
			delay := c.backoff(attempt)
			c.logger.Warn("transient failure, retrying",
				slog.String("operation", opt.operation),
				slog.Int("attempt", attempt+1),
				slog.Duration("delay", delay),
				slog.Any("error", err))
			metrics.RecordRetry("transient")
			if err := sleepContext(ctx, delay); err != nil {
				return nil, err
			}
			continue
		}

		if status.code == http.StatusTooManyRequests {
			metrics.RecordAPIStatus(opt.operation, status.code, elapsed)
			lastRetryAfter = status.retryAfter
			if attempt >= c.maxRetries {
				return nil, &RateLimitError{RetryAfter: lastRetryAfter}
			}
			delay := status.retryAfter
			if delay <= 0 {
				delay = c.backoff(attempt)
			}
			c.logger.Warn("rate limited by server, retrying",
				slog.String("operation", opt.operation),
				slog.Int("attempt", attempt+1),
				slog.Duration("delay", delay))
			metrics.RecordRetry("rate_limited")
			if err := sleepContext(ctx, delay); err != nil {
				return nil, err
			}
			continue
		}

		if status.code >= http.StatusBadRequest {
			metrics.RecordAPIStatus(opt.operation, status.code, elapsed)
			return nil, &HTTPError{
				StatusCode: status.code,
				Message:    http.StatusText(status.code),
			}
		}

		var decoded apiResponse
		if err := json.Unmarshal(body, &decoded); err != nil {
			metrics.RecordAPIRequest(opt.operation, "decode_error", elapsed)
			return nil, fmt.Errorf("decode API response: %w", err)
		}

		if decoded.Error != nil {
			metrics.RecordAPIRequest(opt.operation, "api_error", elapsed)
			code := decoded.Error.Code
			if code == "" {
				code = "unknown"
			}
			return nil, &APIError{Code: code, Info: decoded.Error.Info}
		}

		if opt.checkMissing && decoded.soleMissing() {
			metrics.RecordAPIRequest(opt.operation, "missing", elapsed)
			return nil, &PageNotFoundError{Title: opt.title, Lang: lang}
		}

		metrics.RecordAPIRequest(opt.operation, "ok", elapsed)
		return &decoded, nil
	}
}

// httpStatus is the outcome of one completed round-trip.
type httpStatus struct {
	code       int
	retryAfter time.Duration
}

func (c *Client) roundTrip(ctx context.Context, lang string, params url.Values, operation string) (httpStatus, []byte, error) {
	requestURL := c.endpointURL(lang) + "?" + params.Encode()

	ctx, span := tracing.GetTracer().Start(ctx, "wiki.api_get",
		trace.WithAttributes(
			attribute.String("wiki.operation", operation),
			attribute.String("wiki.lang", lang),
		))
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return httpStatus{}, nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return httpStatus{}, nil, err
	}
	resp := result.(*http.Response)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return httpStatus{}, nil, err
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	return httpStatus{
		code:       resp.StatusCode,
		retryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
	}, body, nil
}

func (c *Client) backoff(attempt int) time.Duration {
	return c.baseDelay * time.Duration(1<<attempt)
}

// parseRetryAfter reads the delay-seconds form of the header. The HTTP
// date form is rare on the MediaWiki servers and falls back to zero.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	seconds, err := strconv.ParseFloat(value, 64)
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds * float64(time.Second))
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
