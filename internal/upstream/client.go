package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/guttosm/tickercast/internal/logger"
	"github.com/guttosm/tickercast/internal/metrics"
)

// maxBodyBytes caps how much of an upstream response is read.
const maxBodyBytes = 8 << 20

// StatusError is returned when an upstream answers with a non-2xx status.
type StatusError struct {
	Service string
	Code    int
	Body    []byte
}

func (e *StatusError) Error() string {
	body := e.Body
	if len(body) > 256 {
		body = body[:256]
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Service, e.Code, body)
}

// Client is a thin JSON-over-HTTP client bound to one external service. It
// logs and records metrics for every call and never retries.
type Client struct {
	service   string
	baseURL   string
	http      *http.Client
	userAgent string
	log       zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client (tests inject httptest clients).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the client-wide timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// New creates a client for service rooted at baseURL.
func New(service, baseURL string, opts ...Option) *Client {
	c := &Client{
		service: service,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     logger.Component(service),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Service returns the name used in logs and metrics.
func (c *Client) Service() string { return c.service }

// Get performs a GET on baseURL+path with the given query and returns the
// status code and body. Transport failures are returned as errors; non-2xx
// statuses are not, so callers can decode provider error payloads.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (int, []byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: build request: %w", c.service, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(metrics.OutcomeError, start, 0, err)
		return 0, nil, fmt.Errorf("%s: request failed: %w", c.service, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.observe(metrics.OutcomeError, start, resp.StatusCode, err)
		return resp.StatusCode, nil, fmt.Errorf("%s: read body: %w", c.service, err)
	}

	outcome := metrics.OutcomeOK
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		outcome = metrics.OutcomeError
	}
	c.observe(outcome, start, resp.StatusCode, nil)
	return resp.StatusCode, body, nil
}

// GetJSON performs Get and decodes a 2xx body into dest.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, dest any) error {
	status, body, err := c.Get(ctx, path, query)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return &StatusError{Service: c.service, Code: status, Body: body}
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("%s: decode: %w", c.service, err)
	}
	return nil
}

func (c *Client) observe(outcome string, start time.Time, status int, err error) {
	elapsed := time.Since(start)
	metrics.ObserveExternal(c.service, outcome, elapsed)

	ev := c.log.Debug()
	if err != nil {
		ev = c.log.Warn().Err(err)
	}
	ev.Int("status", status).
		Int64("latency_ms", elapsed.Milliseconds()).
		Str("outcome", outcome).
		Msg("upstream_call")
}

// CloseIdleConnections releases pooled connections; used on shutdown.
func (c *Client) CloseIdleConnections() {
	c.http.CloseIdleConnections()
}
