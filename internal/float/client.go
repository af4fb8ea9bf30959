package float

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// LogActioner performs the login side action. *Client implements it; tests
// substitute fakes.
type LogActioner interface {
	PerformLogAction(ctx context.Context) (string, error)
}

// Ensure Client implements LogActioner at compile time.
var _ LogActioner = (*Client)(nil)

// ErrEmptyURL is returned by NewClient when no endpoint is configured.
var ErrEmptyURL = errors.New("login url is empty")

// Client talks to the login endpoint over HTTP.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
	tracer    trace.Tracer
}

const (
	// DefaultURL is the endpoint used when none is configured.
	DefaultURL = "https://dog.ceo/api/breeds/image/random"

	defaultUserAgent = "lazyfloat/0.1"
	defaultTimeout   = 10 * time.Second
	maxBodyBytes     = 1 << 20
	tracerName       = "github.com/five82/lazyfloat/internal/float"
)

// Option customises a Client.
type Option func(*Client)

// WithTimeout bounds each request. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(c *Client) {
		if t != nil {
			c.tracer = t
		}
	}
}

// NewClient builds a Client for the given login URL. A URL without a scheme
// is treated as https.
func NewClient(rawURL string, opts ...Option) (*Client, error) {
	endpoint, err := parseURL(rawURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		endpoint:  endpoint,
		http:      &http.Client{Timeout: defaultTimeout},
		userAgent: defaultUserAgent,
		tracer:    otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// URL returns the endpoint the client calls.
func (c *Client) URL() string {
	return c.endpoint.String()
}

// PerformLogAction issues an unauthenticated GET against the login endpoint
// and returns the response body as text.
func (c *Client) PerformLogAction(ctx context.Context) (string, error) {
	if c == nil {
		return "", fmt.Errorf("client is nil")
	}

	ctx, span := c.tracer.Start(ctx, "float.PerformLogAction",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", http.MethodGet),
			attribute.String("http.url", c.endpoint.String()),
		))
	defer span.End()

	body, status, err := c.get(ctx)
	if status > 0 {
		span.SetAttributes(attribute.Int("http.status_code", status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	span.SetAttributes(attribute.Int("http.response_size", len(body)))
	return body, nil
}

func (c *Client) get(ctx context.Context) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint.String(), nil)
	if err != nil {
		return "", 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json, text/plain;q=0.9, */*;q=0.8")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return "", resp.StatusCode, fmt.Errorf("login endpoint returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", resp.StatusCode, fmt.Errorf("read response: %w", err)
	}
	return string(data), resp.StatusCode, nil
}

func parseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, ErrEmptyURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse login url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse login url %q: unsupported scheme %q", raw, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse login url %q: missing host", raw)
	}
	u.Fragment = ""
	return u, nil
}
