package float

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestParseURL_DefaultsSchemeAndValidates(t *testing.T) {
	u, err := parseURL("example.com/api/login#frag")
	if err != nil {
		t.Fatalf("parseURL returned error: %v", err)
	}
	if u.Scheme != "https" {
		t.Fatalf("scheme = %q, want https", u.Scheme)
	}
	if u.Path != "/api/login" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	if _, err := parseURL("   "); !errors.Is(err, ErrEmptyURL) {
		t.Fatalf("parseURL blank error = %v, want ErrEmptyURL", err)
	}
	if _, err := parseURL("ftp://example.com"); err == nil {
		t.Fatalf("parseURL ftp returned nil error, want unsupported scheme")
	}
	if _, err := parseURL("http://"); err == nil {
		t.Fatalf("parseURL without host returned nil error")
	}
}

func TestClient_PerformLogActionReturnsBody(t *testing.T) {
	t.Parallel()

	var gotUserAgent, gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"https://images.dog.ceo/breeds/hound/1.jpg","status":"success"}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + "/api/breeds/image/random")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	body, err := c.PerformLogAction(ctx)
	if err != nil {
		t.Fatalf("PerformLogAction returned error: %v", err)
	}
	if !strings.Contains(body, `"status":"success"`) {
		t.Fatalf("body = %q, want raw response text", body)
	}
	if gotMethod != http.MethodGet || gotPath != "/api/breeds/image/random" {
		t.Fatalf("request = %s %s, want GET /api/breeds/image/random", gotMethod, gotPath)
	}
	if !strings.HasPrefix(gotUserAgent, "lazyfloat/") {
		t.Fatalf("User-Agent = %q, want lazyfloat/*", gotUserAgent)
	}
}

func TestClient_PerformLogActionHTTPError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.PerformLogAction(context.Background())
	if err == nil || !strings.Contains(err.Error(), "returned status 503") {
		t.Fatalf("PerformLogAction error = %v, want status 503 error", err)
	}
}

func TestClient_PerformLogActionHonoursTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})

	c, err := NewClient(server.URL, WithTimeout(50*time.Millisecond))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.PerformLogAction(context.Background())
	if err == nil || !strings.Contains(err.Error(), "execute request") {
		t.Fatalf("PerformLogAction error = %v, want execute request timeout", err)
	}
}

func TestClient_PerformLogActionRecordsSpan(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	c, err := NewClient(server.URL, WithTracer(provider.Tracer("test")))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.PerformLogAction(context.Background()); err == nil {
		t.Fatalf("PerformLogAction returned nil error, want status 500")
	}

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(spans))
	}
	if spans[0].Name() != "float.PerformLogAction" {
		t.Fatalf("span name = %q, want float.PerformLogAction", spans[0].Name())
	}
	if spans[0].Status().Code != codes.Error {
		t.Fatalf("span status = %v, want Error", spans[0].Status().Code)
	}
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	if _, err := c.PerformLogAction(context.Background()); err == nil {
		t.Fatalf("nil client returned nil error")
	}
}
