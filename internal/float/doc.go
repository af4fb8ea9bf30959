// Package float provides the HTTP client behind LazyFloat's login action.
//
// # Overview
//
// The login action is a single unauthenticated GET against a configurable
// endpoint. The response body is returned as text; callers decide what to do
// with it (the UI logs the body and shows a one-line summary).
//
// # Architecture
//
//   - client.go: Client, the LogActioner interface and request handling
//   - types.go: response envelope and Summarize
//
// # Client Usage
//
//	client, err := float.NewClient(cfg.AuthURL, float.WithTimeout(cfg.RequestTimeout))
//	if err != nil {
//		return fmt.Errorf("init login client: %w", err)
//	}
//
//	body, err := client.PerformLogAction(ctx)
//	if err != nil {
//		// recoverable: report it, keep running
//	}
//
// # Error Handling
//
// PerformLogAction returns errors for:
//   - request construction failures ("create request")
//   - network errors and timeouts ("execute request")
//   - HTTP status codes >= 400
//   - body read failures ("read response")
//
// No retries are attempted. Whether a failure is fatal is the caller's policy.
//
// # Tracing
//
// Every call runs inside an OpenTelemetry client span. The tracer comes from
// the global provider unless WithTracer is given, so spans are dropped unless
// the telemetry package installed an exporter.
package float
