// Package telemetry installs an optional OTLP trace exporter.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	endpointEnv        = "OTEL_EXPORTER_OTLP_ENDPOINT"
	serviceNameEnv     = "OTEL_SERVICE_NAME"
	defaultServiceName = "lazyfloat"
)

// ShutdownFunc flushes and stops the exporter.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Setup installs a global tracer provider exporting over OTLP/HTTP when
// OTEL_EXPORTER_OTLP_ENDPOINT is set. Without it, tracing stays disabled and
// the returned shutdown is a no-op.
func Setup(ctx context.Context) (ShutdownFunc, error) {
	endpoint := os.Getenv(endpointEnv)
	if endpoint == "" {
		return noopShutdown, nil
	}

	// WithEndpoint wants host:port; the variable is usually a URL.
	endpoint = strings.TrimPrefix(strings.TrimPrefix(endpoint, "https://"), "http://")
	endpoint = strings.TrimSuffix(endpoint, "/")

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return noopShutdown, fmt.Errorf("create otlp exporter: %w", err)
	}

	serviceName := os.Getenv(serviceNameEnv)
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", serviceName),
		)),
	)
	otel.SetTracerProvider(provider)

	return provider.Shutdown, nil
}

// Enabled reports whether Setup would install an exporter.
func Enabled() bool {
	return os.Getenv(endpointEnv) != ""
}
