// Package telemetry sets up OpenTelemetry tracing for the web server.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// InstrumentationName names the tracer used for all rical spans.
const InstrumentationName = "rical/web"

// Provider owns the tracer provider. A nil *Provider is valid and traces nothing.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewOTLPProvider creates a provider exporting to OTEL_EXPORTER_OTLP_ENDPOINT.
// Returns nil if the endpoint is not configured (disabled).
//
// The exporter reads the endpoint URL itself, so the scheme decides between
// http and https and the /v1/traces path is appended.
func NewOTLPProvider(ctx context.Context) (*Provider, error) {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}
	return NewProvider(sdktrace.NewBatchSpanProcessor(exporter)), nil
}

// NewProvider creates a provider sending spans to processor.
// Tests pass a tracetest.SpanRecorder.
func NewProvider(processor sdktrace.SpanProcessor) *Provider {
	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "rical"
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", serviceName),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(processor),
		sdktrace.WithResource(res),
	)
	return &Provider{
		provider: tp,
		tracer:   tp.Tracer(InstrumentationName),
	}
}

// Tracer returns the rical tracer, or a no-op tracer when p is nil.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil {
		return noop.NewTracerProvider().Tracer(InstrumentationName)
	}
	return p.tracer
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
