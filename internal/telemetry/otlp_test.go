package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewOTLPProvider_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	p, err := NewOTLPProvider(context.Background())
	require.NoError(t, err)
	assert.Nil(t, p)

	// Nil provider is usable.
	_, span := p.Tracer().Start(context.Background(), "noop")
	span.End()
	assert.False(t, span.SpanContext().IsValid())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNewProvider_RecordsSpans(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "rical-test")
	rec := tracetest.NewSpanRecorder()
	p := NewProvider(rec)

	_, span := p.Tracer().Start(context.Background(), "render")
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "render", ended[0].Name())
	assert.Equal(t, InstrumentationName, ended[0].InstrumentationScope().Name)

	var service string
	for _, kv := range ended[0].Resource().Attributes() {
		if kv.Key == "service.name" {
			service = kv.Value.AsString()
		}
	}
	assert.Equal(t, "rical-test", service)
	require.NoError(t, p.Shutdown(context.Background()))
}

func TestNewOTLPProvider_ExportsToEndpointURL(t *testing.T) {
	var (
		mu    sync.Mutex
		paths []string
	)
	collector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer collector.Close()

	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", collector.URL)

	p, err := NewOTLPProvider(context.Background())
	require.NoError(t, err)
	require.NotNil(t, p)

	_, span := p.Tracer().Start(context.Background(), "GET /{$}")
	span.End()
	require.NoError(t, p.Shutdown(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, paths, "collector received no export")
	assert.Equal(t, "/v1/traces", paths[0])
}
