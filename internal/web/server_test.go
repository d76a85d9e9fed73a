package web

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"rical/internal/page"
	"rical/internal/telemetry"
)

const repoURL = "https://github.com/Cadecraft/rical"

type testServer struct {
	*Server
	logs  *observer.ObservedLogs
	spans *tracetest.SpanRecorder
}

func newTestServer(t *testing.T, addr string) *testServer {
	t.Helper()
	c, err := page.DefaultContent()
	require.NoError(t, err)
	r, err := NewRenderer()
	require.NoError(t, err)

	core, logs := observer.New(zap.InfoLevel)
	spans := tracetest.NewSpanRecorder()
	srv, err := NewServer(addr, c, r, zap.New(core), telemetry.NewProvider(spans))
	require.NoError(t, err)
	return &testServer{Server: srv, logs: logs, spans: spans}
}

func serve(s *testServer, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func spanAttr(s sdktrace.ReadOnlySpan, key attribute.Key) (attribute.Value, bool) {
	for _, kv := range s.Attributes() {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestServer_Index(t *testing.T) {
	s := newTestServer(t, "127.0.0.1:0")

	w := serve(s, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Contains(t, body, "<h1>Rical</h1>")
	assert.Contains(t, body, "The latest calendar app for minimalists")
}

func TestServer_UnknownPath(t *testing.T) {
	s := newTestServer(t, "127.0.0.1:0")
	assert.Equal(t, http.StatusNotFound, serve(s, http.MethodGet, "/nope").Code)
}

func TestServer_ButtonRedirectsToRepository(t *testing.T) {
	s := newTestServer(t, "127.0.0.1:0")

	w := serve(s, http.MethodPost, "/buttons/get-started")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, repoURL, w.Header().Get("Location"))

	activated := s.logs.FilterMessage("button activated").All()
	require.Len(t, activated, 1)
	assert.Equal(t, repoURL, activated[0].ContextMap()["target"])
}

func TestServer_ButtonErrors(t *testing.T) {
	s := newTestServer(t, "127.0.0.1:0")

	t.Run("unknown button", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, serve(s, http.MethodPost, "/buttons/missing").Code)
	})
	t.Run("GET returns 405", func(t *testing.T) {
		assert.Equal(t, http.StatusMethodNotAllowed, serve(s, http.MethodGet, "/buttons/get-started").Code)
	})
}

func TestServer_StaticAndQR(t *testing.T) {
	s := newTestServer(t, "127.0.0.1:0")

	css := serve(s, http.MethodGet, "/static/app.css")
	assert.Equal(t, http.StatusOK, css.Code)
	assert.Contains(t, css.Header().Get("Content-Type"), "text/css")
	assert.Contains(t, css.Body.String(), ".hotkey")

	png := serve(s, http.MethodGet, "/qr.png")
	assert.Equal(t, http.StatusOK, png.Code)
	assert.Equal(t, "image/png", png.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(png.Body.String(), "\x89PNG"))

	health := serve(s, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, health.Code)
	assert.Equal(t, "ok", health.Body.String())
}

func TestServer_RequestID(t *testing.T) {
	s := newTestServer(t, "127.0.0.1:0")

	w := serve(s, http.MethodGet, "/healthz")
	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	assert.NoError(t, err, "generated request id %q", id)

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, incoming)
	w = httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "not a uuid\r\n")
	w = httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.NotEqual(t, "not a uuid\r\n", w.Header().Get(RequestIDHeader))
}

func TestServer_AccessLog(t *testing.T) {
	s := newTestServer(t, "127.0.0.1:0")
	serve(s, http.MethodGet, "/nope")

	entries := s.logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/nope", fields["path"])
	assert.EqualValues(t, http.StatusNotFound, fields["status"])
	assert.NotEmpty(t, fields["request_id"])
}

func TestServer_Spans(t *testing.T) {
	s := newTestServer(t, "127.0.0.1:0")
	serve(s, http.MethodPost, "/buttons/get-started")

	ended := s.spans.Ended()
	require.Len(t, ended, 1)
	span := ended[0]
	assert.Equal(t, "POST /buttons/{id}", span.Name())

	v, ok := spanAttr(span, "http.status_code")
	require.True(t, ok)
	assert.EqualValues(t, http.StatusSeeOther, v.AsInt64())

	v, ok = spanAttr(span, "rical.button.id")
	require.True(t, ok)
	assert.Equal(t, "get-started", v.AsString())

	v, ok = spanAttr(span, "rical.navigate.url")
	require.True(t, ok)
	assert.Equal(t, repoURL, v.AsString())
}

func TestServer_StartStop(t *testing.T) {
	s := newTestServer(t, "127.0.0.1:0")

	require.NoError(t, s.Start())
	addr := s.Addr()
	assert.NotEqual(t, "127.0.0.1:0", addr)

	client := &http.Client{
		Timeout: 2 * time.Second,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Get("http://" + addr + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Rical")

	resp, err = client.Post("http://"+addr+"/buttons/get-started", "application/x-www-form-urlencoded", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, repoURL, resp.Header.Get("Location"))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}

func TestServer_StartFailsOnBadAddr(t *testing.T) {
	s := newTestServer(t, "256.0.0.1:99999")
	assert.Error(t, s.Start())
}

func TestNewServer_RejectsInvalidContent(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	_, err = NewServer(":0", page.Content{}, r, nil, nil)
	assert.ErrorIs(t, err, page.ErrInvalidContent)
}
