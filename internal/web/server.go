package web

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"rical/internal/page"
	"rical/internal/qr"
	"rical/internal/telemetry"
)

// QRSize is the edge length in pixels of /qr.png.
const QRSize = 256

// Server renders the landing page over HTTP.
type Server struct {
	content  page.Content
	renderer *Renderer
	logger   *zap.Logger
	tracer   oteltrace.Tracer
	qrPNG    []byte

	addr    string
	server  *http.Server
	mu      sync.Mutex
	ln      net.Listener
	handler http.Handler
}

// NewServer creates a server for content listening on addr (e.g. ":8080",
// "127.0.0.1:0"). tp may be nil.
func NewServer(addr string, content page.Content, renderer *Renderer, logger *zap.Logger, tp *telemetry.Provider) (*Server, error) {
	if err := content.Validate(); err != nil {
		return nil, err
	}
	png, err := qr.PNG(content.RepoURL, QRSize)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		content:  content,
		renderer: renderer,
		logger:   logger,
		tracer:   tp.Tracer(),
		qrPNG:    png,
		addr:     addr,
	}

	static, err := fs.Sub(contentFS, "static")
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /buttons/{id}", s.handleButton)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))
	mux.HandleFunc("GET /qr.png", s.handleQR)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	s.handler = withRequestID(s.withTracing(s.withAccessLog(mux)))
	s.server = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins listening (non-blocking).
// Returns once the listener is bound; the server runs in a background goroutine.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()

	s.logger.Info("web server listening", zap.String("addr", ln.Addr().String()))
	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("web server error", zap.Error(err))
		}
	}()
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Addr returns the bound address once started, otherwise the configured one.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.addr
}

// handleIndex handles GET /.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	// The page is built per request; the recorder is never read because
	// nothing is activated while rendering.
	p, err := page.New(s.content, &page.Recorder{})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.Render(w, p); err != nil {
		s.fail(w, r, err)
	}
}

// handleButton handles POST /buttons/{id}.
func (s *Server) handleButton(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	rec := &page.Recorder{}
	p, err := page.New(s.content, rec)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	b, ok := p.Button(id)
	if !ok {
		http.NotFound(w, r)
		return
	}

	span := oteltrace.SpanFromContext(r.Context())
	span.SetAttributes(attribute.String("rical.button.id", id))

	b.Activate()
	target, ok := rec.Take()
	if !ok {
		s.fail(w, r, fmt.Errorf("button %q did not navigate", id))
		return
	}
	span.SetAttributes(attribute.String("rical.navigate.url", target))
	s.logger.Info("button activated",
		zap.String("button", id),
		zap.String("target", target),
		zap.String("request_id", RequestID(r.Context())),
	)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// handleQR handles GET /qr.png.
func (s *Server) handleQR(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(s.qrPNG)
}

// handleHealth handles GET /healthz.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("request failed",
		zap.String("path", r.URL.Path),
		zap.String("request_id", RequestID(r.Context())),
		zap.Error(err),
	)
	oteltrace.SpanFromContext(r.Context()).RecordError(err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
