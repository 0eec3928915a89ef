package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/vango-dev/toastkit/pkg/middleware"
	"github.com/vango-dev/toastkit/pkg/render"
	"github.com/vango-dev/toastkit/pkg/toast"
)

// Defaults for Config.
const (
	DefaultMetricsPath     = "/metrics"
	DefaultShutdownTimeout = 5 * time.Second
)

// Config configures a Server.
type Config struct {
	// Toaster shows and dismisses toasts. Default: toast.Default().
	Toaster *toast.Toaster

	// Logger is the server logger. Default: slog.Default().
	Logger *slog.Logger

	// StyleSheet is a CSS file served instead of the built-in stylesheet.
	StyleSheet string

	// Title is the page title. Default: "toastkit".
	Title string

	// RatePerSec limits POST /api/toasts. Zero disables limiting.
	RatePerSec float64

	// Burst is the limiter burst. Default: 1 when RatePerSec is set.
	Burst int

	// MetricsPath is where Gatherer is exposed. Default: "/metrics".
	MetricsPath string

	// Gatherer enables the metrics endpoint when non-nil.
	Gatherer prometheus.Gatherer

	// Registerer receives the HTTP request collectors when non-nil.
	Registerer prometheus.Registerer

	// ShutdownTimeout bounds graceful shutdown. Default: 5s.
	ShutdownTimeout time.Duration
}

// Server serves the toast page, the WebSocket mirror and the REST API.
type Server struct {
	config   Config
	toaster  *toast.Toaster
	hub      *Hub
	logger   *slog.Logger
	renderer *render.Renderer
	limiter  *rate.Limiter
	router   chi.Router
}

// New creates a Server and starts mirroring the toaster's document.
func New(config Config) *Server {
	if config.Toaster == nil {
		config.Toaster = toast.Default()
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Title == "" {
		config.Title = "toastkit"
	}
	if config.MetricsPath == "" {
		config.MetricsPath = DefaultMetricsPath
	}
	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = DefaultShutdownTimeout
	}

	logger := config.Logger.With("component", "server")
	s := &Server{
		config:   config,
		toaster:  config.Toaster,
		logger:   logger,
		renderer: render.NewRenderer(render.RendererConfig{}),
		hub:      NewHub(config.Toaster.Document(), logger),
	}
	if config.RatePerSec > 0 {
		burst := config.Burst
		if burst <= 0 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(config.RatePerSec), burst)
	}

	// The surface must exist before the first page render.
	s.toaster.Surface()
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.OpenTelemetry(middleware.WithRequestFilter(func(req *http.Request) bool {
		return req.URL.Path != s.config.MetricsPath
	})))
	if s.config.Registerer != nil {
		r.Use(middleware.Prometheus(middleware.WithRegistry(s.config.Registerer)))
	}

	r.Get("/", s.handlePage)
	r.Get(StyleSheetPath, s.handleStyleSheet)
	r.Get("/ws", s.hub.HandleWebSocket)

	r.Route("/api", func(r chi.Router) {
		r.Get("/toasts", s.handleListToasts)
		r.Post("/toasts", s.handleShowToast)
		r.Delete("/toasts/{id}", s.handleDismissToast)
		r.Get("/defaults", s.handleGetDefaults)
		r.Put("/defaults", s.handlePutDefaults)
	})

	if s.config.Gatherer != nil {
		r.Handle(s.config.MetricsPath, promhttp.HandlerFor(s.config.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Hub returns the WebSocket hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Close disconnects all clients and stops mirroring the document.
func (s *Server) Close() {
	s.hub.Close()
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		s.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down")
	s.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := s.renderer.RenderPage(w, render.PageData{
		Title:       s.config.Title,
		Body:        s.toaster.Document().Snapshot(),
		StyleSheets: []string{StyleSheetPath},
		Script:      clientScript,
	})
	if err != nil {
		s.logger.Error("page render failed", "error", err)
	}
}

func (s *Server) handleStyleSheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	if s.config.StyleSheet != "" {
		data, err := os.ReadFile(s.config.StyleSheet)
		if err == nil {
			w.Write(data)
			return
		}
		s.logger.Warn("stylesheet unreadable, serving built-in", "path", s.config.StyleSheet, "error", err)
	}
	w.Write([]byte(defaultStyleSheet))
}
