package server

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/khaeru/iamc-sdmx-demo/config"
	"github.com/khaeru/iamc-sdmx-demo/errors"
	"github.com/khaeru/iamc-sdmx-demo/health"
	"github.com/khaeru/iamc-sdmx-demo/metric"
	"github.com/khaeru/iamc-sdmx-demo/schema"
	"github.com/khaeru/iamc-sdmx-demo/structure"
)

// componentName identifies the server in health and error reporting.
const componentName = "schema-registry"

// Server serves a loaded schema document over HTTP.
type Server struct {
	cfg      config.HTTPConfig
	doc      *schema.Document
	dsd      *structure.DataStructureDefinition
	logger   *slog.Logger
	metrics  *metric.Metrics
	registry *prometheus.Registry
}

// New builds a server around a loaded document. The document is validated
// (via structure construction) before any endpoint is exposed; a document
// that fails validation never becomes servable state.
func New(cfg config.HTTPConfig, doc *schema.Document, logger *slog.Logger) (*Server, error) {
	if doc == nil {
		return nil, errors.WrapInternal(errors.ErrMissingConfig, "Server", "New", "schema document is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	dsd, err := structure.New("IAMC", "IAMC data structure", doc)
	if err != nil {
		return nil, errors.Wrap(err, "Server", "New", "build data structure")
	}

	registry := prometheus.NewRegistry()
	metrics := metric.New()
	if err := metrics.Register(registry); err != nil {
		return nil, errors.WrapInternal(err, "Server", "New", "register metrics")
	}
	metrics.SchemaLoads.WithLabelValues("ok").Inc()

	return &Server{
		cfg:      cfg,
		doc:      doc,
		dsd:      dsd,
		logger:   logger.With("component", componentName),
		metrics:  metrics,
		registry: registry,
	}, nil
}

// Handler returns the routed handler, exposed separately for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /v1/schema", s.instrument("schema", s.handleSchema))
	mux.Handle("GET /v1/concepts", s.instrument("concepts", s.handleConcepts))
	mux.Handle("GET /v1/dimensions", s.instrument("dimensions", s.handleDimensions))
	mux.Handle("GET /v1/attributes", s.instrument("attributes", s.handleAttributes))
	mux.Handle("GET /v1/variables", s.instrument("variables", s.handleVariables))
	mux.Handle("POST /v1/validate", s.instrument("validate", s.handleValidate))
	mux.Handle("POST /v1/convert", s.instrument("convert", s.handleConvert))

	mux.Handle("GET /healthz", health.Handler(s.healthCheck))
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Schema registry listening",
			"addr", s.cfg.Addr,
			"concepts", len(s.doc.Concepts),
			"variables", len(s.doc.Variables))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return errors.WrapInternal(err, "Server", "Run", "listen and serve")
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down schema registry")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return errors.WrapInternal(err, "Server", "Run", "shutdown")
	}
	return nil
}

// healthCheck reports the server healthy; an invalid document cannot reach
// this point because New rejects it.
func (s *Server) healthCheck() health.Status {
	return health.Healthy(componentName, "schema loaded and valid")
}

// instrument wraps a handler with request logging and metrics.
func (s *Server) instrument(name string, h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		h(rec, r)

		elapsed := time.Since(start)
		s.metrics.HTTPRequests.WithLabelValues(name, strconv.Itoa(rec.status)).Inc()
		s.metrics.HTTPDuration.WithLabelValues(name).Observe(elapsed.Seconds())
		s.logger.Debug("Request handled",
			"handler", name,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", elapsed)
	})
}

// statusRecorder captures the response status for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
