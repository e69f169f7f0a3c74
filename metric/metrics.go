package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains all toolkit-level metrics.
type Metrics struct {
	// Schema metrics
	SchemaLoads          *prometheus.CounterVec
	ValidationViolations *prometheus.CounterVec

	// Dataset metrics
	SeriesRead       prometheus.Counter
	ObservationsRead prometheus.Counter

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New creates a Metrics instance with all collectors. Call Register to
// attach them to a registry.
func New() *Metrics {
	return &Metrics{
		SchemaLoads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "iamc",
				Subsystem: "schema",
				Name:      "loads_total",
				Help:      "Total schema document loads by outcome (ok, malformed, invalid)",
			},
			[]string{"status"},
		),

		ValidationViolations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "iamc",
				Subsystem: "schema",
				Name:      "validation_violations_total",
				Help:      "Total semantic violations found during validation, by kind",
			},
			[]string{"kind"},
		),

		SeriesRead: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "iamc",
				Subsystem: "dataset",
				Name:      "series_total",
				Help:      "Total series ingested from wide-format data",
			},
		),

		ObservationsRead: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "iamc",
				Subsystem: "dataset",
				Name:      "observations_total",
				Help:      "Total observations ingested from wide-format data",
			},
		),

		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "iamc",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total HTTP requests handled, by handler and status code",
			},
			[]string{"handler", "code"},
		),

		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "iamc",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds, by handler",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"handler"},
		),
	}
}

// Register attaches all collectors to the given registry.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.SchemaLoads,
		m.ValidationViolations,
		m.SeriesRead,
		m.ObservationsRead,
		m.HTTPRequests,
		m.HTTPDuration,
	}

	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// MustRegister attaches all collectors and panics on failure. Intended for
// process startup, where a registration failure is a programming error.
func (m *Metrics) MustRegister(reg prometheus.Registerer) {
	if err := m.Register(reg); err != nil {
		panic(err)
	}
}
