package constellation

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the prometheus collectors of the geometry service.
// A nil *Metrics records nothing.
type Metrics struct {
	computations   *prometheus.CounterVec
	failures       *prometheus.CounterVec
	interceptTests *prometheus.CounterVec
	duration       *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg (if not nil).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		computations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "constellation_geometry_computations_total",
				Help: "Total number of successful constellation geometry computations.",
			},
			[]string{"pattern"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "constellation_geometry_failures_total",
				Help: "Total number of rejected constellation geometry computations.",
			},
			[]string{"pattern", "kind"},
		),
		interceptTests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "constellation_intercept_tests_total",
				Help: "Total number of line of sight tests against the central body.",
			},
			[]string{"result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "constellation_geometry_duration_seconds",
				Help:    "Duration of constellation geometry computations in seconds.",
				Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
			},
			[]string{"pattern"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.computations, m.failures, m.interceptTests, m.duration)
	}
	return m
}

func (m *Metrics) observe(pattern Pattern, start time.Time, blocked, visible int) {
	if m == nil {
		return
	}
	m.computations.WithLabelValues(string(pattern)).Inc()
	m.interceptTests.WithLabelValues("blocked").Add(float64(blocked))
	m.interceptTests.WithLabelValues("visible").Add(float64(visible))
	m.duration.WithLabelValues(string(pattern)).Observe(time.Since(start).Seconds())
}

func (m *Metrics) fail(pattern Pattern, err error) {
	if m == nil {
		return
	}
	label := string(pattern)
	if label == "" {
		label = "unknown"
	}
	m.failures.WithLabelValues(label, kindLabel(err)).Inc()
}
