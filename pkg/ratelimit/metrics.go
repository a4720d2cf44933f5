package ratelimit

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics receives observations from a Limiter.
//
// Implementations must be safe for concurrent use.
type Metrics interface {
	// RecordAcquire records one token acquisition attempt: how long the
	// caller waited and whether a token was obtained.
	RecordAcquire(wait time.Duration, acquired bool)
}

// NoopMetrics discards all observations.
type NoopMetrics struct{}

// RecordAcquire implements Metrics.
func (NoopMetrics) RecordAcquire(time.Duration, bool) {}

// PrometheusMetrics records limiter observations into Prometheus
// collectors.
type PrometheusMetrics struct {
	acquisitions *prometheus.CounterVec
	waitSeconds  prometheus.Histogram
}

// NewPrometheusMetrics creates the limiter collectors and registers them
// with reg.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		acquisitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ratelimit_acquisitions_total",
				Help: "Token acquisition attempts by outcome",
			},
			[]string{"outcome"},
		),
		waitSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ratelimit_wait_seconds",
				Help:    "Time spent waiting for a rate limit token",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
			},
		),
	}
	reg.MustRegister(m.acquisitions, m.waitSeconds)
	return m
}

// RecordAcquire implements Metrics.
func (m *PrometheusMetrics) RecordAcquire(wait time.Duration, acquired bool) {
	outcome := "acquired"
	if !acquired {
		outcome = "aborted"
	}
	m.acquisitions.WithLabelValues(outcome).Inc()
	m.waitSeconds.Observe(wait.Seconds())
}
