package http

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	requests   *prometheus.CounterVec
	duration   prometheus.Histogram
	arenaBytes prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "httparena",
				Subsystem: "parser",
				Name:      "requests_total",
				Help:      "Total number of parsed requests by result code",
			},
			[]string{"code"},
		),
		duration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "httparena",
				Subsystem: "parser",
				Name:      "duration_seconds",
				Help:      "Time spent parsing a request",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
		),
		arenaBytes: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "httparena",
				Subsystem: "parser",
				Name:      "arena_bytes",
				Help:      "Arena bytes retained by a successfully parsed request",
				Buckets:   prometheus.ExponentialBuckets(64, 4, 8),
			},
		),
	}
}

// observe does nothing on a nil receiver.
func (m *metrics) observe(code Code, d time.Duration, retained int) {
	if m == nil {
		return
	}

	m.requests.WithLabelValues(code.Name()).Inc()
	m.duration.Observe(d.Seconds())
	if code == OK {
		m.arenaBytes.Observe(float64(retained))
	}
}
