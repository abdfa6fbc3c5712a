package ai

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for remote model calls.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "provida_ai_requests_total",
			Help: "Gemini GenerateContent calls by model and outcome",
		}, []string{"model", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "provida_ai_request_duration_seconds",
			Help:    "Gemini GenerateContent latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"model"}),
	}
}

func (m *Metrics) observe(model string, err error, elapsed time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.requests.WithLabelValues(model, outcome).Inc()
	m.duration.WithLabelValues(model).Observe(elapsed.Seconds())
}
