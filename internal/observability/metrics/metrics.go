package metrics

import "github.com/prometheus/client_golang/prometheus"

// APIMetrics exposes counters/histograms for calls to the booking API.
type APIMetrics struct {
	requestsTotal  *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

func NewAPIMetrics(reg prometheus.Registerer) *APIMetrics {
	m := &APIMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "barber",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total requests issued to the booking API",
		}, []string{"operation", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "barber",
			Subsystem: "api",
			Name:      "request_latency_seconds",
			Help:      "Latency of booking API requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.requestLatency)
	return m
}

func (m *APIMetrics) ObserveRequest(operation, status string) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(operation, status).Inc()
}

func (m *APIMetrics) ObserveLatency(operation string, seconds float64) {
	if m == nil {
		return
	}
	m.requestLatency.WithLabelValues(operation).Observe(seconds)
}
