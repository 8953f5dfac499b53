// Package observability exposes the service's prometheus metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's instrumentation.
type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	UpstreamRequests *prometheus.CounterVec
	FrameViews       *prometheus.CounterVec
}

// NewMetrics registers and returns the metric set.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "anniversary_http_requests_total",
			Help: "HTTP requests by route and status code.",
		}, []string{"route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "anniversary_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		UpstreamRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "anniversary_upstream_requests_total",
			Help: "Upstream lookups by source and outcome.",
		}, []string{"source", "outcome"}),
		FrameViews: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "anniversary_frame_views_total",
			Help: "Frame responses rendered by view.",
		}, []string{"view"}),
	}
}

// ObserveFrameView counts one rendered frame view.
func (m *Metrics) ObserveFrameView(view string) {
	if m == nil {
		return
	}
	m.FrameViews.WithLabelValues(view).Inc()
}

// ObserveUpstream counts one upstream lookup outcome.
func (m *Metrics) ObserveUpstream(source, outcome string) {
	if m == nil {
		return
	}
	m.UpstreamRequests.WithLabelValues(source, outcome).Inc()
}
