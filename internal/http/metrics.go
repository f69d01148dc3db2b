package http

import (
	"deal-analytics/internal/shared/metrics"
)

// Requests are labeled by route pattern, so every /hook{n} shares one series per method.
var requestLabels = []string{"method", "path", "status", metrics.FieldErrorCode}

var (
	metricHTTPRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "requests_total",
			Help:      "HTTP requests served, by route pattern and outcome.",
		},
		requestLabels,
	)

	metricHTTPRequestDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "request_latency_seconds",
			Help:      "HTTP request latency, webhooks included.",
			Buckets:   metrics.DefBuckets,
		},
		requestLabels,
	)

	metricHTTPRequestsInFlight = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "requests_in_flight",
			Help:      "HTTP requests currently being served.",
		},
	)
)
