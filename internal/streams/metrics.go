package streams

import (
	"deal-analytics/internal/shared/metrics"
)

var (
	streamWebhookEvent              = "webhook_event"
	metricWebhookEventProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "webhook_event_published_total",
		},
		[]string{"stream_id"},
	)

	metricWebhookEventConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "webhook_event_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)

	metricQueueDepth = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "queue_depth",
		},
	)
)
