package ingestors

import (
	"deal-analytics/internal/shared/metrics"
)

// hookTypeInvalid labels rejected hook numbers so arbitrary paths cannot grow label cardinality.
const hookTypeInvalid = "invalid"

var (
	metricWebhookReceivedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "webhook_received_total",
		},
		[]string{metrics.FieldHookType, metrics.FieldErrorCode},
	)
)
