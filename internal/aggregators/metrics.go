package aggregators

import (
	"deal-analytics/internal/shared/metrics"
)

const (
	stepAppendRawEvent  = "append_raw_event"
	stepUpsertAggregate = "upsert_aggregate"

	outcomeSuccess = "success"
	outcomeRetry   = "retry"
	outcomeFailed  = "failed"
)

var (
	// metricDailyAggregateCreatedTotal counts daily aggregate rows created by an event.
	//
	// It moves once per processing date, on the first event after the 21:00 cutoff
	// rolls the business day over. Rows materialized by dashboard reads are not counted.
	metricDailyAggregateCreatedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "daily_aggregate_created_total",
		},
	)

	// metricPersistAttemptsTotal counts store attempts per step.
	// outcome is one of success, retry (a later attempt follows) or failed (event dropped).
	metricPersistAttemptsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "event_persist_attempts_total",
		},
		[]string{"step", metrics.FieldOutcome},
	)
)
