package statistics

import (
	"deal-analytics/internal/shared/metrics"
)

var (
	// metricReconciliationTotal counts aggregate rows whose stored totals had drifted
	// from their per-hook columns and were rewritten on read.
	metricReconciliationTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStatistics,
			Name:      "reconciliation_total",
		},
	)
)
