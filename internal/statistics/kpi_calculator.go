package statistics

import (
	"math"

	"deal-analytics/internal/models"
)

// Hook groups behind the dashboard KPIs. Hook 7 ("all set") is the base every rate is measured against.
var (
	ReadyHook         = models.HookType(7)
	CancellationHooks = []models.HookType{14, 19, 23}
	MissedCallHooks   = []models.HookType{15, 20, 24}
	ConfirmedHooks    = []models.HookType{13, 18, 22}
)

// ComputeKPIs derives the grouped counts, rates and confirmed order sum of aggregate.
// Rates are percentages of the ready count, which reads as 1 when zero.
func ComputeKPIs(aggregate *models.DailyAggregate) models.KPIs {
	ready := aggregate.Hook(ReadyHook).Count
	denominator := ready
	if denominator == 0 {
		denominator = 1
	}

	cancellations := aggregate.GroupCount(CancellationHooks...)
	missedCalls := aggregate.GroupCount(MissedCallHooks...)
	confirmations := aggregate.GroupCount(ConfirmedHooks...)

	return models.KPIs{
		CancellationCount:  cancellations,
		MissedCallsCount:   missedCalls,
		ConfirmationCount:  confirmations,
		CancellationRate:   percentOf(cancellations, denominator),
		MissedCallsRate:    percentOf(missedCalls, denominator),
		ConfirmationRate:   percentOf(confirmations, denominator),
		ConfirmedOrdersSum: aggregate.GroupSum(ConfirmedHooks...),
		ReadyCount:         ready,
	}
}

func percentOf(part, whole int64) float64 {
	return math.Round(float64(part)/float64(whole)*100*100) / 100
}
