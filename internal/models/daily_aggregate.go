package models

import "fmt"

// HookStats is the running count and integer amount sum for one hook on one day.
type HookStats struct {
	Count int64 `json:"count"`
	Sum   int64 `json:"sum"`
}

// DailyAggregate is the per-processing-date row of running counters.
//
// Hooks is indexed by HookType.Index(). The wide hookN_count/hookN_sum layout
// only exists at the store boundary (see Flat and the stores package).
//
// Invariant: TotalCount == Σ Hooks[i].Count and TotalSum == Σ Hooks[i].Sum.
type DailyAggregate struct {
	Date       string               `json:"date"`
	Hooks      [HookCount]HookStats `json:"hooks"`
	TotalCount int64                `json:"totalCount"`
	TotalSum   int64                `json:"totalSum"`
}

// NewEmptyDailyAggregate returns a zero-filled aggregate for date.
func NewEmptyDailyAggregate(date string) *DailyAggregate {
	return &DailyAggregate{Date: date}
}

// Hook returns the stats of h. Out-of-range hooks read as zero.
func (a *DailyAggregate) Hook(h HookType) HookStats {
	if !h.Valid() {
		return HookStats{}
	}
	return a.Hooks[h.Index()]
}

// Apply records one event of hook h carrying amount. Totals move with the hook.
func (a *DailyAggregate) Apply(h HookType, amount int64) error {
	if !h.Valid() {
		return fmt.Errorf("hook type %d out of range 1..%d", int(h), HookCount)
	}
	a.Hooks[h.Index()].Count++
	a.Hooks[h.Index()].Sum += amount
	a.TotalCount++
	a.TotalSum += amount
	return nil
}

// RecomputedTotals sums the per-hook columns.
func (a *DailyAggregate) RecomputedTotals() (count, sum int64) {
	for _, s := range a.Hooks {
		count += s.Count
		sum += s.Sum
	}
	return count, sum
}

// IsConsistent reports whether the stored totals match the per-hook sums.
func (a *DailyAggregate) IsConsistent() bool {
	count, sum := a.RecomputedTotals()
	return count == a.TotalCount && sum == a.TotalSum
}

// Reconcile overwrites the totals with the per-hook sums and reports whether they changed.
func (a *DailyAggregate) Reconcile() bool {
	count, sum := a.RecomputedTotals()
	changed := count != a.TotalCount || sum != a.TotalSum
	a.TotalCount, a.TotalSum = count, sum
	return changed
}

// GroupCount sums the counts of the given hooks.
func (a *DailyAggregate) GroupCount(hooks ...HookType) int64 {
	var total int64
	for _, h := range hooks {
		total += a.Hook(h).Count
	}
	return total
}

// GroupSum sums the amount sums of the given hooks.
func (a *DailyAggregate) GroupSum(hooks ...HookType) int64 {
	var total int64
	for _, h := range hooks {
		total += a.Hook(h).Sum
	}
	return total
}

// Flat renders the aggregate in the wide-row shape served to the dashboard:
// date, total_count, total_sum and hookN_count/hookN_sum for every hook, zero-filled.
func (a *DailyAggregate) Flat() map[string]any {
	out := make(map[string]any, 3+2*HookCount)
	out["date"] = a.Date
	out["total_count"] = a.TotalCount
	out["total_sum"] = a.TotalSum
	for _, h := range AllHookTypes() {
		stats := a.Hooks[h.Index()]
		out[h.CountColumn()] = stats.Count
		out[h.SumColumn()] = stats.Sum
	}
	return out
}
