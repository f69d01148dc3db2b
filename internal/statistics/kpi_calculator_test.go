package statistics

import (
	"testing"

	"deal-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aggregateWith(t *testing.T, counts map[models.HookType][]int64) *models.DailyAggregate {
	t.Helper()
	aggregate := models.NewEmptyDailyAggregate("15.10.2026")
	for hook, amounts := range counts {
		for _, amount := range amounts {
			require.NoError(t, aggregate.Apply(hook, amount))
		}
	}
	return aggregate
}

func TestComputeKPIs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		counts   map[models.HookType][]int64
		expected models.KPIs
	}{
		{
			name: "rates against the ready count",
			counts: map[models.HookType][]int64{
				7:  {0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
				14: {0},
				19: {0},
				15: {0, 0, 0},
				13: {1000, 500},
				22: {250},
			},
			expected: models.KPIs{
				CancellationCount:  2,
				MissedCallsCount:   3,
				ConfirmationCount:  3,
				CancellationRate:   20,
				MissedCallsRate:    30,
				ConfirmationRate:   30,
				ConfirmedOrdersSum: 1750,
				ReadyCount:         10,
			},
		},
		{
			name: "zero ready count reads as one",
			counts: map[models.HookType][]int64{
				23: {0, 0},
				24: {0},
			},
			expected: models.KPIs{
				CancellationCount: 2,
				MissedCallsCount:  1,
				CancellationRate:  200,
				MissedCallsRate:   100,
			},
		},
		{
			name: "rates are rounded to two decimals",
			counts: map[models.HookType][]int64{
				7:  {0, 0, 0},
				19: {0},
				20: {0, 0},
			},
			expected: models.KPIs{
				CancellationCount: 1,
				MissedCallsCount:  2,
				CancellationRate:  33.33,
				MissedCallsRate:   66.67,
				ReadyCount:        3,
			},
		},
		{
			name:     "empty day",
			counts:   nil,
			expected: models.KPIs{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ComputeKPIs(aggregateWith(t, tt.counts)))
		})
	}
}

func TestTimeQuery_Window(t *testing.T) {
	t.Parallel()

	seconds := func(hh, mm, ss int) *int {
		v := hh*3600 + mm*60 + ss
		return &v
	}

	tests := []struct {
		name     string
		query    TimeQuery
		expected models.TimeWindow
	}{
		{"empty", TimeQuery{}, models.TimeWindow{}},
		{"point", TimeQuery{At: "12:30"}, models.TimeWindow{ToSeconds: seconds(12, 30, 59)}},
		{"point wins over range", TimeQuery{At: "12:30", From: "08:00", To: "09:00"}, models.TimeWindow{ToSeconds: seconds(12, 30, 59)}},
		{"range", TimeQuery{From: "08:00", To: "09:15"}, models.TimeWindow{FromSeconds: seconds(8, 0, 0), ToSeconds: seconds(9, 15, 59)}},
		{"open-ended from", TimeQuery{From: "20:00"}, models.TimeWindow{FromSeconds: seconds(20, 0, 0), ToSeconds: seconds(23, 59, 59)}},
		{"only to", TimeQuery{To: "09:00"}, models.TimeWindow{ToSeconds: seconds(9, 0, 59)}},
		{"malformed point falls back to range", TimeQuery{At: "noon", From: "08:00", To: "09:00"}, models.TimeWindow{FromSeconds: seconds(8, 0, 0), ToSeconds: seconds(9, 0, 59)}},
		{"malformed everything is ignored", TimeQuery{At: "25:99", From: "x"}, models.TimeWindow{}},
		{"seconds are accepted", TimeQuery{At: "07:05:30"}, models.TimeWindow{ToSeconds: seconds(7, 5, 59)}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.query.Window())
		})
	}
}

func TestResolveStage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		stage string
		hook  models.HookType
		ok    bool
	}{
		{"7", 7, true},
		{" 25 ", 25, true},
		{"0", 0, false},
		{"26", 26, false},
		{models.DealStageLabels.Label(14), 14, true},
		{models.DashboardStageLabels.Label(18), 18, true},
		{"no such stage", 0, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.stage, func(t *testing.T) {
			t.Parallel()
			hook, ok := ResolveStage(tt.stage)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.hook, hook)
			}
		})
	}
}
