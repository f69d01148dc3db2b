package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyAggregate_ApplyKeepsTotalsInSync(t *testing.T) {
	t.Parallel()

	agg := NewEmptyDailyAggregate("15.10.2026")
	require.NoError(t, agg.Apply(13, 15000))
	require.NoError(t, agg.Apply(13, 500))
	require.NoError(t, agg.Apply(7, 0))

	assert.Equal(t, HookStats{Count: 2, Sum: 15500}, agg.Hook(13))
	assert.Equal(t, HookStats{Count: 1, Sum: 0}, agg.Hook(7))
	assert.Equal(t, int64(3), agg.TotalCount)
	assert.Equal(t, int64(15500), agg.TotalSum)
	assert.True(t, agg.IsConsistent())
}

func TestDailyAggregate_ApplyRejectsOutOfRangeHook(t *testing.T) {
	t.Parallel()

	agg := NewEmptyDailyAggregate("15.10.2026")
	for _, h := range []HookType{0, 26, -1} {
		assert.Error(t, agg.Apply(h, 1))
	}
	assert.Equal(t, NewEmptyDailyAggregate("15.10.2026"), agg)
}

func TestDailyAggregate_Reconcile(t *testing.T) {
	t.Parallel()

	agg := NewEmptyDailyAggregate("15.10.2026")
	agg.Hooks[HookType(3).Index()] = HookStats{Count: 4, Sum: 100}
	agg.TotalCount = 9
	agg.TotalSum = 7

	assert.False(t, agg.IsConsistent())
	assert.True(t, agg.Reconcile())
	assert.Equal(t, int64(4), agg.TotalCount)
	assert.Equal(t, int64(100), agg.TotalSum)
	assert.False(t, agg.Reconcile(), "second reconcile is a no-op")
}

func TestDailyAggregate_GroupCountAndSum(t *testing.T) {
	t.Parallel()

	agg := NewEmptyDailyAggregate("15.10.2026")
	_ = agg.Apply(14, 10)
	_ = agg.Apply(19, 20)
	_ = agg.Apply(23, 30)
	_ = agg.Apply(1, 1000)

	assert.Equal(t, int64(3), agg.GroupCount(14, 19, 23))
	assert.Equal(t, int64(60), agg.GroupSum(14, 19, 23))
	assert.Equal(t, int64(0), agg.GroupCount(99))
}

func TestDailyAggregate_FlatZeroFillsEveryHook(t *testing.T) {
	t.Parallel()

	agg := NewEmptyDailyAggregate("15.10.2026")
	_ = agg.Apply(25, 42)

	flat := agg.Flat()
	assert.Len(t, flat, 3+2*HookCount)
	assert.Equal(t, "15.10.2026", flat["date"])
	assert.Equal(t, int64(1), flat["total_count"])
	assert.Equal(t, int64(42), flat["total_sum"])
	assert.Equal(t, int64(1), flat["hook25_count"])
	assert.Equal(t, int64(42), flat["hook25_sum"])
	assert.Equal(t, int64(0), flat["hook1_count"])
	assert.Equal(t, int64(0), flat["hook24_sum"])
}

func TestStageLabelTables(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Все готово", DealStageLabels.Label(7))
	assert.Equal(t, "Confirmed, prepaid", DashboardStageLabels.Label(18))
	assert.Equal(t, "", DealStageLabels.Label(26))

	h, ok := DealStageLabels.Lookup("  отменил заказ регион ")
	require.True(t, ok)
	assert.Equal(t, HookType(23), h)

	_, ok = DashboardStageLabels.Lookup("Все готово")
	assert.False(t, ok, "tables are independent")

	assert.Len(t, DealStageLabels.Labels(), HookCount)
	assert.NotEqual(t, DealStageLabels.Version, DashboardStageLabels.Version)
}

func TestHookType(t *testing.T) {
	t.Parallel()

	assert.True(t, HookType(1).Valid())
	assert.True(t, HookType(25).Valid())
	assert.False(t, HookType(0).Valid())
	assert.False(t, HookType(26).Valid())
	assert.Equal(t, "hook7_count", HookType(7).CountColumn())
	assert.Equal(t, "hook7_sum", HookType(7).SumColumn())

	h, err := ParseHookType("12")
	require.NoError(t, err)
	assert.Equal(t, HookType(12), h)

	_, err = ParseHookType("twelve")
	assert.Error(t, err)
}

func TestTimeWindows(t *testing.T) {
	t.Parallel()

	at, err := ParseTimeOfDay("14:30")
	require.NoError(t, err)

	point := PointWindow(at)
	assert.True(t, point.Contains(14*3600+30*60+59))
	assert.False(t, point.Contains(14*3600+31*60))
	assert.True(t, point.Contains(0))

	from, _ := ParseTimeOfDay("09:00")
	to, _ := ParseTimeOfDay("10:15")
	rng := RangeWindow(from, to)
	assert.False(t, rng.Contains(8*3600+59*60+59))
	assert.True(t, rng.Contains(9*3600))
	assert.True(t, rng.Contains(10*3600+15*60+59))
	assert.False(t, rng.Contains(10*3600+16*60))

	full := FullDayWindow()
	assert.True(t, full.Contains(0))
	assert.True(t, full.Contains(86399))
	assert.True(t, TimeWindow{}.IsZero())

	_, err = ParseTimeOfDay("25:99")
	assert.Error(t, err)

	local := time.Date(2026, 10, 15, 20, 59, 59, 0, time.UTC)
	assert.Equal(t, 20*3600+59*60+59, TimeOfDayOf(local).Seconds())
}
