package statistics

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"deal-analytics/internal/aggregators"
	"deal-analytics/internal/clocks"
	"deal-analytics/internal/events"
	"deal-analytics/internal/models"
	"deal-analytics/internal/stores"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteStatistics wires the real aggregation path over a temp-dir SQLite file.
func newSQLiteStatistics(t *testing.T) (aggregators.AggregationService, StatisticsService) {
	t.Helper()

	eventStore, err := stores.Open(context.Background(), stores.Options{
		Driver:           stores.DriverSQLite,
		DSN:              filepath.Join(t.TempDir(), "webhooks.db"),
		OperationTimeout: 5 * time.Second,
		MaxOpenConns:     1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = eventStore.Close() })

	clock, err := clocks.NewFixedBusinessClock(clocks.DefaultTimezone, clocks.DefaultCutoff, time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	aggregationService := aggregators.NewAggregationService(
		aggregators.NewRawEventBuilder(clock),
		eventStore,
		aggregators.RetryPolicy{MaxAttempts: 3, Backoff: time.Millisecond},
	)
	return aggregationService, NewStatisticsService(eventStore, clock)
}

func TestStatisticsService_FullDayReplayMatchesAggregate(t *testing.T) {
	t.Parallel()

	aggregationService, service := newSQLiteStatistics(t)
	ctx := context.Background()
	msk := time.FixedZone("MSK", 3*60*60)

	webhooks := []struct {
		hook       models.HookType
		rawAmount  string
		receivedAt time.Time
	}{
		{13, "15 000", time.Date(2026, 10, 14, 21, 30, 0, 0, msk)},
		{7, "1_500_", time.Date(2026, 10, 15, 0, 30, 0, 0, msk)},
		{18, "99,9", time.Date(2026, 10, 15, 7, 30, 0, 0, msk)},
		{7, "null", time.Date(2026, 10, 15, 20, 59, 59, 0, msk)},
		{13, "700", time.Date(2026, 10, 15, 21, 15, 0, 0, msk)},
		{22, "300", time.Date(2026, 10, 14, 20, 0, 0, 0, msk)},
	}
	for i, webhook := range webhooks {
		svcErr := aggregationService.Aggregate(ctx, &events.WebhookEvent{
			TraceID:    fmt.Sprintf("trace-%d", i),
			HookType:   webhook.hook,
			Name:       "Acme",
			RawAmount:  webhook.rawAmount,
			RawPayload: "{}",
			ReceivedAt: webhook.receivedAt,
		})
		require.Nil(t, svcErr)
	}

	tests := []struct {
		date          string
		expectedCount int64
		expectedSum   int64
	}{
		{date: "14.10.2026", expectedCount: 1, expectedSum: 300},
		{date: "15.10.2026", expectedCount: 4, expectedSum: 16599},
		{date: "16.10.2026", expectedCount: 1, expectedSum: 700},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			aggregate, err := service.GetAggregate(ctx, tt.date)
			require.NoError(t, err)
			replayed, err := service.ComputeWindowedStats(ctx, tt.date, models.FullDayWindow())
			require.NoError(t, err)

			assert.Equal(t, aggregate.Hooks, replayed.Hooks)
			assert.Equal(t, tt.expectedCount, aggregate.TotalCount)
			assert.Equal(t, tt.expectedSum, aggregate.TotalSum)
			assert.Equal(t, aggregate.TotalCount, replayed.TotalCount)
			assert.Equal(t, aggregate.TotalSum, replayed.TotalSum)
		})
	}

	aggregate, err := service.GetAggregate(ctx, "15.10.2026")
	require.NoError(t, err)
	assert.Equal(t, models.HookStats{Count: 2, Sum: 1500}, aggregate.Hook(7))
	assert.Equal(t, models.HookStats{Count: 1, Sum: 15000}, aggregate.Hook(13))
	assert.Equal(t, models.HookStats{Count: 1, Sum: 99}, aggregate.Hook(18))

	require.NoError(t, service.Reset(ctx))
	dates, err := service.AvailableDates(ctx)
	require.NoError(t, err)
	assert.Empty(t, dates)
}
