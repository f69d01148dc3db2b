package aggregators

import (
	"testing"
	"time"

	"deal-analytics/internal/clocks"
	"deal-analytics/internal/events"
	"deal-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawEventBuilder_Build(t *testing.T) {
	t.Parallel()

	builder := newTestBuilder(t)

	tests := []struct {
		name           string
		receivedAt     time.Time
		rawAmount      string
		amount         int64
		processingDate string
		localTimestamp string
	}{
		{
			name:           "before cutoff keeps the calendar day",
			receivedAt:     time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC),
			rawAmount:      "1_500_",
			amount:         1500,
			processingDate: "15.10.2026",
			localTimestamp: "2026-10-15 12:00:00",
		},
		{
			name:           "exactly at cutoff",
			receivedAt:     time.Date(2026, 10, 15, 18, 0, 0, 0, time.UTC),
			rawAmount:      "99,90",
			amount:         99,
			processingDate: "15.10.2026",
			localTimestamp: "2026-10-15 21:00:00",
		},
		{
			name:           "after cutoff rolls to the next day",
			receivedAt:     time.Date(2026, 10, 15, 18, 0, 1, 0, time.UTC),
			rawAmount:      "null",
			amount:         0,
			processingDate: "16.10.2026",
			localTimestamp: "2026-10-15 21:00:01",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rawEvent := builder.Build(&events.WebhookEvent{
				HookType:   7,
				Name:       "Acme",
				RawAmount:  tt.rawAmount,
				ReceivedAt: tt.receivedAt,
			})

			assert.Equal(t, models.HookType(7), rawEvent.HookType)
			assert.Equal(t, tt.rawAmount, rawEvent.RawAmount)
			assert.Equal(t, tt.amount, rawEvent.Amount)
			assert.Equal(t, tt.processingDate, rawEvent.ProcessingDate)
			assert.Equal(t, tt.localTimestamp, rawEvent.ReceivedAtLocal)
		})
	}
}

func TestRawEventBuilder_Build_ZeroReceivedAtUsesClock(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 15, 7, 0, 0, 0, time.UTC)
	clock, err := clocks.NewFixedBusinessClock(clocks.DefaultTimezone, clocks.DefaultCutoff, now)
	require.NoError(t, err)

	rawEvent := NewRawEventBuilder(clock).Build(&events.WebhookEvent{HookType: 1})
	assert.Equal(t, "2026-10-15 07:00:00", rawEvent.ReceivedAtUTC)
	assert.Equal(t, 10*3600, rawEvent.ReceivedSecondsDay)
	assert.Equal(t, "15.10.2026", rawEvent.ProcessingDate)
}
