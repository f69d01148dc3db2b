package aggregators

import (
	"deal-analytics/internal/clocks"
	"deal-analytics/internal/events"
	"deal-analytics/internal/models"
	"deal-analytics/internal/normalizers"
)

//go:generate mockgen -source=raw_event_builder.go -destination=./mocks/raw_event_builder_mock.go -package=mocks
type RawEventBuilder interface {
	// Build stamps event with its business date and normalized amount.
	// The name is taken as is; it is normalized at the boundary.
	Build(event *events.WebhookEvent) *models.RawEvent
}

type rawEventBuilder struct {
	clock clocks.BusinessClock
}

func NewRawEventBuilder(clock clocks.BusinessClock) RawEventBuilder {
	return &rawEventBuilder{clock: clock}
}

func (b *rawEventBuilder) Build(event *events.WebhookEvent) *models.RawEvent {
	receivedAt := event.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = b.clock.Now()
	}
	local := b.clock.Local(receivedAt)

	return &models.RawEvent{
		HookType:           event.HookType,
		Name:               event.Name,
		RawAmount:          event.RawAmount,
		Amount:             normalizers.NormalizeAmount(event.RawAmount),
		ReceivedAtUTC:      receivedAt.UTC().Format(models.TimestampLayout),
		ReceivedAtLocal:    local.Format(models.TimestampLayout),
		ReceivedSecondsDay: models.TimeOfDayOf(local).Seconds(),
		ProcessingDate:     b.clock.ProcessingDate(receivedAt),
		RawPayload:         event.RawPayload,
	}
}
