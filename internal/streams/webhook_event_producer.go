package streams

import (
	"context"

	"deal-analytics/internal/events"
)

// WebhookEventProducer hands webhook events to the aggregation worker without
// waiting on persistence. A full queue surfaces as ErrQueueFull.
//
//go:generate mockgen -source=webhook_event_producer.go -destination=./mocks/webhook_event_producer_mock.go -package=mocks
type WebhookEventProducer interface {
	Produce(ctx context.Context, event *events.WebhookEvent) error
	// Depth is the number of events waiting for the worker.
	Depth() int
}

type webhookEventProducer struct {
	queue *BoundedQueue[events.WebhookEvent]
}

func NewWebhookEventProducer(queue *BoundedQueue[events.WebhookEvent]) WebhookEventProducer {
	return &webhookEventProducer{
		queue: queue,
	}
}

func (producer *webhookEventProducer) Produce(ctx context.Context, event *events.WebhookEvent) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := producer.queue.TryEnqueue(*event); err != nil {
		return err
	}
	metricWebhookEventProducedTotal.WithLabelValues(streamWebhookEvent).Inc()
	metricQueueDepth.Set(float64(producer.queue.Len()))
	return nil
}

func (producer *webhookEventProducer) Depth() int {
	return producer.queue.Len()
}
