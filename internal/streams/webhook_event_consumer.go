package streams

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"deal-analytics/internal/aggregators"
	"deal-analytics/internal/events"
	"deal-analytics/internal/shared/loggers"
	"deal-analytics/internal/shared/metrics"
	"deal-analytics/internal/shared/svcerrors"
	"deal-analytics/internal/shared/ulid"
)

const defaultDequeueTimeout = time.Second

//go:generate mockgen -source=webhook_event_consumer.go -destination=./mocks/webhook_event_consumer_mock.go -package=mocks
type WebhookEventConsumer interface {
	Start(ctx context.Context)
	// Stop lets the worker drain pending events until ctx expires, then cancels it.
	Stop(ctx context.Context) error
}

type webhookEventConsumer struct {
	queue              *BoundedQueue[events.WebhookEvent]
	aggregationService aggregators.AggregationService
	dequeueTimeout     time.Duration

	wg sync.WaitGroup

	stopOnce sync.Once
	cancel   context.CancelFunc

	logger loggers.Logger
}

func NewWebhookEventConsumer(queue *BoundedQueue[events.WebhookEvent], aggregationService aggregators.AggregationService, dequeueTimeout time.Duration, logger loggers.Logger) WebhookEventConsumer {
	if dequeueTimeout <= 0 {
		dequeueTimeout = defaultDequeueTimeout
	}
	return &webhookEventConsumer{
		queue:              queue,
		aggregationService: aggregationService,
		dequeueTimeout:     dequeueTimeout,
		cancel:             func() {},
		logger:             logger,
	}
}

// Start spawns the single aggregation worker.
// Every aggregate mutation goes through it, so rows need no locking beyond the store's transaction.
func (consumer *webhookEventConsumer) Start(ctx context.Context) {
	ctx, consumer.cancel = context.WithCancel(ctx)
	consumer.wg.Add(1)
	go func() {
		defer consumer.wg.Done()

		consumer.runWorker(ctx)
	}()
}

func (consumer *webhookEventConsumer) Stop(ctx context.Context) error {
	var err error
	consumer.stopOnce.Do(func() {
		defer consumer.cancel()

		if poisonErr := consumer.queue.Poison(ctx); poisonErr != nil {
			consumer.cancel()
			consumer.wg.Wait()
			err = fmt.Errorf("queue not drained: %w", poisonErr)
			return
		}

		done := make(chan struct{})
		go func() {
			consumer.wg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-ctx.Done():
			consumer.cancel()
			<-done
			err = fmt.Errorf("queue not drained: %w", ctx.Err())
		}
	})
	return err
}

func (consumer *webhookEventConsumer) runWorker(ctx context.Context) {
	for {
		event, err := consumer.queue.Dequeue(ctx, consumer.dequeueTimeout)
		switch {
		case errors.Is(err, ErrDequeueTimeout):
			continue
		case errors.Is(err, ErrQueueStopped):
			consumer.logger.Info().Msg("webhook event consumer drained and stopped")
			return
		case err != nil:
			consumer.logger.Warn().Err(err).Int(loggers.FieldQueueDepth, consumer.queue.Len()).Msg("webhook event consumer cancelled")
			return
		}

		consumer.consume(ctx, &event)
		metricQueueDepth.Set(float64(consumer.queue.Len()))
	}
}

func (consumer *webhookEventConsumer) consume(ctx context.Context, event *events.WebhookEvent) {
	ctx = consumer.logger.With().
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Logger().WithContext(ctx)

	// A panicking event is counted and dropped; the worker keeps going.
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("consumer panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricWebhookEventConsumedTotal.WithLabelValues(streamWebhookEvent, svcErr.Code).Inc()
		}
	}()

	svcError := consumer.aggregationService.Aggregate(ctx, event)
	if svcError != nil {
		loggers.Ctx(ctx).Error().
			Err(svcError.Cause).
			Str(loggers.FieldErrorCode, svcError.Code).
			Str(loggers.FieldTraceID, event.TraceID).
			Int(loggers.FieldHookType, int(event.HookType)).
			Msg("webhook event dropped")
		metricWebhookEventConsumedTotal.WithLabelValues(streamWebhookEvent, svcError.Code).Inc()
		return
	}
	metricWebhookEventConsumedTotal.WithLabelValues(streamWebhookEvent, metrics.ValueNoError).Inc()
}
