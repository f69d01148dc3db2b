package aggregators

import (
	"context"
	"time"

	"deal-analytics/internal/events"
	"deal-analytics/internal/shared/loggers"
	"deal-analytics/internal/shared/svcerrors"
	"deal-analytics/internal/stores"
)

// AggregationService persists one webhook event: the raw row first, then the
// daily aggregate increment. It is the only writer of aggregate rows.
//
//go:generate mockgen -source=aggregation_service.go -destination=./mocks/aggregation_service_mock.go -package=mocks
type AggregationService interface {
	Aggregate(ctx context.Context, event *events.WebhookEvent) *svcerrors.ServiceError
}

// RetryPolicy bounds how often a failed store step is attempted.
// The delay before attempt n (n >= 2) is Backoff * 2^(n-2).
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
}

type aggregationService struct {
	rawEventBuilder RawEventBuilder
	eventStore      stores.EventStore
	retryPolicy     RetryPolicy
}

func NewAggregationService(rawEventBuilder RawEventBuilder, eventStore stores.EventStore, retryPolicy RetryPolicy) AggregationService {
	if retryPolicy.MaxAttempts < 1 {
		retryPolicy.MaxAttempts = 1
	}
	return &aggregationService{rawEventBuilder: rawEventBuilder, eventStore: eventStore, retryPolicy: retryPolicy}
}

func (s *aggregationService) Aggregate(ctx context.Context, event *events.WebhookEvent) *svcerrors.ServiceError {
	rawEvent := s.rawEventBuilder.Build(event)
	ctx = loggers.Ctx(ctx).With().
		Str(loggers.FieldTraceID, event.TraceID).
		Int(loggers.FieldHookType, int(rawEvent.HookType)).
		Str(loggers.FieldProcessingDate, rawEvent.ProcessingDate).
		Logger().WithContext(ctx)
	logger := loggers.Ctx(ctx)
	logger.Debug().Int64("amount", rawEvent.Amount).Msg("started aggregating webhook event")

	// Each step is retried on its own so a failed increment never re-appends the raw row.
	err := s.withRetry(ctx, stepAppendRawEvent, func() error {
		_, err := s.eventStore.AppendRawEvent(ctx, rawEvent)
		return err
	})
	if err != nil {
		return errInternalRawEventAppendFailed(err)
	}

	var created bool
	err = s.withRetry(ctx, stepUpsertAggregate, func() error {
		var err error
		created, err = s.eventStore.UpsertAggregate(ctx, rawEvent.ProcessingDate, rawEvent.HookType, rawEvent.Amount)
		return err
	})
	if err != nil {
		return errInternalAggregateUpsertFailed(err)
	}

	if created {
		metricDailyAggregateCreatedTotal.Inc()
		logger.Info().Msg("daily aggregate created")
	}
	logger.Debug().Int64(loggers.FieldEventID, rawEvent.ID).Msg("finished aggregating webhook event")
	return nil
}

func (s *aggregationService) withRetry(ctx context.Context, step string, fn func() error) error {
	logger := loggers.Ctx(ctx)
	var err error
	for attempt := 1; attempt <= s.retryPolicy.MaxAttempts; attempt++ {
		if attempt > 1 {
			delay := s.retryPolicy.Backoff << (attempt - 2)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				metricPersistAttemptsTotal.WithLabelValues(step, outcomeFailed).Inc()
				return ctx.Err()
			}
		}

		err = fn()
		if err == nil {
			metricPersistAttemptsTotal.WithLabelValues(step, outcomeSuccess).Inc()
			return nil
		}
		if attempt < s.retryPolicy.MaxAttempts {
			metricPersistAttemptsTotal.WithLabelValues(step, outcomeRetry).Inc()
			logger.Warn().Err(err).Str("step", step).Int(loggers.FieldAttempt, attempt).Msg("store step failed, retrying")
		}
	}
	metricPersistAttemptsTotal.WithLabelValues(step, outcomeFailed).Inc()
	return err
}
