package ingestors

import (
	"context"
	"errors"

	"deal-analytics/internal/aggregators"
	"deal-analytics/internal/clocks"
	"deal-analytics/internal/events"
	"deal-analytics/internal/models"
	"deal-analytics/internal/normalizers"
	"deal-analytics/internal/shared/loggers"
	"deal-analytics/internal/shared/metrics"
	"deal-analytics/internal/shared/ulid"
	"deal-analytics/internal/streams"
)

const (
	// ModeAsync queues events for the aggregation worker.
	ModeAsync = "async"
	// ModeSync persists events on the request path.
	ModeSync = "sync"
)

// WebhookRequest is one inbound webhook after transport-specific field extraction.
type WebhookRequest struct {
	HookType models.HookType
	Name     string
	Amount   string

	Method      string
	Path        string
	ContentType string
	Query       string
	Body        []byte
	UserAgent   string
}

// IngestResult echoes what was accepted. Amount is the normalized value the
// worker will aggregate.
type IngestResult struct {
	TraceID  string
	HookType models.HookType
	Stage    string
	Name     string
	Amount   int64
	Queued   bool
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// Ingest validates req and hands it to aggregation without waiting for it in async mode.
	Ingest(ctx context.Context, req *WebhookRequest) (*IngestResult, error)
}

type ingestionService struct {
	payloadDescriber     PayloadDescriber
	webhookEventProducer streams.WebhookEventProducer
	aggregationService   aggregators.AggregationService
	clock                clocks.BusinessClock
	stageLabels          *models.StageLabelTable
	mode                 string
}

func NewIngestionService(
	payloadDescriber PayloadDescriber,
	webhookEventProducer streams.WebhookEventProducer,
	aggregationService aggregators.AggregationService,
	clock clocks.BusinessClock,
	mode string,
) IngestionService {
	if mode != ModeSync {
		mode = ModeAsync
	}
	return &ingestionService{
		payloadDescriber:     payloadDescriber,
		webhookEventProducer: webhookEventProducer,
		aggregationService:   aggregationService,
		clock:                clock,
		stageLabels:          models.DealStageLabels,
		mode:                 mode,
	}
}

func (s *ingestionService) Ingest(ctx context.Context, req *WebhookRequest) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)

	if !req.HookType.Valid() {
		svcErr := errInvalidHookType(req.HookType)
		metricWebhookReceivedTotal.WithLabelValues(hookTypeInvalid, svcErr.Code).Inc()
		return nil, svcErr
	}
	hookLabel := req.HookType.String()

	event := &events.WebhookEvent{
		TraceID:    ulid.NewULID(),
		HookType:   req.HookType,
		Name:       normalizers.NormalizeName(req.Name),
		RawAmount:  req.Amount,
		RawPayload: s.payloadDescriber.Describe(req),
		ReceivedAt: s.clock.Now(),
	}
	logger.Debug().
		Str(loggers.FieldTraceID, event.TraceID).
		Int(loggers.FieldHookType, int(event.HookType)).
		Str("mode", s.mode).
		Msg("started ingesting webhook")

	result := &IngestResult{
		TraceID:  event.TraceID,
		HookType: event.HookType,
		Stage:    s.stageLabels.Label(event.HookType),
		Name:     event.Name,
		Amount:   normalizers.NormalizeAmount(event.RawAmount),
	}

	if s.mode == ModeSync {
		if svcErr := s.aggregationService.Aggregate(ctx, event); svcErr != nil {
			err := errInternalSyncPersistFailed(svcErr)
			metricWebhookReceivedTotal.WithLabelValues(hookLabel, err.Code).Inc()
			return nil, err
		}
	} else {
		if err := s.webhookEventProducer.Produce(ctx, event); err != nil {
			svcErr := errInternalWebhookEventPublishFailed(err)
			if errors.Is(err, streams.ErrQueueFull) {
				svcErr = errQueueFull(err)
				logger.Warn().Int(loggers.FieldHookType, int(event.HookType)).Msg("webhook rejected, queue is full")
			}
			metricWebhookReceivedTotal.WithLabelValues(hookLabel, svcErr.Code).Inc()
			return nil, svcErr
		}
		result.Queued = true
	}

	metricWebhookReceivedTotal.WithLabelValues(hookLabel, metrics.ValueNoError).Inc()
	return result, nil
}
