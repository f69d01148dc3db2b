package statistics

import (
	"context"
	"strconv"
	"strings"
	"time"

	"deal-analytics/internal/clocks"
	"deal-analytics/internal/models"
	"deal-analytics/internal/normalizers"
	"deal-analytics/internal/shared/loggers"
	"deal-analytics/internal/stores"
)

// DefaultEventLimit bounds FilteredEvents when the caller gives no limit.
const DefaultEventLimit = 100

// EventQuery holds the raw filter parameters of an event listing. Empty fields do not filter.
type EventQuery struct {
	Date  string
	Hook  string
	Time  TimeQuery
	Limit string
}

// StatisticsService serves the dashboard. Reads never fail on missing data: an
// absent day or stage renders as zeros.
//
//go:generate mockgen -source=statistics_service.go -destination=./mocks/statistics_service_mock.go -package=mocks
type StatisticsService interface {
	// GetAggregate reads date's aggregate, healing stored totals that drifted from the per-hook columns.
	GetAggregate(ctx context.Context, date string) (*models.DailyAggregate, error)
	// ComputeWindowedStats rebuilds date's aggregate from the raw log, keeping only events inside window.
	ComputeWindowedStats(ctx context.Context, date string, window models.TimeWindow) (*models.DailyAggregate, error)
	// GetStats returns the wide-row view of date, replayed from the raw log when tq is set.
	GetStats(ctx context.Context, date string, tq TimeQuery) (map[string]any, error)
	GetDeals(ctx context.Context, stage string, date string) ([]models.Deal, error)
	GetKPIs(ctx context.Context, date string, tq TimeQuery) (*models.KPIReport, error)
	AvailableDates(ctx context.Context) ([]string, error)
	FilteredEvents(ctx context.Context, query EventQuery) ([]*models.RawEvent, error)
	// Reset irreversibly deletes every raw event and aggregate.
	Reset(ctx context.Context) error
}

type statisticsService struct {
	eventStore stores.EventStore
	clock      clocks.BusinessClock
}

func NewStatisticsService(eventStore stores.EventStore, clock clocks.BusinessClock) StatisticsService {
	return &statisticsService{eventStore: eventStore, clock: clock}
}

func (s *statisticsService) GetAggregate(ctx context.Context, date string) (*models.DailyAggregate, error) {
	date, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}

	aggregate, err := s.eventStore.ReadAggregate(ctx, date)
	if err != nil {
		return nil, errInternalStoreReadFailed(err)
	}
	if aggregate.IsConsistent() {
		return aggregate, nil
	}

	storedCount, storedSum := aggregate.TotalCount, aggregate.TotalSum
	aggregate.Reconcile()
	logger := loggers.Ctx(ctx)
	logger.Warn().
		Str(loggers.FieldProcessingDate, date).
		Int64("stored_total_count", storedCount).
		Int64("stored_total_sum", storedSum).
		Int64("total_count", aggregate.TotalCount).
		Int64("total_sum", aggregate.TotalSum).
		Msg("aggregate totals drifted, reconciling")

	healed, err := s.eventStore.ReconcileTotals(ctx, date)
	if err != nil {
		// The corrected view is still served; the next read retries the write.
		logger.Error().Err(err).Str(loggers.FieldProcessingDate, date).Msg("failed to persist reconciled totals")
		return aggregate, nil
	}
	if healed {
		metricReconciliationTotal.Inc()
	}
	return aggregate, nil
}

func (s *statisticsService) ComputeWindowedStats(ctx context.Context, date string, window models.TimeWindow) (*models.DailyAggregate, error) {
	date, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}

	rawEvents, err := s.eventStore.QueryRawEvents(ctx, models.EventFilter{ProcessingDate: date, Window: window})
	if err != nil {
		return nil, errInternalStoreReadFailed(err)
	}

	aggregate := models.NewEmptyDailyAggregate(date)
	for _, rawEvent := range rawEvents {
		if !window.Contains(rawEvent.ReceivedSecondsDay) {
			continue
		}
		if err := aggregate.Apply(rawEvent.HookType, replayAmount(rawEvent)); err != nil {
			loggers.Ctx(ctx).Warn().Err(err).Int64(loggers.FieldEventID, rawEvent.ID).Msg("skipped raw event during replay")
		}
	}
	return aggregate, nil
}

// replayAmount re-derives the amount from the text as received. Rows written before
// the raw amount was kept fall back to the stored value.
func replayAmount(rawEvent *models.RawEvent) int64 {
	if strings.TrimSpace(rawEvent.RawAmount) == "" {
		return rawEvent.Amount
	}
	return normalizers.NormalizeAmount(rawEvent.RawAmount)
}

func (s *statisticsService) GetStats(ctx context.Context, date string, tq TimeQuery) (map[string]any, error) {
	aggregate, err := s.aggregateFor(ctx, date, tq)
	if err != nil {
		return nil, err
	}
	return aggregate.Flat(), nil
}

func (s *statisticsService) GetDeals(ctx context.Context, stage string, date string) ([]models.Deal, error) {
	hook, ok := ResolveStage(stage)
	if !ok {
		return nil, errUnknownStage(stage)
	}
	date, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}

	rawEvents, err := s.eventStore.QueryRawEvents(ctx, models.EventFilter{ProcessingDate: date, HookType: hook})
	if err != nil {
		return nil, errInternalStoreReadFailed(err)
	}
	deals := make([]models.Deal, 0, len(rawEvents))
	for _, rawEvent := range rawEvents {
		deals = append(deals, rawEvent.ToDeal())
	}
	return deals, nil
}

func (s *statisticsService) GetKPIs(ctx context.Context, date string, tq TimeQuery) (*models.KPIReport, error) {
	aggregate, err := s.aggregateFor(ctx, date, tq)
	if err != nil {
		return nil, err
	}
	return &models.KPIReport{KPIs: ComputeKPIs(aggregate), Date: aggregate.Date}, nil
}

func (s *statisticsService) AvailableDates(ctx context.Context) ([]string, error) {
	dates, err := s.eventStore.AvailableDates(ctx)
	if err != nil {
		return nil, errInternalStoreReadFailed(err)
	}
	return dates, nil
}

func (s *statisticsService) FilteredEvents(ctx context.Context, query EventQuery) ([]*models.RawEvent, error) {
	filter := models.EventFilter{Window: query.Time.Window(), Limit: DefaultEventLimit}

	if date := strings.TrimSpace(query.Date); date != "" {
		if _, err := time.Parse(models.DateLayout, date); err != nil {
			return nil, errInvalidFilter("date must be DD.MM.YYYY", err)
		}
		filter.ProcessingDate = date
	}
	if hook := strings.TrimSpace(query.Hook); hook != "" {
		hookType, err := models.ParseHookType(hook)
		if err != nil || !hookType.Valid() {
			return nil, errInvalidFilter("hook must be a number between 1 and 25", err)
		}
		filter.HookType = hookType
	}
	if limit := strings.TrimSpace(query.Limit); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 {
			return nil, errInvalidFilter("limit must be a positive number", err)
		}
		filter.Limit = n
	}

	rawEvents, err := s.eventStore.QueryRawEvents(ctx, filter)
	if err != nil {
		return nil, errInternalStoreReadFailed(err)
	}
	return rawEvents, nil
}

func (s *statisticsService) Reset(ctx context.Context) error {
	if err := s.eventStore.Reset(ctx); err != nil {
		return errInternalStoreReadFailed(err)
	}
	loggers.Ctx(ctx).Warn().Msg("all raw events and aggregates deleted")
	return nil
}

func (s *statisticsService) aggregateFor(ctx context.Context, date string, tq TimeQuery) (*models.DailyAggregate, error) {
	if window := tq.Window(); !window.IsZero() {
		return s.ComputeWindowedStats(ctx, date, window)
	}
	return s.GetAggregate(ctx, date)
}

// resolveDate defaults an empty date to the current business day and rejects anything but DD.MM.YYYY.
func (s *statisticsService) resolveDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return s.clock.ProcessingDate(s.clock.Now()), nil
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return "", errInvalidFilter("date must be DD.MM.YYYY", err)
	}
	return date, nil
}

// ResolveStage maps a hook number or a stage label from either label table to its hook.
func ResolveStage(stage string) (models.HookType, bool) {
	stage = strings.TrimSpace(stage)
	if hook, err := models.ParseHookType(stage); err == nil {
		return hook, hook.Valid()
	}
	if hook, ok := models.DealStageLabels.Lookup(stage); ok {
		return hook, true
	}
	return models.DashboardStageLabels.Lookup(stage)
}
