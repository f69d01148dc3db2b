package http

import (
	"net/http"
	"net/url"

	"deal-analytics/internal/models"
	"deal-analytics/internal/statistics"

	"github.com/go-chi/chi/v5"
)

const (
	paramStage = "stage"

	queryDate     = "date"
	queryTime     = "time"
	queryTimeFrom = "time_from"
	queryTimeTo   = "time_to"
	queryHook     = "hook"
	queryLimit    = "limit"
)

func timeQuery(r *http.Request) statistics.TimeQuery {
	query := r.URL.Query()
	return statistics.TimeQuery{
		At:   query.Get(queryTime),
		From: query.Get(queryTimeFrom),
		To:   query.Get(queryTimeTo),
	}
}

type statsHandler struct {
	statisticsService statistics.StatisticsService
}

func NewStatsHandler(statisticsService statistics.StatisticsService) AppHttpHandler {
	return &statsHandler{statisticsService: statisticsService}
}

// Handle processes GET /api/stats.
func (h *statsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	stats, err := h.statisticsService.GetStats(r.Context(), r.URL.Query().Get(queryDate), timeQuery(r))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, stats)
	return nil
}

type dealsHandler struct {
	statisticsService statistics.StatisticsService
}

func NewDealsHandler(statisticsService statistics.StatisticsService) AppHttpHandler {
	return &dealsHandler{statisticsService: statisticsService}
}

// Handle processes GET /api/deals/{stage}. The stage is a hook number or a label.
func (h *dealsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	stage := chi.URLParam(r, paramStage)
	if unescaped, err := url.PathUnescape(stage); err == nil {
		stage = unescaped
	}

	deals, err := h.statisticsService.GetDeals(r.Context(), stage, r.URL.Query().Get(queryDate))
	if err != nil {
		return err
	}
	if deals == nil {
		deals = []models.Deal{}
	}
	writeJSON(w, http.StatusOK, deals)
	return nil
}

type kpisHandler struct {
	statisticsService statistics.StatisticsService
}

func NewKPIsHandler(statisticsService statistics.StatisticsService) AppHttpHandler {
	return &kpisHandler{statisticsService: statisticsService}
}

// Handle processes GET /api/kpis.
func (h *kpisHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	report, err := h.statisticsService.GetKPIs(r.Context(), r.URL.Query().Get(queryDate), timeQuery(r))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, report)
	return nil
}

type datesHandler struct {
	statisticsService statistics.StatisticsService
}

func NewDatesHandler(statisticsService statistics.StatisticsService) AppHttpHandler {
	return &datesHandler{statisticsService: statisticsService}
}

// Handle processes GET /api/dates.
func (h *datesHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	dates, err := h.statisticsService.AvailableDates(r.Context())
	if err != nil {
		return err
	}
	if dates == nil {
		dates = []string{}
	}
	writeJSON(w, http.StatusOK, dates)
	return nil
}

type eventsHandler struct {
	statisticsService statistics.StatisticsService
}

func NewEventsHandler(statisticsService statistics.StatisticsService) AppHttpHandler {
	return &eventsHandler{statisticsService: statisticsService}
}

// Handle processes GET /api/events.
func (h *eventsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()
	rawEvents, err := h.statisticsService.FilteredEvents(r.Context(), statistics.EventQuery{
		Date:  query.Get(queryDate),
		Hook:  query.Get(queryHook),
		Time:  timeQuery(r),
		Limit: query.Get(queryLimit),
	})
	if err != nil {
		return err
	}
	if rawEvents == nil {
		rawEvents = []*models.RawEvent{}
	}
	writeJSON(w, http.StatusOK, rawEvents)
	return nil
}

type resetHandler struct {
	statisticsService statistics.StatisticsService
}

func NewResetHandler(statisticsService statistics.StatisticsService) AppHttpHandler {
	return &resetHandler{statisticsService: statisticsService}
}

// Handle processes POST /api/reset. It requires X-Confirm-Reset: yes.
func (h *resetHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	if !resetConfirmed(r) {
		return errResetNotConfirmed()
	}
	if err := h.statisticsService.Reset(r.Context()); err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "all raw events and daily aggregates deleted",
	})
	return nil
}
