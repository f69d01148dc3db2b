package http

import (
	"net/http"

	"deal-analytics/internal/ingestors"
	"deal-analytics/internal/shared/loggers"
	"deal-analytics/internal/shared/metrics"
	"deal-analytics/internal/statistics"
	"deal-analytics/internal/stores"
	"deal-analytics/internal/streams"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(
	ingestionService ingestors.IngestionService,
	statisticsService statistics.StatisticsService,
	webhookEventProducer streams.WebhookEventProducer,
	eventStore stores.EventStore,
	httpLogger loggers.Logger,
) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Webhooks: /hook7, /hook7/ and /hook7/name=Foo&summa=100, over GET or POST
	webhook := errorHandlingAdapter(NewWebhookHandler(ingestionService))
	for _, pattern := range []string{"/hook{" + paramHookNumber + ":[0-9]+}", "/hook{" + paramHookNumber + ":[0-9]+}/*"} {
		router.Get(pattern, webhook)
		router.Post(pattern, webhook)
	}

	// Dashboard API
	router.Route("/api", func(api chi.Router) {
		api.Get("/stats", errorHandlingAdapter(NewStatsHandler(statisticsService)))
		api.Get("/deals/{"+paramStage+"}", errorHandlingAdapter(NewDealsHandler(statisticsService)))
		api.Get("/kpis", errorHandlingAdapter(NewKPIsHandler(statisticsService)))
		api.Get("/dates", errorHandlingAdapter(NewDatesHandler(statisticsService)))
		api.Get("/events", errorHandlingAdapter(NewEventsHandler(statisticsService)))
		api.Post("/reset", errorHandlingAdapter(NewResetHandler(statisticsService)))
	})

	router.Get("/healthz", errorHandlingAdapter(NewHealthHandler(webhookEventProducer, eventStore)))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
