package http

import (
	"net/http"

	"deal-analytics/internal/shared/loggers"
	"deal-analytics/internal/stores"
	"deal-analytics/internal/streams"
)

type healthResponse struct {
	Status     string `json:"status"`
	QueueDepth int    `json:"queueDepth"`
	Store      string `json:"store"`
}

type healthHandler struct {
	webhookEventProducer streams.WebhookEventProducer
	eventStore           stores.EventStore
}

func NewHealthHandler(webhookEventProducer streams.WebhookEventProducer, eventStore stores.EventStore) AppHttpHandler {
	return &healthHandler{
		webhookEventProducer: webhookEventProducer,
		eventStore:           eventStore,
	}
}

// Handle processes GET /healthz. An unreachable store answers 503 with the same body shape.
func (h *healthHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	response := healthResponse{
		Status:     "ok",
		QueueDepth: h.webhookEventProducer.Depth(),
		Store:      "ok",
	}
	status := http.StatusOK

	if err := h.eventStore.Ping(r.Context()); err != nil {
		loggers.Ctx(r.Context()).Warn().Err(err).Msg("health check: store unreachable")
		response.Status = "degraded"
		response.Store = "unreachable"
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, response)
	return nil
}
