package events

import (
	"time"

	"deal-analytics/internal/models"
)

// WebhookEvent is the in-memory envelope carried from the webhook boundary to
// the aggregation worker. It only lives between enqueue and dequeue.
//
// Name is already normalized at the boundary. RawAmount is the amount exactly as
// received and is normalized by the worker, so the raw log keeps the original text.
//
// Example:
//
//	{
//	  "traceId": "01JA7ZK3V5Q8X6N2C4B9M0D1EF",
//	  "hookType": 13,
//	  "name": "Иван",
//	  "rawAmount": "15 000",
//	  "rawPayload": "{\"method\":\"POST\",...}",
//	  "receivedAt": "2026-10-15T17:59:04Z"
//	}
type WebhookEvent struct {
	TraceID    string          `json:"traceId"`
	HookType   models.HookType `json:"hookType"`
	Name       string          `json:"name"`
	RawAmount  string          `json:"rawAmount"`
	RawPayload string          `json:"rawPayload"`
	ReceivedAt time.Time       `json:"receivedAt"`
}
