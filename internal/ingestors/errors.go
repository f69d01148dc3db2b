package ingestors

import (
	"fmt"

	"deal-analytics/internal/models"
	"deal-analytics/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeInvalidHookType = "ING_1000"
	codeQueueFull       = "ING_5030"

	codeInternalSyncPersistFailed         = "ING_9000"
	codeInternalWebhookEventPublishFailed = "ING_9001"
)

// errInvalidHookType returns an error for hook numbers outside 1..25.
func errInvalidHookType(hook models.HookType) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidHookType,
		fmt.Sprintf("invalid hook number %d: must be between 1 and %d", int(hook), models.HookCount), nil)
}

// errQueueFull returns an error when the ingestion queue has no room. Senders may retry.
func errQueueFull(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeQueueFull, "ingestion queue is full, retry later", cause)
}

// errInternalSyncPersistFailed returns an error when a synchronous write fails.
func errInternalSyncPersistFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSyncPersistFailed, fmt.Errorf("syncPersistFailed: %w", cause))
}

// errInternalWebhookEventPublishFailed returns an error when the event could not be queued.
func errInternalWebhookEventPublishFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalWebhookEventPublishFailed, fmt.Errorf("webhookEventPublishFailed: %w", cause))
}
