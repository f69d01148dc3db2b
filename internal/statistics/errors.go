package statistics

import (
	"fmt"

	"deal-analytics/internal/shared/svcerrors"
)

// StatisticsService errors
const (
	codeInvalidFilter = "STA_1000"
	codeUnknownStage  = "STA_1001"

	codeInternalStoreReadFailed = "STA_9000"
)

// errInvalidFilter returns an error for malformed query parameters.
func errInvalidFilter(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidFilter, msg, cause)
}

// errUnknownStage returns an error when a stage matches neither a hook number nor a label.
func errUnknownStage(stage string) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeUnknownStage, fmt.Sprintf("unknown stage %q", stage), nil)
}

// errInternalStoreReadFailed returns an error when the event store cannot serve a query.
func errInternalStoreReadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStoreReadFailed, fmt.Errorf("storeReadFailed: %w", cause))
}
