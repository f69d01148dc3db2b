package aggregators

import (
	"fmt"

	"deal-analytics/internal/shared/svcerrors"
)

const (
	codeInternalRawEventAppendFailed  = "AGG_9000"
	codeInternalAggregateUpsertFailed = "AGG_9001"
)

// errInternalRawEventAppendFailed returns an error when the raw event could not be appended.
func errInternalRawEventAppendFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRawEventAppendFailed, fmt.Errorf("rawEventAppendFailed: %w", cause))
}

// errInternalAggregateUpsertFailed returns an error when the daily aggregate could not be incremented.
func errInternalAggregateUpsertFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalAggregateUpsertFailed, fmt.Errorf("aggregateUpsertFailed: %w", cause))
}
