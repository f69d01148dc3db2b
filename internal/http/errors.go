package http

import (
	"fmt"

	"deal-analytics/internal/shared/svcerrors"
)

// HTTP boundary errors
const (
	codeResetNotConfirmed = "API_1000"
	codeMalformedBody     = "API_1001"
)

// errResetNotConfirmed returns an error when POST /api/reset lacks the confirmation header.
func errResetNotConfirmed() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeResetNotConfirmed,
		fmt.Sprintf("reset deletes all data; send header %q with value %q to confirm", "X-Confirm-Reset", confirmResetValue), nil)
}

// errMalformedBody returns an error when the webhook body cannot be read.
func errMalformedBody(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMalformedBody, "request body could not be read", cause)
}
