package http

import (
	"net/http"
	"strings"
)

const (
	headerRequestID    = "x-request-id"
	headerContentType  = "content-type"
	headerConfirmReset = "x-confirm-reset"

	confirmResetValue = "yes"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

func contentType(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerContentType))
}

// resetConfirmed reports whether the caller explicitly acknowledged a destructive reset.
func resetConfirmed(r *http.Request) bool {
	return strings.EqualFold(strings.TrimSpace(r.Header.Get(headerConfirmReset)), confirmResetValue)
}
