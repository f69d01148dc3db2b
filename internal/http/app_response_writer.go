package http

import (
	"net/http"

	"deal-analytics/internal/models"
	"deal-analytics/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter is a wrapper around the http.ResponseWriter that stores app details for middleware access
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
	hookType models.HookType
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError != nil {
		return w.svcError.Code
	}
	return ""
}

// SetHookType records which webhook the request targeted, for the completion log.
func (w *appResponseWriter) SetHookType(hookType models.HookType) {
	w.hookType = hookType
}

func (w *appResponseWriter) HookType() models.HookType {
	return w.hookType
}

// Status defaults to 200 when the handler never called WriteHeader.
func (w *appResponseWriter) Status() int {
	if status := w.WrapResponseWriter.Status(); status != 0 {
		return status
	}
	return http.StatusOK
}
