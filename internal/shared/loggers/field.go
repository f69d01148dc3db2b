package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldHookType       = "hook_type"
	FieldProcessingDate = "processing_date"
	FieldEventID        = "event_id"
	FieldTraceID        = "trace_id"
	FieldAttempt        = "attempt"
	FieldQueueDepth     = "queue_depth"
)
