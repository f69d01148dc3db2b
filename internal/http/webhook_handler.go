package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"deal-analytics/internal/ingestors"
	"deal-analytics/internal/models"

	"github.com/go-chi/chi/v5"
)

const (
	paramHookNumber = "hookNumber"

	maxWebhookBodyBytes = 1 << 20

	fieldName   = "name"
	fieldSumma  = "summa"
	fieldAmount = "amount"
)

type webhookResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    webhookData `json:"data"`
}

type webhookData struct {
	TraceID  string `json:"traceId"`
	HookType int    `json:"hookType"`
	Stage    string `json:"stage"`
	Name     string `json:"name"`
	Amount   int64  `json:"amount"`
}

type webhookHandler struct {
	ingestionService ingestors.IngestionService
}

func NewWebhookHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &webhookHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes GET and POST /hook{n} and /hook{n}/*.
// Accepted webhooks answer 202 when queued and 200 when already persisted.
func (h *webhookHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	hookType := hookTypeParam(r)
	if appWriter, ok := w.(*appResponseWriter); ok {
		appWriter.SetHookType(hookType)
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodyBytes))
	if err != nil {
		return errMalformedBody(err)
	}
	name, amount := extractWebhookFields(r, body)

	result, err := h.ingestionService.Ingest(r.Context(), &ingestors.WebhookRequest{
		HookType:    hookType,
		Name:        name,
		Amount:      amount,
		Method:      r.Method,
		Path:        r.URL.Path,
		ContentType: contentType(r),
		Query:       r.URL.RawQuery,
		Body:        body,
		UserAgent:   r.UserAgent(),
	})
	if err != nil {
		return err
	}

	status := http.StatusOK
	if result.Queued {
		status = http.StatusAccepted
	}
	writeJSON(w, status, webhookResponse{
		Status:  "success",
		Message: fmt.Sprintf("Webhook %d processed", int(result.HookType)),
		Data: webhookData{
			TraceID:  result.TraceID,
			HookType: int(result.HookType),
			Stage:    result.Stage,
			Name:     result.Name,
			Amount:   result.Amount,
		},
	})
	return nil
}

// hookTypeParam reads the hook number from the route. Anything unparsable becomes 0,
// which ingestion rejects as an invalid hook.
func hookTypeParam(r *http.Request) models.HookType {
	n, err := strconv.Atoi(chi.URLParam(r, paramHookNumber))
	if err != nil {
		return 0
	}
	return models.HookType(n)
}

// webhookFields collects name and amount from several sources. The first source
// to provide a field wins; later sources only fill what is still missing.
type webhookFields struct {
	name      string
	amount    string
	hasName   bool
	hasAmount bool
}

func (f *webhookFields) complete() bool {
	return f.hasName && f.hasAmount
}

func (f *webhookFields) fill(lookup func(key string) (string, bool)) {
	if !f.hasName {
		f.name, f.hasName = lookup(fieldName)
	}
	if !f.hasAmount {
		if f.amount, f.hasAmount = lookup(fieldSumma); !f.hasAmount {
			f.amount, f.hasAmount = lookup(fieldAmount)
		}
	}
}

// extractWebhookFields looks for name and summa (or amount) in, in order: a JSON body,
// a form body, a body that is JSON whatever its content type, the query string and
// key=value pairs embedded in the path after /hook{n}/.
func extractWebhookFields(r *http.Request, body []byte) (name string, amount string) {
	var fields webhookFields
	mediaType, params, _ := mime.ParseMediaType(contentType(r))

	switch {
	case mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
		if values, ok := decodeJSONObject(body); ok {
			fields.fill(values.lookup)
		}
	case mediaType == "application/x-www-form-urlencoded":
		if values, err := url.ParseQuery(string(body)); err == nil {
			fields.fill(formValues(values).lookup)
		}
	case mediaType == "multipart/form-data":
		if values, ok := decodeMultipart(body, params["boundary"]); ok {
			fields.fill(values.lookup)
		}
	}

	if !fields.complete() {
		if values, ok := decodeJSONObject(body); ok {
			fields.fill(values.lookup)
		}
	}
	if !fields.complete() {
		fields.fill(formValues(r.URL.Query()).lookup)
	}
	if !fields.complete() {
		fields.fill(pathValues(chi.URLParam(r, "*")).lookup)
	}
	return fields.name, fields.amount
}

type jsonValues map[string]any

func decodeJSONObject(body []byte) (jsonValues, bool) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return nil, false
	}
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	var values jsonValues
	if err := decoder.Decode(&values); err != nil {
		return nil, false
	}
	return values, true
}

// lookup stringifies scalars; CRMs send amounts both as strings and as numbers.
func (v jsonValues) lookup(key string) (string, bool) {
	raw, ok := v[key]
	if !ok {
		return "", false
	}
	switch value := raw.(type) {
	case nil:
		return "", true
	case string:
		return value, true
	case json.Number:
		return value.String(), true
	case bool:
		return strconv.FormatBool(value), true
	default:
		encoded, err := json.Marshal(value)
		if err != nil {
			return "", true
		}
		return string(encoded), true
	}
}

type formValues url.Values

func (v formValues) lookup(key string) (string, bool) {
	values, ok := v[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func decodeMultipart(body []byte, boundary string) (formValues, bool) {
	if boundary == "" {
		return nil, false
	}
	form, err := multipart.NewReader(bytes.NewReader(body), boundary).ReadForm(maxWebhookBodyBytes)
	if err != nil {
		return nil, false
	}
	defer func() { _ = form.RemoveAll() }()
	return formValues(form.Value), true
}

// pathValues parses "name=Foo&summa=100" (or "/"-separated pairs) trailing the hook path.
func pathValues(tail string) formValues {
	tail = strings.Trim(tail, "/")
	if tail == "" || !strings.Contains(tail, "=") {
		return nil
	}
	values, _ := url.ParseQuery(strings.ReplaceAll(tail, "/", "&"))
	return formValues(values)
}
