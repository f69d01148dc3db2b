package ingestors

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/mileusna/useragent"
)

const maxDiagnosticBodyBytes = 4 * 1024

// diagnosticPayload is what gets kept of the original request next to each raw event.
type diagnosticPayload struct {
	Method       string `json:"method,omitempty"`
	Path         string `json:"path,omitempty"`
	ContentType  string `json:"contentType,omitempty"`
	Query        string `json:"query,omitempty"`
	Body         string `json:"body,omitempty"`
	BodyTrimmed  bool   `json:"bodyTrimmed,omitempty"`
	UserAgent    string `json:"userAgent,omitempty"`
	ClientFamily string `json:"clientFamily,omitempty"`
}

//go:generate mockgen -source=payload_describer.go -destination=./mocks/payload_describer_mock.go -package=mocks
type PayloadDescriber interface {
	// Describe renders req as the opaque diagnostic blob stored with the raw event.
	Describe(req *WebhookRequest) string
}

type payloadDescriber struct {
	maxBodyBytes int
}

func NewPayloadDescriber() PayloadDescriber {
	return &payloadDescriber{maxBodyBytes: maxDiagnosticBodyBytes}
}

func (d *payloadDescriber) Describe(req *WebhookRequest) string {
	body, trimmed := truncateUTF8(string(req.Body), d.maxBodyBytes)
	payload := diagnosticPayload{
		Method:       strings.ToUpper(strings.TrimSpace(req.Method)),
		Path:         req.Path,
		ContentType:  req.ContentType,
		Query:        req.Query,
		Body:         body,
		BodyTrimmed:  trimmed,
		UserAgent:    strings.TrimSpace(req.UserAgent),
		ClientFamily: d.clientFamily(req.UserAgent),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// clientFamily parses the user agent into a family such as "Chrome", or returns the
// trimmed original when parsing finds nothing (CRM senders use custom agents).
func (d *payloadDescriber) clientFamily(ua string) string {
	ua = strings.TrimSpace(ua)
	if ua == "" {
		return ""
	}
	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}
	return ua
}

// truncateUTF8 cuts s to at most max bytes without splitting a rune.
func truncateUTF8(s string, max int) (string, bool) {
	if len(s) <= max {
		return s, false
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut], true
}
