package normalizers

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// FallbackName replaces names that are empty or still carry an unresolved template placeholder.
const FallbackName = "Untitled deal"

var (
	// placeholderPattern matches CRM merge fields the sender failed to substitute,
	// e.g. "{{Название}}", "{{ deal.name }}" or "{name}".
	placeholderPattern = regexp.MustCompile(`\{\{[^{}]*\}\}|^\{[^{}]*\}$`)

	nameSentinels = map[string]struct{}{
		"null":      {},
		"none":      {},
		"undefined": {},
	}

	amountSentinels = map[string]struct{}{
		"":     {},
		"__":   {},
		"none": {},
		"null": {},
	}
)

// maxTruncatable is the largest float that still truncates into an int64.
const maxTruncatable = float64(math.MaxInt64 >> 1)

// Normalize cleans a webhook's free-form name and amount.
// It never fails: anything unparseable falls back to FallbackName / 0.
func Normalize(rawName, rawAmount string) (string, int64) {
	return NormalizeName(rawName), NormalizeAmount(rawAmount)
}

// NormalizeName substitutes FallbackName for empty or placeholder names and
// percent-decodes everything else until it stops changing, so double-encoded
// names settle on the same value a second pass would give. An undecodable
// remainder is kept as is.
func NormalizeName(rawName string) string {
	name := strings.TrimSpace(rawName)
	if isPlaceholderName(name) {
		return FallbackName
	}
	name = percentDecode(name)
	if isPlaceholderName(name) {
		return FallbackName
	}
	return name
}

// percentDecode terminates because every successful decode that changes the
// string makes it shorter.
func percentDecode(name string) string {
	for {
		decoded, err := url.PathUnescape(name)
		if err != nil {
			return name
		}
		decoded = strings.TrimSpace(decoded)
		if decoded == name {
			return name
		}
		name = decoded
	}
}

func isPlaceholderName(name string) bool {
	if name == "" {
		return true
	}
	if _, ok := nameSentinels[strings.ToLower(name)]; ok {
		return true
	}
	return placeholderPattern.MatchString(name)
}

// NormalizeAmount turns an amount string into a non-negative integer.
//
// Trailing underscores (left behind by template substitution) are dropped, null
// sentinels read as zero, and every character other than digits, '.' and ',' is
// removed before ',' becomes the decimal point. The parsed value is truncated.
//
//	"15 000"  -> 15000
//	"1_500_"  -> 1500
//	"99,90"   -> 99
//	"null"    -> 0
func NormalizeAmount(rawAmount string) int64 {
	amount := strings.TrimRight(strings.TrimSpace(rawAmount), "_")
	if _, ok := amountSentinels[strings.ToLower(strings.TrimSpace(amount))]; ok {
		return 0
	}

	var b strings.Builder
	b.Grow(len(amount))
	for _, r := range amount {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == ',':
			b.WriteRune('.')
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value < 0 || value > maxTruncatable {
		return 0
	}
	return int64(value)
}
