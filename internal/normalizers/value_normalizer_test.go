package normalizers

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", FallbackName},
		{"whitespace", "   ", FallbackName},
		{"cyrillic merge field", "{{Название}}", FallbackName},
		{"spaced merge field", "{{ deal.name }}", FallbackName},
		{"merge field inside text", "Deal {{id}}", FallbackName},
		{"single brace placeholder", "{name}", FallbackName},
		{"null sentinel", "null", FallbackName},
		{"percent encoded", "%D0%98%D0%B2%D0%B0%D0%BD", "Иван"},
		{"percent encoded space", "Big%20order", "Big order"},
		{"plus is kept", "A+B", "A+B"},
		{"encoded placeholder", "%7B%7Bname%7D%7D", FallbackName},
		{"invalid escape kept", "100%", "100%"},
		{"double encoded", "a%2541", "aA"},
		{"double encoded cyrillic", "%25D0%2598%25D0%25B2%25D0%25B0%25D0%25BD", "Иван"},
		{"encoded percent sign", "100%2525", "100%"},
		{"plain", "Acme LLC", "Acme LLC"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, NormalizeName(tt.input))
		})
	}
}

func TestNormalizeAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected int64
	}{
		{"empty", "", 0},
		{"double underscore sentinel", "__", 0},
		{"none", "None", 0},
		{"null", "null", 0},
		{"space thousands", "15 000", 15000},
		{"trailing and embedded underscores", "1_500_", 1500},
		{"comma decimal truncates", "99,90", 99},
		{"dot decimal truncates", "1234.99", 1234},
		{"currency suffix", "2 500 руб.", 2500},
		{"currency prefix", "$300", 300},
		{"minus sign is stripped", "-50", 50},
		{"two decimal points", "1.500.00", 0},
		{"letters only", "abc", 0},
		{"lone dot", ".", 0},
		{"huge", "99999999999999999999999999", 0},
		{"surrounding spaces", "  700  ", 700},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, NormalizeAmount(tt.input))
		})
	}
}

func TestNormalize_NeverNegativeAndIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []struct{ name, amount string }{
		{"{{Название}}", "15 000"},
		{"Acme", "1_500_"},
		{"", "null"},
		{"Big%20order", "12,5"},
		{"Заказ №5", "-1e9"},
		{"x", "٣٤"},
		{"y", "0.0001"},
		{"z", "__"},
		{"a%2541", "7"},
		{"50%25%2520off", "50"},
	}

	for _, in := range inputs {
		name, amount := Normalize(in.name, in.amount)
		assert.GreaterOrEqual(t, amount, int64(0), "amount for %q", in.amount)

		name2, amount2 := Normalize(name, strconv.FormatInt(amount, 10))
		assert.Equal(t, name, name2, "name idempotence for %q", in.name)
		assert.Equal(t, amount, amount2, "amount idempotence for %q", in.amount)
	}
}

func TestNormalize_TemplateScenario(t *testing.T) {
	t.Parallel()

	name, amount := Normalize("{{Название}}", "15 000")
	assert.Equal(t, FallbackName, name)
	assert.Equal(t, int64(15000), amount)
}
