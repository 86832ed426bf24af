package conversation

import (
	"testing"

	"loan-assistant/internal/i18n"

	"github.com/stretchr/testify/assert"
)

func TestParsePhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{name: "bare number", input: "9876543210", expected: "9876543210", ok: true},
		{name: "embedded in text", input: "my number is 9876543210 thanks", expected: "9876543210", ok: true},
		{name: "longer run keeps first ten", input: "919876543210", expected: "9198765432", ok: true},
		{name: "nine digits", input: "987654321", ok: false},
		{name: "separated digits", input: "98765 43210", ok: false},
		{name: "no digits", input: "call me", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phone, ok := ParsePhone(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, phone)
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
		ok       bool
	}{
		{name: "plain", input: "300000", expected: 300000, ok: true},
		{name: "indian grouping with rupee", input: "₹2,00,000", expected: 200000, ok: true},
		{name: "western grouping", input: "300,000", expected: 300000, ok: true},
		{name: "in a sentence", input: "I need 450000 please", expected: 450000, ok: true},
		{name: "first run wins", input: "250000 over 36 months", expected: 250000, ok: true},
		{name: "zero", input: "0", ok: false},
		{name: "no digits", input: "a lot", ok: false},
		{name: "overflow", input: "99999999999999999999", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, ok := ParseAmount(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, amount)
		})
	}
}

func TestParseTenure(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		ok       bool
	}{
		{name: "suggestion text", input: "36 months", expected: 36, ok: true},
		{name: "bare", input: "24", expected: 24, ok: true},
		{name: "hindi suggestion", input: "48 महीने", expected: 48, ok: true},
		{name: "out of usual range still parses", input: "600", expected: 600, ok: true},
		{name: "zero", input: "0 months", ok: false},
		{name: "words", input: "three years", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			months, ok := ParseTenure(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, months)
		})
	}
}

func TestIsAffirmative(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		lang     i18n.Language
		expected bool
	}{
		{name: "suggestion", input: "Yes, Proceed", lang: i18n.English, expected: true},
		{name: "uppercase", input: "YES", lang: i18n.English, expected: true},
		{name: "proceed only", input: "please proceed", lang: i18n.English, expected: true},
		{name: "negative", input: "no thanks", lang: i18n.English, expected: false},
		{name: "hindi token in english session", input: "हाँ", lang: i18n.English, expected: false},
		{name: "hindi suggestion", input: "हाँ, आगे बढ़ें", lang: i18n.Hindi, expected: true},
		{name: "hindi without chandrabindu", input: "हां", lang: i18n.Hindi, expected: true},
		{name: "english token in hindi session", input: "yes", lang: i18n.Hindi, expected: true},
		{name: "hindi negative", input: "नहीं", lang: i18n.Hindi, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsAffirmative(tt.input, tt.lang))
		})
	}
}

func TestReference(t *testing.T) {
	assert.Equal(t, "TATA-45678901", Reference("TATA", 1712345678901))
	assert.Equal(t, "TATA-00000042", Reference("TATA", 42))
	assert.Equal(t, "LN-00000042", Reference("LN", 42))
}
