package conversation

import (
	"regexp"
	"strconv"
	"strings"

	"loan-assistant/internal/i18n"
)

var (
	phonePattern  = regexp.MustCompile(`[0-9]{10}`)
	digitsPattern = regexp.MustCompile(`[0-9]+`)
)

// ParsePhone returns the first run of ten consecutive digits anywhere in text.
// Longer runs yield their first ten digits.
func ParsePhone(text string) (string, bool) {
	phone := phonePattern.FindString(text)
	return phone, phone != ""
}

// ParseAmount drops thousands separators and reads the first run of digits,
// so "₹2,00,000" and "I need 300000 please" both parse. Zero and values that
// overflow int64 are rejected.
func ParseAmount(text string) (int64, bool) {
	digits := digitsPattern.FindString(strings.ReplaceAll(text, ",", ""))
	if digits == "" {
		return 0, false
	}
	amount, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || amount <= 0 {
		return 0, false
	}
	return amount, true
}

// ParseTenure reads the first run of digits as a number of months.
func ParseTenure(text string) (int, bool) {
	digits := digitsPattern.FindString(text)
	if digits == "" {
		return 0, false
	}
	months, err := strconv.Atoi(digits)
	if err != nil || months <= 0 {
		return 0, false
	}
	return months, true
}

// IsAffirmative reports whether text contains, case-insensitively, an
// affirmative token of the default language or of lang.
func IsAffirmative(text string, lang i18n.Language) bool {
	lower := strings.ToLower(text)
	for _, token := range i18n.AffirmativeTokens(lang) {
		if strings.Contains(lower, strings.ToLower(token)) {
			return true
		}
	}
	return false
}
