package i18n

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var indianDigits = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR groups digits the Indian way: the last three, then pairs.
// 300000 becomes "3,00,000".
func FormatINR(amount int64) string {
	if amount < 0 {
		// uint64 conversion keeps math.MinInt64 representable.
		return "-" + indianDigits.Sprint(number.Decimal(uint64(-amount)))
	}
	return indianDigits.Sprint(number.Decimal(amount))
}

// FormatRatio renders a percentage with one decimal place.
func FormatRatio(ratio float64) string {
	return strconv.FormatFloat(ratio, 'f', 1, 64)
}

var affirmative = map[Language][]string{
	English: {"yes", "proceed"},
	Hindi:   {"हाँ", "हां", "आगे"},
}

// AffirmativeTokens returns the tokens that confirm a prompt in lang, always
// including the default language's tokens.
func AffirmativeTokens(lang Language) []string {
	tokens := append([]string(nil), affirmative[DefaultLanguage]...)
	if lang != DefaultLanguage {
		tokens = append(tokens, affirmative[lang]...)
	}
	return tokens
}
