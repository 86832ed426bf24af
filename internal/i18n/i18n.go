// Package i18n renders conversation messages in the supported languages.
package i18n

import (
	"errors"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"

	DefaultLanguage = English
)

var supported = map[language.Base]Language{
	language.MustParseBase("en"): English,
	language.MustParseBase("hi"): Hindi,
}

// ParseLanguage maps a BCP 47 tag such as "hi" or "en-IN" to a supported
// Language. Unknown or malformed tags resolve to DefaultLanguage with ok false.
func ParseLanguage(tag string) (Language, bool) {
	t, err := language.Parse(strings.TrimSpace(tag))
	if err != nil {
		return DefaultLanguage, false
	}
	base, conf := t.Base()
	if conf != language.Exact {
		return DefaultLanguage, false
	}
	if lang, ok := supported[base]; ok {
		return lang, true
	}
	return DefaultLanguage, false
}

// Key identifies one message template.
type Key string

// Params are substituted into "{.name}" placeholders.
type Params map[string]interface{}

// Localizer supplies rendered message text. Callers must not branch on the
// returned string.
type Localizer interface {
	Translate(key Key, lang Language, params Params) string
}

// Catalog is a Localizer backed by a go-i18n bundle built from the in-memory
// tables.
type Catalog struct {
	tables     map[Language]map[Key]string
	localizers map[Language]*goi18n.Localizer
	fallback   *goi18n.Localizer
}

// NewCatalog returns the built-in English and Hindi tables.
func NewCatalog() *Catalog {
	tables := map[Language]map[Key]string{
		English: english,
		Hindi:   hindi,
	}

	bundle := goi18n.NewBundle(language.English)
	for lang, table := range tables {
		tag := language.Make(string(lang))
		messages := make([]*goi18n.Message, 0, len(table))
		for key, text := range table {
			messages = append(messages, &goi18n.Message{
				ID:         string(key),
				Other:      text,
				LeftDelim:  "{",
				RightDelim: "}",
			})
		}
		// Both tags carry CLDR plural rules, so this cannot fail.
		if err := bundle.AddMessages(tag, messages...); err != nil {
			panic(err)
		}
	}

	c := &Catalog{
		tables:     tables,
		localizers: make(map[Language]*goi18n.Localizer, len(tables)),
		fallback:   goi18n.NewLocalizer(bundle, string(DefaultLanguage)),
	}
	for lang := range tables {
		c.localizers[lang] = goi18n.NewLocalizer(bundle, string(lang))
	}
	return c
}

// Translate looks the key up in lang, then in DefaultLanguage, and finally
// returns the key itself.
func (c *Catalog) Translate(key Key, lang Language, params Params) string {
	localizer, ok := c.localizers[lang]
	if !ok {
		localizer = c.fallback
	}

	text, err := localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    string(key),
		TemplateData: map[string]interface{}(params),
	})
	if err != nil {
		// Keys missing from lang render from DefaultLanguage alongside the error.
		var notFound *goi18n.MessageNotFoundErr
		if !errors.As(err, &notFound) || text == "" {
			return string(key)
		}
	}
	return text
}

// Has reports whether lang defines key without falling back.
func (c *Catalog) Has(key Key, lang Language) bool {
	_, ok := c.tables[lang][key]
	return ok
}

// Keys lists every key of the default language table.
func (c *Catalog) Keys() []Key {
	keys := make([]Key, 0, len(c.tables[DefaultLanguage]))
	for k := range c.tables[DefaultLanguage] {
		keys = append(keys, k)
	}
	return keys
}
