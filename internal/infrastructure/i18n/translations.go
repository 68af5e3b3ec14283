package i18n

import (
	"embed"
	"log"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"codediffdemo/internal/domain/entities"
	"codediffdemo/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Translator implements the output.Translator port.
var _ output.T = (*Translator)(nil)

// localeTags maps locale codes to the language of their message file.
var localeTags = map[entities.Locale]language.Tag{
	entities.LocaleChinese: language.Chinese,
	entities.LocaleEnglish: language.English,
}

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
}

// NewTranslator builds a Translator backed by go-i18n. fallback is the
// locale code ("cn" or "en") used when a lookup misses in the requested
// locale.
func NewTranslator(fallback entities.Locale) *Translator {
	tag, ok := TagFor(fallback)
	if !ok {
		tag = language.Chinese
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.zh.toml", "active.en.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Printf("i18n: failed to load %s: %v", file, err)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
	}
}

// TagFor returns the language tag of a supported locale code's message
// file. ok is false for every other code, including BCP 47 tags such as
// "zh" or "en-GB".
func TagFor(l entities.Locale) (language.Tag, bool) {
	tag, ok := localeTags[l]
	return tag, ok
}

// Supports reports whether a message table exists for the locale code.
// T renders unsupported codes from the fallback table.
func (t *Translator) Supports(l entities.Locale) bool {
	_, ok := TagFor(l)
	return ok
}

// T renders the message identified by key for the given locale code.
// Codes without a message table use the fallback locale, and a key missing
// everywhere is returned as-is.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if tag, ok := TagFor(entities.Locale(locale)); ok {
		languages = append(languages, tag.String())
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.Printf("i18n: localize failed (key=%s, locales=%v): %v", key, languages, err)
		return key
	}
	return msg
}
