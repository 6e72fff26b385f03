package render

import (
	"errors"
	"fmt"
	"strings"
)

// Message keys used by the bundled HTML renderers.
const (
	MsgPageTitle       = "page.title"
	MsgPageDescription = "page.description"
	MsgPageNoScript    = "page.noscript"
)

// ErrMissingTranslator is passed to the missing handler when no translator
// is configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

// ErrMissingTranslation reports a key the catalog does not hold.
var ErrMissingTranslation = errors.New("render: missing translation")

// Translator resolves message keys for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler decides the string used when a key cannot be
// translated.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// Catalog is an in-memory Translator keyed by locale then message key.
// Region subtags fall back to the base language ("zh-CN" uses "zh"). Args
// are applied with fmt.Sprintf.
type Catalog map[string]map[string]string

// Translate implements Translator.
func (c Catalog) Translate(locale, key string, args ...any) (string, error) {
	for _, candidate := range localeChain(locale) {
		msgs, ok := c[candidate]
		if !ok {
			continue
		}
		if msg, ok := msgs[key]; ok {
			if len(args) > 0 {
				return fmt.Sprintf(msg, args...), nil
			}
			return msg, nil
		}
	}
	return "", fmt.Errorf("%w: %s (%s)", ErrMissingTranslation, key, locale)
}

func localeChain(locale string) []string {
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if locale == "" {
		return nil
	}
	chain := []string{locale}
	if base, _, ok := strings.Cut(locale, "-"); ok && base != "" {
		chain = append(chain, strings.ToLower(base))
	}
	return chain
}

// DefaultCatalog holds the bundled page strings.
var DefaultCatalog = Catalog{
	"en": {
		MsgPageTitle:       "Awesome Echarts",
		MsgPageDescription: "ECharts chart",
		MsgPageNoScript:    "you should enable javascript to run this app.",
	},
	"zh": {
		MsgPageTitle:       "Awesome Echarts",
		MsgPageDescription: "ECharts 图表",
		MsgPageNoScript:    "请启用 JavaScript 以显示图表。",
	},
}

// Translate resolves key with the options' translator, falling back to
// DefaultCatalog. The missing handler, or fallback, covers unknown keys.
func (o RenderOptions) Translate(key, fallback string, args ...any) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}
	t := o.Translator
	if t == nil {
		t = DefaultCatalog
	}
	locale := o.LocaleOrDefault()

	msg, err := t.Translate(locale, key, args...)
	if err == nil && strings.TrimSpace(msg) != "" {
		return msg
	}
	if o.OnMissing != nil {
		return o.OnMissing(locale, key, args, err)
	}
	return missingTranslationDefault(fallback, key)
}

func missingTranslationDefault(fallback, key string) string {
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}
