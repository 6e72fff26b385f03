package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-chartopts/pkg/config"
)

// RenderOptions describe per-call settings that renderers can use to
// customise their output without mutating the chart.
type RenderOptions struct {
	// Title is the page title. It is sanitized before use.
	Title string
	// Config resolves script URLs. Renderers fall back to config.Default().
	Config *config.Config
	// InitTheme is the theme name passed to echarts.init ("white", "dark" or
	// a registered theme).
	InitTheme string
	// Engine selects the ECharts drawing backend, "canvas" or "svg".
	Engine string
	// Indent pretty-prints the option document.
	Indent bool
	// ExtraHead is raw markup appended to the page head. Only link and meta
	// elements survive sanitizing.
	ExtraHead string
	// Theme carries go-theme tokens exposed as CSS variables on the page.
	Theme *theme.RendererConfig

	// Locale selects page strings. Empty uses the configured locale.
	Locale string
	// Translator replaces DefaultCatalog.
	Translator Translator
	OnMissing  MissingTranslationHandler
}

// AssetURL resolves a script name against the configured assets URL.
func (o RenderOptions) AssetURL(name string) string {
	cfg := o.Config
	if cfg == nil {
		cfg = config.Default()
	}
	return cfg.ResolveAsset(name)
}

// LocaleOrDefault returns the page locale.
func (o RenderOptions) LocaleOrDefault() string {
	if o.Locale != "" {
		return o.Locale
	}
	if o.Config != nil {
		return o.Config.Locale()
	}
	return config.DefaultLocale
}

// InitThemeOrDefault returns the echarts.init theme name.
func (o RenderOptions) InitThemeOrDefault() string {
	if o.InitTheme == "" {
		return "white"
	}
	return o.InitTheme
}

// EngineOrDefault returns the drawing backend name.
func (o RenderOptions) EngineOrDefault() string {
	if o.Engine == "" {
		return "canvas"
	}
	return o.Engine
}
