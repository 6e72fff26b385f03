package render_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-chartopts/pkg/config"
	"github.com/goliatone/go-chartopts/pkg/render"
)

type stubTranslator map[string]string

func (t stubTranslator) Translate(_ string, key string, _ ...any) (string, error) {
	if msg, ok := t[key]; ok {
		return msg, nil
	}
	return "", errors.New("missing translation")
}

func TestCatalogFallsBackToBaseLanguage(t *testing.T) {
	msg, err := render.DefaultCatalog.Translate("zh-CN", render.MsgPageDescription)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if msg != "ECharts 图表" {
		t.Fatalf("unexpected message %q", msg)
	}

	if _, err := render.DefaultCatalog.Translate("fr", render.MsgPageTitle); !errors.Is(err, render.ErrMissingTranslation) {
		t.Fatalf("expected ErrMissingTranslation, got %v", err)
	}

	catalog := render.Catalog{"en": {"hello": "hello %s"}}
	if got, _ := catalog.Translate("en_US", "hello", "chart"); got != "hello chart" {
		t.Fatalf("unexpected formatted message %q", got)
	}
}

func TestRenderOptionsTranslate(t *testing.T) {
	opts := render.RenderOptions{}
	if got := opts.Translate(render.MsgPageNoScript, ""); got != "you should enable javascript to run this app." {
		t.Fatalf("unexpected default %q", got)
	}

	cfg := config.Default()
	cfg.SetLocale("zh")
	opts = render.RenderOptions{Config: cfg}
	if got := opts.Translate(render.MsgPageDescription, ""); got != "ECharts 图表" {
		t.Fatalf("expected locale from config, got %q", got)
	}

	opts = render.RenderOptions{Translator: stubTranslator{"page.title": "Charts"}}
	if got := opts.Translate(render.MsgPageTitle, "x"); got != "Charts" {
		t.Fatalf("expected custom translator, got %q", got)
	}
	if got := opts.Translate("page.unknown", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
	if got := opts.Translate("page.unknown", ""); got != "page.unknown" {
		t.Fatalf("expected key, got %q", got)
	}

	var seen string
	opts.OnMissing = func(locale, key string, _ []any, err error) string {
		seen = locale + ":" + key
		return "missing"
	}
	opts.Locale = "de"
	if got := opts.Translate("page.unknown", "fallback"); got != "missing" || seen != "de:page.unknown" {
		t.Fatalf("unexpected missing handling %q %q", got, seen)
	}
}
