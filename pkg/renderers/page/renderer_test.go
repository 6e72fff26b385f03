package page_test

import (
	"context"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-chartopts/pkg/config"
	"github.com/goliatone/go-chartopts/pkg/render"
	"github.com/goliatone/go-chartopts/pkg/renderers/page"
)

func newRenderer(t *testing.T, opts ...page.Option) *page.Renderer {
	t.Helper()
	r, err := page.New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestRenderPage(t *testing.T) {
	r := newRenderer(t)
	cfg := config.Default()
	if err := cfg.SetAssetsURL("http://localhost:8080/assets/"); err != nil {
		t.Fatalf("SetAssetsURL: %v", err)
	}
	doc := render.Document{
		ID:           "sales",
		Option:       map[string]any{"series": []any{}},
		Dependencies: []string{"echarts.min.js", "maps/china.js"},
	}

	out, err := r.Render(context.Background(), doc, render.RenderOptions{Config: cfg})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(out)
	for _, want := range []string{
		"<!DOCTYPE html>",
		`<meta charset="utf-8">`,
		"<title>Awesome Echarts</title>",
		`<script type="text/javascript" src="http://localhost:8080/assets/echarts.min.js"></script>`,
		`<script type="text/javascript" src="http://localhost:8080/assets/maps/china.js"></script>`,
		"<noscript>you should enable javascript to run this app.</noscript>",
		`<div id="sales_container">`,
		`var option_sales = {"series":[]};`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in page:\n%s", want, html)
		}
	}
	if strings.Index(html, "echarts.min.js") > strings.Index(html, "echarts.init") {
		t.Fatalf("scripts must load before the chart initializes:\n%s", html)
	}
}

func TestRenderSanitizesTitleAndHead(t *testing.T) {
	r := newRenderer(t)
	opts := render.RenderOptions{
		Title: `<img src=x onerror=alert(1)>Quarterly <b>sales</b>`,
		ExtraHead: `<link rel="stylesheet" href="/app.css">` +
			`<script>alert("head")</script>` +
			`<meta name="author" content="ops">` +
			`<style>body{}</style>`,
	}
	out, err := r.Render(context.Background(), render.Document{ID: "c"}, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "<title>Quarterly sales</title>") {
		t.Fatalf("expected sanitized title:\n%s", html)
	}
	for _, want := range []string{`<link rel="stylesheet" href="/app.css">`, `<meta name="author" content="ops">`} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in head:\n%s", want, html)
		}
	}
	for _, banned := range []string{"onerror", `alert("head")`, "<style>"} {
		if strings.Contains(html, banned) {
			t.Fatalf("unexpected %q in page:\n%s", banned, html)
		}
	}
}

func TestRenderThemeVariables(t *testing.T) {
	r := newRenderer(t, page.WithMeta("de", "", ""))
	opts := render.RenderOptions{
		Theme: &theme.RendererConfig{
			Theme:   "midnight",
			Tokens:  map[string]string{"background": "#101820"},
			CSSVars: map[string]string{"--background": "#101820", "--text": "#eeeeee"},
		},
	}
	out, err := r.Render(context.Background(), render.Document{ID: "c"}, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(out)
	for _, want := range []string{
		`<html lang="de">`,
		`<meta name="theme-color" content="#101820">`,
		`<body style="--background: #101820; --text: #eeeeee;">`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in page:\n%s", want, html)
		}
	}
}

func TestRenderLocale(t *testing.T) {
	r := newRenderer(t)
	out, err := r.Render(context.Background(), render.Document{ID: "c"}, render.RenderOptions{Locale: "zh-CN"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(out)
	for _, want := range []string{
		`<html lang="zh-CN">`,
		`<meta name="description" content="ECharts 图表">`,
		"<noscript>请启用 JavaScript 以显示图表。</noscript>",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in page:\n%s", want, html)
		}
	}
}

func TestContentType(t *testing.T) {
	r := newRenderer(t)
	if r.Name() != page.Name || r.ContentType() != "text/html; charset=utf-8" {
		t.Fatalf("unexpected identity %s %s", r.Name(), r.ContentType())
	}
}
