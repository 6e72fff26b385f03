package themes_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-chartopts/pkg/themes"
)

func TestSelectDefaults(t *testing.T) {
	s := themes.NewSelector()
	sel, err := s.Select("", "")
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if sel.Theme != themes.DefaultTheme || sel.Variant != "" {
		t.Fatalf("unexpected selection %s/%s", sel.Theme, sel.Variant)
	}

	s.SetDefaults("white", "dark")
	sel, err = s.Select("", "")
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if sel.Variant != "dark" {
		t.Fatalf("expected default variant, got %q", sel.Variant)
	}
	if got := themes.Tokens(sel)[themes.TokenBackground]; got != "#100c2a" {
		t.Fatalf("variant tokens not merged, got %s", got)
	}
}

func TestSelectErrors(t *testing.T) {
	s := themes.NewSelector()
	if _, err := s.Select("neon", ""); !errors.Is(err, themes.ErrUnknownTheme) {
		t.Fatalf("expected ErrUnknownTheme, got %v", err)
	}
	if _, err := s.Select("vintage", "dark"); !errors.Is(err, themes.ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestPalette(t *testing.T) {
	got := themes.Palette(map[string]string{"color.0": "#a", "color.1": "#b", "color.3": "#d"})
	if diff := cmp.Diff([]string{"#a", "#b"}, got); diff != "" {
		t.Fatalf("palette mismatch (-want +got):\n%s", diff)
	}

	s := themes.NewSelector()
	sel, err := s.Select("macarons", "")
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if p := themes.Palette(themes.Tokens(sel)); len(p) != 10 || p[0] != "#2ec7c9" {
		t.Fatalf("unexpected macarons palette %v", p)
	}
}

func TestRendererConfig(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens:  map[string]string{"color.0": "#123456", "background": "#fff"},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files:  map[string]string{"stylesheet": "theme.css"},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{"background": "#000"},
				Assets: theme.Assets{Files: map[string]string{"vendor": "vendor.dark.js"}},
			},
		},
	}
	s := themes.NewSelector()
	if err := s.Register(manifest); err != nil {
		t.Fatalf("Register: %v", err)
	}
	sel, err := s.Select("acme", "dark")
	if err != nil {
		t.Fatalf("Select: %v", err)
	}

	cfg := themes.RendererConfig(sel)
	want := map[string]string{"--color-0": "#123456", "--background": "#000"}
	if diff := cmp.Diff(want, cfg.CSSVars); diff != "" {
		t.Fatalf("css vars mismatch (-want +got):\n%s", diff)
	}
	if got := cfg.AssetURL("stylesheet"); got != "/assets/themes/acme/theme.css" {
		t.Fatalf("unexpected stylesheet url %s", got)
	}
	if got := cfg.AssetURL("vendor"); got != "/assets/themes/acme/vendor.dark.js" {
		t.Fatalf("unexpected vendor url %s", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("expected empty url, got %s", got)
	}
}

func TestInitTheme(t *testing.T) {
	if got := themes.InitTheme(map[string]string{"init": "dark"}); got != "dark" {
		t.Fatalf("got %s", got)
	}
	if got := themes.InitTheme(nil); got != "white" {
		t.Fatalf("got %s", got)
	}
}

func TestProvider(t *testing.T) {
	if _, err := themes.Provider(); err != nil {
		t.Fatalf("Provider: %v", err)
	}
}

func TestSelectorSatisfiesInterface(t *testing.T) {
	var _ theme.ThemeSelector = themes.NewSelector()
	if diff := cmp.Diff([]string{"dark", "macarons", "vintage", "white"}, themes.NewSelector().Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}
