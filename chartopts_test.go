package chartopts_test

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	chartopts "github.com/goliatone/go-chartopts"
	"github.com/goliatone/go-chartopts/pkg/chart"
)

func TestRenderWithBundledRenderers(t *testing.T) {
	c, err := chartopts.New(chart.WithID("root"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	line, err := chartopts.NewSeries("line", "visits", []any{3, 1, 2})
	if err != nil {
		t.Fatalf("NewSeries: %v", err)
	}
	if err := c.AddChart(line); err != nil {
		t.Fatalf("AddChart: %v", err)
	}

	cases := []struct {
		renderer    string
		contentType string
		contains    string
	}{
		{"", "text/html; charset=utf-8", "<!DOCTYPE html>"},
		{"fragment", "text/html; charset=utf-8", `<script type="text/javascript" src="http://127.0.0.1/assets/echarts.min.js"></script>`},
		{"json", "application/json", `"name":"visits"`},
		{"yaml", "application/yaml", "name: visits"},
	}
	for _, tc := range cases {
		t.Run(tc.renderer, func(t *testing.T) {
			out, contentType, err := chartopts.Render(context.Background(), c, tc.renderer, chartopts.RenderOptions{})
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if contentType != tc.contentType {
				t.Fatalf("content type %q, want %q", contentType, tc.contentType)
			}
			if !strings.Contains(string(out), tc.contains) {
				t.Fatalf("expected %q in output:\n%s", tc.contains, out)
			}
		})
	}

	if _, _, err := chartopts.Render(context.Background(), c, "svg-png", chartopts.RenderOptions{}); err == nil {
		t.Fatalf("expected unknown renderer error")
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	if _, err := fs.ReadFile(chartopts.PageTemplates(), "templates/page.tmpl"); err != nil {
		t.Fatalf("page template: %v", err)
	}
	if _, err := fs.ReadFile(chartopts.FragmentTemplates(), "templates/fragment.tmpl"); err != nil {
		t.Fatalf("fragment template: %v", err)
	}
}
