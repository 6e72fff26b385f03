package fragment_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-chartopts/pkg/config"
	"github.com/goliatone/go-chartopts/pkg/render"
	"github.com/goliatone/go-chartopts/pkg/renderers/fragment"
)

func TestRenderEmbedsOption(t *testing.T) {
	r, err := fragment.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	doc := render.Document{
		ID:     "demo-1",
		Width:  "600px",
		Height: "40%",
		Option: map[string]any{"title": map[string]any{"text": "</script><b>"}},
	}

	out, err := r.Render(context.Background(), doc, render.RenderOptions{Engine: "svg"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(out)

	for _, want := range []string{
		`<div id="demo-1_container">`,
		`style="width:600px;height:40%;"`,
		`var chart_demo_1 = echarts.init(document.getElementById("demo-1"), "white", {"renderer": "svg"});`,
		`var option_demo_1 = {"title":{"text":"\u003c/script\u003e\u003cb\u003e"}};`,
		`chart_demo_1.setOption(option_demo_1);`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output:\n%s", want, html)
		}
	}
	if strings.Contains(html, "</script><b>") {
		t.Fatalf("option text escaped the script element:\n%s", html)
	}
	if strings.Contains(html, "<script type=\"text/javascript\" src=") {
		t.Fatalf("scripts should be omitted by default:\n%s", html)
	}
}

func TestRenderDefaults(t *testing.T) {
	r, err := fragment.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := r.Render(context.Background(), render.Document{ID: "c"}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, `style="width:600px;height:400px;"`) {
		t.Fatalf("expected default size:\n%s", html)
	}
	if !strings.Contains(html, "var option_c = {};") {
		t.Fatalf("expected empty option:\n%s", html)
	}
	if !strings.Contains(html, `"white", {"renderer": "canvas"}`) {
		t.Fatalf("expected default theme and engine:\n%s", html)
	}
}

func TestRenderScripts(t *testing.T) {
	r, err := fragment.New(fragment.WithScripts(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cfg := config.Default()
	if err := cfg.SetAssetsURL("https://cdn.example.com/echarts"); err != nil {
		t.Fatalf("SetAssetsURL: %v", err)
	}
	doc := render.Document{
		ID:           "c",
		Dependencies: []string{"echarts.min.js", "echarts-gl.min.js", "echarts.min.js", "https://x.test/map.js"},
	}
	out, err := r.Render(context.Background(), doc, render.RenderOptions{Config: cfg})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(out)
	if got := strings.Count(html, "echarts.min.js"); got != 1 {
		t.Fatalf("expected deduplicated scripts, found %d:\n%s", got, html)
	}
	for _, want := range []string{
		`src="https://cdn.example.com/echarts/echarts.min.js"`,
		`src="https://cdn.example.com/echarts/echarts-gl.min.js"`,
		`src="https://x.test/map.js"`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output:\n%s", want, html)
		}
	}
}

func TestCustomTemplates(t *testing.T) {
	files := fstest.MapFS{
		"templates/fragment.tmpl": {Data: []byte(`{{ var }}={{ option|safe }}`)},
	}
	r, err := fragment.New(fragment.WithTemplatesFS(files))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := r.Render(context.Background(), render.Document{ID: "a.b", Option: []int{1}}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got, want := string(out), "a_b=[1]"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestJSIdent(t *testing.T) {
	if got := fragment.JSIdent("4f0c-9a.x_y"); got != "4f0c_9a_x_y" {
		t.Fatalf("unexpected identifier %q", got)
	}
}
