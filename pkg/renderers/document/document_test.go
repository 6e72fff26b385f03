package document_test

import (
	"context"
	"testing"

	"github.com/goliatone/go-chartopts/pkg/render"
	"github.com/goliatone/go-chartopts/pkg/renderers/document"
	"github.com/goliatone/go-chartopts/pkg/scalar"
)

func TestJSON(t *testing.T) {
	doc := render.Document{Option: map[string]any{
		"title":     map[string]any{"text": "a & b"},
		"formatter": scalar.JS("function (p) { return p.name; }"),
	}}

	out, err := document.JSON{}.Render(context.Background(), doc, render.RenderOptions{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := `{"formatter":function (p) { return p.name; },"title":{"text":"a & b"}}` + "\n"
	if string(out) != want {
		t.Fatalf("want %s got %s", want, out)
	}

	out, err = document.JSON{}.Render(context.Background(), render.Document{Option: map[string]any{"a": 1}}, render.RenderOptions{Indent: true})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if want := "{\n  \"a\": 1\n}\n"; string(out) != want {
		t.Fatalf("want %q got %q", want, out)
	}
}

func TestYAML(t *testing.T) {
	doc := render.Document{Option: map[string]any{"legend": map[string]any{"show": true}}}
	out, err := document.YAML{}.Render(context.Background(), doc, render.RenderOptions{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if want := "legend:\n  show: true\n"; string(out) != want {
		t.Fatalf("want %q got %q", want, out)
	}
}

func TestRegistry(t *testing.T) {
	reg, err := render.NewRegistry(document.JSON{}, document.YAML{})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	out, contentType, err := reg.Render(context.Background(), "JSON", render.Document{Option: []any{1, "x"}}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if contentType != "application/json" || string(out) != "[1,\"x\"]\n" {
		t.Fatalf("unexpected output %s %q", contentType, out)
	}
}
