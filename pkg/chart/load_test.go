package chart_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-chartopts/pkg/encode"
	"github.com/goliatone/go-chartopts/pkg/schemas"
)

func TestLoadDocument(t *testing.T) {
	doc, err := encode.DecodeYAML([]byte(`
title:
  text: Sales
series:
  - type: bar
    name: sales
    data: [5, 20, 36]
    barWidth: 12
`))
	if err != nil {
		t.Fatalf("DecodeYAML: %v", err)
	}
	c := newChart(t)
	if err := c.Load(doc); err != nil {
		t.Fatalf("Load: %v", err)
	}
	got, err := c.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	want := `{"title":{"text":"Sales"},"series":[{"type":"bar","name":"sales","data":[5,20,36],"barWidth":12}],` +
		`"xAxis":[{}],"yAxis":[{}],"legend":{"data":["sales"],"selected":{"sales":true}}}`
	if string(got) != want {
		t.Fatalf("unexpected json\nwant %s\ngot  %s", want, got)
	}
}

func TestLoadKeepsDocumentLegend(t *testing.T) {
	c := newChart(t)
	err := c.Load(map[string]any{
		"legend": map[string]any{"show": false},
		"series": []any{map[string]any{"type": "scatter3D", "name": "pts", "data": []any{[]any{1, 2, 3}}}},
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got, err := c.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if !strings.Contains(string(got), `"legend":{"show":false}`) {
		t.Fatalf("legend should come from the document: %s", got)
	}
	deps := c.Dependencies()
	if len(deps) != 2 || deps[1] != schemas.GLScript {
		t.Fatalf("unexpected dependencies %v", deps)
	}
}

func TestLoadRejectsBadDocuments(t *testing.T) {
	c := newChart(t)
	if err := c.Load([]any{1}); err == nil {
		t.Fatalf("expected error for a list document")
	}
	if err := c.Load(map[string]any{"series": []any{"bar"}}); err == nil {
		t.Fatalf("expected error for a non-object series")
	}
	if err := c.Load(map[string]any{"series": []any{map[string]any{"name": "x"}}}); err == nil {
		t.Fatalf("expected error for a series without type")
	}
}
