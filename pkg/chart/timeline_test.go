package chart_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-chartopts/pkg/chart"
)

func TestTimelinePages(t *testing.T) {
	tl, err := chart.NewTimeline(chart.WithID("t"))
	if err != nil {
		t.Fatalf("NewTimeline: %v", err)
	}
	bar, err := chart.NewSeries("bar", "sales", []any{1, 2})
	if err != nil {
		t.Fatalf("NewSeries: %v", err)
	}
	if err := tl.AddChart(bar, chart.WithoutLegend()); err != nil {
		t.Fatalf("AddChart: %v", err)
	}
	if err := tl.AddPage("2019", "first", []any{3, 4}); err != nil {
		t.Fatalf("AddPage: %v", err)
	}
	if err := tl.AddPage("2020", map[string]any{"text": "second", "subtext": "s"}, []any{5, 6}); err != nil {
		t.Fatalf("AddPage: %v", err)
	}
	if tl.Pages() != 2 {
		t.Fatalf("expected 2 pages, got %d", tl.Pages())
	}

	out, err := tl.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := map[string]any{
		"baseOption": map[string]any{
			"timeline": map[string]any{"data": []any{"2019", "2020"}},
			"series":   []any{map[string]any{"type": "bar", "name": "sales", "data": []any{1.0, 2.0}}},
			"xAxis":    []any{map[string]any{}},
			"yAxis":    []any{map[string]any{}},
		},
		"options": []any{
			map[string]any{"title": map[string]any{"text": "first"}, "series": []any{map[string]any{"data": []any{3.0, 4.0}}}},
			map[string]any{"title": map[string]any{"text": "second", "subtext": "s"}, "series": []any{map[string]any{"data": []any{5.0, 6.0}}}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("timeline mismatch (-want +got):\n%s", diff)
	}

	cp := tl.Clone()
	if err := cp.AddPage("2021", nil); err != nil {
		t.Fatalf("AddPage: %v", err)
	}
	if tl.Pages() != 2 || cp.Pages() != 3 {
		t.Fatalf("clone not independent: %d %d", tl.Pages(), cp.Pages())
	}
}

func TestEmptyTimeline(t *testing.T) {
	tl, err := chart.NewTimeline()
	if err != nil {
		t.Fatalf("NewTimeline: %v", err)
	}
	out, err := tl.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if want := `{"baseOption":{"timeline":{"data":[]}},"options":[]}`; string(out) != want {
		t.Fatalf("want %s got %s", want, out)
	}
}
