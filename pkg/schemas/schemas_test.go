package schemas_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-chartopts/pkg/encode"
	"github.com/goliatone/go-chartopts/pkg/option"
	"github.com/goliatone/go-chartopts/pkg/schemas"
	"github.com/goliatone/go-chartopts/pkg/testsupport"
)

func TestAliases(t *testing.T) {
	cases := []struct {
		name   string
		schema *option.Schema
		path   string
		want   string
	}{
		{"title style", schemas.Root, "title.style.color", `{"title":{"textStyle":{"color":"red"}}}`},
		{"legend bgcolor", schemas.Root, "legend.bgcolor", `{"legend":{"backgroundColor":"red"}}`},
		{"split line delegate", schemas.Root, "xAxis.splitLine.color", `{"xAxis":[{"splitLine":{"lineStyle":{"color":"red"}}}]}`},
		{"axis line style", schemas.Root, "yAxis.axisLine.style.color", `{"yAxis":[{"axisLine":{"lineStyle":{"color":"red"}}}]}`},
		{"pie label line", schemas.Pie, "lineStyle.color", `{"labelLine":{"lineStyle":{"color":"red"}}}`},
		{"hover animation", schemas.Bar, "hoverAnimationEasing", `{"hoverAnimation":{"animationEasing":"red"}}`},
		{"data zoom background", schemas.DataZoom, "areaStyle.color", `{"dataBackground":{"areaStyle":{"color":"red"}}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root := option.New(tc.schema)
			node, err := root.Lookup(tc.path)
			if err != nil {
				t.Fatalf("lookup %s: %v", tc.path, err)
			}
			if err := node.Assign("red"); err != nil {
				t.Fatalf("assign: %v", err)
			}
			got, err := encode.JSONString(root)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if got != tc.want {
				t.Fatalf("want %s, got %s", tc.want, got)
			}
		})
	}
}

func TestSeriesKindsShareTheSeriesFields(t *testing.T) {
	for kind, schema := range schemas.SeriesKinds {
		for _, name := range []string{"type", "name", "data", "label", "id", "show"} {
			if !schema.Declares(name) {
				t.Errorf("%s: missing %q", kind, name)
			}
		}
	}
}

func TestDependencies(t *testing.T) {
	if diff := cmp.Diff([]string{schemas.EChartsScript}, schemas.Bar.Dependencies()); diff != "" {
		t.Fatalf("bar dependencies (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{schemas.EChartsScript, schemas.GLScript}, schemas.Scatter3D.Dependencies()); diff != "" {
		t.Fatalf("scatter3D dependencies (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{schemas.GLScript}, schemas.Grid3D.Dependencies()); diff != "" {
		t.Fatalf("grid3D dependencies (-want +got):\n%s", diff)
	}
}

func TestChoicesCorrectValues(t *testing.T) {
	root := option.New(schemas.Root)
	if _, err := root.MustField("xAxis").Opts(map[string]any{"type": "categry", "nameLocaton": "midle"}); err != nil {
		t.Fatalf("opts: %v", err)
	}
	got, err := encode.JSONString(root)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if want := `{"xAxis":[{"nameLocation":"middle","type":"category"}]}`; got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestDocStrings(t *testing.T) {
	f, ok := schemas.Title.Field("text")
	if !ok {
		t.Fatalf("title has no text field")
	}
	if f.Doc != "title of chart" {
		t.Fatalf("unexpected doc %q", f.Doc)
	}
}

func TestRootFromOptionFile(t *testing.T) {
	root := option.New(schemas.Root)
	testsupport.MustApplyOptionFile(t, root, "testdata/root.yaml")

	got, err := encode.JSON(root)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	testsupport.AssertGolden(t, "testdata/root.golden.json", got)
}
