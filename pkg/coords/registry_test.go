package coords

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-chartopts/pkg/option"
	"github.com/goliatone/go-chartopts/pkg/schemas"
)

func series(t *testing.T, schema *option.Schema, kv ...any) *option.Node {
	t.Helper()
	n := option.New(schema)
	if _, err := n.Opts(nil, kv...); err != nil {
		t.Fatalf("opts: %v", err)
	}
	return n
}

func TestResolve_Builtins(t *testing.T) {
	reg := NewRegistry()

	cases := []struct {
		name       string
		series     *option.Node
		expect     string
		components []string
	}{
		{"bar", series(t, schemas.Bar, "type", "bar"), Cartesian2D, []string{"xAxis", "yAxis"}},
		{"scatter", series(t, schemas.Scatter, "type", "scatter"), Cartesian2D, []string{"xAxis", "yAxis"}},
		{"scatter3D", series(t, schemas.Scatter3D, "type", "scatter3D"), Cartesian3D, []string{"grid3D", "xAxis3D", "yAxis3D", "zAxis3D"}},
		{"radar", series(t, schemas.RadarSeries, "type", "radar"), Radar, []string{"radar"}},
		{"polar bar", series(t, schemas.Bar, "type", "bar", "coordinateSystem", "polar"), Polar, []string{"polar", "radiusAxis", "angleAxis"}},
		{"geo scatter", series(t, schemas.Scatter, "type", "scatter", "coordinateSystem", "geo"), Geo, []string{"geo"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := reg.Resolve(tc.series)
			if !ok || got != tc.expect {
				t.Fatalf("expected %q, got %q (ok=%v)", tc.expect, got, ok)
			}
			if diff := cmp.Diff(tc.components, reg.Components(tc.series)); diff != "" {
				t.Fatalf("components mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolve_NoSystem(t *testing.T) {
	reg := NewRegistry()
	pie := series(t, schemas.Pie, "type", "pie")
	if got, ok := reg.Resolve(pie); ok {
		t.Fatalf("pie should not resolve a coordinate system, got %q", got)
	}
	if comps := reg.Components(pie); comps != nil {
		t.Fatalf("expected no components, got %v", comps)
	}
}

func TestRegister_PriorityAndOrder(t *testing.T) {
	reg := &Registry{}
	always := func(*option.Node) bool { return true }
	reg.Register("low", 10, []string{"a"}, always)
	reg.Register("high", 20, []string{"b"}, always)
	reg.Register("high-later", 20, []string{"c"}, always)
	reg.Register("  ", 99, nil, always)

	n := option.New(schemas.Series)
	if got, _ := reg.Resolve(n); got != "high" {
		t.Fatalf("expected priority then registration order, got %q", got)
	}
	if diff := cmp.Diff([]string{"low", "high", "high-later"}, reg.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_EmptyRegistry(t *testing.T) {
	var reg *Registry
	if _, ok := reg.Resolve(option.New(schemas.Series)); ok {
		t.Fatalf("nil registry must not resolve")
	}
}
