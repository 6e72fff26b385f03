package scalar

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestGradientNormalizesOffsets(t *testing.T) {
	g, err := Gradient("#fff", "#888", "#000")
	if err != nil {
		t.Fatalf("Gradient: %v", err)
	}
	want := []ColorStop{
		{Offset: 0, Color: "#fff"},
		{Offset: 0.5, Color: "#888"},
		{Offset: 1, Color: "#000"},
	}
	if diff := cmp.Diff(want, g.Stops); diff != "" {
		t.Fatalf("stops mismatch (-want +got):\n%s", diff)
	}

	got := g.JS().String()
	wantJS := `new echarts.graphic.LinearGradient(0,0,0,1,[{"offset":0,"color":"#fff"},{"offset":0.5,"color":"#888"},{"offset":1,"color":"#000"}],false)`
	if got != wantJS {
		t.Fatalf("unexpected js\nwant %s\ngot  %s", wantJS, got)
	}
}

func TestGradientMixedStops(t *testing.T) {
	g, err := Gradient([]any{0, "red"}, map[string]any{"0.3": "green"}, ColorStop{Offset: 1, Color: "blue"})
	if err != nil {
		t.Fatalf("Gradient: %v", err)
	}
	want := []ColorStop{{0, "red"}, {0.3, "green"}, {1, "blue"}}
	if diff := cmp.Diff(want, g.Stops); diff != "" {
		t.Fatalf("stops mismatch (-want +got):\n%s", diff)
	}

	if _, err := Gradient(12); err == nil {
		t.Fatalf("expected error for unsupported stop")
	}
}

func TestImageReferences(t *testing.T) {
	if got := ImageURL("http://x/a.png").String(); got != "image://http://x/a.png" {
		t.Fatalf("url: %s", got)
	}

	img, err := ImageSVG(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script><path d="M0 0L10 10Z"/></svg>`)
	if err != nil {
		t.Fatalf("ImageSVG: %v", err)
	}
	if got := img.String(); got != "path://M0 0L10 10Z" {
		t.Fatalf("svg: %s", got)
	}

	if _, err := ImageSVG(`<svg><circle r="4"/></svg>`); !errors.Is(err, ErrNoPath) {
		t.Fatalf("expected ErrNoPath, got %v", err)
	}

	data, err := json.Marshal(map[string]any{"symbol": img})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"symbol":"path://M0 0L10 10Z"}` {
		t.Fatalf("json: %s", data)
	}
}

func TestImageFileInlinesData(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "dot.png")
	if err := os.WriteFile(name, []byte{1, 2, 3}, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	img, err := ImageFile(name)
	if err != nil {
		t.Fatalf("ImageFile: %v", err)
	}
	if got := img.String(); got != "image://data:image/png;base64,AQID" {
		t.Fatalf("unexpected uri %s", got)
	}
}

func TestTemporalFormatting(t *testing.T) {
	ts := time.Date(2021, time.March, 4, 5, 6, 7, 8000, time.UTC)
	if got := DateOf(ts).String(); got != "2021-03-04" {
		t.Fatalf("date: %s", got)
	}
	if got := ClockOf(ts).String(); got != "05:06:07.000008" {
		t.Fatalf("clock: %s", got)
	}
	if got := Timestamp(ts); got != "2021-03-04T05:06:07.000008Z" {
		t.Fatalf("timestamp: %s", got)
	}
}

func TestJSCodeYAMLTag(t *testing.T) {
	out, err := yaml.Marshal(map[string]any{"formatter": JS("function (p) { return p.name; }")})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(out), "!js") {
		t.Fatalf("expected js tag in %q", out)
	}

	var back struct {
		Formatter JSCode `yaml:"formatter"`
	}
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Formatter != "function (p) { return p.name; }" {
		t.Fatalf("round trip: %q", back.Formatter)
	}
}
