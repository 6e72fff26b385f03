// Package chartopts is the top-level entry point: it re-exports the chart
// constructors and wires the bundled renderers into one registry.
package chartopts

import (
	"context"
	"fmt"

	"github.com/goliatone/go-chartopts/pkg/chart"
	"github.com/goliatone/go-chartopts/pkg/option"
	"github.com/goliatone/go-chartopts/pkg/render"
	"github.com/goliatone/go-chartopts/pkg/renderers/document"
	"github.com/goliatone/go-chartopts/pkg/renderers/fragment"
	"github.com/goliatone/go-chartopts/pkg/renderers/page"
)

// Chart aliases chart.Chart.
type Chart = chart.Chart

// Timeline aliases chart.Timeline.
type Timeline = chart.Timeline

// RenderOptions aliases render.RenderOptions for callers that only import
// the root package.
type RenderOptions = render.RenderOptions

// New creates an empty chart.
func New(options ...chart.Option) (*Chart, error) {
	return chart.New(options...)
}

// NewTimeline creates an empty timeline chart.
func NewTimeline(options ...chart.Option) (*Timeline, error) {
	return chart.NewTimeline(options...)
}

// NewSeries builds a series of the given kind. See chart.NewSeries.
func NewSeries(kind, name string, data any, kv ...any) (*option.Node, error) {
	return chart.NewSeries(kind, name, data, kv...)
}

// NewRegistry returns a registry holding the page, fragment, json and yaml
// renderers.
func NewRegistry() (*render.Registry, error) {
	pageRenderer, err := page.New()
	if err != nil {
		return nil, err
	}
	fragmentRenderer, err := fragment.New(fragment.WithScripts(true))
	if err != nil {
		return nil, err
	}
	return render.NewRegistry(pageRenderer, fragmentRenderer, document.JSON{}, document.YAML{})
}

// Render renders c with the named renderer from the bundled registry and
// returns the output with its content type. An empty name uses the
// renderer from the chart configuration.
func Render(ctx context.Context, c *Chart, rendererName string, opts RenderOptions) ([]byte, string, error) {
	if c == nil {
		return nil, "", fmt.Errorf("chartopts: chart is nil")
	}
	reg, err := NewRegistry()
	if err != nil {
		return nil, "", err
	}
	if rendererName == "" {
		rendererName = c.Config().Renderer()
	}
	return reg.Render(ctx, rendererName, c.Document(), c.RenderOptions(opts))
}
