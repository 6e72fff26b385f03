package render

import (
	"context"
)

// Document is everything a renderer needs to emit one chart.
type Document struct {
	// ID is the DOM id of the chart container.
	ID string
	// Width and Height are CSS sizes.
	Width  string
	Height string
	// Option is the option tree, encoded with the encode package.
	Option any
	// Dependencies lists script files, relative to the assets URL or absolute.
	Dependencies []string
}

// Renderer converts a chart document into a byte representation (HTML page,
// fragment, JSON, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc Document, options RenderOptions) ([]byte, error)
}
