// Package document renders the bare option document as JSON or YAML.
package document

import (
	"context"
	"fmt"

	"github.com/goliatone/go-chartopts/pkg/encode"
	"github.com/goliatone/go-chartopts/pkg/render"
)

// JSON writes the option document as JSON. Code fragments are emitted
// verbatim, so the output is a JavaScript object literal when the document
// carries functions.
type JSON struct{}

var _ render.Renderer = JSON{}

func (JSON) Name() string { return "json" }

func (JSON) ContentType() string { return "application/json" }

func (JSON) Render(_ context.Context, doc render.Document, options render.RenderOptions) ([]byte, error) {
	var opts []encode.Option
	if options.Indent {
		opts = append(opts, encode.WithIndent("", "  "))
	}
	out, err := encode.JSON(doc.Option, opts...)
	if err != nil {
		return nil, fmt.Errorf("json renderer: %w", err)
	}
	return append(out, '\n'), nil
}

// YAML writes the option document as YAML.
type YAML struct{}

var _ render.Renderer = YAML{}

func (YAML) Name() string { return "yaml" }

func (YAML) ContentType() string { return "application/yaml" }

func (YAML) Render(_ context.Context, doc render.Document, _ render.RenderOptions) ([]byte, error) {
	out, err := encode.YAML(doc.Option)
	if err != nil {
		return nil, fmt.Errorf("yaml renderer: %w", err)
	}
	return out, nil
}
