// Package fragment renders a chart as an embeddable HTML snippet: a sized
// container and the script that initializes it.
package fragment

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-chartopts/pkg/encode"
	"github.com/goliatone/go-chartopts/pkg/render"
	rendertemplate "github.com/goliatone/go-chartopts/pkg/render/template"
	"github.com/goliatone/go-chartopts/pkg/render/template/pongo"
)

// Name is the registry name of the renderer.
const Name = "fragment"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	scripts          bool
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithScripts prepends script tags for the chart dependencies.
func WithScripts(enabled bool) Option {
	return func(cfg *config) {
		cfg.scripts = enabled
	}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
	scripts   bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the fragment renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(
			pongo.WithFS(cfg.templateFS),
			pongo.WithExtension(".tmpl"),
			pongo.WithSetName("fragment"),
		)
		if err != nil {
			return nil, fmt.Errorf("fragment renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}
	return &Renderer{templates: renderer, scripts: cfg.scripts}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, doc render.Document, options render.RenderOptions) ([]byte, error) {
	out, err := r.Fragment(doc, options)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// Fragment renders the snippet as a string.
func (r *Renderer) Fragment(doc render.Document, options render.RenderOptions) (string, error) {
	if r.templates == nil {
		return "", fmt.Errorf("fragment renderer: template renderer is nil")
	}
	data, err := Context(doc, options)
	if err != nil {
		return "", err
	}
	if r.scripts {
		data["scripts"] = ScriptURLs(doc, options)
	}
	result, err := r.templates.RenderTemplate("templates/fragment.tmpl", data)
	if err != nil {
		return "", fmt.Errorf("fragment renderer: render template: %w", err)
	}
	return result, nil
}

// Context builds the template values of a chart. The option document is
// encoded with HTML escaping so it can sit inside a script element.
func Context(doc render.Document, options render.RenderOptions) (map[string]any, error) {
	id := strings.TrimSpace(doc.ID)
	if id == "" {
		id = uuid.NewString()
	}

	var option []byte
	if doc.Option == nil {
		option = []byte("{}")
	} else {
		encOpts := []encode.Option{encode.WithEscapeHTML(true)}
		if options.Indent {
			encOpts = append(encOpts, encode.WithIndent("", "  "))
		}
		var err error
		if option, err = encode.JSON(doc.Option, encOpts...); err != nil {
			return nil, fmt.Errorf("fragment renderer: encode option: %w", err)
		}
	}

	idJS, err := json.Marshal(id)
	if err != nil {
		return nil, err
	}
	initTheme, err := json.Marshal(options.InitThemeOrDefault())
	if err != nil {
		return nil, err
	}
	engine, err := json.Marshal(options.EngineOrDefault())
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"id":         id,
		"id_js":      string(idJS),
		"var":        JSIdent(id),
		"width":      orDefault(doc.Width, "600px"),
		"height":     orDefault(doc.Height, "400px"),
		"option":     string(option),
		"init_theme": string(initTheme),
		"engine":     string(engine),
	}, nil
}

// ScriptURLs resolves the chart dependencies against the assets URL.
func ScriptURLs(doc render.Document, options render.RenderOptions) []string {
	out := make([]string, 0, len(doc.Dependencies))
	seen := make(map[string]struct{}, len(doc.Dependencies))
	for _, dep := range doc.Dependencies {
		url := options.AssetURL(dep)
		if _, ok := seen[url]; ok {
			continue
		}
		seen[url] = struct{}{}
		out = append(out, url)
	}
	return out
}

// JSIdent turns id into a JavaScript identifier suffix.
func JSIdent(id string) string {
	var b strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
