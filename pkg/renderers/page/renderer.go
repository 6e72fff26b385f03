// Package page renders a chart as a standalone HTML document that loads its
// scripts from the configured assets URL.
package page

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-chartopts/pkg/render"
	rendertemplate "github.com/goliatone/go-chartopts/pkg/render/template"
	"github.com/goliatone/go-chartopts/pkg/render/template/pongo"
	"github.com/goliatone/go-chartopts/pkg/renderers/fragment"
)

const (
	// Name is the registry name of the renderer.
	Name = "page"
	// DefaultTitle is used when RenderOptions.Title is blank.
	DefaultTitle = "Awesome Echarts"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	fragment         *fragment.Renderer
	lang             string
	description      string
	themeColor       string
}

// WithTemplatesFS supplies an alternate page template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads the page template from a directory on disk.
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

// WithFragment replaces the renderer used for the chart body.
func WithFragment(r *fragment.Renderer) Option {
	return func(cfg *config) {
		if r != nil {
			cfg.fragment = r
		}
	}
}

// WithMeta sets the document language, description and theme-color meta.
// Blank language and description follow the render locale.
func WithMeta(lang, description, themeColor string) Option {
	return func(cfg *config) {
		if lang != "" {
			cfg.lang = lang
		}
		if description != "" {
			cfg.description = description
		}
		if themeColor != "" {
			cfg.themeColor = themeColor
		}
	}
}

type Renderer struct {
	templates   rendertemplate.TemplateRenderer
	fragment    *fragment.Renderer
	lang        string
	description string
	themeColor  string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the page renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		themeColor: "#ffffff",
	}
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
			pongo.WithSetName("page"),
		)
		if err != nil {
			return nil, fmt.Errorf("page renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	body := cfg.fragment
	if body == nil {
		var err error
		if body, err = fragment.New(); err != nil {
			return nil, fmt.Errorf("page renderer: %w", err)
		}
	}

	return &Renderer{
		templates:   renderer,
		fragment:    body,
		lang:        cfg.lang,
		description: cfg.description,
		themeColor:  cfg.themeColor,
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, doc render.Document, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("page renderer: template renderer is nil")
	}

	body, err := r.fragment.Fragment(doc, options)
	if err != nil {
		return nil, fmt.Errorf("page renderer: %w", err)
	}

	title := sanitizeTitle(options.Title)
	if title == "" {
		title = options.Translate(render.MsgPageTitle, DefaultTitle)
	}
	lang := r.lang
	if lang == "" {
		lang = options.LocaleOrDefault()
	}
	description := r.description
	if description == "" {
		description = options.Translate(render.MsgPageDescription, "ECharts chart")
	}

	data := map[string]any{
		"lang":        lang,
		"description": description,
		"noscript":    options.Translate(render.MsgPageNoScript, "you should enable javascript to run this app."),
		"theme_color": r.themeColor,
		"title":       title,
		"scripts":     fragment.ScriptURLs(doc, options),
		"extra_head":  sanitizeHead(options.ExtraHead),
		"body":        body,
	}
	if options.Theme != nil {
		if vars := options.Theme.CSSVars; len(vars) > 0 {
			data["theme_vars"] = vars
		}
		if bg, ok := options.Theme.Tokens["background"]; ok && bg != "" {
			data["theme_color"] = bg
		}
	}

	out, err := r.templates.RenderTemplate("templates/page.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("page renderer: render template: %w", err)
	}
	return []byte(out), nil
}
