package chart

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-chartopts/components/mapdata"
	"github.com/goliatone/go-chartopts/pkg/config"
	"github.com/goliatone/go-chartopts/pkg/coords"
	"github.com/goliatone/go-chartopts/pkg/encode"
	"github.com/goliatone/go-chartopts/pkg/option"
	"github.com/goliatone/go-chartopts/pkg/render"
	"github.com/goliatone/go-chartopts/pkg/schemas"
	"github.com/goliatone/go-chartopts/pkg/themes"
)

// Chart is a root option tree plus the metadata needed to render it.
type Chart struct {
	mu sync.Mutex

	id     string
	width  string
	height string

	root *option.Node
	// base hosts series, legend and coordinate components. It is the root
	// itself except for timelines.
	base *option.Node

	cfg      *config.Config
	coords   *coords.Registry
	maps     *mapdata.Store
	selector *themes.Selector

	deps      []string
	initTheme string
	themeCfg  *theme.RendererConfig
}

type Option func(*settings)

type settings struct {
	id           string
	width        any
	height       any
	cfg          *config.Config
	coords       *coords.Registry
	maps         *mapdata.Store
	selector     *themes.Selector
	themeName    string
	themeVariant string
	themeSet     bool
}

// WithID sets the chart id used for the container element and script
// variables. A random id is generated otherwise.
func WithID(id string) Option {
	return func(s *settings) {
		s.id = id
	}
}

// WithSize sets the container size. Values go through ParseSize; nil keeps
// the configured default.
func WithSize(width, height any) Option {
	return func(s *settings) {
		s.width = width
		s.height = height
	}
}

// WithConfig supplies the configuration for asset URLs, default size and
// theme.
func WithConfig(cfg *config.Config) Option {
	return func(s *settings) {
		if cfg != nil {
			s.cfg = cfg
		}
	}
}

// WithTheme applies a palette theme. Blank values use the configured theme.
func WithTheme(name, variant string) Option {
	return func(s *settings) {
		s.themeName = name
		s.themeVariant = variant
		s.themeSet = true
	}
}

// WithThemeSelector resolves themes from selector instead of the bundled set.
func WithThemeSelector(selector *themes.Selector) Option {
	return func(s *settings) {
		if selector != nil {
			s.selector = selector
		}
	}
}

// WithCoords replaces the coordinate system registry.
func WithCoords(reg *coords.Registry) Option {
	return func(s *settings) {
		if reg != nil {
			s.coords = reg
		}
	}
}

// WithMapStore replaces the map data used by UseMap and map series.
func WithMapStore(store *mapdata.Store) Option {
	return func(s *settings) {
		if store != nil {
			s.maps = store
		}
	}
}

// New creates an empty chart.
func New(opts ...Option) (*Chart, error) {
	return newChart(schemas.Root, "", opts)
}

func newChart(schema *option.Schema, baseField string, opts []Option) (*Chart, error) {
	s := settings{}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	if s.cfg == nil {
		s.cfg = config.Default()
	}
	if s.coords == nil {
		s.coords = coords.NewRegistry()
	}
	if s.selector == nil {
		s.selector = themes.NewSelector()
	}
	if s.id == "" {
		s.id = uuid.NewString()
	}

	defW, defH := s.cfg.Size()
	if s.width == nil {
		s.width = defW
	}
	if s.height == nil {
		s.height = defH
	}
	width, err := ParseSize(s.width)
	if err != nil {
		return nil, fmt.Errorf("chart: width: %w", err)
	}
	height, err := ParseSize(s.height)
	if err != nil {
		return nil, fmt.Errorf("chart: height: %w", err)
	}

	root := option.New(schema)
	base := root
	if baseField != "" {
		if base, err = root.Field(baseField); err != nil {
			return nil, err
		}
	}

	c := &Chart{
		id:        s.id,
		width:     width,
		height:    height,
		root:      root,
		base:      base,
		cfg:       s.cfg,
		coords:    s.coords,
		maps:      s.maps,
		selector:  s.selector,
		deps:      slices.Clone(schema.Dependencies()),
		initTheme: "white",
	}

	name, variant := s.themeName, s.themeVariant
	if !s.themeSet {
		name, variant = s.cfg.Theme()
	}
	if s.themeSet || name != "" {
		if err := c.applyTheme(name, variant); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// applyTheme copies the theme palette and background into the option tree.
func (c *Chart) applyTheme(name, variant string) error {
	sel, err := c.selector.Select(name, variant)
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	tokens := themes.Tokens(sel)
	if palette := themes.Palette(tokens); len(palette) > 0 {
		colors := make([]any, len(palette))
		for i, p := range palette {
			colors[i] = p
		}
		if err := c.base.Set("color", colors); err != nil {
			return err
		}
	}
	if bg := tokens[themes.TokenBackground]; bg != "" {
		if err := c.base.Set("backgroundColor", bg); err != nil {
			return err
		}
	}
	if text := tokens[themes.TokenText]; text != "" {
		if err := c.base.MustField("textStyle").Set("color", text); err != nil {
			return err
		}
	}
	c.initTheme = themes.InitTheme(tokens)
	c.themeCfg = themes.RendererConfig(sel)
	return nil
}

// ID returns the chart id.
func (c *Chart) ID() string { return c.id }

// Size returns the container width and height.
func (c *Chart) Size() (width, height string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width, c.height
}

// SetSize changes the container size.
func (c *Chart) SetSize(width, height any) error {
	w, err := ParseSize(width)
	if err != nil {
		return fmt.Errorf("chart: width: %w", err)
	}
	h, err := ParseSize(height)
	if err != nil {
		return fmt.Errorf("chart: height: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.width, c.height = w, h
	return nil
}

// Config returns the chart configuration.
func (c *Chart) Config() *config.Config { return c.cfg }

// Root returns the node holding the chart options. For timelines this is
// the base option shared by every page. The node is not guarded by the
// chart lock: read it only while no other goroutine mutates the chart, and
// mutate through Update, Opts or AddChart.
func (c *Chart) Root() *option.Node { return c.base }

// Update runs fn with the option tree while holding the chart lock.
func (c *Chart) Update(fn func(root *option.Node) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fn(c.base)
}

// Opts merges values into the root options, like option.Node.Opts.
func (c *Chart) Opts(values any, kv ...any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := c.base.Opts(values, kv...)
	return err
}

// SetColors replaces the palette series cycle through.
func (c *Chart) SetColors(colors ...any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.base.Set("color", slices.Clone(colors))
}

// Anim toggles animation and merges further animation settings such as
// "duration" or "easing", corrected against the animation fields.
func (c *Chart) Anim(enabled bool, kv ...any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.base.Set("animation", enabled); err != nil {
		return err
	}
	if len(kv) == 0 {
		return nil
	}
	_, err := c.base.Opts(nil, kv...)
	return err
}

// Dependencies lists the script files the chart needs, in load order.
func (c *Chart) Dependencies() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.deps)
}

// AddDependency records an extra script file.
func (c *Chart) AddDependency(files ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addDeps(files...)
}

func (c *Chart) addDeps(files ...string) {
	for _, f := range files {
		if f != "" && !slices.Contains(c.deps, f) {
			c.deps = append(c.deps, f)
		}
	}
}

// Clone returns an independent copy of the chart with a fresh id.
func (c *Chart) Clone() *Chart {
	c.mu.Lock()
	defer c.mu.Unlock()

	root := c.root.Clone()
	base := root
	if c.base != c.root {
		base, _ = root.Field(c.base.Name())
	}
	return &Chart{
		id:        uuid.NewString(),
		width:     c.width,
		height:    c.height,
		root:      root,
		base:      base,
		cfg:       c.cfg,
		coords:    c.coords,
		maps:      c.maps,
		selector:  c.selector,
		deps:      slices.Clone(c.deps),
		initTheme: c.initTheme,
		themeCfg:  c.themeCfg,
	}
}

// Document snapshots the chart for a renderer.
func (c *Chart) Document() render.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	return render.Document{
		ID:           c.id,
		Width:        c.width,
		Height:       c.height,
		Option:       c.root.Clone(),
		Dependencies: slices.Clone(c.deps),
	}
}

// JSON encodes the option document.
func (c *Chart) JSON(opts ...encode.Option) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return encode.JSON(c.root, opts...)
}

// YAML encodes the option document as YAML.
func (c *Chart) YAML() ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return encode.YAML(c.root)
}

// RenderOptions fills the chart defaults into opts: configuration, init
// theme and theme variables.
func (c *Chart) RenderOptions(opts render.RenderOptions) render.RenderOptions {
	c.mu.Lock()
	defer c.mu.Unlock()
	if opts.Config == nil {
		opts.Config = c.cfg
	}
	if opts.InitTheme == "" {
		opts.InitTheme = c.initTheme
	}
	if opts.Theme == nil {
		opts.Theme = c.themeCfg
	}
	return opts
}

// Render runs r over a snapshot of the chart.
func (c *Chart) Render(ctx context.Context, r render.Renderer, opts render.RenderOptions) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("chart: renderer is nil")
	}
	return r.Render(ctx, c.Document(), c.RenderOptions(opts))
}

func (c *Chart) mapStore() (*mapdata.Store, error) {
	if c.maps != nil {
		return c.maps, nil
	}
	store, err := mapdata.Default()
	if err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}
	c.maps = store
	return store, nil
}
