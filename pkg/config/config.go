// Package config holds the settings shared by charts, renderers and the
// asset server.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultAssetsURL is where scripts are loaded from unless configured.
	DefaultAssetsURL = "http://127.0.0.1/assets/"
	// DefaultLocale selects the language of page strings.
	DefaultLocale = "en"
	// DefaultRenderer is the output format used by the CLI.
	DefaultRenderer = "page"
)

// ErrInvalid reports a configuration that fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is safe for concurrent use. The zero value is not usable; start
// from Default or Load.
type Config struct {
	mu        sync.RWMutex
	assetsURL string
	locale    string
	renderer  string
	theme     string
	variant   string
	width     string
	height    string

	nextID    int
	listeners map[int]func(prev, next string)
}

type fileConfig struct {
	AssetsURL string `yaml:"assets_url,omitempty"`
	Locale    string `yaml:"locale,omitempty"`
	Renderer  string `yaml:"renderer,omitempty"`
	Theme     string `yaml:"theme,omitempty"`
	Variant   string `yaml:"variant,omitempty"`
	Width     string `yaml:"width,omitempty"`
	Height    string `yaml:"height,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		assetsURL: DefaultAssetsURL,
		locale:    DefaultLocale,
		renderer:  DefaultRenderer,
		width:     "600px",
		height:    "400px",
	}
}

// Load reads a YAML file over the defaults. Missing keys keep their
// default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}
	var raw fileConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	cfg.apply(raw)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) apply(raw fileConfig) {
	set := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}
	set(&c.assetsURL, raw.AssetsURL)
	if !strings.HasSuffix(c.assetsURL, "/") {
		c.assetsURL += "/"
	}
	set(&c.locale, raw.Locale)
	set(&c.renderer, raw.Renderer)
	set(&c.theme, raw.Theme)
	set(&c.variant, raw.Variant)
	set(&c.width, raw.Width)
	set(&c.height, raw.Height)
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	c.mu.RLock()
	raw := fileConfig{
		AssetsURL: c.assetsURL,
		Locale:    c.locale,
		Renderer:  c.renderer,
		Theme:     c.theme,
		Variant:   c.variant,
		Width:     c.width,
		Height:    c.height,
	}
	c.mu.RUnlock()

	data, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Validate checks that the assets URL is absolute (http, https or file) and
// that the renderer name is set.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if err := validateAssetsURL(c.assetsURL); err != nil {
		return err
	}
	if strings.TrimSpace(c.renderer) == "" {
		return fmt.Errorf("%w: renderer is empty", ErrInvalid)
	}
	return nil
}

func validateAssetsURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: assets url %q: %v", ErrInvalid, raw, err)
	}
	switch u.Scheme {
	case "http", "https", "file":
		return nil
	default:
		return fmt.Errorf("%w: assets url %q must be http, https or file", ErrInvalid, raw)
	}
}

// AssetsURL returns the base URL scripts are loaded from.
func (c *Config) AssetsURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.assetsURL
}

// SetAssetsURL changes the assets base URL and notifies subscribers when
// the value changes. A trailing slash is added when missing.
func (c *Config) SetAssetsURL(raw string) error {
	next := strings.TrimSpace(raw)
	if next != "" && !strings.HasSuffix(next, "/") {
		next += "/"
	}
	if err := validateAssetsURL(next); err != nil {
		return err
	}

	c.mu.Lock()
	old := c.assetsURL
	c.assetsURL = next
	listeners := make([]func(prev, next string), 0, len(c.listeners))
	ids := make([]int, 0, len(c.listeners))
	for id := range c.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		listeners = append(listeners, c.listeners[id])
	}
	c.mu.Unlock()

	if old == next {
		return nil
	}
	for _, fn := range listeners {
		fn(old, next)
	}
	return nil
}

// OnAssetsURLChange subscribes fn to assets URL changes. Subscribers run in
// subscription order, outside the lock. The returned function cancels the
// subscription.
func (c *Config) OnAssetsURLChange(fn func(prev, next string)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.listeners == nil {
		c.listeners = make(map[int]func(prev, next string))
	}
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.listeners, id)
			c.mu.Unlock()
		})
	}
}

// ResolveAsset returns the URL of a script. Names that are already URLs
// are returned unchanged.
func (c *Config) ResolveAsset(name string) string {
	name = strings.TrimSpace(name)
	if isURL(name) {
		return name
	}
	return c.AssetsURL() + strings.TrimPrefix(name, "/")
}

func isURL(s string) bool {
	for _, prefix := range []string{"http://", "https://", "file://", "//"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// Locale returns the help text language.
func (c *Config) Locale() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.locale
}

// Renderer returns the default renderer name.
func (c *Config) Renderer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.renderer
}

// Theme returns the configured theme name and variant.
func (c *Config) Theme() (name, variant string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.theme, c.variant
}

// Size returns the default chart width and height.
func (c *Config) Size() (width, height string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.width, c.height
}

// SetLocale changes the page string language.
func (c *Config) SetLocale(locale string) {
	c.mu.Lock()
	c.locale = strings.TrimSpace(locale)
	c.mu.Unlock()
}

// SetRenderer changes the default renderer name.
func (c *Config) SetRenderer(name string) {
	c.mu.Lock()
	c.renderer = strings.TrimSpace(name)
	c.mu.Unlock()
}

// SetTheme changes the theme name and variant.
func (c *Config) SetTheme(name, variant string) {
	c.mu.Lock()
	c.theme = strings.TrimSpace(name)
	c.variant = strings.TrimSpace(variant)
	c.mu.Unlock()
}

// SetSize changes the default chart size.
func (c *Config) SetSize(width, height string) {
	c.mu.Lock()
	c.width = strings.TrimSpace(width)
	c.height = strings.TrimSpace(height)
	c.mu.Unlock()
}
