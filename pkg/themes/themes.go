// Package themes bundles chart palettes as go-theme manifests and turns a
// selection into renderer settings.
package themes

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
)

var (
	// ErrUnknownTheme is returned for unregistered theme names.
	ErrUnknownTheme = errors.New("themes: unknown theme")
	// ErrUnknownVariant is returned when a theme lacks the requested variant.
	ErrUnknownVariant = errors.New("themes: unknown variant")
)

// Selector resolves theme selections from registered manifests. It
// satisfies theme.ThemeSelector.
type Selector struct {
	mu             sync.RWMutex
	manifests      map[string]*theme.Manifest
	defaultTheme   string
	defaultVariant string
}

var _ theme.ThemeSelector = (*Selector)(nil)

// NewSelector returns a selector preloaded with the bundled manifests.
func NewSelector() *Selector {
	s := &Selector{
		manifests:    make(map[string]*theme.Manifest),
		defaultTheme: DefaultTheme,
	}
	for _, m := range Builtin() {
		_ = s.Register(m)
	}
	return s
}

// Register adds or replaces a manifest.
func (s *Selector) Register(m *theme.Manifest) error {
	if m == nil || strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("themes: manifest name is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.manifests[strings.TrimSpace(m.Name)] = m
	return nil
}

// SetDefaults changes the theme and variant used for blank arguments.
func (s *Selector) SetDefaults(name, variant string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if name != "" {
		s.defaultTheme = name
	}
	s.defaultVariant = variant
}

// Names lists the registered themes in sorted order.
func (s *Selector) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.manifests))
}

// Variants lists the variants of a theme.
func (s *Selector) Variants(name string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.manifests[name]
	if !ok {
		return nil
	}
	return slices.Sorted(maps.Keys(m.Variants))
}

// Select resolves name and variant. Blank values fall back to the defaults.
func (s *Selector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name = strings.TrimSpace(name)
	if name == "" {
		name = s.defaultTheme
	}
	variant = strings.TrimSpace(variant)
	if variant == "" && name == s.defaultTheme {
		variant = s.defaultVariant
	}

	m, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownTheme, name, strings.Join(slices.Sorted(maps.Keys(s.manifests)), ", "))
	}
	if variant != "" {
		if _, ok := m.Variants[variant]; !ok {
			return nil, fmt.Errorf("%w %q for theme %q", ErrUnknownVariant, variant, name)
		}
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: m}, nil
}

// Provider registers the bundled manifests with a go-theme registry.
func Provider() (theme.ThemeProvider, error) {
	reg := theme.NewRegistry()
	for _, m := range Builtin() {
		if err := reg.Register(m); err != nil {
			return nil, fmt.Errorf("themes: register %s: %w", m.Name, err)
		}
	}
	return reg, nil
}

// Tokens merges the manifest tokens with the selected variant's overrides.
func Tokens(sel *theme.Selection) map[string]string {
	out := make(map[string]string)
	if sel == nil || sel.Manifest == nil {
		return out
	}
	maps.Copy(out, sel.Manifest.Tokens)
	if v, ok := sel.Manifest.Variants[sel.Variant]; ok {
		maps.Copy(out, v.Tokens)
	}
	return out
}

// Palette returns the color.N tokens in index order. Gaps end the palette.
func Palette(tokens map[string]string) []string {
	var out []string
	for i := 0; ; i++ {
		c, ok := tokens[colorPrefix+strconv.Itoa(i)]
		if !ok || c == "" {
			return out
		}
		out = append(out, c)
	}
}

// RendererConfig derives renderer settings from a selection. Tokens become
// CSS custom properties with dots replaced by dashes.
func RendererConfig(sel *theme.Selection) *theme.RendererConfig {
	if sel == nil {
		return nil
	}
	tokens := Tokens(sel)
	vars := make(map[string]string, len(tokens))
	for k, v := range tokens {
		vars["--"+strings.ReplaceAll(k, ".", "-")] = v
	}

	partials := make(map[string]string)
	files := make(map[string]string)
	prefix := ""
	if m := sel.Manifest; m != nil {
		maps.Copy(partials, m.Templates)
		maps.Copy(files, m.Assets.Files)
		prefix = m.Assets.Prefix
		if v, ok := m.Variants[sel.Variant]; ok {
			maps.Copy(partials, v.Templates)
			maps.Copy(files, v.Assets.Files)
			if v.Assets.Prefix != "" {
				prefix = v.Assets.Prefix
			}
		}
	}

	return &theme.RendererConfig{
		Theme:    sel.Theme,
		Variant:  sel.Variant,
		Tokens:   tokens,
		CSSVars:  vars,
		Partials: partials,
		AssetURL: func(key string) string {
			file, ok := files[key]
			if !ok || file == "" {
				return ""
			}
			if prefix == "" {
				return file
			}
			return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(file, "/")
		},
	}
}

// InitTheme returns the echarts.init theme name carried by the tokens.
func InitTheme(tokens map[string]string) string {
	if name := tokens[TokenInit]; name != "" {
		return name
	}
	return "white"
}
