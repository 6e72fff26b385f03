package chart

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-chartopts/components/mapdata"
	"github.com/goliatone/go-chartopts/pkg/encode"
	"github.com/goliatone/go-chartopts/pkg/renderers/fragment"
)

// CallJS returns a statement calling method on the chart instance created
// by the HTML renderers, for example chart_x.resize({"width":300}).
// Arguments are JSON-encoded; code fragments are written verbatim.
func (c *Chart) CallJS(method string, args ...any) (string, error) {
	encoded := make([]string, 0, len(args))
	for i, arg := range args {
		out, err := encode.JSON(arg, encode.WithEscapeHTML(true))
		if err != nil {
			return "", fmt.Errorf("chart: %s argument %d: %w", method, i, err)
		}
		encoded = append(encoded, string(out))
	}
	return fmt.Sprintf("chart_%s.%s(%s)", fragment.JSIdent(c.id), method, strings.Join(encoded, ", ")), nil
}

// SetOptionJS returns a setOption call. A nil option sends the chart's own
// options.
func (c *Chart) SetOptionJS(option any, notMerge, lazyUpdate bool) (string, error) {
	if option == nil {
		c.mu.Lock()
		option = c.root.Clone()
		c.mu.Unlock()
	}
	return c.CallJS("setOption", option, notMerge, lazyUpdate)
}

// RegisterMapJS returns the echarts.registerMap statement for a custom map.
func RegisterMapJS(m mapdata.CustomMap) (string, error) {
	parts := make([]string, 0, 3)
	for _, v := range []any{m.Name, m.GeoJSON, m.SpecialAreas} {
		out, err := encode.JSON(v, encode.WithEscapeHTML(true))
		if err != nil {
			return "", fmt.Errorf("chart: register map %q: %w", m.Name, err)
		}
		parts = append(parts, string(out))
	}
	return "echarts.registerMap(" + strings.Join(parts, ", ") + ")", nil
}

// UseMap records the script of a bundled map and returns its path. Names
// registered as custom maps need no script and return "".
func (c *Chart) UseMap(name string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.useMap(name)
}

func (c *Chart) useMap(name string) (string, error) {
	if name == "" {
		name = DefaultMapType
	}
	store, err := c.mapStore()
	if err != nil {
		return "", err
	}
	if _, ok := store.CustomMap(name); ok {
		return "", nil
	}
	path, err := store.Map(name)
	if err != nil {
		return "", fmt.Errorf("chart: %w", err)
	}
	c.addDeps(path)
	return path, nil
}
