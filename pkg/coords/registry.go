package coords

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-chartopts/pkg/option"
)

// Built-in coordinate system identifiers exposed by the registry.
const (
	Cartesian2D = "cartesian2d"
	Cartesian3D = "cartesian3D"
	Polar       = "polar"
	Radar       = "radar"
	Geo         = "geo"
	Calendar    = "calendar"
	Single      = "singleAxis"
	Parallel    = "parallel"
)

// Matcher decides whether a coordinate system hosts the supplied series.
type Matcher func(series *option.Node) bool

type rule struct {
	name       string
	priority   int
	components []string
	match      Matcher
	order      int
}

// Registry selects the coordinate system of a series and the root
// components it needs. Higher priority wins; ties fall back to registration
// order. An empty registry never resolves a system.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in coordinate systems
// registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a coordinate system with the root components it activates.
// Callers should avoid duplicate names; the latest registration wins when a
// series names its coordinate system explicitly.
func (r *Registry) Register(name string, priority int, components []string, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:       trimmed,
		priority:   priority,
		components: append([]string(nil), components...),
		match:      matcher,
		order:      len(r.rules),
	})
}

// Resolve returns the coordinate system of a series. An explicit
// coordinateSystem value naming a registered system is honoured before
// matcher evaluation.
func (r *Registry) Resolve(series *option.Node) (string, bool) {
	entry, ok := r.resolve(series)
	return entry.name, ok
}

// Components returns the root components to activate for series, nil when
// no coordinate system applies.
func (r *Registry) Components(series *option.Node) []string {
	entry, ok := r.resolve(series)
	if !ok {
		return nil
	}
	return append([]string(nil), entry.components...)
}

// Names lists the registered systems in registration order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.rules))
	for _, entry := range r.rules {
		names = append(names, entry.name)
	}
	return names
}

func (r *Registry) resolve(series *option.Node) (rule, bool) {
	if r == nil || series == nil {
		return rule{}, false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return rule{}, false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()

	if explicit := stringValue(series, "coordinateSystem"); explicit != "" {
		for i := len(rules) - 1; i >= 0; i-- {
			if rules[i].name == explicit {
				return rules[i], true
			}
		}
	}

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(series) {
			return entry, true
		}
	}
	return rule{}, false
}

// stringValue reads a raw string child without creating it.
func stringValue(series *option.Node, name string) string {
	s, _ := option.Peek(series).Field(name).Value().(string)
	return strings.TrimSpace(s)
}

func seriesType(kinds ...string) Matcher {
	return func(series *option.Node) bool {
		t := stringValue(series, "type")
		for _, kind := range kinds {
			if t == kind {
				return true
			}
		}
		return false
	}
}

func (r *Registry) registerBuiltins() {
	r.Register(Cartesian3D, 90, []string{"grid3D", "xAxis3D", "yAxis3D", "zAxis3D"},
		seriesType("scatter3D", "line3D", "bar3D", "surface"))

	r.Register(Radar, 80, []string{"radar"}, seriesType("radar"))

	r.Register(Geo, 70, []string{"geo"}, func(series *option.Node) bool {
		return stringValue(series, "coordinateSystem") == Geo
	})

	r.Register(Polar, 70, []string{"polar", "radiusAxis", "angleAxis"}, func(series *option.Node) bool {
		return stringValue(series, "coordinateSystem") == Polar
	})

	r.Register(Calendar, 70, []string{"calendar"}, func(series *option.Node) bool {
		return stringValue(series, "coordinateSystem") == Calendar
	})

	r.Register(Single, 70, []string{"singleAxis"}, func(series *option.Node) bool {
		return stringValue(series, "coordinateSystem") == Single
	})

	r.Register(Parallel, 60, []string{"parallel", "parallelAxis"}, seriesType("parallel"))

	r.Register(Cartesian2D, 50, []string{"xAxis", "yAxis"},
		seriesType("line", "bar", "scatter", "effectScatter", "heatmap", "boxplot", "candlestick", "pictorialBar"))
}
