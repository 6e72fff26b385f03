package chart

import (
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/goliatone/go-chartopts/internal/similar"
	"github.com/goliatone/go-chartopts/pkg/odict"
	"github.com/goliatone/go-chartopts/pkg/option"
	"github.com/goliatone/go-chartopts/pkg/schemas"
)

// DefaultMapType is the map drawn by map series without a mapType.
const DefaultMapType = "china"

var (
	pieColumns = []string{"name", "value", "selected", "label", "labelLine", "emphasis"}
	mapColumns = []string{"name", "value", "label"}
)

// NewSeries builds a standalone series of the given kind ("bar", "line",
// "pie", ...). Misspelled kinds are corrected. Pie and map data rows given
// as lists are turned into objects by PairData. kv holds extra option
// pairs applied last.
func NewSeries(kind, name string, data any, kv ...any) (*option.Node, error) {
	kinds := slices.Sorted(maps.Keys(schemas.SeriesKinds))
	kind = similar.Param(kind, kinds)
	schema, ok := schemas.SeriesKinds[kind]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSeries, kind)
	}

	switch kind {
	case "pie":
		data = PairData(data, pieColumns...)
	case "map":
		data = PairData(data, mapColumns...)
	}

	s := option.New(schema)
	if err := s.Set("type", kind); err != nil {
		return nil, err
	}
	if name != "" {
		if err := s.Set("name", name); err != nil {
			return nil, err
		}
	}
	if data != nil {
		if err := s.Set("data", data); err != nil {
			return nil, err
		}
	}
	if kind == "map" {
		if err := s.Set("mapType", DefaultMapType); err != nil {
			return nil, err
		}
	}
	if len(kv) > 0 {
		if _, err := s.Opts(nil, kv...); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// PairData turns data rows into objects. A row that is a list is zipped
// with columns, and maps inside it are merged in; a map row is copied; any
// other row is kept as is. A map passed as data becomes one name/value row
// per entry.
func PairData(data any, columns ...string) []any {
	if len(columns) == 0 {
		columns = []string{"name", "value"}
	}

	var rows []any
	switch d := data.(type) {
	case nil:
		return []any{}
	case map[string]any:
		for _, k := range slices.Sorted(maps.Keys(d)) {
			rows = append(rows, []any{k, d[k]})
		}
	case *odict.Dict[any]:
		for k, v := range d.All() {
			rows = append(rows, []any{k, v})
		}
	default:
		rows = toList(data)
		if rows == nil {
			return []any{data}
		}
	}

	out := make([]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, pairRow(row, columns))
	}
	return out
}

func pairRow(row any, columns []string) any {
	switch r := row.(type) {
	case map[string]any:
		d := odict.New[any]()
		for _, k := range slices.Sorted(maps.Keys(r)) {
			d.Set(k, r[k])
		}
		return d
	case *odict.Dict[any]:
		return r.Clone(nil)
	}
	items := toList(row)
	if items == nil {
		return row
	}
	d := odict.New[any]()
	for i, item := range items {
		switch v := item.(type) {
		case map[string]any:
			for _, k := range slices.Sorted(maps.Keys(v)) {
				d.Set(k, v[k])
			}
		case *odict.Dict[any]:
			for k, x := range v.All() {
				d.Set(k, x)
			}
		default:
			if i < len(columns) {
				d.Set(columns[i], item)
			}
		}
	}
	return d
}

// toList returns the items of a slice or array, nil for anything else.
// Strings and byte slices are not lists.
func toList(v any) []any {
	if items, ok := v.([]any); ok {
		return items
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil
		}
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return items
	}
	return nil
}

// AddOption tunes how AddChart registers a series.
type AddOption func(*addSettings)

type addSettings struct {
	legend   bool
	icon     string
	selected bool
}

// WithoutLegend leaves the legend untouched.
func WithoutLegend() AddOption {
	return func(s *addSettings) { s.legend = false }
}

// WithLegendIcon shows the series in the legend with icon.
func WithLegendIcon(icon string) AddOption {
	return func(s *addSettings) { s.icon = icon }
}

// WithSelected sets the initial legend selection state of the series.
func WithSelected(selected bool) AddOption {
	return func(s *addSettings) { s.selected = selected }
}

// AddChart appends a copy of series to the chart. The coordinate
// components the series needs are activated, the series is listed in the
// legend and its scripts are recorded. Map series also load the script of
// their map.
func (c *Chart) AddChart(series *option.Node, opts ...AddOption) error {
	if series == nil {
		return fmt.Errorf("chart: series is nil")
	}
	s := addSettings{legend: true, selected: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if kind, _ := option.Peek(series).Field("type").Value().(string); kind == "map" {
		mapType, _ := option.Peek(series).Field("mapType").Value().(string)
		if _, err := c.useMap(mapType); err != nil {
			return err
		}
	}

	if _, err := c.base.MustField("series").Add(series); err != nil {
		return fmt.Errorf("chart: add series: %w", err)
	}
	if err := c.base.Uses(c.coords.Components(series)...); err != nil {
		return fmt.Errorf("chart: activate coordinates: %w", err)
	}

	if s.legend {
		if err := c.addLegend(series, s); err != nil {
			return err
		}
	}
	c.addDeps(series.Schema().Dependencies()...)
	return nil
}

func (c *Chart) addLegend(series *option.Node, s addSettings) error {
	legend := c.base.MustField("legend").Use()
	name, _ := option.Peek(series).Field("name").Value().(string)
	if name == "" {
		return nil
	}

	var entry any = name
	if s.icon != "" {
		d := odict.New[any]()
		d.Set("name", name)
		d.Set("icon", s.icon)
		entry = d
	}
	if err := legend.MustField("data").Append(entry); err != nil {
		return fmt.Errorf("chart: legend data: %w", err)
	}
	if err := legend.MustField("selected").SetItem(name, s.selected); err != nil {
		return fmt.Errorf("chart: legend selected: %w", err)
	}
	return nil
}
