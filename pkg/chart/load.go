package chart

import (
	"fmt"
	"maps"
	"slices"

	"github.com/goliatone/go-chartopts/pkg/odict"
	"github.com/goliatone/go-chartopts/pkg/option"
)

// Load applies an option document, usually decoded by encode.DecodeYAML or
// encode.DecodeJSON. Entries of "series" go through NewSeries and AddChart
// so coordinates, legend and scripts follow the series; every other key is
// merged with Opts. The legend is not touched when the document carries
// its own.
func (c *Chart) Load(doc any) error {
	d, err := asDict(doc)
	if err != nil {
		return err
	}

	rest := odict.New[any]()
	var series []any
	for k, v := range d.All() {
		if k == "series" {
			series = toList(v)
			continue
		}
		rest.Set(k, v)
	}
	if rest.Len() > 0 {
		if err := c.Opts(rest); err != nil {
			return err
		}
	}

	var addOpts []AddOption
	if d.Has("legend") {
		addOpts = append(addOpts, WithoutLegend())
	}
	for i, item := range series {
		entry, err := asDict(item)
		if err != nil {
			return fmt.Errorf("chart: series[%d]: %w", i, err)
		}
		s, err := seriesFromDict(entry)
		if err != nil {
			return fmt.Errorf("chart: series[%d]: %w", i, err)
		}
		if err := c.AddChart(s, addOpts...); err != nil {
			return fmt.Errorf("chart: series[%d]: %w", i, err)
		}
	}
	return nil
}

func seriesFromDict(d *odict.Dict[any]) (*option.Node, error) {
	kind, _ := d.Get("type")
	kindName, ok := kind.(string)
	if !ok || kindName == "" {
		return nil, fmt.Errorf("%w: type is missing", ErrUnknownSeries)
	}
	name, _ := d.Get("name")
	nameStr, _ := name.(string)
	data, _ := d.Get("data")

	var kv []any
	for k, v := range d.All() {
		switch k {
		case "type", "name", "data":
			continue
		}
		kv = append(kv, k, v)
	}
	return NewSeries(kindName, nameStr, data, kv...)
}

func asDict(v any) (*odict.Dict[any], error) {
	switch d := v.(type) {
	case *odict.Dict[any]:
		return d, nil
	case map[string]any:
		out := odict.New[any]()
		for _, k := range slices.Sorted(maps.Keys(d)) {
			out.Set(k, d[k])
		}
		return out, nil
	default:
		return nil, fmt.Errorf("chart: expected an object, got %T", v)
	}
}
