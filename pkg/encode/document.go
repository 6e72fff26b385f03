package encode

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/goliatone/go-chartopts/pkg/odict"
	"github.com/goliatone/go-chartopts/pkg/option"
	"github.com/goliatone/go-chartopts/pkg/scalar"
)

// Document converts v into a plain tree of *odict.Dict[any], []any and
// scalars. Option nodes contribute only their activated content. Code
// fragments stay as scalar.JSCode; other custom scalars become strings.
func Document(v any) (any, error) {
	return document(v)
}

func document(v any) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case *option.Node:
		return node(val)
	case scalar.JSCode:
		return val, nil
	case scalar.LinearGradient:
		return val.JS(), nil
	case scalar.Image:
		return val.String(), nil
	case scalar.Date:
		return val.String(), nil
	case scalar.Clock:
		return val.String(), nil
	case time.Time:
		return scalar.Timestamp(val), nil
	case *odict.Dict[any]:
		out := odict.New[any]()
		for k, item := range val.All() {
			enc, err := document(item)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			out.Set(k, enc)
		}
		return out, nil
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		out := odict.New[any]()
		for _, k := range keys {
			enc, err := document(val[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			out.Set(k, enc)
		}
		return out, nil
	case []any:
		return list(val)
	case string, bool, int, int64, float64:
		return val, nil
	}

	if _, ok := v.(json.Marshaler); ok {
		return v, nil
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() != reflect.Uint8:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return list(items)
	case rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String:
		return mapping(rv)
	}
	return v, nil
}

// mapping encodes a typed map with string keys in sorted key order.
func mapping(rv reflect.Value) (any, error) {
	keys := rv.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		return strings.Compare(a.String(), b.String())
	})
	out := odict.New[any]()
	for _, k := range keys {
		enc, err := document(rv.MapIndex(k).Interface())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k.String(), err)
		}
		out.Set(k.String(), enc)
	}
	return out, nil
}

func list(items []any) (any, error) {
	out := make([]any, 0, len(items))
	for i, item := range items {
		enc, err := document(item)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out = append(out, enc)
	}
	return out, nil
}

func node(n *option.Node) (any, error) {
	switch n.Mode() {
	case option.ModeRaw:
		return document(n.Value())
	case option.ModeArray:
		elems := n.Elements()
		out := make([]any, 0, len(elems))
		for i, elem := range elems {
			enc, err := node(elem)
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", n.Key(), i, err)
			}
			out = append(out, enc)
		}
		return out, nil
	default:
		out := odict.New[any]()
		for k, item := range n.Entries() {
			enc, err := document(item)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			out.Set(k, enc)
		}
		return out, nil
	}
}
