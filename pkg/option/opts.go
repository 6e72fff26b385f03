package option

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/goliatone/go-chartopts/internal/similar"
	"github.com/goliatone/go-chartopts/pkg/odict"
)

// Set assigns value to the child addressed by name.
func (n *Node) Set(name string, value any) error {
	child, err := n.lookupField(name, true)
	if err != nil {
		return err
	}
	return child.Assign(value)
}

// Assign stores value on the node and activates it. String values are
// corrected against the field's choices. Mappings are merged field by field
// into object nodes, lists replace the elements of array nodes and anything
// else turns the node into a raw value. Nodes are always copied, never
// stored by identity.
func (n *Node) Assign(value any) error {
	value = similar.Value(value, n.field.Choices)

	if src, ok := value.(*Node); ok {
		n.adopt(src.Clone())
		n.Use()
		return nil
	}

	switch n.mode {
	case ModeRaw:
		n.raw = copyValue(value)
		n.Use()
		return nil
	case ModeArray:
		if items, ok := asList(value); ok {
			n.data = odict.New[any]()
			n.Use()
			for i, item := range items {
				if _, err := n.Add(item); err != nil {
					return fmt.Errorf("option: %s[%d]: %w", n.field.Name, i, err)
				}
			}
			return nil
		}
		if isMapping(value) {
			_, err := n.Opts(value)
			return err
		}
	case ModeObject:
		if isMapping(value) {
			_, err := n.Opts(value)
			return err
		}
	}

	n.becomeRaw(value)
	return nil
}

// Opts merges values into the node. values may be nil, a map[string]any
// (applied in sorted key order) or an *odict.Dict[any] (applied in its own
// order); kv holds extra string/value pairs that win over values. Keys are
// corrected against the schema; declared names are routed through Set and
// unknown names are stored as extra keys. Array nodes apply the options to
// their last element, appending one when empty.
//
// Opts stops at the first failing entry. Entries applied before it stay.
// The node actually mutated is returned.
func (n *Node) Opts(values any, kv ...any) (*Node, error) {
	n.Use()
	obj := n
	if n.mode == ModeArray {
		obj = n.lastElement(true)
	}

	if len(kv) == 0 && !isMapping(values) {
		if values == nil {
			return obj, nil
		}
		return obj, obj.Assign(values)
	}

	if obj.mode == ModeRaw {
		entries, err := mergeEntries(nil, values, kv)
		if err != nil {
			return obj, err
		}
		return obj, obj.Update(entries)
	}

	entries, err := mergeEntries(obj.schema, values, kv)
	if err != nil {
		return obj, err
	}
	for key, val := range entries.All() {
		if obj.schema.Declares(key) {
			if err := obj.Set(key, val); err != nil {
				return obj, err
			}
			continue
		}
		obj.data.Set(key, copyValue(val))
	}
	return obj, nil
}

func (n *Node) becomeRaw(value any) {
	n.mode = ModeRaw
	n.raw = copyValue(value)
	n.data = odict.New[any]()
	n.slots = nil
	n.Use()
}

// adopt takes over the state of src, which must not be reachable elsewhere.
func (n *Node) adopt(src *Node) {
	if n.mode == ModeArray && src.mode != ModeArray {
		n.data = odict.New[any]()
		elem := n.newElement()
		elem.takeState(src)
		n.data.Add(elem, elementKey(n.data, elem))
		return
	}
	n.takeState(src)
}

func (n *Node) takeState(src *Node) {
	n.schema = src.schema
	n.mode = src.mode
	n.data = src.data
	n.raw = src.raw
	n.slots = src.slots
	if n.data == nil {
		n.data = odict.New[any]()
	}
	for _, child := range n.slots {
		child.parent = n
	}
	for _, v := range n.data.All() {
		if child, ok := v.(*Node); ok && child.parent == src {
			child.parent = n
		}
	}
}

// mergeEntries folds values and kv into one ordered set of corrected keys.
func mergeEntries(schema *Schema, values any, kv []any) (*odict.Dict[any], error) {
	out := odict.New[any]()
	correct := func(key string) string {
		if schema == nil {
			return key
		}
		resolved, _ := schema.Resolve(key)
		return resolved
	}

	switch v := values.(type) {
	case nil:
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			out.Set(correct(k), v[k])
		}
	case *odict.Dict[any]:
		for k, val := range v.All() {
			out.Set(correct(k), val)
		}
	default:
		return nil, fmt.Errorf("option: cannot merge %T", values)
	}

	if len(kv)%2 != 0 {
		return nil, ErrPairs
	}
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			return nil, ErrPairs
		}
		out.Set(correct(key), kv[i+1])
	}
	return out, nil
}

func isMapping(v any) bool {
	switch v.(type) {
	case map[string]any, *odict.Dict[any]:
		return true
	}
	return false
}

func asList(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// SetExtra stores value under key as an extra entry without name
// correction. Declared names are routed through Set. Array nodes use their
// last element.
func (n *Node) SetExtra(key string, value any) error {
	obj := n
	if n.mode == ModeArray {
		obj = n.lastElement(true)
	}
	if obj.mode == ModeRaw {
		return &FieldError{Schema: obj.schemaName(), Name: key, Err: ErrRawMode}
	}
	if obj.schema.Declares(key) {
		return obj.Set(key, value)
	}
	obj.data.Set(key, copyValue(value))
	obj.Use()
	return nil
}
