package option

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/goliatone/go-chartopts/pkg/odict"
)

// ToArray switches an object or raw node into array mode. With preserve the
// current content becomes the first element; otherwise the array starts
// empty. Array nodes are left untouched.
func (n *Node) ToArray(preserve bool) *Node {
	if n.mode == ModeArray {
		return n
	}
	elem := n.newElement()
	elem.takeState(n)

	n.mode = ModeArray
	n.data = odict.New[any]()
	n.raw = nil
	n.slots = nil
	if preserve {
		n.data.Add(elem, elementKey(n.data, elem))
	}
	return n
}

// ToObject switches an array node back to object mode, folding the element
// at index into the node. Negative indices count from the end and NoElement
// discards every element. Object and raw nodes are left untouched.
func (n *Node) ToObject(index int) *Node {
	if n.mode != ModeArray {
		return n
	}
	var elem *Node
	if index != NoElement {
		if v, ok := n.data.At(index); ok {
			elem, _ = v.(*Node)
		}
	}

	n.mode = ModeObject
	n.data = odict.New[any]()
	n.raw = nil
	n.slots = nil
	if elem != nil {
		n.takeState(elem)
	}
	return n
}

// ToRaw switches the node into raw mode holding v and activates it. Raw
// nodes are left untouched.
func (n *Node) ToRaw(v any) *Node {
	if n.mode == ModeRaw {
		return n
	}
	n.becomeRaw(v)
	return n
}

// Add appends a new element built from the field's schema and configured
// with values and kv, as Opts does. A *Node value is copied as the element
// instead. Object nodes are switched to array mode first, keeping their
// content as the first element when they have any. Elements are keyed by
// their "name" value when it is a string not used yet.
func (n *Node) Add(values any, kv ...any) (*Node, error) {
	if n.mode != ModeArray {
		n.ToArray(n.hasContent())
	}
	n.Use()

	elem := n.newElement()
	if src, ok := values.(*Node); ok && len(kv) == 0 {
		elem.takeState(src.Clone())
	} else if _, err := elem.Opts(values, kv...); err != nil {
		return nil, err
	}
	n.data.Add(elem, elementKey(n.data, elem))
	return elem, nil
}

// Remove drops an element by key or position on array nodes, or
// deactivates the named child on object nodes.
func (n *Node) Remove(ref any) bool {
	switch n.mode {
	case ModeArray:
		_, ok := n.data.Remove(ref)
		return ok
	case ModeObject:
		name, ok := ref.(string)
		if !ok {
			return false
		}
		if !n.schema.Declares(name) {
			_, ok := n.data.Remove(name)
			return ok
		}
		child, err := n.Field(name)
		if err != nil || !child.used {
			return false
		}
		child.Unuse()
		return true
	}
	return false
}

// Append adds values to a raw list, creating it when unset.
func (n *Node) Append(values ...any) error {
	if n.mode != ModeRaw {
		return fmt.Errorf("option: append to %s: %w", n.field.Name, ErrNotRaw)
	}
	var list []any
	if n.raw != nil {
		items, ok := asList(n.raw)
		if !ok {
			return fmt.Errorf("option: append to %s: value is %T, not a list", n.field.Name, n.raw)
		}
		list = items
	}
	for _, v := range values {
		list = append(list, copyValue(v))
	}
	n.raw = list
	n.Use()
	return nil
}

// Update merges a mapping into a raw map, creating it when unset.
func (n *Node) Update(values any) error {
	if n.mode != ModeRaw {
		return fmt.Errorf("option: update %s: %w", n.field.Name, ErrNotRaw)
	}
	var target *odict.Dict[any]
	switch cur := n.raw.(type) {
	case nil:
		target = odict.New[any]()
	case *odict.Dict[any]:
		target = cur
	case map[string]any:
		target = odict.New[any]()
		for _, k := range sortedKeys(cur) {
			target.Set(k, cur[k])
		}
	default:
		return fmt.Errorf("option: update %s: value is %T, not a map", n.field.Name, n.raw)
	}

	entries, err := mergeEntries(nil, values, nil)
	if err != nil {
		return err
	}
	for k, v := range entries.All() {
		target.Set(k, copyValue(v))
	}
	n.raw = target
	n.Use()
	return nil
}

// SetItem sets a key of a raw map or a position of a raw list.
func (n *Node) SetItem(key any, value any) error {
	if n.mode != ModeRaw {
		return fmt.Errorf("option: set item on %s: %w", n.field.Name, ErrNotRaw)
	}
	switch k := key.(type) {
	case string:
		if n.raw == nil {
			n.raw = odict.New[any]()
		}
		if m, ok := n.raw.(map[string]any); ok {
			m[k] = copyValue(value)
			break
		}
		d, ok := n.raw.(*odict.Dict[any])
		if !ok {
			return fmt.Errorf("option: set item on %s: value is %T, not a map", n.field.Name, n.raw)
		}
		d.Set(k, copyValue(value))
	case int:
		list, ok := n.raw.([]any)
		if !ok {
			return fmt.Errorf("option: set item on %s: value is %T, not a list", n.field.Name, n.raw)
		}
		if k < 0 {
			k += len(list)
		}
		if k < 0 || k >= len(list) {
			return fmt.Errorf("option: set item on %s: index %d out of range", n.field.Name, key)
		}
		list[k] = copyValue(value)
	default:
		return fmt.Errorf("option: set item on %s: unsupported key %T", n.field.Name, key)
	}
	n.Use()
	return nil
}

// Item reads a key of a raw map or a position of a raw list.
func (n *Node) Item(key any) (any, bool) {
	if n.mode != ModeRaw {
		return nil, false
	}
	switch k := key.(type) {
	case string:
		switch m := n.raw.(type) {
		case map[string]any:
			v, ok := m[k]
			return v, ok
		case *odict.Dict[any]:
			return m.Get(k)
		}
	case int:
		list, ok := asList(n.raw)
		if !ok {
			return nil, false
		}
		if k < 0 {
			k += len(list)
		}
		if k >= 0 && k < len(list) {
			return list[k], true
		}
	}
	return nil, false
}

func (n *Node) hasContent() bool {
	switch n.mode {
	case ModeRaw:
		return n.raw != nil && !isEmptyValue(n.raw)
	default:
		return n.data.Len() > 0
	}
}

// elementKey picks the key for a new element: its name when that is a free
// string, a synthetic key otherwise.
func elementKey(items *odict.Dict[any], elem *Node) string {
	v, ok := elem.data.Get("name")
	if !ok {
		return ""
	}
	if child, isNode := v.(*Node); isNode {
		v = child.Value()
	}
	name, ok := v.(string)
	if !ok || name == "" || items.Has(name) {
		return ""
	}
	return name
}

func isEmptyValue(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.String:
		return rv.Len() == 0
	}
	return false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
