package odict

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"reflect"
	"slices"

	"github.com/google/uuid"
	"github.com/mohae/deepcopy"
	"gopkg.in/yaml.v3"
)

// Dict is an insertion-ordered mapping from string keys to values.
// The zero value is ready to use.
type Dict[V any] struct {
	keys []string
	vals map[string]V
}

// New returns an empty dictionary.
func New[V any]() *Dict[V] {
	return &Dict[V]{}
}

// Anchor positions an inserted entry relative to an existing one.
type Anchor struct {
	ref   any
	after bool
}

// After inserts right after ref, which is a key or a positional index.
func After(ref any) Anchor { return Anchor{ref: ref, after: true} }

// Before inserts right before ref, which is a key or a positional index.
func Before(ref any) Anchor { return Anchor{ref: ref} }

// NewKey returns a synthetic key.
func NewKey() string {
	return uuid.New().String()
}

func (d *Dict[V]) init() {
	if d.vals == nil {
		d.vals = make(map[string]V)
	}
}

// Len reports the number of entries.
func (d *Dict[V]) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Get returns the value stored under key.
func (d *Dict[V]) Get(key string) (V, bool) {
	var zero V
	if d == nil || d.vals == nil {
		return zero, false
	}
	v, ok := d.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (d *Dict[V]) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Set replaces the value under key in place, or appends a new entry.
func (d *Dict[V]) Set(key string, val V) {
	d.init()
	if _, ok := d.vals[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.vals[key] = val
}

// Add inserts val under key and returns the key used. An empty key gets a
// synthetic one. Without anchors the entry is appended; an existing key is
// moved to the requested position.
func (d *Dict[V]) Add(val V, key string, anchors ...Anchor) string {
	d.init()
	if key == "" {
		key = NewKey()
	}
	if _, ok := d.vals[key]; ok {
		d.Remove(key)
	}

	n := len(d.keys)
	pos := n
	for _, a := range anchors {
		idx, ok := d.position(a.ref)
		if !ok {
			continue
		}
		if a.after {
			pos = idx + 1
		} else {
			pos = idx
		}
	}
	pos = clamp(pos, 0, n)

	d.keys = slices.Insert(d.keys, pos, key)
	d.vals[key] = val
	return key
}

// Append adds val under a synthetic key.
func (d *Dict[V]) Append(val V) string {
	return d.Add(val, "")
}

// Remove deletes the entry addressed by ref (key or index) and returns its
// value.
func (d *Dict[V]) Remove(ref any) (V, bool) {
	var zero V
	idx, ok := d.Index(ref)
	if !ok {
		return zero, false
	}
	key := d.keys[idx]
	val := d.vals[key]
	d.keys = slices.Delete(d.keys, idx, idx+1)
	delete(d.vals, key)
	return val, true
}

// Index resolves ref to a position. Integers are positions (negative values
// count from the end), then keys are tried, then stored values.
func (d *Dict[V]) Index(ref any) (int, bool) {
	if d == nil {
		return 0, false
	}
	n := len(d.keys)
	if i, ok := ref.(int); ok {
		if i < 0 {
			i += n
		}
		if i >= 0 && i < n {
			return i, true
		}
		return 0, false
	}
	if key, ok := ref.(string); ok {
		if idx := slices.Index(d.keys, key); idx >= 0 {
			return idx, true
		}
	}
	if ref == nil || !reflect.TypeOf(ref).Comparable() {
		return 0, false
	}
	for i, k := range d.keys {
		v := any(d.vals[k])
		if v == nil || !reflect.TypeOf(v).Comparable() {
			continue
		}
		if v == ref {
			return i, true
		}
	}
	return 0, false
}

// position resolves an anchor reference; out-of-range integers are clamped.
func (d *Dict[V]) position(ref any) (int, bool) {
	if i, ok := ref.(int); ok {
		n := len(d.keys)
		if i < 0 {
			i += n
		}
		return clamp(i, -1, n), true
	}
	return d.Index(ref)
}

// Key returns the key at position i.
func (d *Dict[V]) Key(i int) (string, bool) {
	idx, ok := d.Index(i)
	if !ok {
		return "", false
	}
	return d.keys[idx], true
}

// At returns the value at position i.
func (d *Dict[V]) At(i int) (V, bool) {
	key, ok := d.Key(i)
	if !ok {
		var zero V
		return zero, false
	}
	return d.vals[key], true
}

// Keys returns a copy of the keys in order.
func (d *Dict[V]) Keys() []string {
	if d == nil {
		return nil
	}
	return slices.Clone(d.keys)
}

// Values returns the values in order.
func (d *Dict[V]) Values() []V {
	if d == nil {
		return nil
	}
	out := make([]V, 0, len(d.keys))
	for _, k := range d.keys {
		out = append(out, d.vals[k])
	}
	return out
}

// All iterates over entries in order.
func (d *Dict[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if d == nil {
			return
		}
		for _, k := range d.keys {
			if !yield(k, d.vals[k]) {
				return
			}
		}
	}
}

// Clear removes every entry.
func (d *Dict[V]) Clear() {
	d.keys = nil
	d.vals = nil
}

// Clone returns an independent copy. copyFn copies each value; nil keeps
// values as they are.
func (d *Dict[V]) Clone(copyFn func(V) V) *Dict[V] {
	out := New[V]()
	if d == nil {
		return out
	}
	out.keys = slices.Clone(d.keys)
	out.vals = make(map[string]V, len(d.vals))
	for k, v := range d.vals {
		if copyFn != nil {
			v = copyFn(v)
		}
		out.vals[k] = v
	}
	return out
}

// DeepCopy copies the dictionary and every value.
func (d *Dict[V]) DeepCopy() any {
	return d.Clone(func(v V) V {
		c, ok := deepcopy.Copy(v).(V)
		if !ok {
			return v
		}
		return c
	})
}

// MarshalJSON encodes the entries as a JSON object in insertion order.
// HTML characters are left unescaped; callers embedding the output in HTML
// escape at the outer encoder.
func (d *Dict[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, k := range d.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(k); err != nil {
			return nil, err
		}
		trimNewline(&buf)
		buf.WriteByte(':')
		if err := enc.Encode(d.vals[k]); err != nil {
			return nil, fmt.Errorf("odict: key %q: %w", k, err)
		}
		trimNewline(&buf)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func trimNewline(buf *bytes.Buffer) {
	if n := buf.Len(); n > 0 && buf.Bytes()[n-1] == '\n' {
		buf.Truncate(n - 1)
	}
}

// MarshalYAML encodes the entries as a YAML mapping in insertion order.
func (d *Dict[V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range d.Keys() {
		var val yaml.Node
		if err := val.Encode(d.vals[k]); err != nil {
			return nil, fmt.Errorf("odict: key %q: %w", k, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&val,
		)
	}
	return node, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
