package option

import (
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-chartopts/pkg/odict"
)

// NoElement tells ToObject to discard every array element.
const NoElement = math.MinInt

// Node is a live option value bound to a parent node.
type Node struct {
	field  *Field
	schema *Schema
	// parent is a back-reference only; the parent owns this node.
	parent *Node
	used   bool
	mode   Mode
	// data holds activated children and extra keys in object mode, and
	// elements in array mode.
	data  *odict.Dict[any]
	raw   any
	slots map[string]*Node
}

// New creates a root node for schema.
func New(schema *Schema) *Node {
	if schema == nil {
		schema = emptySchema("")
	}
	f := &Field{Name: schema.name, Mode: ModeObject, Schema: schema}
	n := newNode(f, nil)
	n.used = true
	return n
}

func newNode(f *Field, parent *Node) *Node {
	n := &Node{
		field:  f,
		schema: f.Schema,
		parent: parent,
		mode:   f.Mode,
		data:   odict.New[any](),
	}
	switch f.Mode {
	case ModeRaw:
		n.raw = copyValue(f.Default)
	case ModeArray:
		if f.Seeded {
			n.data.Add(n.newElement(), "")
		}
	}
	return n
}

func (n *Node) newElement() *Node {
	return &Node{
		field:  n.field,
		schema: n.schema,
		parent: n,
		mode:   ModeObject,
		data:   odict.New[any](),
	}
}

// Name returns the declared field name.
func (n *Node) Name() string { return n.field.Name }

// Key returns the serialization key.
func (n *Node) Key() string { return n.field.DataKey() }

// Choices returns the allowed values of the field.
func (n *Node) Choices() []string { return n.field.Choices }

// Doc returns the field help text.
func (n *Node) Doc() string { return n.field.Doc }

// Schema returns the schema describing the node's children.
func (n *Node) Schema() *Schema { return n.schema }

// Parent returns the owning node, nil for roots.
func (n *Node) Parent() *Node { return n.parent }

// Used reports whether the node is activated.
func (n *Node) Used() bool { return n.used }

// Mode returns the current storage mode.
func (n *Node) Mode() Mode { return n.mode }

// Len returns the number of activated entries or elements, or the length of
// a raw list or map.
func (n *Node) Len() int {
	if n.mode == ModeRaw {
		switch v := n.raw.(type) {
		case []any:
			return len(v)
		case map[string]any:
			return len(v)
		case *odict.Dict[any]:
			return v.Len()
		}
		return 0
	}
	return n.data.Len()
}

// Field returns the child addressed by name. Delegates are followed and
// misspelled names are corrected. On array nodes the last element is used;
// an empty array yields ErrNoElement and is left untouched. Set, Opts and
// SetExtra append the element instead.
func (n *Node) Field(name string) (*Node, error) {
	return n.lookupField(name, false)
}

// MustField is like Field but panics on error.
func (n *Node) MustField(name string) *Node {
	child, err := n.Field(name)
	if err != nil {
		panic(err)
	}
	return child
}

// Lookup follows a dotted path. Integer segments address array elements.
func (n *Node) Lookup(path string) (*Node, error) {
	cur := n
	for _, seg := range strings.Split(path, ".") {
		if seg == "" {
			continue
		}
		if cur.mode == ModeArray {
			if idx, err := strconv.Atoi(seg); err == nil {
				elem, ok := cur.Element(idx)
				if !ok {
					return nil, &FieldError{Schema: cur.schemaName(), Name: seg, Err: ErrNoSuchField}
				}
				cur = elem
				continue
			}
		}
		next, err := cur.Field(seg)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

func (n *Node) lookupField(name string, create bool) (*Node, error) {
	target := n
	if n.mode == ModeArray {
		target = n.lastElement(create)
		if target == nil {
			return nil, &FieldError{Schema: n.schemaName(), Name: name, Err: ErrNoElement}
		}
	}
	if target.mode == ModeRaw {
		return nil, &FieldError{Schema: target.schemaName(), Name: name, Err: ErrRawMode}
	}

	resolved, ok := target.schema.Resolve(name)
	if !ok {
		return nil, &FieldError{Schema: target.schemaName(), Name: name, Err: ErrNoSuchField}
	}
	if f, ok := target.schema.Field(resolved); ok {
		return target.slot(f), nil
	}

	path, _ := target.schema.Delegate(resolved)
	cur := target
	for _, step := range path {
		next, err := cur.lookupField(step, create)
		if err != nil {
			return nil, fmt.Errorf("option: delegate %q: %w", resolved, err)
		}
		cur = next
	}
	return cur, nil
}

func (n *Node) slot(f *Field) *Node {
	if n.slots == nil {
		n.slots = make(map[string]*Node)
	}
	child, ok := n.slots[f.Name]
	if !ok || child.field != f {
		child = newNode(f, n)
		n.slots[f.Name] = child
	}
	return child
}

func (n *Node) lastElement(create bool) *Node {
	if v, ok := n.data.At(-1); ok {
		if elem, ok := v.(*Node); ok {
			return elem
		}
	}
	if !create {
		return nil
	}
	elem := n.newElement()
	n.data.Add(elem, "")
	return elem
}

func (n *Node) schemaName() string {
	if n.schema == nil {
		return n.field.Name
	}
	if n.schema.name != "" {
		return n.schema.name
	}
	return n.field.Name
}

// Use activates the node and every ancestor. It is idempotent.
func (n *Node) Use() *Node {
	if n.used {
		return n
	}
	n.used = true
	if p := n.parent; p != nil {
		p.Use()
		if p.mode == ModeObject {
			p.data.Set(n.field.DataKey(), n)
		}
	}
	return n
}

// Unuse deactivates the node and detaches it from its parent's output. It
// does not touch ancestors. Array elements are removed from their array.
// The parent is returned.
func (n *Node) Unuse() *Node {
	p := n.parent
	if p != nil && p.mode == ModeArray {
		n.used = false
		if idx, ok := p.data.Index(n); ok {
			p.data.Remove(idx)
		}
		return p
	}
	if !n.used {
		return p
	}
	n.used = false
	if p == nil {
		return nil
	}
	if p.mode == ModeObject {
		if cur, ok := p.data.Get(n.field.DataKey()); ok && cur == n {
			p.data.Remove(n.field.DataKey())
		}
	}
	return p
}

// Uses activates the named children.
func (n *Node) Uses(names ...string) error {
	for _, name := range names {
		child, err := n.lookupField(name, true)
		if err != nil {
			return err
		}
		child.Use()
	}
	return nil
}

// Entries iterates over the activated children and extra keys of an object
// node in activation order. Child values are *Node.
func (n *Node) Entries() iter.Seq2[string, any] {
	if n.mode != ModeObject {
		return func(func(string, any) bool) {}
	}
	return n.data.All()
}

// Elements returns the elements of an array node.
func (n *Node) Elements() []*Node {
	if n.mode != ModeArray {
		return nil
	}
	out := make([]*Node, 0, n.data.Len())
	for _, v := range n.data.All() {
		if elem, ok := v.(*Node); ok {
			out = append(out, elem)
		}
	}
	return out
}

// Element returns an array element by key or position.
func (n *Node) Element(ref any) (*Node, bool) {
	if n.mode != ModeArray {
		return nil, false
	}
	idx, ok := n.data.Index(ref)
	if !ok {
		return nil, false
	}
	v, _ := n.data.At(idx)
	elem, ok := v.(*Node)
	return elem, ok
}

// ElementKeys returns the keys of an array node's elements.
func (n *Node) ElementKeys() []string {
	if n.mode != ModeArray {
		return nil
	}
	return n.data.Keys()
}

// Value returns the raw value of a raw node, nil otherwise.
func (n *Node) Value() any {
	if n.mode != ModeRaw {
		return nil
	}
	return n.raw
}

func (n *Node) String() string {
	return fmt.Sprintf("%s(%s)", n.schemaName(), n.mode)
}
