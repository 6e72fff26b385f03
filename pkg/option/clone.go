package option

import (
	"github.com/mohae/deepcopy"

	"github.com/goliatone/go-chartopts/pkg/odict"
)

// Clone returns an independent copy of the subtree rooted at n. The copy
// has no parent.
func (n *Node) Clone() *Node {
	return n.cloneWith(nil)
}

// DeepCopy lets deepcopy copy nodes held inside raw values.
func (n *Node) DeepCopy() any {
	return n.Clone()
}

func (n *Node) cloneWith(parent *Node) *Node {
	c := &Node{
		field:  n.field,
		schema: n.schema,
		parent: parent,
		used:   n.used,
		mode:   n.mode,
		raw:    copyValue(n.raw),
		data:   odict.New[any](),
	}

	copied := make(map[*Node]*Node, len(n.slots))
	if len(n.slots) > 0 {
		c.slots = make(map[string]*Node, len(n.slots))
		for name, child := range n.slots {
			cc := child.cloneWith(c)
			c.slots[name] = cc
			copied[child] = cc
		}
	}

	for key, v := range n.data.All() {
		child, ok := v.(*Node)
		if !ok {
			c.data.Set(key, copyValue(v))
			continue
		}
		if cc, ok := copied[child]; ok {
			c.data.Set(key, cc)
			continue
		}
		c.data.Set(key, child.cloneWith(c))
	}
	return c
}

// Clear resets every activated child to a fresh, unused state and drops
// extra keys, array elements and raw content. With detach the node is also
// removed from its parent's output.
//
// Children obtained before Clear are replaced, not reset: they are no
// longer part of the tree and writes through them are not encoded. Look
// children up again after clearing.
func (n *Node) Clear(detach bool) *Node {
	for name, child := range n.slots {
		if child.used {
			n.slots[name] = newNode(child.field, n)
		}
	}

	n.data = odict.New[any]()
	if n.mode == ModeRaw {
		n.raw = copyValue(n.field.Default)
	}
	if detach {
		n.Unuse()
	}
	return n
}

func copyValue(v any) any {
	if v == nil {
		return nil
	}
	return deepcopy.Copy(v)
}
