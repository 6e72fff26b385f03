package option

// Maybe wraps a node that may be absent. Every step on an absent value
// yields another absent value, so chains never fail:
//
//	color := option.Peek(root).Field("title").Field("textStyle").Field("color").Value()
//
// Peek never creates array elements.
type Maybe struct {
	node *Node
}

// Peek starts an optional chain at n.
func Peek(n *Node) Maybe {
	return Maybe{node: n}
}

// Field steps into a child.
func (m Maybe) Field(name string) Maybe {
	if m.node == nil {
		return m
	}
	child, err := m.node.lookupField(name, false)
	if err != nil {
		return Maybe{}
	}
	return Maybe{node: child}
}

// Element steps into an array element by key or position.
func (m Maybe) Element(ref any) Maybe {
	if m.node == nil {
		return m
	}
	elem, ok := m.node.Element(ref)
	if !ok {
		return Maybe{}
	}
	return Maybe{node: elem}
}

// Node returns the node and whether it is present.
func (m Maybe) Node() (*Node, bool) {
	return m.node, m.node != nil
}

// Used reports whether the node is present and activated.
func (m Maybe) Used() bool {
	return m.node != nil && m.node.used
}

// Value returns the raw value of a present raw node, nil otherwise.
func (m Maybe) Value() any {
	if m.node == nil {
		return nil
	}
	return m.node.Value()
}
