package tree

import (
	"errors"
	"fmt"
)

// Node construction errors
var (
	ErrNilValue = errors.New("node value must not be nil")
	ErrNilChild = errors.New("node children must not contain nil")
)

// Node represents one unit of an immutable tree: a key, a value, and an
// ordered sequence of child nodes. The key may be nil; the value never is.
type Node struct {
	key      any
	value    any
	children []*Node
}

// NewNode creates an immutable node from a key, a value, and zero or more
// children. The children slice is copied, so later changes to the caller's
// slice do not affect the node. Children order is preserved exactly.
func NewNode(key, value any, children ...*Node) (*Node, error) {
	if value == nil {
		return nil, ErrNilValue
	}
	kids := make([]*Node, len(children))
	for i, c := range children {
		if c == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilChild, i)
		}
		kids[i] = c
	}
	return &Node{key: key, value: value, children: kids}, nil
}

// Key returns the node's key. A nil key is legal and means the node is
// addressed by position only.
func (n *Node) Key() any {
	return n.key
}

// Value returns the node's value.
func (n *Node) Value() any {
	return n.value
}

// Children returns a copy of the node's children in declaration order.
func (n *Node) Children() []*Node {
	kids := make([]*Node, len(n.children))
	copy(kids, n.children)
	return kids
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// HasChildren reports whether the node has at least one child.
func (n *Node) HasChildren() bool {
	return len(n.children) > 0
}

// Child returns the i-th child, or false when i is out of range.
func (n *Node) Child(i int) (*Node, bool) {
	if i < 0 || i >= len(n.children) {
		return nil, false
	}
	return n.children[i], true
}

// FindChild returns the first direct child whose key's string form equals
// key, or false when no child matches. See KeyString for the string form.
func (n *Node) FindChild(key string) (*Node, bool) {
	for _, c := range n.children {
		if s, ok := KeyString(c.key); ok && s == key {
			return c, true
		}
	}
	return nil, false
}

// Walk visits the node and its descendants depth-first in declaration order,
// calling fn with each node and its depth (0 for the receiver). Returning
// false from fn stops the walk.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) bool {
	if !fn(n, depth) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(fn, depth+1) {
			return false
		}
	}
	return true
}

// Size returns the total number of nodes in the subtree, including the
// receiver.
func (n *Node) Size() int {
	total := 1
	for _, c := range n.children {
		total += c.Size()
	}
	return total
}

// KeyString returns the string form of a key: the key itself for string
// keys, the String() result for fmt.Stringer keys, and fmt's %v rendering
// otherwise. Nil keys have no string form.
func KeyString(key any) (string, bool) {
	switch k := key.(type) {
	case nil:
		return "", false
	case string:
		return k, true
	case fmt.Stringer:
		return k.String(), true
	default:
		return fmt.Sprintf("%v", k), true
	}
}
