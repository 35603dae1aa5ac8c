package search

import (
	"fmt"
	"path/filepath"
	"slices"
)

// Node is one directory in the search tree. Parents own their children;
// the parent pointer is only used to rebuild paths.
type Node struct {
	name     string
	parent   *Node
	children []*Node
}

// NewNode creates a node for the path segment name. It does not attach the
// node to parent; call AddChild for that.
func NewNode(name string, parent *Node) *Node {
	return &Node{
		name:   name,
		parent: parent,
	}
}

// Name returns the node's path segment.
func (n *Node) Name() string { return n.name }

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children. The slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

// HasChildren reports whether the node has any children.
func (n *Node) HasChildren() bool {
	return len(n.children) > 0
}

// AddChild appends child to the node's children.
func (n *Node) AddChild(child *Node) {
	n.children = append(n.children, child)
}

// RemoveChild detaches child from the node.
func (n *Node) RemoveChild(child *Node) error {
	i := slices.Index(n.children, child)
	if i < 0 {
		return fmt.Errorf("%w: %q is not a child of %q", ErrChildNotFound, child.name, n.name)
	}
	n.children = slices.Delete(n.children, i, i+1)
	return nil
}

// FullPath joins the segments from the root down to this node.
func (n *Node) FullPath() string {
	var parts []string
	for cur := n; cur != nil; cur = cur.parent {
		parts = append(parts, cur.name)
	}
	slices.Reverse(parts)
	return filepath.Join(parts...)
}
