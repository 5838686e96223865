// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package trees

// Color - red-black tag of a node.
type Color uint8

// Node colors. Black is the zero value.
const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Node - an intrusive tree node. The caller allocates it, hands it to an
// insert call and owns it again once it has been deleted.
//
// Only one of color, height and priority is meaningful, selected by the
// variant of the tree the node is joined to.
type Node struct {
	parent, left, right *Node

	key   Key
	value Value

	color    Color
	height   int
	priority Priority

	owner *Tree
}

// NewNode - allocate a detached node for a BST, RB or AVL tree.
func NewNode(key Key, value Value) *Node {
	return &Node{key: key, value: value}
}

// NewTreapNode - allocate a detached node carrying a treap priority.
func NewTreapNode(key Key, value Value, priority Priority) *Node {
	return &Node{key: key, value: value, priority: priority}
}

// Key - read the key from a node.
func (n *Node) Key() Key { return n.key }

// Value - read the payload from a node.
func (n *Node) Value() Value { return n.value }

// SetValue - replace the payload. Ordering depends only on the key so this is
// safe while the node is joined.
func (n *Node) SetValue(value Value) { n.value = value }

// Priority - treap priority of the node.
func (n *Node) Priority() Priority { return n.priority }

// Color - red-black color of the node, meaningful in RB trees only.
func (n *Node) Color() Color { return colorOf(n) }

// Height - stored subtree height, meaningful in AVL trees only.
func (n *Node) Height() int { return heightOf(n) }

// Parent - parent node, nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Left - left child, nil if absent.
func (n *Node) Left() *Node { return n.left }

// Right - right child, nil if absent.
func (n *Node) Right() *Node { return n.right }

// IsLeaf - true if the node has no children.
func (n *Node) IsLeaf() bool { return n.left == nil && n.right == nil }

// detach hands the node back to the caller.
func (n *Node) detach() {
	n.parent, n.left, n.right = nil, nil, nil
	n.owner = nil
}
