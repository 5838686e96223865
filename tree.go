// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package trees

import "fmt"

// Tree - handle holding the root and the ordering of one tree.
//
// A tree is not safe for concurrent use: callers serialize mutations and
// may share it read-only between them.
type Tree struct {
	root  *Node
	count int

	variant      Variant
	keyLess      Less
	priorityLess Less
}

// Variant - balancing strategy fixed at construction.
func (t *Tree) Variant() Variant { return t.variant }

// Root - root node, nil when the tree is empty.
func (t *Tree) Root() *Node { return t.root }

// Len - number of nodes joined to the tree.
func (t *Tree) Len() int { return t.count }

// IsEmpty - true if no node is joined.
func (t *Tree) IsEmpty() bool { return t.root == nil }

func (t *Tree) less(a, b Key) bool { return t.keyLess(a, b) }

func (t *Tree) equal(a, b Key) bool { return !t.keyLess(a, b) && !t.keyLess(b, a) }

// Returns the node holding a key equal to the passed in key, or nil if not found.
func (t *Tree) Search(key Key) *Node {
	x := t.root
	for x != nil && !t.equal(x.key, key) {
		if t.less(key, x.key) {
			x = x.left
		} else {
			x = x.right
		}
	}
	return x
}

// Min - leftmost node of the subtree rooted at r, nil for an empty subtree.
func (t *Tree) Min(r *Node) *Node {
	if r == nil {
		return nil
	}
	for r.left != nil {
		r = r.left
	}
	return r
}

// Max - rightmost node of the subtree rooted at r, nil for an empty subtree.
func (t *Tree) Max(r *Node) *Node {
	if r == nil {
		return nil
	}
	for r.right != nil {
		r = r.right
	}
	return r
}

// Successor - next node in key order, nil if x holds the largest key.
func (t *Tree) Successor(x *Node) *Node {
	t.mustMember(x)
	if x.right != nil {
		return t.Min(x.right)
	}
	y := x.parent
	for y != nil && x == y.right {
		x = y
		y = y.parent
	}
	return y
}

// Predecessor - previous node in key order, nil if x holds the smallest key.
func (t *Tree) Predecessor(x *Node) *Node {
	t.mustMember(x)
	if x.left != nil {
		return t.Max(x.left)
	}
	y := x.parent
	for y != nil && x == y.left {
		x = y
		y = y.parent
	}
	return y
}

// Height - number of nodes on the longest path down from r, 0 for nil.
// Computed level by level: a degenerate BST may be as deep as it is long.
func (t *Tree) Height(r *Node) int {
	height := 0
	level := []*Node{}
	if r != nil {
		level = append(level, r)
	}
	for len(level) > 0 {
		height++
		next := make([]*Node, 0, 2*len(level))
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return height
}

// Insert - insert through the pair matching the tree's variant.
// Returns z, or the node already holding an equal key (z is then not joined).
func (t *Tree) Insert(z *Node) *Node {
	switch t.variant {
	case RB:
		return t.RBInsert(z)
	case AVL:
		return t.AVLInsert(z)
	case Treap:
		return t.TreapInsert(z)
	}
	return t.BSTInsert(z)
}

// Delete - delete through the pair matching the tree's variant.
func (t *Tree) Delete(z *Node) {
	switch t.variant {
	case RB:
		t.RBDelete(z)
	case AVL:
		t.AVLDelete(z)
	case Treap:
		t.TreapDelete(z)
	default:
		t.BSTDelete(z)
	}
}

// Convenience method for Traverse from the root.
func (t *Tree) Each(callback Callback) {
	t.Traverse(t.root, callback)
}

// Traverse - visit every node of the subtree rooted at r in pre-order.
// The callback must not mutate the tree.
func (t *Tree) Traverse(r *Node, callback Callback) {
	if r == nil {
		return
	}
	stack := []*Node{r}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		callback(n)
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
}

// Walk - visit every node in key order.
// The callback must not mutate the tree.
func (t *Tree) Walk(callback Callback) {
	for n := t.Min(t.root); n != nil; n = t.Successor(n) {
		callback(n)
	}
}

// Keys - all keys in key order.
func (t *Tree) Keys() []Key {
	keys := make([]Key, 0, t.count)
	t.Walk(func(n *Node) {
		keys = append(keys, n.key)
	})
	return keys
}

// Contract checks. Violations are caller bugs and fail fast.

func (t *Tree) mustVariant(v Variant) {
	if t.variant != v {
		panic(fmt.Sprintf("trees: %v operation on a %v tree", v, t.variant))
	}
}

func (t *Tree) mustDetached(z *Node) {
	if z == nil {
		panic("trees: insert of a nil node")
	}
	if z.owner != nil {
		panic(fmt.Sprintf("trees: node %v is already joined to a tree", z.key))
	}
}

func (t *Tree) mustMember(z *Node) {
	if z == nil {
		panic("trees: nil node")
	}
	if z.owner != t {
		panic(fmt.Sprintf("trees: node %v is not joined to this tree", z.key))
	}
}
