// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package trees

import "fmt"

// RightRotate - rotate the subtree rooted at x to the right.
// x must have a left child.
//
//	     x                             y
//	    / \                           / \
//	   y   c   -- right rotate ->    a   x
//	  / \                               / \
//	 a   b                             b   c
func (t *Tree) RightRotate(x *Node) {
	t.mustMember(x)
	y := x.left
	if y == nil {
		panic(fmt.Sprintf("trees: right rotate at %v without a left child", x.key))
	}
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	t.replaceChild(x.parent, x, y)
	y.right = x
	x.parent = y
}

// LeftRotate - rotate the subtree rooted at x to the left.
// x must have a right child.
//
//	    x                              y
//	   / \                            / \
//	  a   y   -- left rotate ->      x   c
//	     / \                        / \
//	    b   c                      a   b
func (t *Tree) LeftRotate(x *Node) {
	t.mustMember(x)
	y := x.right
	if y == nil {
		panic(fmt.Sprintf("trees: left rotate at %v without a right child", x.key))
	}
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	t.replaceChild(x.parent, x, y)
	y.left = x
	x.parent = y
}

// replaceChild points the link of parent p that held u at v, or the root
// when p is the sentinel, and sets v's parent.
func (t *Tree) replaceChild(p, u, v *Node) {
	switch {
	case p == nil:
		t.root = v
	case u == p.left:
		p.left = v
	default:
		p.right = v
	}
	if v != nil {
		v.parent = p
	}
}

// transplant replaces the subtree rooted at u with the subtree rooted at v,
// leaving v's children untouched.
func (t *Tree) transplant(u, v *Node) {
	t.replaceChild(u.parent, u, v)
}

// BSTInsert - insert z without any balancing.
// Returns z, or the node already holding an equal key (z is then not joined).
func (t *Tree) BSTInsert(z *Node) *Node {
	t.mustVariant(BST)
	return t.bstInsert(z)
}

// BSTDelete - remove z without any balancing.
func (t *Tree) BSTDelete(z *Node) {
	t.mustVariant(BST)
	t.mustMember(z)
	t.bstDelete(z)
	t.count--
	z.detach()
}

// bstInsert walks down from the root and links z as a leaf.
func (t *Tree) bstInsert(z *Node) *Node {
	t.mustDetached(z)
	var y *Node
	x := t.root
	for x != nil {
		y = x
		if t.less(z.key, x.key) {
			x = x.left
		} else if t.less(x.key, z.key) {
			x = x.right
		} else {
			return x
		}
	}

	z.parent = y
	z.left, z.right = nil, nil
	switch {
	case y == nil:
		t.root = z
	case t.less(z.key, y.key):
		y.left = z
	default:
		y.right = z
	}
	z.owner = t
	t.count++
	return z
}

// bstDelete unlinks z; with two children its in-order successor takes its
// place. The lowest node whose subtree changed is returned, or nil if that
// is the root position.
func (t *Tree) bstDelete(z *Node) *Node {
	switch {
	case z.left == nil:
		t.transplant(z, z.right)
		return z.parent
	case z.right == nil:
		t.transplant(z, z.left)
		return z.parent
	}

	y := t.Min(z.right)
	lowest := y
	if y.parent != z {
		lowest = y.parent
		t.transplant(y, y.right)
		y.right = z.right
		y.right.parent = y
	}
	t.transplant(z, y)
	y.left = z.left
	y.left.parent = y
	return lowest
}
