// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package trees

// TreapInsert - insert z into a treap, using z's priority.
// Returns z, or the node already holding an equal key (z is then not joined).
func (t *Tree) TreapInsert(z *Node) *Node {
	t.mustVariant(Treap)
	if zz := t.bstInsert(z); zz != z {
		return zz
	}
	// bubble up while the parent has a lower priority.
	for z != t.root && t.priorityLessNode(z.parent, z) {
		if z.parent.left == z {
			t.RightRotate(z.parent)
		} else {
			t.LeftRotate(z.parent)
		}
	}
	return z
}

// TreapDelete - remove z from a treap.
func (t *Tree) TreapDelete(z *Node) {
	t.mustVariant(Treap)
	t.mustMember(z)

	// rotate z down, raising the child with the higher priority, until it
	// can be spliced out.
	for {
		if z.left == nil {
			t.transplant(z, z.right)
			break
		}
		if z.right == nil {
			t.transplant(z, z.left)
			break
		}
		if t.priorityLessNode(z.left, z.right) {
			t.LeftRotate(z)
		} else {
			t.RightRotate(z)
		}
	}
	t.count--
	z.detach()
}
