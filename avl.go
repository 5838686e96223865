// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package trees

// AVLInsert - insert z into an AVL tree.
// Returns z, or the node already holding an equal key (z is then not joined).
func (t *Tree) AVLInsert(z *Node) *Node {
	t.mustVariant(AVL)
	t.mustDetached(z)
	z.height = 1
	if zz := t.bstInsert(z); zz != z {
		return zz
	}
	t.avlRetrace(z.parent)
	return z
}

// AVLDelete - remove z from an AVL tree.
// z is spliced out like a plain BST delete, then every ancestor of the
// splice point is retraced: heights are recomputed and any node whose
// balance left [-1, 1] is rebalanced with the same rotations as insert.
func (t *Tree) AVLDelete(z *Node) {
	t.mustVariant(AVL)
	t.mustMember(z)
	if z.left != nil && z.right != nil {
		// the successor takes z's place, and with it z's height until the
		// retrace recomputes it.
		t.Min(z.right).height = z.height
	}
	lowest := t.bstDelete(z)
	t.avlRetrace(lowest)
	t.count--
	z.detach()
}

func updateHeight(x *Node) {
	l, r := heightOf(x.left), heightOf(x.right)
	if l > r {
		x.height = l + 1
	} else {
		x.height = r + 1
	}
}

func balanceOf(x *Node) int {
	return heightOf(x.left) - heightOf(x.right)
}

func (t *Tree) avlRightRotate(x *Node) {
	t.RightRotate(x)
	updateHeight(x)
	updateHeight(x.parent)
}

func (t *Tree) avlLeftRotate(x *Node) {
	t.LeftRotate(x)
	updateHeight(x)
	updateHeight(x.parent)
}

// avlRetrace walks from w up to the root, recomputing heights and
// rebalancing every node whose balance left [-1, 1].
func (t *Tree) avlRetrace(w *Node) {
	for z := w; z != nil; z = z.parent {
		updateHeight(z)
		if b := balanceOf(z); b < -1 || b > 1 {
			z = t.avlRebalance(z)
		}
	}
}

// avlRebalance restores the balance of z, where y is its taller child and x
// the taller child of y. Children of equal height select the single
// rotation. Returns the new root of the subtree.
func (t *Tree) avlRebalance(z *Node) *Node {
	if balanceOf(z) > 0 {
		y := z.left
		if balanceOf(y) < 0 {
			// left right case
			//
			//	    z               z              x
			//	   / \             / \            / \
			//	  y   T4   -->    x   T4  -->   y     z
			//	 / \             / \           / \   / \
			//	T1  x           y   T3        T1 T2 T3 T4
			//	   / \         / \
			//	  T2  T3      T1  T2
			t.avlLeftRotate(y)
		}
		// left left case
		//
		//	      z                 y
		//	     / \              /   \
		//	    y   T4   -->     x     z
		//	   / \              / \   / \
		//	  x   T3           T1 T2 T3 T4
		//	 / \
		//	T1  T2
		t.avlRightRotate(z)
		return z.parent
	}

	y := z.right
	if balanceOf(y) > 0 {
		// right left case
		t.avlRightRotate(y)
	}
	// right right case
	t.avlLeftRotate(z)
	return z.parent
}
