// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package trees

// RBInsert - insert z into a red-black tree.
// Returns z, or the node already holding an equal key (z is then not joined).
func (t *Tree) RBInsert(z *Node) *Node {
	t.mustVariant(RB)
	if zz := t.bstInsert(z); zz != z {
		return zz
	}
	z.color = Red
	t.rbInsertFixup(z)
	return z
}

// The only possible violation on entry is a red z below a red parent.
func (t *Tree) rbInsertFixup(z *Node) {
	for isRed(z.parent) {
		p := z.parent
		g := p.parent // p is red so it is not the root
		if p == g.left {
			u := g.right
			if isRed(u) {
				// case 1: red uncle, flip colors and move up.
				//
				//	     G          *g
				//	    / \         / \
				//	   p   u  -->  P   U
				//	  /           /
				//	*z           z
				p.color = Black
				u.color = Black
				g.color = Red
				z = g
				continue
			}
			if z == p.right {
				// case 2: black uncle, z is the inner child.
				// Rotate it to the outside and fall into case 3.
				z = p
				t.LeftRotate(z)
				p = z.parent
			}
			// case 3: black uncle, z is the outer child.
			//
			//	     G          *P
			//	    / \         / \
			//	   P   U  -->  z   g
			//	  /                 \
			//	*z                   U
			p.color = Black
			g.color = Red
			t.RightRotate(g)
			break
		}

		u := g.left
		if isRed(u) {
			p.color = Black
			u.color = Black
			g.color = Red
			z = g
			continue
		}
		if z == p.left {
			z = p
			t.RightRotate(z)
			p = z.parent
		}
		p.color = Black
		g.color = Red
		t.LeftRotate(g)
		break
	}
	t.root.color = Black
}

// RBDelete - remove z from a red-black tree.
func (t *Tree) RBDelete(z *Node) {
	t.mustVariant(RB)
	t.mustMember(z)

	// y is the node removed from or moved within the tree, x the node that
	// takes y's old position. x may be the sentinel, so its parent is kept
	// in xp rather than written into it.
	y, yColor := z, z.color
	var x, xp *Node

	switch {
	case z.left == nil:
		x, xp = z.right, z.parent
		t.transplant(z, z.right)
	case z.right == nil:
		x, xp = z.left, z.parent
		t.transplant(z, z.left)
	default:
		y = t.Min(z.right)
		yColor = y.color
		x = y.right
		if y.parent == z {
			xp = y
		} else {
			xp = y.parent
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if yColor == Black {
		t.rbDeleteFixup(x, xp)
	}
	t.count--
	z.detach()
}

// x carries an extra black; p is its parent.
func (t *Tree) rbDeleteFixup(x, p *Node) {
	for x != t.root && isBlack(x) {
		if x == p.left {
			w := p.right
			if isRed(w) {
				// case 1: red sibling, rotate to get a black one.
				w.color = Black
				p.color = Red
				t.LeftRotate(p)
				w = p.right
			}
			if isBlack(w.left) && isBlack(w.right) {
				// case 2: black sibling with black children, move the
				// extra black up.
				w.color = Red
				x, p = p, p.parent
				continue
			}
			if isBlack(w.right) {
				// case 3: far nephew black, near nephew red.
				// Rotate at the sibling to reach case 4.
				w.left.color = Black
				w.color = Red
				t.RightRotate(w)
				w = p.right
			}
			// case 4: far nephew red.
			w.color = p.color
			p.color = Black
			w.right.color = Black
			t.LeftRotate(p)
			x, p = t.root, nil
			continue
		}

		w := p.left
		if isRed(w) {
			w.color = Black
			p.color = Red
			t.RightRotate(p)
			w = p.left
		}
		if isBlack(w.right) && isBlack(w.left) {
			w.color = Red
			x, p = p, p.parent
			continue
		}
		if isBlack(w.left) {
			w.right.color = Black
			w.color = Red
			t.LeftRotate(w)
			w = p.left
		}
		w.color = p.color
		p.color = Black
		w.left.color = Black
		t.RightRotate(p)
		x, p = t.root, nil
	}
	if x != nil {
		x.color = Black
	}
}
