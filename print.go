// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package trees

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Fprint - draw the tree sideways on w, right subtrees above, one node per
// line with the feature of the tree's variant. Returns the depth of the tree.
func (t *Tree) Fprint(w io.Writer, showValue bool) int {
	return t.fprint(w, t.root, "", rootBranch, showValue)
}

func (t *Tree) fprint(w io.Writer, n *Node, prefix string, br branch, showValue bool) int {
	if n == nil {
		return 0
	}
	rd, ld := 0, 0
	if n.right != nil {
		pad := "       "
		if br == leftBranch {
			pad = "|      "
		}
		rd = t.fprint(w, n.right, prefix+pad, rightBranch, showValue)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v", n.key)
	if showValue {
		fmt.Fprintf(w, " → %v", n.value)
	}
	switch t.variant {
	case RB:
		fmt.Fprintf(w, " (%v)", n.color)
	case AVL:
		fmt.Fprintf(w, " h=%d", n.height)
	case Treap:
		fmt.Fprintf(w, " p=%v", n.priority)
	}
	fmt.Fprintln(w)
	if n.left != nil {
		pad := "       "
		if br == rightBranch {
			pad = "|      "
		}
		ld = t.fprint(w, n.left, prefix+pad, leftBranch, showValue)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
